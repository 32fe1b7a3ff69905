// Package geometry converts a face bounding box, the source image extent and
// a composition configuration into a crop rectangle that respects a target
// aspect ratio and never leaves the image.
//
// Three composition rules are supported: centered framing driven by a face
// zoom factor, portrait framing that places the eyes at a third of the frame,
// and explicit per-side padding weights. The rule is fixed when the engine is
// built; every Crop call is a pure function over its inputs, so a single
// engine is safe for concurrent use.
package geometry

import (
	"errors"
	"fmt"

	"github.com/menta2k/facecrop/pkg/types"
)

// ErrInconsistentGeometry signals an internal invariant violation: the
// resolved crop rectangle degenerated to an empty window. It indicates a
// logic defect, not a property of the input image.
var ErrInconsistentGeometry = errors.New("inconsistent crop geometry")

type compositionMode int

const (
	modeCentered compositionMode = iota
	modePortrait
	modePadded
)

// Config describes the output frame and the composition rule for an Engine.
type Config struct {
	// Width and Height are the output dimensions; they fix the aspect ratio
	// every crop rectangle honors.
	Width  int
	Height int

	// FacePercent is the percentage of the crop's linear extent the face
	// should occupy. Higher values zoom in tighter.
	FacePercent int

	// Padding switches to explicit per-side margin weights, overriding
	// face-percent centering and portrait composition.
	Padding *types.Padding

	// Portrait places the eyes at a third of the frame when the output is
	// taller than wide. Ignored when Padding is set.
	Portrait bool
}

// Engine computes crop rectangles for detected faces. Immutable after
// construction.
type Engine struct {
	width       int
	height      int
	aspectRatio float64
	facePercent int
	mode        compositionMode
	pad         types.Padding
}

// NewEngine validates cfg and builds an Engine. Exactly one composition mode
// is selected here: padding takes precedence over portrait, which applies
// only to tall output frames; centered framing is the default.
func NewEngine(cfg Config) (*Engine, error) {
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return nil, fmt.Errorf("output dimensions must be positive, got %dx%d", cfg.Width, cfg.Height)
	}
	if cfg.FacePercent <= 0 || cfg.FacePercent > 100 {
		return nil, fmt.Errorf("face percent must be in (0,100], got %d", cfg.FacePercent)
	}

	e := &Engine{
		width:       cfg.Width,
		height:      cfg.Height,
		aspectRatio: float64(cfg.Width) / float64(cfg.Height),
		facePercent: cfg.FacePercent,
		mode:        modeCentered,
	}

	switch {
	case cfg.Padding != nil:
		pad := *cfg.Padding
		if pad.Top <= 0 || pad.Right <= 0 || pad.Bottom <= 0 || pad.Left <= 0 {
			return nil, fmt.Errorf("padding weights must be positive, got %+v", pad)
		}
		e.mode = modePadded
		e.pad = pad
	case cfg.Portrait && cfg.Height > cfg.Width:
		e.mode = modePortrait
	}
	return e, nil
}

// AspectRatio returns the width/height ratio of the output frame.
func (e *Engine) AspectRatio() float64 {
	return e.aspectRatio
}

// Crop returns the crop rectangle for a face detected in an image of the
// given extent. The rectangle is always contained in the image; the output
// aspect ratio is preserved within rounding except when both axes hit their
// overflow fallback at once.
func (e *Engine) Crop(ext types.Extent, face types.Box) (types.Rect, error) {
	if ext.Width <= 0 || ext.Height <= 0 {
		return types.Rect{}, fmt.Errorf("image extent must be positive, got %dx%d", ext.Width, ext.Height)
	}
	if face.W <= 0 || face.H <= 0 {
		return types.Rect{}, fmt.Errorf("face box must have positive size, got %+v", face)
	}

	if e.mode == modePadded {
		top, bottom, left, right := expandPadded(face, ext, e.aspectRatio, e.facePercent, e.pad)
		return e.finalize(ext, int(top), int(bottom), int(left), int(right))
	}
	return e.cropComposed(ext, face)
}

// cropComposed resolves the horizontal axis from the face zoom factor, sizes
// the vertical axis to match the aspect ratio, and runs at most one
// re-resolution pass when the vertical span had to be corrected.
func (e *Engine) cropComposed(ext types.Extent, face types.Box) (types.Rect, error) {
	left, right, _ := expandCentered(face.X, face.W, ext.Width, e.facePercent)
	expectedHeight := int(float64(right-left) / e.aspectRatio)

	var top, bottom int
	var metV bool
	if e.mode == modePortrait {
		top, bottom, metV = expandPortrait(face.Y, face.H, ext.Height, expectedHeight)
	} else {
		top, bottom, metV = expandToSize(face.Y, face.H, ext.Height, expectedHeight)
	}

	if !metV {
		// The vertical span is final now; force a horizontal window of the
		// exact matching width. The window is narrower than the first pass
		// and shares its center, so it fits without further correction.
		expectedWidth := int(float64(bottom-top) * e.aspectRatio)
		left, right, _ = expandToSize(face.X, face.W, ext.Width, expectedWidth)
	}
	return e.finalize(ext, top, bottom, left, right)
}

// finalize clamps the edges to the image and rejects degenerate windows.
func (e *Engine) finalize(ext types.Extent, top, bottom, left, right int) (types.Rect, error) {
	r := types.Rect{
		Top:    clampInt(top, 0, ext.Height),
		Bottom: clampInt(bottom, 0, ext.Height),
		Left:   clampInt(left, 0, ext.Width),
		Right:  clampInt(right, 0, ext.Width),
	}
	if r.Top >= r.Bottom || r.Left >= r.Right {
		return types.Rect{}, fmt.Errorf("%w: empty window [%d,%d]x[%d,%d] in %dx%d image",
			ErrInconsistentGeometry, r.Left, r.Right, r.Top, r.Bottom, ext.Width, ext.Height)
	}
	return r, nil
}
