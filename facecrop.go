// Package facecrop crops images around the largest detected face.
//
// The package combines a pigo cascade face detector with a pure geometry
// engine that frames the face according to one of three composition rules:
// centered framing driven by a zoom factor, portrait framing that places the
// eyes at a third of the frame, or explicit per-side padding weights.
//
// Basic usage:
//
//	package main
//
//	import (
//		"log"
//
//		"github.com/menta2k/facecrop"
//	)
//
//	func main() {
//		cropper, err := facecrop.NewFromCascade("facefinder", facecrop.DefaultOptions())
//		if err != nil {
//			log.Fatal(err)
//		}
//
//		if err := cropper.CropFile("photo.jpg", "face.jpg"); err != nil {
//			log.Fatal(err)
//		}
//	}
//
// The package consists of three main components:
//
// 1. Detection (pkg/detection): pigo-backed face bounding-box detection
// 2. Geometry (pkg/geometry): converts a face box into a crop rectangle
// 3. Processing (pkg/processing): decode, encode and raster operations
//
// Crop returns ErrNoFaceDetected when the detector finds nothing; arbitrary
// input images legitimately contain no face, so callers should treat that as
// a skip, not a failure.
package facecrop

import (
	"errors"
	"fmt"
	"image"
	"path/filepath"
	"strings"

	"github.com/menta2k/facecrop/pkg/detection"
	"github.com/menta2k/facecrop/pkg/geometry"
	"github.com/menta2k/facecrop/pkg/processing"
	"github.com/menta2k/facecrop/pkg/types"
)

// Version of the facecrop library
const Version = "1.0.0"

// ErrNoFaceDetected is returned by Crop when the detector finds no face in
// the image.
var ErrNoFaceDetected = errors.New("no face detected")

// Detector finds face bounding boxes in an image. *detection.FaceDetector
// satisfies it; tests substitute their own.
type Detector interface {
	DetectFaces(img image.Image) ([]types.Box, error)
}

// Options configures a Cropper. Start from DefaultOptions; the zero value
// fails validation.
type Options struct {
	// Width and Height of the output image in pixels.
	Width  int
	Height int

	// FacePercent is the percentage of the crop's linear extent the face
	// should occupy (zoom factor).
	FacePercent int

	// Padding switches to explicit per-side margin weights; it overrides
	// FacePercent centering and Portrait composition.
	Padding *types.Padding

	// Portrait composes tall outputs with the eyes at a third of the frame.
	Portrait bool

	// FixGamma lightens the crop when the source image is underexposed.
	FixGamma bool

	// Quality for JPEG/WebP output written by CropFile.
	Quality int

	// Lossless enables lossless WebP output written by CropFile.
	Lossless bool
}

// DefaultOptions returns the default cropper configuration: a 500x500 output
// with the face filling half of it, portrait composition and gamma fix on.
func DefaultOptions() Options {
	return Options{
		Width:       500,
		Height:      500,
		FacePercent: 50,
		Portrait:    true,
		FixGamma:    true,
		Quality:     90,
	}
}

// Cropper crops the largest detected face out of images. Immutable after
// construction and safe for concurrent use.
type Cropper struct {
	detector  Detector
	engine    *geometry.Engine
	processor *processing.Processor
	opts      Options
}

// New builds a Cropper from a detector and options. Configuration errors are
// raised here, never at crop time.
func New(detector Detector, opts Options) (*Cropper, error) {
	if detector == nil {
		return nil, fmt.Errorf("a face detector is required")
	}

	engine, err := geometry.NewEngine(geometry.Config{
		Width:       opts.Width,
		Height:      opts.Height,
		FacePercent: opts.FacePercent,
		Padding:     opts.Padding,
		Portrait:    opts.Portrait,
	})
	if err != nil {
		return nil, err
	}

	return &Cropper{
		detector:  detector,
		engine:    engine,
		processor: processing.NewProcessor(),
		opts:      opts,
	}, nil
}

// NewFromCascade builds a Cropper with a pigo cascade loaded from a file
func NewFromCascade(cascadePath string, opts Options) (*Cropper, error) {
	detector, err := detection.NewFaceDetectorFromFile(cascadePath)
	if err != nil {
		return nil, err
	}
	return New(detector, opts)
}

// Crop returns img cropped around its largest detected face and resized to
// the configured output dimensions. Returns ErrNoFaceDetected when the
// detector finds nothing.
func (c *Cropper) Crop(img image.Image) (image.Image, error) {
	rect, _, err := c.CropRect(img)
	if err != nil {
		return nil, err
	}

	out, err := c.processor.CropToRect(img, rect, c.opts.Width, c.opts.Height)
	if err != nil {
		return nil, err
	}

	if c.opts.FixGamma {
		out = c.processor.FixUnderexposure(out, img)
	}
	return out, nil
}

// CropRect computes the crop window and the face box it frames without
// touching any pixels. Useful for debug overlays.
func (c *Cropper) CropRect(img image.Image) (types.Rect, types.Box, error) {
	faces, err := c.detector.DetectFaces(img)
	if err != nil {
		return types.Rect{}, types.Box{}, fmt.Errorf("face detection failed: %w", err)
	}

	face, ok := detection.BiggestFace(faces)
	if !ok {
		return types.Rect{}, types.Box{}, ErrNoFaceDetected
	}

	rect, err := c.engine.Crop(types.ExtentOf(img), face)
	if err != nil {
		return types.Rect{}, types.Box{}, err
	}
	return rect, face, nil
}

// CropFile loads inputPath (file path or URL), crops it and writes the
// result to outputPath. The output format follows the output extension.
// ErrNoFaceDetected passes through so batch callers can skip the file.
func (c *Cropper) CropFile(inputPath, outputPath string) error {
	img, err := c.processor.LoadImageSmart(inputPath)
	if err != nil {
		return fmt.Errorf("failed to load image: %w", err)
	}

	out, err := c.Crop(img)
	if err != nil {
		return err
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(outputPath)), ".")
	if format == "" {
		format = "jpg"
	}
	if err := c.processor.SaveImage(out, outputPath, format, c.opts.Quality, c.opts.Lossless); err != nil {
		return fmt.Errorf("failed to save image: %w", err)
	}
	return nil
}

// Processor exposes the raster collaborator for callers that need raw
// decode/encode or overlay rendering.
func (c *Cropper) Processor() *processing.Processor {
	return c.processor
}

// GetVersion returns the library version
func GetVersion() string {
	return Version
}
