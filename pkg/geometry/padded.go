package geometry

import (
	"math"

	"github.com/menta2k/facecrop/pkg/types"
)

// expandPadded computes all four crop edges in one pass. The crop extent is
// sized from the face height and facePercent, the width follows from the
// aspect ratio, and each side's margin is the axis's total margin scaled by
// that side's share of its two padding weights.
//
// When an edge overshoots the image, a per-axis deficit is measured against
// the overshooting side's weight, cross-propagated to the other axis through
// the aspect ratio, and all four edges shrink proportionally to their
// weights. The shrunk rectangle fits the image and keeps the relative weight
// ratios as closely as the aspect-ratio constraint allows.
func expandPadded(face types.Box, ext types.Extent, aspect float64, facePercent int, pad types.Padding) (top, bottom, left, right float64) {
	cropHeight := float64(face.H) * 100.0 / float64(facePercent)
	cropWidth := aspect * cropHeight

	leftShare := float64(pad.Left) / float64(pad.Left+pad.Right)
	rightShare := float64(pad.Right) / float64(pad.Left+pad.Right)
	topShare := float64(pad.Top) / float64(pad.Top+pad.Bottom)
	bottomShare := float64(pad.Bottom) / float64(pad.Top+pad.Bottom)

	xMargin := cropWidth - float64(face.W)
	yMargin := cropHeight - float64(face.H)

	left = float64(face.X) - xMargin*leftShare
	right = float64(face.X+face.W) + xMargin*rightShare
	top = float64(face.Y) - yMargin*topShare
	bottom = float64(face.Y+face.H) + yMargin*bottomShare

	var deltaH float64
	if left < 0 {
		deltaH = -left / leftShare
	}
	if over := right - float64(ext.Width); over > 0 {
		deltaH = math.Max(deltaH, over/rightShare)
	}

	var deltaV float64
	if deltaH > 0 {
		deltaV = deltaH / aspect
	}
	if top < 0 {
		deltaV = math.Max(deltaV, -top/topShare)
	}
	if over := bottom - float64(ext.Height); over > 0 {
		deltaV = math.Max(deltaV, over/bottomShare)
	}
	deltaH = math.Max(deltaH, deltaV*aspect)

	left += deltaH * leftShare
	right -= deltaH * rightShare
	top += deltaV * topShare
	bottom -= deltaV * bottomShare
	return top, bottom, left, right
}
