package types

import "image"

// Box represents an axis-aligned face bounding box in source-image pixel
// coordinates. X,Y is the top-left corner; W and H are strictly positive.
type Box struct {
	X int `json:"x"`
	Y int `json:"y"`
	W int `json:"w"`
	H int `json:"h"`
}

// Center returns the center point of the box
func (b Box) Center() (int, int) {
	return b.X + b.W/2, b.Y + b.H/2
}

// Area returns the area of the box in pixels
func (b Box) Area() int {
	return b.W * b.H
}

// ImageRect converts the box to an image.Rectangle
func (b Box) ImageRect() image.Rectangle {
	return image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H)
}

// Extent holds the pixel dimensions of a source image
type Extent struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ExtentOf returns the extent of an image
func ExtentOf(img image.Image) Extent {
	bounds := img.Bounds()
	return Extent{Width: bounds.Dx(), Height: bounds.Dy()}
}

// Rect is a crop window into a source image. The invariant
// 0 <= Top < Bottom <= imageHeight and 0 <= Left < Right <= imageWidth
// holds for every rectangle produced by the geometry engine.
type Rect struct {
	Top    int `json:"top"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
	Right  int `json:"right"`
}

// Width returns the horizontal extent of the rectangle
func (r Rect) Width() int {
	return r.Right - r.Left
}

// Height returns the vertical extent of the rectangle
func (r Rect) Height() int {
	return r.Bottom - r.Top
}

// ImageRect converts the rectangle to an image.Rectangle
func (r Rect) ImageRect() image.Rectangle {
	return image.Rect(r.Left, r.Top, r.Right, r.Bottom)
}

// Padding holds four per-side margin weights. The weights are relative:
// each side receives its axis's total margin scaled by the side's share of
// the two weights on that axis.
type Padding struct {
	Top    int `json:"top"`
	Right  int `json:"right"`
	Bottom int `json:"bottom"`
	Left   int `json:"left"`
}

// Uniform returns a Padding with the same weight on all four sides
func Uniform(pad int) Padding {
	return Padding{Top: pad, Right: pad, Bottom: pad, Left: pad}
}
