package model

import (
	"image"
	"math"
)

// Token is the smallest positioned unit of text on a page, roughly a
// printed word. Coordinates use the PDF convention (Y grows upwards).
type Token struct {
	Text   string
	Left   float64
	Right  float64
	Top    float64
	Bottom float64
}

// NewToken creates a token whose box starts at (left, baseline) and is
// height units tall. Right is estimated from the text length.
func NewToken(text string, left, baseline, height float64) Token {
	return Token{
		Text:   text,
		Left:   left,
		Right:  left + float64(len(text))*height*0.5,
		Top:    baseline + height,
		Bottom: baseline,
	}
}

// NewImageToken converts a box in image pixels (origin top-left, Y grows
// downward) into a token in page units. scale converts pixels to page
// units, e.g. 72/300 for a 300 DPI scan measured in points.
func NewImageToken(text string, box image.Rectangle, imageHeight int, scale float64) Token {
	h := float64(imageHeight)
	return Token{
		Text:   text,
		Left:   float64(box.Min.X) * scale,
		Right:  float64(box.Max.X) * scale,
		Top:    (h - float64(box.Min.Y)) * scale,
		Bottom: (h - float64(box.Max.Y)) * scale,
	}
}

// MidY returns the vertical midpoint of the token
func (t Token) MidY() float64 {
	return (t.Top + t.Bottom) / 2
}

// Width returns the horizontal extent of the token
func (t Token) Width() float64 {
	return math.Max(0, t.Right-t.Left)
}

// Height returns the vertical extent of the token
func (t Token) Height() float64 {
	return math.Abs(t.Top - t.Bottom)
}

// BBox returns the token's bounding box
func (t Token) BBox() BBox {
	return NewBBox(t.Left, math.Min(t.Top, t.Bottom), t.Width(), t.Height())
}

// BBox represents a bounding box (rectangle)
type BBox struct {
	X      float64 // Left
	Y      float64 // Bottom (PDF coordinate system)
	Width  float64
	Height float64
}

// NewBBox creates a bounding box from coordinates
func NewBBox(x, y, width, height float64) BBox {
	return BBox{X: x, Y: y, Width: width, Height: height}
}

// Left returns the left edge X coordinate
func (b BBox) Left() float64 {
	return b.X
}

// Right returns the right edge X coordinate
func (b BBox) Right() float64 {
	return b.X + b.Width
}

// Bottom returns the bottom edge Y coordinate
func (b BBox) Bottom() float64 {
	return b.Y
}

// Top returns the top edge Y coordinate
func (b BBox) Top() float64 {
	return b.Y + b.Height
}

// Union returns the union of two bounding boxes. A zero box is treated as
// empty so that unions can be accumulated from BBox{}.
func (b BBox) Union(other BBox) BBox {
	if b.IsEmpty() && b.X == 0 && b.Y == 0 {
		return other
	}

	x := math.Min(b.Left(), other.Left())
	y := math.Min(b.Bottom(), other.Bottom())
	right := math.Max(b.Right(), other.Right())
	top := math.Max(b.Top(), other.Top())

	return BBox{
		X:      x,
		Y:      y,
		Width:  right - x,
		Height: top - y,
	}
}

// IsEmpty returns true if the bounding box has zero area
func (b BBox) IsEmpty() bool {
	return b.Width <= 0 || b.Height <= 0
}
