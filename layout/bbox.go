// Package layout implements the Layout Preservation Engine: given an
// OCR-analyzed text block's bounding box and font, and a translated string
// that may not be the same length as the original, it decides how to lay
// the translation back into the page without losing the source's visual
// structure.
//
// The package is pure and single-threaded: no I/O, no global state beyond
// an immutable Config built once at startup. Callers that need to fan out
// across many blocks concurrently (the orchestrator package does) can call
// into it from as many goroutines as they like.
package layout

import "fmt"

// BoundingBox is an axis-aligned rectangle in page coordinates (points),
// the unit OCR engines and PDF content streams agree on.
type BoundingBox struct {
	X, Y          float64
	Width, Height float64
}

// NewBoundingBox validates and constructs a BoundingBox. Width and Height
// must be non-negative; X and Y may be any finite value since the engine
// does not assume a page origin.
func NewBoundingBox(x, y, width, height float64) (BoundingBox, error) {
	if width < 0 {
		return BoundingBox{}, &InputError{Field: "width", Value: width, Reason: "must be >= 0"}
	}
	if height < 0 {
		return BoundingBox{}, &InputError{Field: "height", Value: height, Reason: "must be >= 0"}
	}
	return BoundingBox{X: x, Y: y, Width: width, Height: height}, nil
}

// WithExpandedHeight returns a copy of b with Height set to newHeight,
// leaving X, Y, and Width untouched. Used by the Adjustment Applicator,
// which never changes horizontal geometry (§4.4).
func (b BoundingBox) WithExpandedHeight(newHeight float64) BoundingBox {
	b.Height = newHeight
	return b
}

func (b BoundingBox) String() string {
	return fmt.Sprintf("BoundingBox{x:%.2f y:%.2f w:%.2f h:%.2f}", b.X, b.Y, b.Width, b.Height)
}
