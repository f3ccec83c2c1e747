package layout

import "fmt"

// FontWeight mirrors CSS font-weight keywords closely enough for the
// renderer to make fallback decisions; the LPE itself never interprets
// these beyond carrying them through untouched.
type FontWeight string

const (
	WeightNormal FontWeight = "normal"
	WeightBold   FontWeight = "bold"
)

// FontStyle mirrors CSS font-style.
type FontStyle string

const (
	StyleNormal  FontStyle = "normal"
	StyleItalic  FontStyle = "italic"
	StyleOblique FontStyle = "oblique"
)

// RGBColor is an sRGB color in 0..255 per channel (§4.9). A dedicated type
// rather than image/color.RGBA: the stdlib type carries an alpha channel
// and premultiplication rules the spec has no use for, and reusing it
// would invite renderer-side alpha-blend bugs that have nothing to do
// with this package's contract.
type RGBColor struct {
	R, G, B uint8
}

// FontInfo is an immutable font descriptor. Size is in points.
type FontInfo struct {
	Family string
	Size   float64
	Weight FontWeight
	Style  FontStyle
	Color  RGBColor
}

// NewFontInfo validates and constructs a FontInfo. Size must be > 0; the
// renderer-side minimum of 1.0pt is enforced later, by the Adjustment
// Applicator, not at construction (a 0.4pt source font is a valid input
// even though the engine will never shrink below 1.0pt).
func NewFontInfo(family string, size float64, weight FontWeight, style FontStyle, color RGBColor) (FontInfo, error) {
	if size <= 0 {
		return FontInfo{}, &InputError{Field: "size", Value: size, Reason: "must be > 0"}
	}
	if weight == "" {
		weight = WeightNormal
	}
	if style == "" {
		style = StyleNormal
	}
	return FontInfo{Family: family, Size: size, Weight: weight, Style: style, Color: color}, nil
}

// WithSize returns a copy of f scaled to the given size, leaving family,
// weight, style, and color unchanged (§4.4: "all other font fields
// unchanged").
func (f FontInfo) WithSize(size float64) FontInfo {
	f.Size = size
	return f
}

func (f FontInfo) String() string {
	return fmt.Sprintf("FontInfo{%s %.2fpt %s %s}", f.Family, f.Size, f.Weight, f.Style)
}
