package layout

// WritingMode specifies the block flow direction, per CSS Writing Modes
// Level 4 (§10 supplement 2). It travels with a LayoutContext as a
// renderer hint only: none of the C1-C7 arithmetic in fit.go,
// strategy.go, wrap.go, score.go, or validate.go branches on it. A
// caller rendering CJK traditional layout reads it back off the
// LayoutContext it supplied and rotates the glyph run itself.
//
// Adapted from the teacher's layout/vertical.go WritingMode enum,
// trimmed of the glyph-measurement methods that belonged to its Text
// type: those are a rendering concern, not a layout-decision one, and
// this module has no vertical glyph measurement.
type WritingMode int

const (
	// WritingModeHorizontalTB flows top to bottom, inline left to right.
	// The default for Latin, Cyrillic, and most scripts.
	WritingModeHorizontalTB WritingMode = iota

	// WritingModeVerticalRL flows right to left, inline top to bottom.
	// Traditional Chinese, Japanese, and Korean typography.
	WritingModeVerticalRL

	// WritingModeVerticalLR flows left to right, inline top to bottom.
	// Mongolian and certain historical scripts.
	WritingModeVerticalLR
)

// IsVertical reports whether mode requires a vertical renderer path.
func (m WritingMode) IsVertical() bool {
	return m == WritingModeVerticalRL || m == WritingModeVerticalLR
}

func (m WritingMode) String() string {
	switch m {
	case WritingModeVerticalRL:
		return "vertical-rl"
	case WritingModeVerticalLR:
		return "vertical-lr"
	default:
		return "horizontal-tb"
	}
}
