package layout

import (
	"github.com/SCKelemen/unicode/uax9"
)

// WritingDirection specifies paragraph directionality, carried on a
// LayoutContext as a renderer hint (§10 supplement 1) alongside
// WritingMode. Like WritingMode, it never feeds fit.go, strategy.go, or
// score.go arithmetic: length_ratio and one_line_width are direction-
// agnostic, per spec.md §4.2.
//
// Adapted from the teacher's Direction type and DetectDirection method
// (layout/text.go, layout/bidi.go), trimmed of the reordering and
// mirroring helpers that belong to rendering, not layout decisions.
type WritingDirection int

const (
	// DirectionLTR is left-to-right (Latin, Cyrillic, most scripts).
	DirectionLTR WritingDirection = iota

	// DirectionRTL is right-to-left (Arabic, Hebrew).
	DirectionRTL

	// DirectionAuto asks DetectDirection to resolve directionality from
	// the translated text's own Unicode bidi classes.
	DirectionAuto
)

// UAX9 exposes the equivalent uax9.Direction, for renderer-side callers
// that reorder or mirror glyphs using the teacher's uax9 package
// directly rather than reimplementing bidi reordering here.
func (d WritingDirection) UAX9() uax9.Direction {
	return toUAX9Direction(d)
}

func toUAX9Direction(d WritingDirection) uax9.Direction {
	switch d {
	case DirectionLTR:
		return uax9.DirectionLTR
	case DirectionRTL:
		return uax9.DirectionRTL
	default:
		return uax9.DirectionAuto
	}
}

func fromUAX9Direction(d uax9.Direction) WritingDirection {
	switch d {
	case uax9.DirectionRTL:
		return DirectionRTL
	case uax9.DirectionAuto:
		return DirectionAuto
	default:
		return DirectionLTR
	}
}

// DetectDirection runs the Unicode bidi paragraph-direction algorithm
// (UAX #9) over translated text, for callers whose source language is
// RTL or mixed-direction and who passed DirectionAuto into a
// LayoutContext.
func DetectDirection(text string) WritingDirection {
	return fromUAX9Direction(uax9.GetParagraphDirection(text))
}
