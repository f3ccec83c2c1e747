package renderer

import (
	"strings"

	"github.com/SCKelemen/unicode/uax9"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
)

// ReorderForDisplay applies UAX #9 bidirectional reordering line by
// line, the step a renderer must take before drawing visual runs for
// right-to-left or mixed-direction text (§10 supplement 1:
// layout.WritingDirection is metadata only — this is where it actually
// gets acted on). Each line is reordered independently so reordering
// never touches the token/line boundaries layout.Wrap already fixed.
//
// Adapted from bidi.go's ReorderParagraph; unlike the teacher's
// version this takes a layout.WritingDirection directly rather than a
// package-local Direction type, since that conversion already lives in
// layout/direction.go.
func ReorderForDisplay(lines []string, direction layout.WritingDirection) []string {
	dir := direction.UAX9()
	reordered := make([]string, len(lines))
	for i, line := range lines {
		reordered[i] = uax9.Reorder(line, dir)
	}
	return reordered
}

// mirrorBrackets maps an opening bracket to its mirrored closing
// equivalent and back, for the RTL case where uax9.Reorder leaves
// bracket glyphs unmirrored.
var mirrorBrackets = map[rune]rune{
	'(': ')', ')': '(',
	'[': ']', ']': '[',
	'{': '}', '}': '{',
	'<': '>', '>': '<',
	'«': '»', '»': '«',
	'‹': '›', '›': '‹',
}

// MirrorBrackets mirrors paired punctuation for RTL display (§10
// supplement 1). Adapted from bidi.go's MirrorBrackets, trimmed to the
// common Latin/French-quote bracket pairs; CJK bracket pairs are
// unaffected by bidi mirroring since layout.WritingMode, not
// WritingDirection, governs CJK layout.
func MirrorBrackets(text string) string {
	if !strings.ContainsAny(text, "()[]{}<>«»‹›") {
		return text
	}
	runes := []rune(text)
	for i, r := range runes {
		if mirrored, ok := mirrorBrackets[r]; ok {
			runes[i] = mirrored
		}
	}
	return string(runes)
}
