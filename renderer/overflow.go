package renderer

import (
	"math"
	"strings"
)

// VisibleLines partitions adjustedText's `\n`-separated lines into what
// fits within bboxHeight and what must be dropped, applying §4.9's
// positioning rule directly: the renderer places y_top at the box top
// and advances by line_height = font.size * lineHeightFactor per line,
// dropping every line whose full line_height would extend past the box
// bottom.
//
// Adapted from hittest.go's LineContainingPosition, which walks a
// position against a sequence of [Start, End) spans to find which span
// it falls in; here the spans are per-line y-ranges instead of
// per-line rune ranges, and the position being tested is the box
// bottom rather than a single point.
func VisibleLines(adjustedText string, bboxHeight, fontSize, lineHeightFactor float64) (visible, dropped []string, overflowed bool) {
	lines := strings.Split(adjustedText, "\n")
	lineHeight := fontSize * lineHeightFactor
	if lineHeight <= 0 {
		return lines, nil, false
	}

	maxVisible := int(math.Floor(bboxHeight / lineHeight))
	if maxVisible < 0 {
		maxVisible = 0
	}
	if maxVisible >= len(lines) {
		return lines, nil, false
	}

	return lines[:maxVisible], lines[maxVisible:], true
}
