package renderer

import (
	"math"
	"strings"
)

// Justify spreads line's words across targetWidth by inserting extra
// inter-word spaces (CSS text-justify: inter-word, §10 supplement 8).
// Purely cosmetic and renderer-side: never applied to
// TranslationResult.AdjustedText, which must keep exactly the wrap
// boundaries the wrap-correctness invariant fixed.
//
// Adapted from advanced.go's justifyInterWord. The teacher distributes
// a continuous extraSpace budget using per-glyph metrics this package
// doesn't have; here the budget is computed with a linear
// fontSize*avgCharWidthEm*runeCount model (layout.Apply counts
// graphemes instead, so the two differ on combining sequences), and
// quantized to a whole number of extra spaces per gap since a renderer
// without fractional glyph advances can only insert whole characters.
func Justify(line string, targetWidth, fontSize, avgCharWidthEm float64) string {
	words := strings.Fields(line)
	if len(words) <= 1 {
		return line
	}

	charWidth := fontSize * avgCharWidthEm
	if charWidth <= 0 {
		return line
	}

	joined := strings.Join(words, " ")
	currentWidth := float64(len([]rune(joined))) * charWidth
	if currentWidth >= targetWidth {
		return line
	}

	gaps := len(words) - 1
	extraSpacesPerGap := int(math.Round((targetWidth - currentWidth) / charWidth / float64(gaps)))
	if extraSpacesPerGap < 0 {
		extraSpacesPerGap = 0
	}

	var b strings.Builder
	for i, word := range words {
		b.WriteString(word)
		if i < gaps {
			b.WriteByte(' ')
			b.WriteString(strings.Repeat(" ", extraSpacesPerGap))
		}
	}
	return b.String()
}
