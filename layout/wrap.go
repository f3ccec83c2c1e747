package layout

import (
	"strings"

	"github.com/SCKelemen/unicode/uax29"
)

// Wrap greedily wraps text to fit charsPerLine grapheme clusters per
// line, preserving token (whitespace-separated) boundaries (§4.4).
//
// Tokens that don't fit on their own line are hard-broken into
// charsPerLine-sized chunks, unless hyphenator is non-nil and offers a
// better break point within the token (§10 supplement 4); the default
// (hyphenator == nil) hard-breaks exactly as spec.md §4.4 and its long-
// word seed test (§8 scenario 4) require.
func Wrap(text string, charsPerLine int, hyphenator Hyphenator) []string {
	if charsPerLine < 1 {
		charsPerLine = 1
	}

	tokens := strings.Fields(text)
	if len(tokens) == 0 {
		return nil
	}

	var lines []string
	current := ""

	appendToken := func(tok string) {
		if current == "" {
			current = tok
			return
		}
		if textLength(current)+1+textLength(tok) <= charsPerLine {
			current = current + " " + tok
			return
		}
		lines = append(lines, current)
		current = tok
	}

	for _, tok := range tokens {
		if textLength(tok) > charsPerLine {
			// The token alone overflows a line: flush what we have, then
			// break the token itself.
			if current != "" {
				lines = append(lines, current)
				current = ""
			}
			pieces := breakLongToken(tok, charsPerLine, hyphenator)
			for i, p := range pieces {
				if i == len(pieces)-1 {
					current = p
				} else {
					lines = append(lines, p)
				}
			}
			continue
		}
		appendToken(tok)
	}

	if current != "" {
		lines = append(lines, current)
	}

	return lines
}

// breakLongToken splits a single token wider than charsPerLine into
// pieces no wider than charsPerLine each. If hyphenator is non-nil and
// knows a hyphenation point inside the token that falls within budget, the
// first piece breaks there (with a trailing hyphen); otherwise — and for
// every subsequent piece — it hard-breaks at exactly charsPerLine
// grapheme clusters, matching §4.4's "hard-break the token into
// fixed-size chunks of chars_per_line characters" precisely.
func breakLongToken(tok string, charsPerLine int, hyphenator Hyphenator) []string {
	clusters := graphemes(tok)

	if hyphenator != nil {
		if points := hyphenator.HyphenationPoints(tok); len(points) > 0 {
			if pieces, ok := hyphenateWithinBudget(clusters, points, charsPerLine); ok {
				return pieces
			}
		}
	}

	var pieces []string
	for len(clusters) > charsPerLine {
		pieces = append(pieces, strings.Join(clusters[:charsPerLine], ""))
		clusters = clusters[charsPerLine:]
	}
	if len(clusters) > 0 {
		pieces = append(pieces, strings.Join(clusters, ""))
	}
	return pieces
}

// hyphenateWithinBudget uses the largest hyphenation point at or before
// charsPerLine-1 (leaving room for the trailing hyphen) to split off one
// piece, then continues hard-breaking or re-hyphenating the remainder.
func hyphenateWithinBudget(clusters []string, points []int, charsPerLine int) ([]string, bool) {
	if charsPerLine < 2 {
		return nil, false
	}
	best := -1
	for _, p := range points {
		if p > 0 && p < len(clusters) && p <= charsPerLine-1 && p > best {
			best = p
		}
	}
	if best < 0 {
		return nil, false
	}

	first := strings.Join(clusters[:best], "") + "-"
	rest := clusters[best:]

	pieces := []string{first}
	for len(rest) > charsPerLine {
		pieces = append(pieces, strings.Join(rest[:charsPerLine], ""))
		rest = rest[charsPerLine:]
	}
	if len(rest) > 0 {
		pieces = append(pieces, strings.Join(rest, ""))
	}
	return pieces, true
}

func graphemes(s string) []string {
	return uax29.Graphemes(s)
}
