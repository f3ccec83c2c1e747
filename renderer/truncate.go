package renderer

import (
	"strings"

	"github.com/SCKelemen/unicode/uax29"
)

// defaultAbbreviations is the abbreviation set sentence-boundary
// truncation uses to avoid stopping after "Dr." or "etc." as if those
// were sentence ends. Adapted from dictionary.go's
// defaultEnglishAbbreviations, trimmed to the entries a truncation
// decision actually cares about.
var defaultAbbreviations = map[string]bool{
	"mr": true, "mrs": true, "ms": true, "dr": true, "prof": true,
	"rev": true, "hon": true, "st": true,
	"phd": true, "ba": true, "bs": true, "ma": true, "mba": true,
	"jr": true, "sr": true, "esq": true,
	"etc": true, "ie": true, "eg": true, "vs": true,
	"inc": true, "ltd": true, "corp": true, "co": true,
	"no": true, "vol": true, "approx": true,
}

// SentenceSplitter segments text into sentences using UAX #29 boundary
// detection, merging sentences UAX #29 would otherwise split after a
// known abbreviation. Adapted from dictionary.go's
// SentencesWithDictionary / EnglishDictionary.
type SentenceSplitter struct {
	abbreviations map[string]bool
}

// NewSentenceSplitter builds a SentenceSplitter over the built-in
// English abbreviation set.
func NewSentenceSplitter() *SentenceSplitter {
	return &SentenceSplitter{abbreviations: defaultAbbreviations}
}

// Sentences splits text into sentences, not breaking after a known
// abbreviation unless it is the final sentence.
func (s *SentenceSplitter) Sentences(text string) []string {
	raw := uax29.Sentences(text)

	var merged []string
	var current string
	for i, sentence := range raw {
		current += sentence

		trimmed := strings.TrimSpace(sentence)
		endsWithAbbreviation := false
		if strings.HasSuffix(trimmed, ".") {
			words := strings.Fields(trimmed)
			if len(words) > 0 && s.isAbbreviation(words[len(words)-1]) {
				endsWithAbbreviation = true
			}
		}

		if !endsWithAbbreviation || i == len(raw)-1 {
			merged = append(merged, current)
			current = ""
		}
	}
	return merged
}

func (s *SentenceSplitter) isAbbreviation(word string) bool {
	normalized := strings.ToLower(strings.ReplaceAll(word, ".", ""))
	return s.abbreviations[normalized]
}

// TruncateToSentenceBoundary drops a trailing partial sentence from
// visibleText, the text the renderer is about to show after
// VisibleLines already dropped whole overflowing lines (§10 supplement
// 6). A line boundary can still land mid-sentence; cutting back to the
// last complete sentence reads better than stopping mid-thought. If
// visibleText contains no complete sentence at all, it is returned
// unchanged rather than discarded entirely.
func TruncateToSentenceBoundary(visibleText string, splitter *SentenceSplitter) string {
	sentences := splitter.Sentences(visibleText)
	if len(sentences) == 0 {
		return visibleText
	}

	last := strings.TrimRight(sentences[len(sentences)-1], " \t\n")
	if endsSentence(last) {
		return visibleText
	}

	complete := sentences[:len(sentences)-1]
	if len(complete) == 0 {
		return visibleText
	}
	return strings.Join(complete, "")
}

func endsSentence(s string) bool {
	return strings.HasSuffix(s, ".") || strings.HasSuffix(s, "!") || strings.HasSuffix(s, "?")
}

// ApplyEllipsis clips line to fit within maxWidth and appends an
// ellipsis marker if anything was cut, using the same linear width
// model (fontSize * avgCharWidthEm * grapheme count) the layout
// package uses elsewhere, so a renderer's ellipsis budget agrees with
// the LPE's own measurements. Adapted from css.go's
// ApplyTextOverflow/clipAtWidth for the TextOverflowEllipsis case.
func ApplyEllipsis(line string, maxWidth, fontSize, avgCharWidthEm float64) string {
	charWidth := fontSize * avgCharWidthEm
	if charWidth <= 0 {
		return line
	}

	graphemes := uax29.Graphemes(line)
	if float64(len(graphemes))*charWidth <= maxWidth {
		return line
	}

	const ellipsis = "…"
	budget := maxWidth - charWidth // reserve one grapheme's width for the ellipsis itself
	if budget <= 0 {
		return ellipsis
	}

	maxGraphemes := int(budget / charWidth)
	if maxGraphemes > len(graphemes) {
		maxGraphemes = len(graphemes)
	}
	return strings.Join(graphemes[:maxGraphemes], "") + ellipsis
}
