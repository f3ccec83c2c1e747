package layout

import (
	"math"

	"github.com/SCKelemen/unicode/uax29"
)

// FitAnalysis is the deterministic, dependency-free summary of whether and
// how a translated string can be rendered inside a bbox at a given font
// size (§3 FitAnalysis, §4.2).
type FitAnalysis struct {
	LengthRatio                float64
	OneLineWidth               float64
	MaxLines                   int
	LinesNeeded                int
	CanFitWithoutChanges       bool
	RequiredScaleForSingleLine float64
	CanScaleToSingleLine       bool
	CanWrapWithinHeight        bool
}

// textLength counts grapheme clusters (UAX #29) rather than bytes or
// runes, so combining marks and multi-rune emoji in OCR'd or translated
// text don't inflate length_ratio. For any all-ASCII string — every
// seed-test fixture in spec.md §8 — this is numerically identical to
// len(s), so none of the spec's worked examples change.
func textLength(s string) int {
	return len(uax29.Graphemes(s))
}

// Analyze computes a FitAnalysis for translated text rendered at font.Size
// inside bbox (§4.2), always using cfg.LineHeightFactor. Use
// AnalyzeForLanguage to apply a per-language override (§10 supplement 3).
func Analyze(cfg Config, originalText, translatedText string, bbox BoundingBox, font FontInfo) FitAnalysis {
	return analyzeWithLineHeight(cfg, originalText, translatedText, bbox, font, cfg.LineHeightFactor)
}

// AnalyzeForLanguage is Analyze but resolves the line-height factor for
// targetLang via cfg.LineHeightByLanguage first (§10 supplement 3).
func AnalyzeForLanguage(cfg Config, originalText, translatedText string, bbox BoundingBox, font FontInfo, targetLang string) FitAnalysis {
	return analyzeWithLineHeight(cfg, originalText, translatedText, bbox, font, cfg.lineHeightFor(targetLang))
}

func analyzeWithLineHeight(cfg Config, originalText, translatedText string, bbox BoundingBox, font FontInfo, lineHeightFactor float64) FitAnalysis {
	lo := textLength(originalText)
	lt := textLength(translatedText)

	lengthRatio := float64(lt) / float64(max(1, lo))
	oneLineWidth := font.Size * cfg.AverageCharWidthEm * float64(lt)
	lineHeight := font.Size * lineHeightFactor

	maxLines := 1
	if lineHeight > 0 {
		maxLines = int(math.Floor(bbox.Height / lineHeight))
		if maxLines < 1 {
			maxLines = 1
		}
	}

	var linesNeeded int
	var canFit bool
	if bbox.Width <= 0 {
		// §4.2 edge case: a non-positive width can never fit; lines_needed
		// is the worst case of one grapheme cluster per line.
		linesNeeded = lt
		if linesNeeded < 1 {
			linesNeeded = 1
		}
		canFit = false
	} else {
		linesNeeded = int(math.Ceil(oneLineWidth / bbox.Width))
		if linesNeeded < 1 {
			linesNeeded = 1
		}
		canFit = oneLineWidth <= bbox.Width
	}

	requiredScale := 1.0
	if oneLineWidth != 0 {
		requiredScale = clamp(bbox.Width/oneLineWidth, 0, 1)
	}

	canScale := cfg.FontScaleMin <= requiredScale && requiredScale <= cfg.FontScaleMax
	canWrap := linesNeeded <= maxLines

	return FitAnalysis{
		LengthRatio:                lengthRatio,
		OneLineWidth:               oneLineWidth,
		MaxLines:                   maxLines,
		LinesNeeded:                linesNeeded,
		CanFitWithoutChanges:       canFit,
		RequiredScaleForSingleLine: requiredScale,
		CanScaleToSingleLine:       canScale,
		CanWrapWithinHeight:        canWrap,
	}
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

