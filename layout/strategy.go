package layout

import "math"

// StrategyType is one of the four layout strategies, in the strict
// priority order the Strategy Selector evaluates them (§4.3).
type StrategyType int

const (
	None StrategyType = iota
	FontScale
	TextWrap
	Hybrid
)

func (s StrategyType) String() string {
	switch s {
	case None:
		return "NONE"
	case FontScale:
		return "FONT_SCALE"
	case TextWrap:
		return "TEXT_WRAP"
	case Hybrid:
		return "HYBRID"
	default:
		return "UNKNOWN"
	}
}

// LayoutStrategy is the Strategy Selector's decision (§3).
type LayoutStrategy struct {
	Type      StrategyType
	FontScale float64
	WrapLines int
}

// hybridScaleStep is the coarse grid step used by the HYBRID search
// (§4.3: "on a coarse grid (step >= 0.01)").
const hybridScaleStep = 0.01

// Decide maps a FitAnalysis onto a LayoutStrategy using the strict
// priority order NONE > FONT_SCALE > TEXT_WRAP > HYBRID (§4.3, §8
// property 4). bbox and font are the same values Analyze was called
// with; they're needed again here only for the HYBRID grid search, which
// re-derives chars-per-line at candidate scales.
func Decide(cfg Config, analysis FitAnalysis, bbox BoundingBox, font FontInfo) LayoutStrategy {
	switch {
	case analysis.CanFitWithoutChanges:
		return LayoutStrategy{Type: None, FontScale: 1.0, WrapLines: 1}

	case analysis.CanScaleToSingleLine:
		return LayoutStrategy{Type: FontScale, FontScale: analysis.RequiredScaleForSingleLine, WrapLines: 1}

	case analysis.CanWrapWithinHeight:
		return LayoutStrategy{Type: TextWrap, FontScale: 1.0, WrapLines: analysis.LinesNeeded}

	default:
		return decideHybrid(cfg, analysis, bbox, font)
	}
}

// decideHybrid searches for the largest scale s in [FontScaleMin, 1.0] on
// a coarse grid such that the resulting character-per-line budget keeps
// the wrapped line count within MaxLines. Falls back to TEXT_WRAP at
// MaxLines (overflow, reported as a warning by the Quality Validator) when
// no such scale exists (§4.3).
func decideHybrid(cfg Config, analysis FitAnalysis, bbox BoundingBox, font FontInfo) LayoutStrategy {
	translatedChars := translatedCharsFromAnalysis(analysis, font, cfg)

	for s := 1.0; s >= cfg.FontScaleMin-1e-9; s -= hybridScaleStep {
		cpl := charsPerLine(font.Size, s, cfg.AverageCharWidthEm, bbox.Width)
		if cpl < 1 {
			continue
		}
		linesAtScale := int(math.Ceil(float64(translatedChars) / float64(cpl)))
		if linesAtScale <= analysis.MaxLines {
			return LayoutStrategy{Type: Hybrid, FontScale: s, WrapLines: linesAtScale}
		}
	}

	// No scale on the grid keeps wrapping within max_lines: fall back to
	// an unscaled wrap and let the overflow surface as a warning (§4.6,
	// §8 scenario 6) rather than as an error.
	return LayoutStrategy{Type: TextWrap, FontScale: 1.0, WrapLines: analysis.LinesNeeded}
}

func charsPerLine(fontSize, scale, avgCharWidthEm, bboxWidth float64) int {
	denom := fontSize * scale * avgCharWidthEm
	if denom <= 0 {
		return 0
	}
	cpl := int(math.Floor(bboxWidth / denom))
	if cpl < 1 {
		return 1
	}
	return cpl
}

// translatedCharsFromAnalysis recovers the translated grapheme count from
// OneLineWidth = fontSize * avgCharWidthEm * Lt (§4.2 step 2), the exact
// formula Analyze used to produce it — no approximation involved.
func translatedCharsFromAnalysis(a FitAnalysis, font FontInfo, cfg Config) int {
	denom := font.Size * cfg.AverageCharWidthEm
	if denom <= 0 {
		return 0
	}
	return int(math.Round(a.OneLineWidth / denom))
}
