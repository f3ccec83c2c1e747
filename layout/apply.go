package layout

import (
	"math"
	"strings"
)

// Adjusted is the Adjustment Applicator's output: the concrete text,
// font, and bbox a renderer should draw, plus the number of lines the
// text was actually wrapped into (§4.4).
type Adjusted struct {
	Text      string
	Font      FontInfo
	BBox      BoundingBox
	WrapLines int
}

// Apply computes the adjusted text, font, and bbox for a chosen
// strategy (§4.4). lineHeightFactor should be the same value Analyze
// used to produce the FitAnalysis that drove strategy selection
// (cfg.LineHeightFactor, or a per-language override from
// cfg.lineHeightFor).
func Apply(cfg Config, text string, bbox BoundingBox, font FontInfo, strategy LayoutStrategy, lineHeightFactor float64) Adjusted {
	if strategy.Type == None {
		return Adjusted{Text: text, Font: font, BBox: bbox, WrapLines: 1}
	}

	scale := clamp(strategy.FontScale, cfg.FontScaleMin, cfg.FontScaleMax)
	adjustedFont := font.WithSize(math.Max(1.0, font.Size*scale))

	if strategy.Type == FontScale {
		return Adjusted{Text: text, Font: adjustedFont, BBox: bbox, WrapLines: 1}
	}

	// TEXT_WRAP or HYBRID: wrap, then expand the bbox vertically to fit.
	charsPerLine := 1
	if denom := adjustedFont.Size * cfg.AverageCharWidthEm; denom > 0 {
		charsPerLine = int(math.Floor(bbox.Width / denom))
		if charsPerLine < 1 {
			charsPerLine = 1
		}
	}

	var lines []string
	if cfg.PreferOptimalWrap {
		w := func(s string) float64 { return adjustedFont.Size * cfg.AverageCharWidthEm * float64(textLength(s)) }
		lines = WrapOptimal(text, DefaultKnuthPlassOptions(bbox.Width), w)
	} else {
		lines = Wrap(text, charsPerLine, cfg.Hyphenator)
	}
	if len(lines) == 0 {
		lines = []string{""}
	}

	adjustedText := strings.Join(lines, "\n")
	adjustedBBox := expandBBox(bbox, cfg, len(lines), adjustedFont.Size, lineHeightFactor)

	return Adjusted{Text: adjustedText, Font: adjustedFont, BBox: adjustedBBox, WrapLines: len(lines)}
}

// expandBBox grows bbox.Height (vertical only, per §4.4) to fit
// lineCount lines at lineHeightFactor, capped at max_bbox_expansion.
func expandBBox(bbox BoundingBox, cfg Config, lineCount int, fontSize, lineHeightFactor float64) BoundingBox {
	requiredHeight := float64(lineCount) * fontSize * lineHeightFactor
	maxHeight := bbox.Height * (1 + cfg.MaxBBoxExpansion)
	height := math.Min(requiredHeight, maxHeight)
	return bbox.WithExpandedHeight(height)
}
