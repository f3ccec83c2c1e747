// Package orchestrator implements the Orchestrator Adapter (C8): the
// per-block driver that stitches the layout package's Fit Analyzer,
// Strategy Selector, Adjustment Applicator, and Quality Scorer/Validator
// behind a translator capability, and a batch API that preserves input
// order regardless of translator concurrency (§4.8, §5).
package orchestrator

import "github.com/JAaron93/PhenomenalLayout-sub001/layout"

// TranslationResult is C8's output record (§3).
type TranslationResult struct {
	SourceText     string
	RawTranslation string
	AdjustedText   string

	Strategy layout.LayoutStrategy
	Analysis layout.FitAnalysis

	AdjustedFont layout.FontInfo
	AdjustedBBox layout.BoundingBox

	// Direction carries the block's LayoutContext.Direction through to
	// the renderer, which is the only stage that acts on it (§10
	// supplement 1).
	Direction layout.WritingDirection

	QualityScore float64

	OCRConfidence         *float64
	TranslationConfidence *float64
}
