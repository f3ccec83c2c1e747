package layout

// LayoutContext bundles the original block's geometry and font with the
// optional confidence the OCR engine reported for that block, and an
// optional vertical-writing-mode hint (§10 supplement 2) the orchestrator
// may have inferred from the source language.
type LayoutContext struct {
	BBox          BoundingBox
	Font          FontInfo
	OCRConfidence *float64

	// WritingMode is advisory metadata for the renderer; it does not
	// change any Fit Analyzer, Strategy Selector, or Adjustment
	// Applicator arithmetic (§9 Open Question 2 keeps bbox expansion
	// vertical-only regardless of writing mode).
	WritingMode WritingMode

	// Direction is advisory metadata for the renderer, same as
	// WritingMode (§10 supplement 1). Leave zero-value (DirectionLTR)
	// unless the caller knows better, or set it from DetectDirection.
	Direction WritingDirection
}
