package layout

// QualityReport is C6's output: a combined layout/translation/OCR
// confidence score plus any risk warnings for this block (§3, §4.6).
type QualityReport struct {
	OverallScore          float64
	TextLengthRatio       float64
	LayoutQuality         float64
	TranslationConfidence *float64
	OCRConfidence         *float64
	Strategy              StrategyType
	Warnings              []string
}

// Assess combines the layout quality score with optional translator and
// OCR confidences into a QualityReport, emitting warnings for risky
// outcomes in the fixed order spec.md §4.6 requires. CapacityOverflow
// conditions are never returned as an error (§7) — they only ever
// surface as a warning here.
func Assess(cfg Config, analysis FitAnalysis, strategy LayoutStrategy, translationConfidence, ocrConfidence *float64) QualityReport {
	layoutQuality := Score(cfg, analysis, strategy)

	conf := cfg.BaseConfidence
	if translationConfidence != nil {
		conf = *translationConfidence
	}
	overall := clamp(conf*layoutQuality, 0, 1)

	var warnings []string
	if analysis.LengthRatio >= cfg.LargeExpansionThreshold && strategy.Type == None {
		warnings = append(warnings, "Large expansion without adjustments")
	}
	if cfg.WarnOnWrapOverflow &&
		(strategy.Type == TextWrap || strategy.Type == Hybrid) &&
		strategy.WrapLines > analysis.MaxLines {
		warnings = append(warnings, "Wrapping exceeds capacity; potential truncation")
	}

	return QualityReport{
		OverallScore:          overall,
		TextLengthRatio:       analysis.LengthRatio,
		LayoutQuality:         layoutQuality,
		TranslationConfidence: translationConfidence,
		OCRConfidence:         ocrConfidence,
		Strategy:              strategy.Type,
		Warnings:              warnings,
	}
}
