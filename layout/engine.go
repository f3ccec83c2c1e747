package layout

// Engine wires C1-C7 and C10 into a single deterministic, side-effect-
// free pipeline: Normalize → Analyze → Decide → Apply → Assess. It
// holds nothing but its Config (§5: "trivially thread-safe because it
// holds no mutable state beyond its immutable EngineConfig") and is
// safe to share across goroutines.
type Engine struct {
	cfg Config
}

// NewEngine validates cfg and returns an Engine, or the first
// *ConfigError Validate finds.
func NewEngine(cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg}, nil
}

// Config returns the engine's validated configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Result bundles one block's full pipeline output, the shape the
// orchestrator's TranslationResult is built from.
type Result struct {
	Analysis FitAnalysis
	Strategy LayoutStrategy
	Adjusted Adjusted
	Quality  QualityReport
}

// Layout runs the full C7→C2→C3→C4→C5/C6 pipeline for one block. font
// and bbox describe the original block; targetLang selects a per-
// language line-height override when cfg.LineHeightByLanguage has one
// (§10 supplement 3).
func (e *Engine) Layout(originalText, translatedText string, bbox BoundingBox, font FontInfo, targetLang string, translationConfidence, ocrConfidence *float64) Result {
	normalized := Normalize(translatedText)

	lineHeightFactor := e.cfg.lineHeightFor(targetLang)
	analysis := analyzeWithLineHeight(e.cfg, originalText, normalized, bbox, font, lineHeightFactor)

	strategy := Decide(e.cfg, analysis, bbox, font)
	adjusted := Apply(e.cfg, normalized, bbox, font, strategy, lineHeightFactor)
	report := Assess(e.cfg, analysis, strategy, translationConfidence, ocrConfidence)

	return Result{Analysis: analysis, Strategy: strategy, Adjusted: adjusted, Quality: report}
}
