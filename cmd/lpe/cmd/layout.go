package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
	"github.com/JAaron93/PhenomenalLayout-sub001/orchestrator"
	"github.com/JAaron93/PhenomenalLayout-sub001/renderer"
)

var layoutFlags struct {
	original   string
	translated string
	width      float64
	height     float64
	fontSize   float64
	fontFamily string
	targetLang string
}

var layoutCmd = &cobra.Command{
	Use:   "layout",
	Short: "Run one block through the layout engine and print the renderer hint as JSON",
	RunE:  runLayout,
}

func init() {
	flags := layoutCmd.Flags()
	flags.StringVar(&layoutFlags.original, "original", "", "original source text (required)")
	flags.StringVar(&layoutFlags.translated, "translated", "", "translated text to lay out (required)")
	flags.Float64Var(&layoutFlags.width, "width", 200, "bounding box width in points")
	flags.Float64Var(&layoutFlags.height, "height", 40, "bounding box height in points")
	flags.Float64Var(&layoutFlags.fontSize, "font-size", 12, "source font size in points")
	flags.StringVar(&layoutFlags.fontFamily, "font-family", "Helvetica", "source font family")
	flags.StringVar(&layoutFlags.targetLang, "target-lang", "", "target language code, used for per-language line-height overrides")
	_ = layoutCmd.MarkFlagRequired("original")
	_ = layoutCmd.MarkFlagRequired("translated")
}

type layoutOutput struct {
	AdjustedText string   `json:"adjusted_text"`
	DisplayLines []string `json:"display_lines"`
	FontFamily   string   `json:"font_family"`
	FontFallback bool     `json:"font_fallback"`
	FontSize     float64  `json:"font_size"`
	BBoxWidth    float64  `json:"bbox_width"`
	BBoxHeight   float64  `json:"bbox_height"`
	Strategy     string   `json:"strategy"`
	QualityScore float64  `json:"quality_score"`
	Warnings     []string `json:"warnings"`
}

func runLayout(_ *cobra.Command, _ []string) error {
	cfg, err := loadEngineConfig(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	engine, err := layout.NewEngine(cfg)
	if err != nil {
		return fmt.Errorf("construct engine: %w", err)
	}

	bbox, err := layout.NewBoundingBox(0, 0, layoutFlags.width, layoutFlags.height)
	if err != nil {
		return fmt.Errorf("bounding box: %w", err)
	}
	font, err := layout.NewFontInfo(layoutFlags.fontFamily, layoutFlags.fontSize, layout.WeightNormal, layout.StyleNormal, layout.RGBColor{})
	if err != nil {
		return fmt.Errorf("font: %w", err)
	}

	result := engine.Layout(layoutFlags.original, layoutFlags.translated, bbox, font, layoutFlags.targetLang, nil, nil)

	translationResult := orchestrator.TranslationResult{
		SourceText:     layoutFlags.original,
		RawTranslation: layoutFlags.translated,
		AdjustedText:   result.Adjusted.Text,
		Analysis:       result.Analysis,
		Strategy:       result.Strategy,
		AdjustedFont:   result.Adjusted.Font,
		AdjustedBBox:   result.Adjusted.BBox,
		Direction:      layout.DetectDirection(layoutFlags.translated),
		QualityScore:   result.Quality.OverallScore,
	}

	lineHeightFactor := cfg.LineHeightFactor
	if override, ok := cfg.LineHeightByLanguage[layoutFlags.targetLang]; ok {
		lineHeightFactor = override
	}
	hint := renderer.BuildHint(translationResult, renderer.NewFallback(), lineHeightFactor)

	log.WithFields(map[string]any{
		"strategy": result.Strategy.Type,
		"quality":  result.Quality.OverallScore,
	}).Debug("layout computed")

	output := layoutOutput{
		AdjustedText: hint.AdjustedText,
		DisplayLines: hint.DisplayLines,
		FontFamily:   hint.ResolvedFamily,
		FontFallback: hint.FontFallbackUsed,
		FontSize:     hint.AdjustedFont.Size,
		BBoxWidth:    hint.AdjustedBBox.Width,
		BBoxHeight:   hint.AdjustedBBox.Height,
		Strategy:     result.Strategy.Type.String(),
		QualityScore: result.Quality.OverallScore,
		Warnings:     append(append([]string{}, result.Quality.Warnings...), hint.Warnings...),
	}

	encoded, err := json.MarshalIndent(output, "", "  ")
	if err != nil {
		return fmt.Errorf("encode output: %w", err)
	}
	fmt.Println(string(encoded))
	return nil
}
