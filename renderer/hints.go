// Package renderer implements the Renderer Hints boundary contract
// (C9): it does not render anything itself, but turns a
// TranslationResult into the concrete decisions §4.9 assigns to a
// downstream PDF renderer (font fallback, line positioning, overflow
// detection) and records the warnings a renderer is expected to emit
// alongside the LPE's own QualityReport warnings.
package renderer

import (
	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
	"github.com/JAaron93/PhenomenalLayout-sub001/orchestrator"
)

// Hint is one block's renderer-facing decisions (§4.9).
type Hint struct {
	AdjustedText string

	ResolvedFamily   string
	FontFallbackUsed bool
	AdjustedFont     layout.FontInfo
	Color            layout.RGBColor

	AdjustedBBox layout.BoundingBox
	LineHeight   float64

	VisibleLines []string
	DroppedLines []string
	Overflowed   bool

	// DisplayLines is VisibleLines after UAX #9 reordering and bracket
	// mirroring for the block's writing direction (§10 supplement 1).
	// For DirectionLTR this is identical to VisibleLines.
	DisplayLines []string

	Warnings []string
}

// BuildHint assembles a Hint from one block's TranslationResult.
// lineHeightFactor must be the same factor the engine used to produce
// result.AdjustedBBox, so VisibleLines's line positioning agrees with
// the box height the LPE already expanded (§4.9: "advance downward by
// line_height = adjusted_font.size · line_height_factor").
func BuildHint(result orchestrator.TranslationResult, fallback *Fallback, lineHeightFactor float64) Hint {
	family, usedFallback := fallback.Resolve(result.AdjustedFont)
	visible, dropped, overflowed := VisibleLines(result.AdjustedText, result.AdjustedBBox.Height, result.AdjustedFont.Size, lineHeightFactor)

	var warnings []string
	if usedFallback {
		warnings = append(warnings, "font_fallback")
	}
	if overflowed {
		warnings = append(warnings, "overflow")
	}

	display := visible
	if result.Direction == layout.DirectionRTL || result.Direction == layout.DirectionAuto {
		display = ReorderForDisplay(visible, result.Direction)
		for i, line := range display {
			display[i] = MirrorBrackets(line)
		}
	}

	return Hint{
		AdjustedText:     result.AdjustedText,
		ResolvedFamily:   family,
		FontFallbackUsed: usedFallback,
		AdjustedFont:     result.AdjustedFont,
		Color:            result.AdjustedFont.Color,
		AdjustedBBox:     result.AdjustedBBox,
		LineHeight:       result.AdjustedFont.Size * lineHeightFactor,
		VisibleLines:     visible,
		DroppedLines:     dropped,
		Overflowed:       overflowed,
		DisplayLines:     display,
		Warnings:         warnings,
	}
}

// Report aggregates one page's per-block Hints plus every warning any
// block raised, so a caller can decide whether a page needs a second
// look without walking every Hint itself.
type Report struct {
	Hints    []Hint
	Warnings []string
}

// BuildReport runs BuildHint over every block on a page.
func BuildReport(results []orchestrator.TranslationResult, fallback *Fallback, lineHeightFactor float64) Report {
	hints := make([]Hint, len(results))
	var warnings []string
	for i, result := range results {
		hints[i] = BuildHint(result, fallback, lineHeightFactor)
		warnings = append(warnings, hints[i].Warnings...)
	}
	return Report{Hints: hints, Warnings: warnings}
}
