package renderer

import (
	"strings"

	"github.com/adrg/sysfont"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
)

// Fallback resolves a requested font family to one actually installed on
// the host, the job §4.9 assigns to the renderer ("families may not exist
// on the renderer — the renderer must perform font fallback").
type Fallback struct {
	finder *sysfont.Finder
}

// NewFallback builds a Fallback backed by the host's installed system
// fonts.
func NewFallback() *Fallback {
	return &Fallback{finder: sysfont.NewFinder(nil)}
}

// Resolve returns the family name to actually draw with, and whether a
// substitution was needed. A weight/style-aware generic name is used
// when no installed font matches at all, so the caller always has
// something to draw with.
func (f *Fallback) Resolve(font layout.FontInfo) (family string, usedFallback bool) {
	if f.finder != nil {
		if match := f.finder.Match(font.Family); match != nil {
			return match.Family, !strings.EqualFold(match.Family, font.Family)
		}
	}
	return genericFamily(font), true
}

// genericFamily names a ubiquitous sans-serif substitute, the last
// resort §4.9 calls for when no installed font can be matched at all.
func genericFamily(font layout.FontInfo) string {
	name := "sans-serif"
	switch {
	case font.Weight == layout.WeightBold && font.Style == layout.StyleItalic:
		return name + "-bold-italic"
	case font.Weight == layout.WeightBold:
		return name + "-bold"
	case font.Style == layout.StyleItalic || font.Style == layout.StyleOblique:
		return name + "-italic"
	default:
		return name
	}
}
