package cmd

import (
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/JAaron93/PhenomenalLayout-sub001/layout"
)

// fileConfig is the TOML overlay shape: the one piece of layout.Config
// that doesn't fit comfortably into flat environment variables (§6.4).
type fileConfig struct {
	LineHeightByLanguage map[string]float64 `toml:"line_height_by_language"`
}

// applyFileConfig overlays a TOML file at path onto cfg. An empty path
// is a no-op, so callers can pass the --config flag's zero value
// unconditionally.
func applyFileConfig(cfg layout.Config, path string) (layout.Config, error) {
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, err
	}

	var fc fileConfig
	if err := toml.Unmarshal(data, &fc); err != nil {
		return cfg, err
	}

	if len(fc.LineHeightByLanguage) > 0 {
		if cfg.LineHeightByLanguage == nil {
			cfg.LineHeightByLanguage = make(map[string]float64, len(fc.LineHeightByLanguage))
		}
		for lang, factor := range fc.LineHeightByLanguage {
			cfg.LineHeightByLanguage[lang] = factor
		}
	}

	return cfg, nil
}

// loadEngineConfig builds the effective layout.Config from defaults,
// environment overrides, and an optional TOML overlay, then validates
// the result (§3's "fail at construction" lifecycle rule).
func loadEngineConfig(path string) (layout.Config, error) {
	cfg, err := layout.LoadConfig()
	if err != nil {
		return layout.Config{}, err
	}

	cfg, err = applyFileConfig(cfg, path)
	if err != nil {
		return layout.Config{}, err
	}

	if err := cfg.Validate(); err != nil {
		return layout.Config{}, err
	}
	return cfg, nil
}
