package cmd

import (
	"fmt"
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var (
	configPath string
	log        = logrus.WithField("component", "lpe")
)

var rootCmd = &cobra.Command{
	Use:   "lpe",
	Short: "Layout Preservation Engine CLI",
	Long: `lpe runs a single OCR-analyzed text block through the Layout
Preservation Engine and prints the renderer-facing result as JSON.`,
}

// Execute runs the root command, exiting non-zero on error.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a TOML file overlaying layout.Config (currently: per-language line-height overrides)")
	rootCmd.AddCommand(layoutCmd)
}
