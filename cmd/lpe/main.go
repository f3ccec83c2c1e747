// Command lpe is a thin CLI front end over the layout, orchestrator,
// and renderer packages: it runs one block through the full
// Analyze→Decide→Apply→Assess pipeline and prints the renderer-facing
// result as JSON, for scripting and manual debugging against a single
// OCR block without standing up the full PDF pipeline.
package main

import "github.com/JAaron93/PhenomenalLayout-sub001/cmd/lpe/cmd"

func main() {
	cmd.Execute()
}
