package layout

import (
	"math"
	"strings"
)

// Knuth-Plass Line Breaking Algorithm
//
// This implements the optimal line breaking algorithm from TeX, as described in
// "Breaking Paragraphs into Lines" by Donald E. Knuth and Michael F. Plass.
//
// Unlike greedy line breaking (which fills each line as much as possible),
// Knuth-Plass finds the globally optimal set of breakpoints that minimizes
// the "badness" of the entire paragraph. WrapOptimal is an opt-in
// replacement for Wrap (§10 supplement 5, Config.PreferOptimalWrap):
// it never changes the mandatory greedy behavior spec.md §4.4 and its
// seed tests describe, since callers must explicitly ask for it.
//
// References:
//   - Knuth & Plass (1981): https://www.eprg.org/G53DOC/pdfs/knuth-plass-breaking.pdf
//   - Practical implementation: https://defoe.dev/blog/optimal-text-layout

// KnuthPlassOptions configures the Knuth-Plass line breaking algorithm.
type KnuthPlassOptions struct {
	// MaxWidth is the target line width, in the same units as the width
	// function passed to WrapOptimal (points, matching BoundingBox.Width).
	MaxWidth float64

	// Tolerance controls how much stretch/shrink is acceptable.
	// Higher values allow more variation in line lengths.
	// Default: 1.0 (TeX uses 1.0)
	Tolerance float64

	// FitnessClass, when true, penalizes adjacent lines with incompatible
	// fitness (very tight next to very loose). Default: true.
	FitnessClass bool

	// HyphenPenalty is the penalty for breaking at a hyphen.
	// Default: 50
	HyphenPenalty float64

	// LinePenalty is the penalty for each line (encourages fewer lines).
	// Default: 10
	LinePenalty float64
}

// DefaultKnuthPlassOptions returns sensible defaults.
func DefaultKnuthPlassOptions(maxWidth float64) KnuthPlassOptions {
	return KnuthPlassOptions{
		MaxWidth:      maxWidth,
		Tolerance:     1.0,
		FitnessClass:  true,
		HyphenPenalty: 50,
		LinePenalty:   10,
	}
}

// breakpoint represents a potential line break position.
type kpBreakpoint struct {
	position int
	demerits float64
	ratio    float64
	line     int
	fitness  int
	prev     *kpBreakpoint
}

// kpBox represents an item in the text (word or glue).
type kpBox struct {
	content  string
	width    float64
	position int
	isGlue   bool
	penalty  float64
}

// widthFunc measures the rendered width of a word at the layout's
// current font size and scale; WrapOptimal's caller supplies one
// derived from FontInfo.Size * Config.AverageCharWidthEm, matching the
// same linear width model fit.go and strategy.go use everywhere else.
type widthFunc func(s string) float64

// WrapOptimal wraps text into lines no wider than opts.MaxWidth using
// Knuth-Plass optimal breakpoints, falling back to Wrap's greedy
// algorithm if no feasible breakpoint set is found.
func WrapOptimal(text string, opts KnuthPlassOptions, width widthFunc) []string {
	boxes := kpTextToBoxes(text, width)
	if len(boxes) == 0 {
		return nil
	}

	charsPerLine := 1
	if opts.MaxWidth > 0 {
		if w := width("M"); w > 0 {
			charsPerLine = int(opts.MaxWidth / w)
			if charsPerLine < 1 {
				charsPerLine = 1
			}
		}
	}

	breakpoints := kpFindOptimalBreakpoints(boxes, opts)
	if len(breakpoints) == 0 {
		return Wrap(text, charsPerLine, nil)
	}

	return kpBreakpointsToLines(text, boxes, breakpoints)
}

func kpTextToBoxes(text string, width widthFunc) []kpBox {
	var boxes []kpBox
	position := 0

	parts := strings.Split(text, " ")
	for i, part := range parts {
		if part == "" {
			continue
		}

		boxes = append(boxes, kpBox{
			content:  part,
			width:    width(part),
			position: position,
			isGlue:   false,
		})
		position += len([]rune(part))

		if i < len(parts)-1 {
			boxes = append(boxes, kpBox{
				content:  " ",
				width:    width(" "),
				position: position,
				isGlue:   true,
			})
			position++
		}
	}

	return boxes
}

func kpFindOptimalBreakpoints(boxes []kpBox, opts KnuthPlassOptions) []int {
	if len(boxes) == 0 {
		return nil
	}

	active := []*kpBreakpoint{
		{position: 0, demerits: 0, ratio: 0, line: 0, fitness: 1, prev: nil},
	}

	for i := 0; i < len(boxes); i++ {
		if boxes[i].isGlue {
			continue
		}

		var newActive []*kpBreakpoint

		for _, activeNode := range active {
			lineWidth := kpLineWidth(boxes, activeNode.position, i)

			ratio := (opts.MaxWidth - lineWidth) / opts.MaxWidth
			if ratio < -1 {
				continue
			}

			badness := kpBadness(ratio, opts.Tolerance)
			if badness >= 10000 {
				continue
			}

			penalty := boxes[i].penalty
			if boxes[i].content[len(boxes[i].content)-1] == '-' {
				penalty = opts.HyphenPenalty
			}

			demerits := math.Pow(opts.LinePenalty+badness+penalty, 2)
			totalDemerits := activeNode.demerits + demerits

			fitness := kpFitness(ratio)
			if opts.FitnessClass && math.Abs(float64(fitness-activeNode.fitness)) > 1 {
				totalDemerits += 100
			}

			newActive = append(newActive, &kpBreakpoint{
				position: i + 1,
				demerits: totalDemerits,
				ratio:    ratio,
				line:     activeNode.line + 1,
				fitness:  fitness,
				prev:     activeNode,
			})
		}

		if len(newActive) > 0 {
			active = append(active, newActive...)
			active = kpPruneBreakpoints(active)
		}
	}

	var best *kpBreakpoint
	minDemerits := math.MaxFloat64
	for _, node := range active {
		if node.demerits < minDemerits {
			minDemerits = node.demerits
			best = node
		}
	}
	if best == nil {
		return nil
	}

	var positions []int
	for node := best; node != nil; node = node.prev {
		if node.position > 0 {
			positions = append([]int{node.position}, positions...)
		}
	}
	return positions
}

func kpLineWidth(boxes []kpBox, start, end int) float64 {
	w := 0.0
	for i := start; i <= end && i < len(boxes); i++ {
		w += boxes[i].width
	}
	return w
}

func kpBadness(ratio, tolerance float64) float64 {
	if ratio < -1 {
		return 10000
	}
	if ratio > tolerance {
		return 10000
	}
	return 100 * math.Pow(math.Abs(ratio), 3)
}

// kpFitness classifies a line's looseness: 0 tight, 1 normal, 2 loose,
// 3 very loose.
func kpFitness(ratio float64) int {
	if ratio < -0.5 {
		return 0
	}
	if ratio <= 0.5 {
		return 1
	}
	if ratio <= 1.0 {
		return 2
	}
	return 3
}

func kpPruneBreakpoints(breakpoints []*kpBreakpoint) []*kpBreakpoint {
	byLine := make(map[int][]*kpBreakpoint)
	for _, bp := range breakpoints {
		byLine[bp.line] = append(byLine[bp.line], bp)
	}

	var pruned []*kpBreakpoint
	for _, bps := range byLine {
		best := bps[0]
		for _, bp := range bps[1:] {
			if bp.demerits < best.demerits {
				best = bp
			}
		}
		pruned = append(pruned, best)
	}
	return pruned
}

func kpBreakpointsToLines(text string, boxes []kpBox, breakpoints []int) []string {
	var lines []string
	runes := []rune(text)

	start := 0
	for _, breakPos := range breakpoints {
		if breakPos > len(boxes) {
			breakPos = len(boxes)
		}

		textPos := 0
		if breakPos > 0 && breakPos <= len(boxes) {
			textPos = boxes[breakPos-1].position + len([]rune(boxes[breakPos-1].content))
		}
		if textPos > len(runes) {
			textPos = len(runes)
		}

		content := strings.TrimSpace(string(runes[start:textPos]))
		if content != "" {
			lines = append(lines, content)
		}

		start = textPos
		if start < len(runes) && runes[start] == ' ' {
			start++
		}
	}

	if start < len(runes) {
		content := strings.TrimSpace(string(runes[start:]))
		if content != "" {
			lines = append(lines, content)
		}
	}

	return lines
}
