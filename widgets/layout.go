package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// VStack stacks widgets top to bottom. Hidden controls are skipped, so the
// remaining widgets close ranks instead of leaving a gap.
type VStack struct {
	Widgets []Widget
	Spacing int
	Ratios  []float64
}

func (v VStack) Render(width, height int) string {
	shown := visibleOf(v.Widgets)
	if len(shown) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	spacingTotal := maxInt(0, v.Spacing*(len(shown)-1))
	usable := maxInt(1, height-spacingTotal)
	heights := splitExtent(usable, len(shown), v.Ratios)
	lines := make([]string, 0, len(shown)*2)
	for i, w := range shown {
		lines = append(lines, w.Render(width, maxInt(1, heights[i])))
		if i < len(shown)-1 {
			for s := 0; s < v.Spacing; s++ {
				lines = append(lines, "")
			}
		}
	}
	return strings.Join(lines, "\n")
}

// HStack lays widgets out left to right, padding each column to its
// allotted width. Hidden controls are skipped.
type HStack struct {
	Widgets []Widget
	Ratios  []float64
	Gap     int
}

func (h HStack) Render(width, height int) string {
	shown := visibleOf(h.Widgets)
	if len(shown) == 0 || width <= 0 || height <= 0 {
		return ""
	}
	gapTotal := maxInt(0, h.Gap*(len(shown)-1))
	usable := maxInt(1, width-gapTotal)
	widths := splitExtent(usable, len(shown), h.Ratios)
	columns := make([][]string, len(shown))
	rows := 0
	for i, w := range shown {
		columns[i] = strings.Split(w.Render(maxInt(1, widths[i]), height), "\n")
		if len(columns[i]) > rows {
			rows = len(columns[i])
		}
	}
	out := make([]string, 0, rows)
	for row := 0; row < rows; row++ {
		cells := make([]string, len(columns))
		for i := range columns {
			cell := ""
			if row < len(columns[i]) {
				cell = columns[i][row]
			}
			cells[i] = padCell(cell, widths[i])
		}
		out = append(out, strings.Join(cells, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

// visibleOf drops widgets that report themselves hidden.
func visibleOf(ws []Widget) []Widget {
	out := make([]Widget, 0, len(ws))
	for _, w := range ws {
		if w == nil {
			continue
		}
		if s, ok := w.(Stateful); ok && !s.Visible() {
			continue
		}
		out = append(out, w)
	}
	return out
}

// splitExtent divides total cells among n widgets, evenly or by ratio,
// handing leftover cells out one at a time from the left.
func splitExtent(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	out := make([]int, n)
	if len(ratios) != n {
		for i := range out {
			out[i] = total / n
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	norm := make([]float64, n)
	sum := 0.0
	for i, r := range ratios {
		if r <= 0 {
			r = 1
		}
		norm[i] = r
		sum += r
	}
	used := 0
	for i := range out {
		out[i] = int(math.Floor((norm[i] / sum) * float64(total)))
		used += out[i]
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padCell(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	if w := ansi.StringWidth(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
