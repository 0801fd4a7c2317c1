// Package chart renders monthly series as block-character column charts.
package chart

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/runway/internal/model"
	"github.com/theirongolddev/runway/internal/theme"
)

// Layer is one stacked component of a column chart.
type Layer struct {
	Name   string
	Values []float64
	Color  lipgloss.Color
}

// Reference draws a dashed horizontal line at Value, e.g. the zero line or
// the initial capital.
type Reference struct {
	Value float64
	Label string
}

// Options controls chart layout and annotations.
type Options struct {
	Title  string
	Width  int
	Height int

	// Highlight lists 1-based months whose values are annotated.
	Highlight []int
	BreakEven model.BreakEven
	Reference *Reference

	// Format renders values in annotations and axis labels.
	Format func(float64) string

	// Renderer selects the output profile; nil uses the default renderer.
	Renderer *lipgloss.Renderer
}

const (
	minWidth  = 20
	minHeight = 4
)

// Columns renders a single-series column chart. Values may be negative.
func Columns(values []float64, color lipgloss.Color, opts Options) string {
	return Stacked([]Layer{{Values: values, Color: color}}, opts)
}

// Stacked renders layers stacked on top of each other; the first layer sits
// at the bottom. All layers must have the same length.
func Stacked(layers []Layer, opts Options) string {
	if len(layers) == 0 || len(layers[0].Values) == 0 {
		return ""
	}
	t := theme.Active
	r := opts.Renderer
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	format := opts.Format
	if format == nil {
		format = formatChartLabel
	}
	width := max(opts.Width, minWidth)
	height := max(opts.Height, minHeight)

	totals := stackTotals(layers)
	n := len(totals)

	lo, hi := 0.0, 0.0
	for _, v := range totals {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	if opts.Reference != nil {
		lo = math.Min(lo, opts.Reference.Value)
		hi = math.Max(hi, opts.Reference.Value)
	}
	if hi == lo {
		hi = lo + 1
	}
	hi = niceCeil(hi)
	if lo < 0 {
		lo = -niceCeil(-lo)
	}

	hiLabel := formatChartLabel(hi)
	loLabel := formatChartLabel(lo)
	yLabelW := max(len(hiLabel), len(loLabel), 1) + 1

	chartW := max(width-yLabelW-1, 5)

	// Sample down when there are more months than columns.
	cols := make([]int, 0, n)
	if n > chartW {
		for i := 0; i < chartW; i++ {
			cols = append(cols, i*(n-1)/(chartW-1))
		}
	} else {
		for i := 0; i < n; i++ {
			cols = append(cols, i)
		}
	}
	m := len(cols)

	gap, barW := 0, 1
	if m > 1 && chartW >= 2*m-1 {
		gap = 1
		barW = (chartW+gap)/m - gap
	} else if m > 0 {
		barW = max(1, chartW/m)
	}
	barW = min(barW, 6)
	axisLen := m*barW + max(0, m-1)*gap

	axisStyle := r.NewStyle().Foreground(t.TextDim)
	beStyle := r.NewStyle().Foreground(t.BreakEven)
	refStyle := r.NewStyle().Foreground(t.TextMuted)

	beCol := -1
	if opts.BreakEven.OK {
		beCol = columnFor(cols, opts.BreakEven.Month-1)
	}

	var b strings.Builder

	if opts.Title != "" {
		b.WriteString(r.NewStyle().Bold(true).Foreground(t.TextPrimary).Render(opts.Title))
		b.WriteString("\n")
	}
	if len(layers) > 1 {
		legend := make([]string, 0, len(layers))
		for _, l := range layers {
			legend = append(legend, r.NewStyle().Foreground(l.Color).Render("█")+" "+l.Name)
		}
		b.WriteString(strings.Repeat(" ", yLabelW+1))
		b.WriteString(strings.Join(legend, "  "))
		b.WriteString("\n")
	}

	span := hi - lo
	for row := height - 1; row >= 0; row-- {
		top := lo + span*float64(row+1)/float64(height)
		bottom := lo + span*float64(row)/float64(height)

		label := ""
		switch {
		case row == height-1:
			label = hiLabel
		case row == 0 && lo < 0:
			label = loLabel
		case lo < 0 && bottom <= 0 && top > 0:
			label = "0"
		}
		b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, label)))
		b.WriteString(axisStyle.Render("│"))

		refRow := opts.Reference != nil && opts.Reference.Value >= bottom && opts.Reference.Value < top

		for ci, src := range cols {
			if ci > 0 && gap > 0 {
				if refRow {
					b.WriteString(refStyle.Render(strings.Repeat("┄", gap)))
				} else {
					b.WriteString(strings.Repeat(" ", gap))
				}
			}

			v := totals[src]
			ch := cellRune(v, bottom, top)
			if ch == ' ' {
				if refRow {
					b.WriteString(refStyle.Render(strings.Repeat("┄", barW)))
				} else {
					b.WriteString(strings.Repeat(" ", barW))
				}
				continue
			}

			style := r.NewStyle().Foreground(layerColor(layers, src, bottom, top, v))
			if ci == beCol {
				style = beStyle
			}
			b.WriteString(style.Render(strings.Repeat(string(ch), barW)))
		}
		b.WriteString("\n")
	}

	// X axis
	b.WriteString(axisStyle.Render(fmt.Sprintf("%*s", yLabelW, "")))
	b.WriteString(axisStyle.Render("└"))
	b.WriteString(axisStyle.Render(strings.Repeat("─", axisLen)))
	b.WriteString("\n")

	// Markers and month labels under highlighted / break-even columns
	markers := []rune(strings.Repeat(" ", axisLen))
	labels := []byte(strings.Repeat(" ", axisLen))
	lastEnd := -1
	for _, month := range opts.Highlight {
		ci := columnFor(cols, month-1)
		if ci < 0 {
			continue
		}
		pos := ci*(barW+gap) + barW/2
		markers[pos] = '•'

		lbl := strconv.Itoa(month)
		start := pos
		if start+len(lbl) > axisLen {
			start = axisLen - len(lbl)
		}
		if start <= lastEnd || start < 0 {
			continue
		}
		copy(labels[start:], lbl)
		lastEnd = start + len(lbl)
	}
	if beCol >= 0 {
		markers[beCol*(barW+gap)+barW/2] = '▲'
	}
	pad := strings.Repeat(" ", yLabelW+1)
	b.WriteString(pad)
	b.WriteString(axisStyle.Render(strings.TrimRight(string(markers), " ")))
	b.WriteString("\n")
	b.WriteString(pad)
	b.WriteString(axisStyle.Render(strings.TrimRight(string(labels), " ")))
	b.WriteString("\n")

	// Annotations
	if notes := highlightNotes(totals, opts.Highlight, format); notes != "" {
		b.WriteString(pad)
		b.WriteString(r.NewStyle().Foreground(t.Highlight).Render(notes))
		b.WriteString("\n")
	}
	b.WriteString(pad)
	if opts.BreakEven.OK && opts.BreakEven.Month <= n {
		b.WriteString(beStyle.Render(fmt.Sprintf("▲ Break-even month %d: %s",
			opts.BreakEven.Month, format(totals[opts.BreakEven.Month-1]))))
	} else {
		b.WriteString(r.NewStyle().Foreground(t.Negative).Render("No break-even in this scenario"))
	}
	b.WriteString("\n")
	if opts.Reference != nil && opts.Reference.Label != "" {
		b.WriteString(pad)
		b.WriteString(refStyle.Render(fmt.Sprintf("┄ %s: %s", opts.Reference.Label, format(opts.Reference.Value))))
		b.WriteString("\n")
	}

	return b.String()
}

func stackTotals(layers []Layer) []float64 {
	totals := make([]float64, len(layers[0].Values))
	for _, l := range layers {
		for i, v := range l.Values {
			if i < len(totals) {
				totals[i] += v
			}
		}
	}
	return totals
}

// cellRune picks the block character for value v in the band [bottom, top).
// Positive bars grow up from zero, negative bars hang down from it.
func cellRune(v, bottom, top float64) rune {
	blocks := []rune{' ', '▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}
	h := top - bottom

	switch {
	case v > 0 && bottom >= 0:
		if v >= top {
			return '█'
		}
		if v <= bottom {
			return ' '
		}
		return blocks[clampIndex(int((v-bottom)/h*8), 1, 8)]
	case v > 0: // band straddles zero
		return blocks[clampIndex(int(math.Min(v, top)/h*8), 1, 8)]
	case v < 0 && top <= 0:
		if v <= bottom {
			return '█'
		}
		if v >= top {
			return ' '
		}
		if (top-v)/h >= 0.5 {
			return '▀'
		}
		return '▔'
	case v < 0 && bottom < 0:
		if -v >= -bottom/2 {
			return '▀'
		}
		return '▔'
	}
	return ' '
}

func clampIndex(i, lo, hi int) int {
	return max(lo, min(i, hi))
}

// layerColor returns the color of the layer covering the band midpoint.
func layerColor(layers []Layer, idx int, bottom, top, total float64) lipgloss.Color {
	if len(layers) == 1 {
		return layers[0].Color
	}
	mid := (bottom + top) / 2
	if total >= 0 {
		mid = math.Min(mid, total)
	}
	running := 0.0
	for _, l := range layers {
		running += l.Values[idx]
		if mid <= running {
			return l.Color
		}
	}
	return layers[len(layers)-1].Color
}

// columnFor maps a 0-based series index onto the sampled column holding it,
// or the nearest sampled column. Returns -1 when out of range.
func columnFor(cols []int, idx int) int {
	if len(cols) == 0 || idx < 0 || idx > cols[len(cols)-1] {
		return -1
	}
	best, bestDist := -1, math.MaxInt
	for ci, src := range cols {
		d := src - idx
		if d < 0 {
			d = -d
		}
		if d < bestDist {
			best, bestDist = ci, d
		}
	}
	return best
}

func highlightNotes(values []float64, months []int, format func(float64) string) string {
	parts := make([]string, 0, len(months))
	for _, m := range months {
		if m < 1 || m > len(values) {
			continue
		}
		parts = append(parts, fmt.Sprintf("M%d %s", m, format(values[m-1])))
	}
	return strings.Join(parts, "  ")
}

// niceCeil rounds v up to 1, 2 or 5 times a power of ten.
func niceCeil(v float64) float64 {
	if v <= 0 {
		return 0
	}
	exp := math.Floor(math.Log10(v))
	base := math.Pow(10, exp)
	frac := v / base

	switch {
	case frac <= 1:
		return base
	case frac <= 2:
		return 2 * base
	case frac <= 5:
		return 5 * base
	default:
		return 10 * base
	}
}

func formatChartLabel(v float64) string {
	if v < 0 {
		return "-" + formatChartLabel(-v)
	}
	switch {
	case v >= 1e9:
		if v == math.Trunc(v/1e9)*1e9 {
			return fmt.Sprintf("%.0fB", v/1e9)
		}
		return fmt.Sprintf("%.1fB", v/1e9)
	case v >= 1e6:
		if v == math.Trunc(v/1e6)*1e6 {
			return fmt.Sprintf("%.0fM", v/1e6)
		}
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		if v == math.Trunc(v/1e3)*1e3 {
			return fmt.Sprintf("%.0fk", v/1e3)
		}
		return fmt.Sprintf("%.1fk", v/1e3)
	case v >= 1 || v == 0:
		return fmt.Sprintf("%.0f", v)
	default:
		return fmt.Sprintf("%.2f", v)
	}
}
