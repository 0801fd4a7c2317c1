package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/theirongolddev/runway/internal/theme"
)

// Table represents a bordered text table for CLI output.
type Table struct {
	Title   string
	Headers []string
	Rows    [][]string
	Widths  []int // optional column widths, auto-calculated if nil

	// Highlight marks row indices rendered in the highlight color.
	Highlight map[int]bool
}

type styles struct {
	title     lipgloss.Style
	header    lipgloss.Style
	value     lipgloss.Style
	muted     lipgloss.Style
	dim       lipgloss.Style
	highlight lipgloss.Style
	positive  lipgloss.Style
	negative  lipgloss.Style
}

func activeStyles() styles {
	t := theme.Active
	return styles{
		title:     lipgloss.NewStyle().Bold(true).Foreground(t.TextPrimary).Align(lipgloss.Center),
		header:    lipgloss.NewStyle().Bold(true).Foreground(t.Accent),
		value:     lipgloss.NewStyle().Foreground(t.TextPrimary),
		muted:     lipgloss.NewStyle().Foreground(t.TextMuted),
		dim:       lipgloss.NewStyle().Foreground(t.TextDim),
		highlight: lipgloss.NewStyle().Bold(true).Foreground(t.Highlight),
		positive:  lipgloss.NewStyle().Foreground(t.Positive),
		negative:  lipgloss.NewStyle().Foreground(t.Negative),
	}
}

// RenderTitle renders a centered title bar in a bordered box.
func RenderTitle(title string) string {
	width := 55
	border := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Active.Border).
		Width(width).
		Align(lipgloss.Center).
		Padding(0, 1)

	return border.Render(activeStyles().title.Render(title))
}

// RenderTable renders a bordered table with headers and rows.
// A row holding the single cell "---" renders as a separator.
func RenderTable(t Table) string {
	if len(t.Rows) == 0 && len(t.Headers) == 0 {
		return ""
	}
	st := activeStyles()

	numCols := len(t.Headers)
	if numCols == 0 && len(t.Rows) > 0 {
		numCols = len(t.Rows[0])
	}

	widths := make([]int, numCols)
	if t.Widths != nil {
		copy(widths, t.Widths)
	} else {
		for i, h := range t.Headers {
			if w := lipgloss.Width(h); w > widths[i] {
				widths[i] = w
			}
		}
		for _, row := range t.Rows {
			for i, cell := range row {
				if i < numCols && lipgloss.Width(cell) > widths[i] {
					widths[i] = lipgloss.Width(cell)
				}
			}
		}
	}

	rule := func(left, mid, right string) string {
		var r strings.Builder
		r.WriteString(st.dim.Render(left))
		for i, w := range widths {
			r.WriteString(st.dim.Render(strings.Repeat("─", w+2)))
			if i < numCols-1 {
				r.WriteString(st.dim.Render(mid))
			}
		}
		r.WriteString(st.dim.Render(right))
		r.WriteString("\n")
		return r.String()
	}

	var b strings.Builder

	if t.Title != "" {
		b.WriteString("  ")
		b.WriteString(st.header.Render(t.Title))
		b.WriteString("\n")
	}

	b.WriteString(rule("╭", "┬", "╮"))

	if len(t.Headers) > 0 {
		b.WriteString(st.dim.Render("│"))
		for i, h := range t.Headers {
			b.WriteString(st.header.Render(" " + padRight(h, widths[i]) + " "))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
		b.WriteString(rule("├", "┼", "┤"))
	}

	for ri, row := range t.Rows {
		if len(row) == 1 && row[0] == "---" {
			b.WriteString(rule("├", "┼", "┤"))
			continue
		}

		cellStyle := st.value
		if t.Highlight[ri] {
			cellStyle = st.highlight
		}

		b.WriteString(st.dim.Render("│"))
		for i := 0; i < numCols; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			// Right-align numeric columns (all except first)
			var padded string
			if i == 0 {
				padded = " " + padRight(cell, widths[i]) + " "
			} else {
				padded = " " + padLeft(cell, widths[i]) + " "
			}
			b.WriteString(cellStyle.Render(padded))
			if i < numCols-1 {
				b.WriteString(st.dim.Render("│"))
			}
		}
		b.WriteString(st.dim.Render("│"))
		b.WriteString("\n")
	}

	b.WriteString(rule("╰", "┴", "╯"))

	return b.String()
}

func padRight(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return s + strings.Repeat(" ", n)
	}
	return s
}

func padLeft(s string, w int) string {
	if n := w - lipgloss.Width(s); n > 0 {
		return strings.Repeat(" ", n) + s
	}
	return s
}

// RenderKeyValues renders aligned "label  value" lines, indented like tables.
func RenderKeyValues(pairs [][2]string) string {
	st := activeStyles()
	labelW := 0
	for _, p := range pairs {
		if w := lipgloss.Width(p[0]); w > labelW {
			labelW = w
		}
	}

	var b strings.Builder
	for _, p := range pairs {
		b.WriteString("  ")
		b.WriteString(st.muted.Render(padRight(p[0], labelW)))
		b.WriteString("  ")
		b.WriteString(st.value.Render(p[1]))
		b.WriteString("\n")
	}
	return b.String()
}

// RenderSignedMoney colors an amount green when non-negative and red otherwise.
func RenderSignedMoney(v float64, currency string) string {
	st := activeStyles()
	if v < 0 {
		return st.negative.Render(FormatMoney(v, currency))
	}
	return st.positive.Render(FormatMoney(v, currency))
}

// RenderSparkline generates a unicode block sparkline from a series of values.
// Values are scaled between the series minimum and maximum so negative
// stretches remain visible.
func RenderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}

	blocks := []rune{'▁', '▂', '▃', '▄', '▅', '▆', '▇', '█'}

	lo, hi := values[0], values[0]
	for _, v := range values[1:] {
		lo = min(lo, v)
		hi = max(hi, v)
	}
	span := hi - lo
	if span == 0 {
		span = 1
	}

	var b strings.Builder
	for _, v := range values {
		idx := int((v - lo) / span * float64(len(blocks)-1))
		idx = max(0, min(idx, len(blocks)-1))
		b.WriteRune(blocks[idx])
	}

	return b.String()
}

// RenderHorizontalBar renders a labelled horizontal bar scaled against maxValue.
func RenderHorizontalBar(label string, value, maxValue float64, maxWidth int, color lipgloss.Color) string {
	if maxValue <= 0 {
		return fmt.Sprintf("  %s", label)
	}
	barLen := int(value / maxValue * float64(maxWidth))
	barLen = max(0, min(barLen, maxWidth))
	bar := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", barLen))
	return fmt.Sprintf("  %s %s", label, bar)
}
