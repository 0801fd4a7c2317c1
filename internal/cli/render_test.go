package cli

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
)

func init() {
	// Plain output keeps assertions independent of ANSI codes.
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestRenderTable_AlignsColumns(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Month", "MAU"},
		Rows: [][]string{
			{"1", "0"},
			{"---"},
			{"36", "1,234,567"},
		},
	})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 7 {
		t.Fatalf("lines = %d, want 7:\n%s", len(lines), out)
	}
	width := lipgloss.Width(lines[0])
	for i, l := range lines {
		if lipgloss.Width(l) != width {
			t.Errorf("line %d width = %d, want %d: %q", i, lipgloss.Width(l), width, l)
		}
	}
	if !strings.Contains(out, "│         0 │") {
		t.Errorf("numeric column not right-aligned:\n%s", out)
	}
}

func TestRenderTable_Empty(t *testing.T) {
	if got := RenderTable(Table{}); got != "" {
		t.Errorf("RenderTable(empty) = %q, want empty", got)
	}
}

func TestRenderSparkline(t *testing.T) {
	got := RenderSparkline([]float64{-10, 0, 10})
	if got != "▁▄█" {
		t.Errorf("RenderSparkline = %q, want ▁▄█", got)
	}
	if RenderSparkline(nil) != "" {
		t.Error("RenderSparkline(nil) not empty")
	}
	if flat := RenderSparkline([]float64{5, 5, 5}); flat != "▁▁▁" {
		t.Errorf("flat sparkline = %q, want ▁▁▁", flat)
	}
}

func TestRenderHorizontalBar(t *testing.T) {
	got := RenderHorizontalBar("x", 5, 10, 10, lipgloss.Color("1"))
	if strings.Count(got, "█") != 5 {
		t.Errorf("bar = %q, want 5 blocks", got)
	}
	if got := RenderHorizontalBar("x", 50, 10, 10, lipgloss.Color("1")); strings.Count(got, "█") != 10 {
		t.Errorf("bar = %q, want clamp to 10 blocks", got)
	}
}

func TestRenderKeyValues(t *testing.T) {
	out := RenderKeyValues([][2]string{{"Break-even", "month 9"}, {"MAU", "1,340"}})
	if !strings.Contains(out, "  Break-even  month 9\n") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if !strings.Contains(out, "  MAU         1,340\n") {
		t.Errorf("labels not aligned:\n%s", out)
	}
}
