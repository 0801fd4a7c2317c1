package chart

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/theirongolddev/runway/internal/model"
)

func init() {
	lipgloss.SetColorProfile(termenv.Ascii)
}

func TestColumns_PositiveSeries(t *testing.T) {
	values := []float64{0, 0, 100, 200, 400, 800}
	out := Columns(values, lipgloss.Color("1"), Options{
		Title:     "MAU",
		Width:     40,
		Height:    6,
		Highlight: []int{1, 6},
	})

	lines := strings.Split(out, "\n")
	if lines[0] != "MAU" {
		t.Fatalf("first line = %q, want title", lines[0])
	}
	if !strings.Contains(out, "1k│") {
		t.Errorf("top axis label missing:\n%s", out)
	}
	if !strings.Contains(out, "M1 0  M6 800") {
		t.Errorf("highlight notes missing:\n%s", out)
	}
	if !strings.Contains(out, "No break-even in this scenario") {
		t.Errorf("missing no-break-even note:\n%s", out)
	}
	if strings.Count(out, "•") != 2 {
		t.Errorf("markers = %d, want 2:\n%s", strings.Count(out, "•"), out)
	}
}

func TestColumns_NegativeValuesHangBelowZero(t *testing.T) {
	values := []float64{-100, -100, 50, 100}
	out := Columns(values, lipgloss.Color("1"), Options{
		Width:     30,
		Height:    4,
		BreakEven: model.BreakEvenAt(3),
		Reference: &Reference{Value: 0, Label: "Zero"},
	})
	if !strings.Contains(out, "-100│") && !strings.Contains(out, "-200│") {
		t.Errorf("negative axis label missing:\n%s", out)
	}
	if !strings.Contains(out, "▲ Break-even month 3: 50") {
		t.Errorf("break-even note missing:\n%s", out)
	}
	if !strings.Contains(out, "┄ Zero: 0") {
		t.Errorf("reference note missing:\n%s", out)
	}
	if !strings.Contains(out, "▲") {
		t.Errorf("break-even marker missing:\n%s", out)
	}
}

func TestColumns_SamplesWhenNarrow(t *testing.T) {
	values := make([]float64, 200)
	for i := range values {
		values[i] = float64(i)
	}
	out := Columns(values, lipgloss.Color("1"), Options{Width: 30, Height: 4})
	for _, line := range strings.Split(out, "\n") {
		if !strings.ContainsAny(line, "│└") {
			continue
		}
		if w := lipgloss.Width(line); w > 30 {
			t.Fatalf("line width %d exceeds 30: %q", w, line)
		}
	}
}

func TestColumns_Empty(t *testing.T) {
	if out := Columns(nil, lipgloss.Color("1"), Options{}); out != "" {
		t.Errorf("Columns(nil) = %q, want empty", out)
	}
}

func TestStacked_Legend(t *testing.T) {
	out := Stacked([]Layer{
		{Name: "Subscription", Values: []float64{0, 10, 20}, Color: lipgloss.Color("2")},
		{Name: "Ad", Values: []float64{0, 1, 2}, Color: lipgloss.Color("3")},
	}, Options{Width: 30, Height: 4, Highlight: []int{3}})
	if !strings.Contains(out, "█ Subscription  █ Ad") {
		t.Errorf("legend missing:\n%s", out)
	}
	if !strings.Contains(out, "M3 22") {
		t.Errorf("stacked total annotation missing:\n%s", out)
	}
}

func TestCellRune(t *testing.T) {
	tests := []struct {
		v, bottom, top float64
		want           rune
	}{
		{10, 0, 5, '█'},
		{2.5, 0, 5, '▄'},
		{0, 0, 5, ' '},
		{-10, -5, 0, '█'},
		{-1, -5, 0, '▔'},
		{-4, -5, 0, '▀'},
		{-10, 0, 5, ' '},
	}
	for _, tt := range tests {
		if got := cellRune(tt.v, tt.bottom, tt.top); got != tt.want {
			t.Errorf("cellRune(%v, %v, %v) = %q, want %q", tt.v, tt.bottom, tt.top, got, tt.want)
		}
	}
}

func TestNiceCeil(t *testing.T) {
	tests := map[float64]float64{
		0.34:    0.5,
		800:     1000,
		1340:    2000,
		6200000: 1e7,
	}
	for in, want := range tests {
		if got := niceCeil(in); got != want {
			t.Errorf("niceCeil(%v) = %v, want %v", in, got, want)
		}
	}
}

func TestFileWriter_Write(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "charts")
	w := FileWriter{Dir: dir}

	out := Columns([]float64{1, 2, 3, 4}, lipgloss.Color("1"), Options{Width: 30, Height: 4, Renderer: w.Renderer()})
	if strings.Contains(out, "\x1b[") {
		t.Fatalf("file renderer emitted ANSI codes: %q", out)
	}

	path, err := w.Write("baseline_mau_growth.txt", out)
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != out {
		t.Error("written content differs from rendered chart")
	}
}
