package cmd

import (
	"testing"

	"github.com/theirongolddev/runway/internal/pipeline"
)

func TestSelectScenarios(t *testing.T) {
	p, err := pipeline.RunAll(pipeline.Baseline())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}

	tests := []struct {
		filter string
		want   []string
	}{
		{"", []string{"Baseline", "Conservative"}},
		{"all", []string{"Baseline", "Conservative"}},
		{"ALL", []string{"Baseline", "Conservative"}},
		{"baseline", []string{"Baseline"}},
		{" Conservative ", []string{"Conservative"}},
	}
	for _, tt := range tests {
		got, err := selectScenarios(p, tt.filter)
		if err != nil {
			t.Fatalf("selectScenarios(%q): %v", tt.filter, err)
		}
		if len(got) != len(tt.want) {
			t.Fatalf("selectScenarios(%q) = %d scenarios, want %d", tt.filter, len(got), len(tt.want))
		}
		for i, s := range got {
			if s.Name != tt.want[i] {
				t.Errorf("selectScenarios(%q)[%d] = %s, want %s", tt.filter, i, s.Name, tt.want[i])
			}
		}
	}
}

func TestSelectScenarios_Unknown(t *testing.T) {
	p, err := pipeline.RunAll(pipeline.Baseline())
	if err != nil {
		t.Fatalf("RunAll: %v", err)
	}
	if _, err := selectScenarios(p, "optimistic"); err == nil {
		t.Fatal("expected error for unknown scenario")
	}
}

func TestJoinInts(t *testing.T) {
	if got := joinInts([]int{1, 6, 12}); got != "1, 6, 12" {
		t.Errorf("joinInts = %q", got)
	}
}
