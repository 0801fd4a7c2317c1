package theme

import "testing"

func TestSetActive(t *testing.T) {
	defer func() { Active = FlexokiDark }()

	if !SetActive("tokyo-night") {
		t.Fatal("SetActive(tokyo-night) = false")
	}
	if Active.Name != "tokyo-night" {
		t.Errorf("Active = %s, want tokyo-night", Active.Name)
	}

	if SetActive("solarized") {
		t.Error("SetActive(solarized) = true, want false")
	}
	if Active.Name != FlexokiDark.Name {
		t.Errorf("unknown theme left Active = %s, want fallback %s", Active.Name, FlexokiDark.Name)
	}
}

func TestNames(t *testing.T) {
	names := Names()
	if len(names) != len(All) {
		t.Fatalf("Names = %d, want %d", len(names), len(All))
	}
	seen := make(map[string]bool)
	for _, n := range names {
		if seen[n] {
			t.Errorf("duplicate theme name %q", n)
		}
		seen[n] = true
	}
}
