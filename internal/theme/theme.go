// Package theme defines the color palettes used for tables, cards and charts.
package theme

import "github.com/charmbracelet/lipgloss"

// Theme maps presentation roles to colors. Series roles color one metric
// consistently across every chart and table.
type Theme struct {
	Name string

	Border      lipgloss.Color
	TextDim     lipgloss.Color // axes, separators, hints
	TextMuted   lipgloss.Color // labels
	TextPrimary lipgloss.Color
	Accent      lipgloss.Color // headers, titles
	AccentDim   lipgloss.Color

	Positive lipgloss.Color
	Negative lipgloss.Color
	Warning  lipgloss.Color

	Subscription lipgloss.Color
	Ads          lipgloss.Color
	Users        lipgloss.Color
	Revenue      lipgloss.Color
	CashFlow     lipgloss.Color
	GrowthRate   lipgloss.Color
	CashBalance  lipgloss.Color

	Highlight lipgloss.Color // annotated months
	BreakEven lipgloss.Color
}

// Active is the currently selected theme.
var Active = FlexokiDark

// FlexokiDark is the default theme - warm, paper-inspired dark theme.
var FlexokiDark = Theme{
	Name:         "flexoki-dark",
	Border:       lipgloss.Color("#403E3C"),
	TextDim:      lipgloss.Color("#575653"),
	TextMuted:    lipgloss.Color("#878580"),
	TextPrimary:  lipgloss.Color("#FFFCF0"),
	Accent:       lipgloss.Color("#3AA99F"),
	AccentDim:    lipgloss.Color("#1A3533"),
	Positive:     lipgloss.Color("#879A39"),
	Negative:     lipgloss.Color("#D14D41"),
	Warning:      lipgloss.Color("#DA702C"),
	Subscription: lipgloss.Color("#879A39"),
	Ads:          lipgloss.Color("#DA702C"),
	Users:        lipgloss.Color("#4385BE"),
	Revenue:      lipgloss.Color("#A3B859"),
	CashFlow:     lipgloss.Color("#8B7EC8"),
	GrowthRate:   lipgloss.Color("#D0A215"),
	CashBalance:  lipgloss.Color("#24837B"),
	Highlight:    lipgloss.Color("#D14D41"),
	BreakEven:    lipgloss.Color("#A3B859"),
}

// CatppuccinMocha is a warm pastel theme with soft, soothing colors.
var CatppuccinMocha = Theme{
	Name:         "catppuccin-mocha",
	Border:       lipgloss.Color("#585B70"),
	TextDim:      lipgloss.Color("#6C7086"),
	TextMuted:    lipgloss.Color("#A6ADC8"),
	TextPrimary:  lipgloss.Color("#CDD6F4"),
	Accent:       lipgloss.Color("#89B4FA"),
	AccentDim:    lipgloss.Color("#293147"),
	Positive:     lipgloss.Color("#A6E3A1"),
	Negative:     lipgloss.Color("#F38BA8"),
	Warning:      lipgloss.Color("#FAB387"),
	Subscription: lipgloss.Color("#A6E3A1"),
	Ads:          lipgloss.Color("#FAB387"),
	Users:        lipgloss.Color("#89B4FA"),
	Revenue:      lipgloss.Color("#C6F6C1"),
	CashFlow:     lipgloss.Color("#CBA6F7"),
	GrowthRate:   lipgloss.Color("#F9E2AF"),
	CashBalance:  lipgloss.Color("#94E2D5"),
	Highlight:    lipgloss.Color("#F38BA8"),
	BreakEven:    lipgloss.Color("#C6F6C1"),
}

// TokyoNight is a cool blue/purple theme inspired by Tokyo city lights.
var TokyoNight = Theme{
	Name:         "tokyo-night",
	Border:       lipgloss.Color("#565F89"),
	TextDim:      lipgloss.Color("#565F89"),
	TextMuted:    lipgloss.Color("#A9B1D6"),
	TextPrimary:  lipgloss.Color("#C0CAF5"),
	Accent:       lipgloss.Color("#7AA2F7"),
	AccentDim:    lipgloss.Color("#252B3F"),
	Positive:     lipgloss.Color("#9ECE6A"),
	Negative:     lipgloss.Color("#F7768E"),
	Warning:      lipgloss.Color("#FF9E64"),
	Subscription: lipgloss.Color("#9ECE6A"),
	Ads:          lipgloss.Color("#FF9E64"),
	Users:        lipgloss.Color("#7AA2F7"),
	Revenue:      lipgloss.Color("#B9E87A"),
	CashFlow:     lipgloss.Color("#BB9AF7"),
	GrowthRate:   lipgloss.Color("#E0AF68"),
	CashBalance:  lipgloss.Color("#7DCFFF"),
	Highlight:    lipgloss.Color("#F7768E"),
	BreakEven:    lipgloss.Color("#B9E87A"),
}

// Terminal uses ANSI 16 colors only - maximum compatibility.
var Terminal = Theme{
	Name:         "terminal",
	Border:       lipgloss.Color("8"),
	TextDim:      lipgloss.Color("8"),
	TextMuted:    lipgloss.Color("7"),
	TextPrimary:  lipgloss.Color("15"),
	Accent:       lipgloss.Color("6"),
	AccentDim:    lipgloss.Color("0"),
	Positive:     lipgloss.Color("2"),
	Negative:     lipgloss.Color("1"),
	Warning:      lipgloss.Color("3"),
	Subscription: lipgloss.Color("2"),
	Ads:          lipgloss.Color("3"),
	Users:        lipgloss.Color("4"),
	Revenue:      lipgloss.Color("10"),
	CashFlow:     lipgloss.Color("5"),
	GrowthRate:   lipgloss.Color("11"),
	CashBalance:  lipgloss.Color("6"),
	Highlight:    lipgloss.Color("9"),
	BreakEven:    lipgloss.Color("10"),
}

// All available themes.
var All = []Theme{FlexokiDark, CatppuccinMocha, TokyoNight, Terminal}

// ByName returns a theme by its name and whether it was found.
// Unknown names fall back to FlexokiDark.
func ByName(name string) (Theme, bool) {
	for _, t := range All {
		if t.Name == name {
			return t, true
		}
	}
	return FlexokiDark, false
}

// SetActive sets the active theme by name. It reports false for unknown names.
func SetActive(name string) bool {
	t, ok := ByName(name)
	Active = t
	return ok
}

// Names lists the available theme names.
func Names() []string {
	names := make([]string, len(All))
	for i, t := range All {
		names[i] = t.Name
	}
	return names
}
