// Package cli provides formatting and rendering utilities for terminal output.
package cli

import (
	"fmt"
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// SetLocale selects the locale used for digit grouping, e.g. "en", "de", "zh-TW".
// Unparseable tags keep the current locale and return an error.
func SetLocale(tag string) error {
	t, err := language.Parse(tag)
	if err != nil {
		return fmt.Errorf("parsing locale %q: %w", tag, err)
	}
	printer = message.NewPrinter(t)
	return nil
}

// FormatNumber truncates toward zero and adds locale digit grouping.
// e.g., 1234567.9 -> "1,234,567"
func FormatNumber(v float64) string {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return fmt.Sprint(v)
	}
	return printer.Sprintf("%d", int64(v))
}

// FormatMoney formats an amount with digit grouping and a currency suffix.
// e.g., (15722.6, "TWD") -> "15,722 TWD"
func FormatMoney(v float64, currency string) string {
	if currency == "" {
		return FormatNumber(v)
	}
	return FormatNumber(v) + " " + currency
}

// FormatCompact formats a value with human-readable suffixes.
// e.g., 1234 -> "1.2K", 1234567 -> "1.2M", -2500000 -> "-2.5M"
func FormatCompact(v float64) string {
	abs := math.Abs(v)

	switch {
	case abs >= 1_000_000_000:
		return fmt.Sprintf("%.1fB", v/1_000_000_000)
	case abs >= 1_000_000:
		return fmt.Sprintf("%.1fM", v/1_000_000)
	case abs >= 1_000:
		return fmt.Sprintf("%.1fK", v/1_000)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// FormatPercent formats a 0-1 fraction as a percentage string.
func FormatPercent(f float64) string {
	return fmt.Sprintf("%.1f%%", f*100)
}

// FormatRate formats a growth rate fraction with two decimals, e.g. 0.34 -> "34.00".
func FormatRate(f float64) string {
	return fmt.Sprintf("%.2f", f*100)
}

// FormatDelta formats the signed difference between two amounts.
func FormatDelta(current, previous float64, currency string) string {
	delta := current - previous
	if delta >= 0 {
		return "+" + FormatMoney(delta, currency)
	}
	return "-" + FormatMoney(-delta, currency)
}

// FormatMonth renders a 1-based month label, e.g. 6 -> "M6".
func FormatMonth(m int) string {
	return fmt.Sprintf("M%d", m)
}
