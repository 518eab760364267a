package response

import "fmt"

// FormatCurrency renders a monetary magnitude for KPI cards: millions with
// one decimal and an "M" suffix, thousands with a "K" suffix and no
// decimals, smaller values as whole units. Every KPI surface goes through
// this one function so displayed figures never diverge between cards.
func FormatCurrency(value float64) string {
	switch {
	case value >= 1_000_000:
		return fmt.Sprintf("€%.1fM", value/1_000_000)
	case value >= 1_000:
		return fmt.Sprintf("€%.0fK", value/1_000)
	default:
		return fmt.Sprintf("€%.0f", value)
	}
}
