package output

import (
	"fmt"
	"strings"
)

// Section prints a styled section header with a horizontal rule.
func Section(title string) string {
	header := StyleHeader.Render(title)
	rule := StyleMuted.Render(strings.Repeat("─", 66))
	return fmt.Sprintf("\n %s\n %s", header, rule)
}

// Price renders an amount in euros, colored by how it compares to a
// reference price. Cheaper renders green, pricier red, equal unstyled.
func Price(amount, reference float64) string {
	s := fmt.Sprintf("€%.2f", amount)
	switch {
	case amount < reference:
		return StyleSuccess.Render(s)
	case amount > reference:
		return StyleError.Render(s)
	default:
		return s
	}
}

// SavingsArrow returns a styled indicator for a savings amount in euros.
// Savings show a down arrow in green; a markup shows an up arrow in red.
func SavingsArrow(savings float64) string {
	switch {
	case savings == 0:
		return StyleMuted.Render("─")
	case savings > 0:
		return StyleSuccess.Render(fmt.Sprintf("▼ -€%.2f", savings))
	default:
		return StyleError.Render(fmt.Sprintf("▲ +€%.2f", -savings))
	}
}

// SavingsBar renders a visual bar scaling a savings percentage against a
// 0-50% range. Example: "████████░░ 23%"
func SavingsBar(percent float64, width int) string {
	if width <= 0 {
		width = 20
	}
	filled := int((percent / 50.0) * float64(width))
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}

	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	var style func(string) string
	switch {
	case percent >= 20:
		style = func(s string) string { return StyleSuccess.Render(s) }
	case percent >= 5:
		style = func(s string) string { return StyleWarning.Render(s) }
	default:
		style = func(s string) string { return StyleMuted.Render(s) }
	}

	return fmt.Sprintf("%s %s", style(bar), StyleMuted.Render(fmt.Sprintf("%.0f%%", percent)))
}

// Legality renders a legality verdict with color.
func Legality(legal bool) string {
	if legal {
		return StyleSuccess.Render("legal")
	}
	return StyleError.Render("against ToS")
}
