package tracking

import (
	"time"

	"github.com/blackwell-systems/farescout/internal/pricing"
)

// Observation is one logged price point for a tracked route.
type Observation struct {
	Price     float64   `json:"price"`
	Timestamp time.Time `json:"timestamp"`
}

// StabilityReport flags inflation patterns in a search history.
type StabilityReport struct {
	Status             string   `json:"status"`
	Message            string   `json:"message,omitempty"`
	AveragePriceChange float64  `json:"average_price_change,omitempty"`
	TotalSearches      int      `json:"total_searches,omitempty"`
	Warnings           []string `json:"warnings,omitempty"`
	Recommendation     string   `json:"recommendation,omitempty"`
}

// MonitorStability checks a search history for inflation patterns: steadily
// rising prices, too many searches, or searches spaced under six hours
// apart. Fewer than two observations yields insufficient_data.
func MonitorStability(history []Observation) StabilityReport {
	if len(history) < 2 {
		return StabilityReport{
			Status:  "insufficient_data",
			Message: "Need at least 2 searches to detect inflation",
		}
	}

	var totalChange float64
	for i := 1; i < len(history); i++ {
		totalChange += history[i].Price - history[i-1].Price
	}
	avgIncrease := totalChange / float64(len(history)-1)

	var warnings []string
	if avgIncrease > 10 {
		warnings = append(warnings, "Prices increasing steadily - possible inflation detected")
	}
	if len(history) > 5 {
		warnings = append(warnings, "High search frequency may be triggering inflation")
	}

	minGap := history[1].Timestamp.Sub(history[0].Timestamp)
	for i := 2; i < len(history); i++ {
		gap := history[i].Timestamp.Sub(history[i-1].Timestamp)
		if gap < minGap {
			minGap = gap
		}
	}
	if minGap < 6*time.Hour {
		warnings = append(warnings, "Searches too close together (< 6 hours)")
	}

	status := "ok"
	if len(warnings) > 0 {
		status = "warning"
	}

	return StabilityReport{
		Status:             status,
		AveragePriceChange: pricing.Round2(avgIncrease),
		TotalSearches:      len(history),
		Warnings:           warnings,
		Recommendation:     stabilityRecommendation(warnings, len(history)),
	}
}

// stabilityRecommendation picks advice by precedence: no warnings, then
// search count, then warning count.
func stabilityRecommendation(warnings []string, searchCount int) string {
	switch {
	case len(warnings) == 0:
		return "✓ No inflation detected. Continue current strategy."
	case searchCount > 5:
		return "⚠️ STOP SEARCHING. Wait 48-72 hours for prices to reset. Use alerts only."
	case len(warnings) > 2:
		return "⚠️ Multiple warning signs. Reduce search frequency immediately."
	default:
		return "⚠️ Potential inflation detected. Switch to alert-based monitoring."
	}
}
