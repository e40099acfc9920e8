package platform

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blackwell-systems/farescout/internal/pricing"
)

// stubSource pins the uniform jitter so platform base prices are exact.
type stubSource struct{ f float64 }

func (s stubSource) Float64() float64 { return s.f }
func (s stubSource) Intn(n int) int   { return 0 }

func TestTotalPrice_Formula(t *testing.T) {
	base := 450.0
	for _, key := range Keys() {
		p, ok := Lookup(key)
		require.True(t, ok)

		want := pricing.Round2(base*(1+p.PercentageMarkup/100) + p.BaseFee)
		assert.Equal(t, want, p.TotalPrice(base), "platform %s", key)
	}
}

func TestValueScore(t *testing.T) {
	// At the 400 EUR reference the price score is exactly 10.
	assert.Equal(t, 10.0, ValueScore(400, 10))

	// 450 EUR: price score 9, reliability 10 => 9*0.6 + 10*0.4 = 9.4.
	assert.Equal(t, 9.4, ValueScore(450, 10))

	// Very expensive fares clamp the price component at 1.
	assert.Equal(t, 1.4, ValueScore(2000, 2))

	// Very cheap fares clamp the price component at 10.
	assert.Equal(t, 10.0, ValueScore(50, 10))
}

func TestCompare_SortedAndComplete(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)
	cmp := c.Compare(450, "FRA", "JFK", nil)

	require.Len(t, cmp.AllPlatforms, len(Keys()))
	for i := 1; i < len(cmp.AllPlatforms); i++ {
		assert.LessOrEqual(t, cmp.AllPlatforms[i-1].TotalPrice, cmp.AllPlatforms[i].TotalPrice)
	}

	assert.Equal(t, cmp.AllPlatforms[0], cmp.CheapestOverall)
	assert.Equal(t, cmp.AllPlatforms[len(cmp.AllPlatforms)-1], cmp.MostExpensive)
	assert.Equal(t,
		pricing.Round2(cmp.MostExpensive.TotalPrice-cmp.CheapestOverall.TotalPrice),
		cmp.PriceDifference)

	// Every platform type present in the quotes appears in the grouping.
	for _, q := range cmp.AllPlatforms {
		group, ok := cmp.ByPlatformType[q.Type]
		require.True(t, ok, "missing type group %s", q.Type)
		assert.NotEmpty(t, group.Platforms)
		for _, member := range group.Platforms {
			assert.GreaterOrEqual(t, member.TotalPrice, group.Cheapest.TotalPrice)
		}
	}
}

func TestCompare_MetaSearchPassthrough(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)
	cmp := c.Compare(450, "FRA", "JFK", []string{"kayak", "skyscanner", "google_flights"})

	// Meta-search engines show the base fare unchanged and charge nothing.
	for _, q := range cmp.AllPlatforms {
		assert.Equal(t, 450.0, q.BasePrice, "platform %s", q.Platform)
		assert.Equal(t, 450.0, q.TotalPrice, "platform %s", q.Platform)
		assert.Zero(t, q.Fees)
	}
}

func TestCompare_SubsetDeterministic(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)

	// With the jitter pinned to the midpoint, the airline base is
	// 450 * (0.95 + 0.5*0.10) = 450.
	cmp := c.Compare(450, "FRA", "JFK", []string{"lufthansa_direct", "expedia"})
	require.Len(t, cmp.AllPlatforms, 2)

	lufthansa := cmp.CheapestOverall
	assert.Equal(t, "Lufthansa Direct", lufthansa.Platform)
	assert.Equal(t, 450.0, lufthansa.TotalPrice)

	// Expedia: base 450 * (0.98 + 0.5*0.10) = 463.50, then
	// 463.50 * 1.025 + 12.99 = 488.08.
	expedia := cmp.MostExpensive
	assert.Equal(t, "Expedia", expedia.Platform)
	assert.Equal(t, 488.08, expedia.TotalPrice)
}

func TestCompare_UnknownKeysFallBack(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)

	// A filter with no known platform compares the whole registry instead
	// of producing an empty result.
	cmp := c.Compare(450, "FRA", "JFK", []string{"not_a_platform"})
	require.Len(t, cmp.AllPlatforms, len(Keys()))
	assert.NotEmpty(t, cmp.CheapestOverall.Platform)

	// Unknown keys mixed with known ones are dropped.
	cmp = c.Compare(450, "FRA", "JFK", []string{"not_a_platform", "kayak"})
	require.Len(t, cmp.AllPlatforms, 1)
	assert.Equal(t, "Kayak", cmp.AllPlatforms[0].Platform)
}

func TestCompare_Recommendations(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)
	cmp := c.Compare(450, "FRA", "JFK", nil)

	require.GreaterOrEqual(t, len(cmp.Recommendations), 3)
	assert.Contains(t, cmp.Recommendations[0], "💰 Cheapest:")
	assert.Contains(t, cmp.Recommendations[1], "⭐ Most Reliable:")
	assert.Contains(t, cmp.Recommendations[2], "🎯 Best Value:")
}

func TestAnalyzeFees(t *testing.T) {
	c := NewComparator(stubSource{f: 0.5}, nil)
	cmp := c.Compare(450, "FRA", "JFK", nil)

	fees := cmp.FeeAnalysis
	// expedia 12.99, opodo 8.99, edreams 9.99, lastminute 6.99.
	assert.Equal(t, 4, fees.PlatformsWithFees)
	assert.Equal(t, 38.96, fees.TotalFeesAcrossAll)
	assert.Equal(t, "Expedia", fees.HighestFeePlatform)
	assert.Len(t, fees.FeeFreePlatforms, len(Keys())-4)
}

func TestHiddenCosts(t *testing.T) {
	breakdown, err := HiddenCosts("expedia")
	require.NoError(t, err)

	assert.Equal(t, 12.99, breakdown.VisibleFees.BookingFee)
	assert.NotEmpty(t, breakdown.TypicalExtras)
	assert.NotEmpty(t, breakdown.FeeAvoidanceTips)

	_, err = HiddenCosts("nope")
	require.ErrorIs(t, err, ErrUnknownPlatform)
}

func TestBestPlatform(t *testing.T) {
	advice := BestPlatform("budget", nil)
	assert.Equal(t, "budget", advice.RouteType)
	assert.Equal(t, []string{"price", "reliability"}, advice.Priorities)
	assert.Len(t, advice.Recommendations, 3)
	assert.Contains(t, advice.GeneralStrategy, "book directly")
}
