package fares

import "testing"

func TestAnalyze_TicketClasses(t *testing.T) {
	rules := Analyze()

	want := []string{"economy_basic", "economy_standard", "economy_flex", "premium_economy"}
	if len(rules.TicketClasses) != len(want) {
		t.Fatalf("TicketClasses = %d, want %d", len(rules.TicketClasses), len(want))
	}
	for _, key := range want {
		tc, ok := rules.TicketClasses[key]
		if !ok {
			t.Errorf("missing ticket class %q", key)
			continue
		}
		if tc.Description == "" || tc.CostDelta == "" || tc.Recommendation == "" {
			t.Errorf("incomplete ticket class %q: %+v", key, tc)
		}
		if len(tc.TypicalFeatures) == 0 {
			t.Errorf("ticket class %q has no features", key)
		}
	}

	if rules.TicketClasses["economy_standard"].CostDelta != "Baseline" {
		t.Errorf("standard economy should be the baseline, got %q",
			rules.TicketClasses["economy_standard"].CostDelta)
	}
}

func TestAnalyze_RoutingLogic(t *testing.T) {
	rules := Analyze()

	for _, key := range []string{"direct_flights", "one_stop", "two_stops", "self_transfer"} {
		if rules.RoutingLogic[key] == "" {
			t.Errorf("missing routing logic for %q", key)
		}
	}
}

func TestAnalyze_PricingConditions(t *testing.T) {
	rules := Analyze()

	for _, key := range []string{"advance_purchase", "saturday_night_stay", "minimum_stay", "maximum_stay"} {
		if rules.PricingConditions[key] == "" {
			t.Errorf("missing pricing condition for %q", key)
		}
	}
}

func TestAnalyze_CostReductionTips(t *testing.T) {
	rules := Analyze()

	if len(rules.CostReductionTips) != 8 {
		t.Errorf("CostReductionTips = %d, want 8", len(rules.CostReductionTips))
	}
	for i, tip := range rules.CostReductionTips {
		if tip == "" {
			t.Errorf("tip %d empty", i)
		}
	}
}
