package inflation

import (
	"strings"
	"testing"
	"time"

	"github.com/blackwell-systems/farescout/internal/route"
)

func TestAnalyzeTrackingMethods(t *testing.T) {
	analysis := AnalyzeTrackingMethods()

	if analysis.TotalMethods != 10 {
		t.Errorf("TotalMethods = %d, want 10", analysis.TotalMethods)
	}
	if len(analysis.Methods) != analysis.TotalMethods {
		t.Errorf("Methods has %d entries, TotalMethods says %d",
			len(analysis.Methods), analysis.TotalMethods)
	}

	// High and Very High severity methods: cookies, browser_fingerprint,
	// location_data, search_history, session_duration.
	if len(analysis.HighSeverity) != 5 {
		t.Errorf("HighSeverity = %v, want 5 entries", analysis.HighSeverity)
	}
	for _, key := range analysis.HighSeverity {
		m, ok := analysis.Methods[key]
		if !ok {
			t.Errorf("high severity key %q not in catalog", key)
			continue
		}
		if m.Severity != "High" && m.Severity != "Very High" {
			t.Errorf("%q listed as high severity but is %q", key, m.Severity)
		}
	}

	if !strings.Contains(analysis.Summary, "10 different tracking methods") {
		t.Errorf("Summary = %q", analysis.Summary)
	}
}

func TestInflationTriggers(t *testing.T) {
	triggers := InflationTriggers()
	if len(triggers) != 8 {
		t.Fatalf("triggers = %d, want 8", len(triggers))
	}
	for _, tr := range triggers {
		if tr.Trigger == "" || tr.TypicalIncrease == "" {
			t.Errorf("incomplete trigger: %+v", tr)
		}
	}
}

func TestAvoidance(t *testing.T) {
	s := Avoidance()

	if len(s.Steps) != 10 {
		t.Fatalf("steps = %d, want 10", len(s.Steps))
	}
	for i, step := range s.Steps {
		if step.Step != i+1 {
			t.Errorf("step %d numbered %d", i, step.Step)
		}
	}
	if len(s.QuickChecklist) == 0 {
		t.Error("quick checklist empty")
	}
	if !strings.Contains(s.EffectivenessRating, "10-25%") {
		t.Errorf("EffectivenessRating = %q", s.EffectivenessRating)
	}
}

func TestSearchProtocol_Escalation(t *testing.T) {
	departure := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)

	first := SearchProtocol("FRA", "JFK", departure, 1)
	if first.RiskLevel != "Low" {
		t.Errorf("search 1 risk = %q, want Low", first.RiskLevel)
	}
	if len(first.Warnings) != 0 {
		t.Errorf("search 1 warnings = %v, want none", first.Warnings)
	}
	if first.SearchInfo.Route != "FRA → JFK" {
		t.Errorf("route = %q", first.SearchInfo.Route)
	}
	if first.SearchInfo.Date != "2026-10-15" {
		t.Errorf("date = %q", first.SearchInfo.Date)
	}

	second := SearchProtocol("FRA", "JFK", departure, 2)
	if second.RiskLevel != "Medium" {
		t.Errorf("search 2 risk = %q, want Medium", second.RiskLevel)
	}
	if len(second.PreSearchChecklist) <= len(first.PreSearchChecklist) {
		t.Error("second search checklist should grow")
	}

	third := SearchProtocol("FRA", "JFK", departure, 3)
	if third.RiskLevel != "High" {
		t.Errorf("search 3 risk = %q, want High", third.RiskLevel)
	}
	if len(third.Warnings) == 0 {
		t.Error("third search should warn about inflation")
	}

	fifth := SearchProtocol("FRA", "JFK", departure, 5)
	if fifth.RiskLevel != "High" {
		t.Errorf("search 5 risk = %q, want High", fifth.RiskLevel)
	}
}

func TestTechnicalCountermeasures(t *testing.T) {
	measures := TechnicalCountermeasures()
	if len(measures) != 5 {
		t.Fatalf("countermeasures = %d, want 5", len(measures))
	}
	for _, m := range measures {
		if m.Method == "" || len(m.Setup) == 0 {
			t.Errorf("incomplete countermeasure: %+v", m)
		}
	}
}

func TestCreateSearchPlan(t *testing.T) {
	departure := time.Date(2026, 10, 15, 0, 0, 0, 0, time.UTC)
	routes := make([]route.Request, 5)
	for i := range routes {
		routes[i] = route.Request{Origin: "FRA", Destination: "JFK", Departure: departure}
	}

	plan := CreateSearchPlan(routes)
	if plan.TotalRoutes != 5 {
		t.Errorf("TotalRoutes = %d, want 5", plan.TotalRoutes)
	}
	if len(plan.Timeline) != 5 {
		t.Fatalf("timeline = %d entries, want 5", len(plan.Timeline))
	}

	// Two searches per day, alternating morning/afternoon sessions.
	wantDays := []int{1, 1, 2, 2, 3}
	wantSessions := []int{1, 2, 1, 2, 1}
	for i, ps := range plan.Timeline {
		if ps.SearchDay != wantDays[i] {
			t.Errorf("search %d day = %d, want %d", i, ps.SearchDay, wantDays[i])
		}
		if ps.Session != wantSessions[i] {
			t.Errorf("search %d session = %d, want %d", i, ps.Session, wantSessions[i])
		}
	}

	if plan.Timeline[0].Platform != "Direct airline" {
		t.Errorf("search 0 platform = %q", plan.Timeline[0].Platform)
	}
	if plan.Timeline[1].Platform != "OTA" {
		t.Errorf("search 1 platform = %q", plan.Timeline[1].Platform)
	}
	if plan.Timeline[2].UseVPN {
		t.Error("search 2 should not need VPN yet")
	}
	if !plan.Timeline[4].UseVPN {
		t.Error("search 4 should use VPN")
	}
}
