package app

import (
	"strings"
	"testing"
)

func TestBuildRequest(t *testing.T) {
	req, err := buildRequest([]string{"fra", "jfk", "2026-10-15"}, "2026-10-29", 450)
	if err != nil {
		t.Fatalf("buildRequest: %v", err)
	}
	if req.Origin != "FRA" || req.Destination != "JFK" {
		t.Errorf("codes not uppercased: %s %s", req.Origin, req.Destination)
	}
	if req.Return == nil {
		t.Fatal("return date dropped")
	}
	if req.TargetPrice != 450 {
		t.Errorf("TargetPrice = %v", req.TargetPrice)
	}

	if _, err := buildRequest([]string{"FRA", "JFK", "not-a-date"}, "", 0); err == nil {
		t.Error("invalid departure date accepted")
	}
	if _, err := buildRequest([]string{"FRA", "JFK", "2026-10-15"}, "2026-10-01", 0); err == nil {
		t.Error("return before departure accepted")
	}
}

func TestExportPath(t *testing.T) {
	if got := exportPath(""); got != defaultExportFile {
		t.Errorf("exportPath(\"\") = %q, want %q", got, defaultExportFile)
	}
	if got := exportPath("report.json"); got != "report.json" {
		t.Errorf("exportPath = %q", got)
	}
}

func TestPositivePrice(t *testing.T) {
	if err := positivePrice(450); err != nil {
		t.Errorf("positive price rejected: %v", err)
	}
	for _, bad := range []float64{0, -1} {
		err := positivePrice(bad)
		if err == nil {
			t.Errorf("price %v accepted", bad)
			continue
		}
		if !strings.Contains(err.Error(), "must be positive") {
			t.Errorf("error = %v", err)
		}
	}
}
