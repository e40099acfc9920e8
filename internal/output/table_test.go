package output

import (
	"os"
	"strings"
	"testing"
)

// Styles render plain in tests so string assertions are stable.
func TestMain(m *testing.M) {
	SetNoColor(true)
	os.Exit(m.Run())
}

func TestPad(t *testing.T) {
	if got := pad("ab", 5); got != "ab   " {
		t.Errorf("pad = %q", got)
	}
	if got := pad("abcdef", 3); got != "abcdef" {
		t.Errorf("pad should not truncate: %q", got)
	}
}

func TestTable_Render(t *testing.T) {
	tbl := NewTable("Platform", "Total")
	tbl.AddRow("Kayak", "€450.00")
	tbl.AddRow("Expedia", "€488.08")

	out := tbl.Render()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("rendered %d lines, want header + rule + 2 rows:\n%s", len(lines), out)
	}

	if !strings.Contains(lines[0], "Platform") || !strings.Contains(lines[0], "Total") {
		t.Errorf("header = %q", lines[0])
	}
	if !strings.Contains(lines[1], "─") {
		t.Errorf("rule = %q", lines[1])
	}
	// Cells padded to the widest value in the column.
	if !strings.HasPrefix(lines[2], "Kayak     €450.00") {
		t.Errorf("row = %q", lines[2])
	}
}

func TestTable_ShortRow(t *testing.T) {
	tbl := NewTable("A", "B", "C")
	tbl.AddRow("x")

	out := tbl.Render()
	if !strings.Contains(out, "x") {
		t.Errorf("render = %q", out)
	}
}

func TestTable_Empty(t *testing.T) {
	var tbl Table
	if got := tbl.Render(); got != "" {
		t.Errorf("empty table rendered %q", got)
	}
}

func TestPrice(t *testing.T) {
	if got := Price(450, 450); got != "€450.00" {
		t.Errorf("equal price = %q", got)
	}
	if got := Price(400, 450); got != "€400.00" {
		t.Errorf("cheaper price = %q", got)
	}
}

func TestSavingsArrow(t *testing.T) {
	if got := SavingsArrow(0); got != "─" {
		t.Errorf("flat = %q", got)
	}
	if got := SavingsArrow(25.5); got != "▼ -€25.50" {
		t.Errorf("savings = %q", got)
	}
	if got := SavingsArrow(-12.34); got != "▲ +€12.34" {
		t.Errorf("markup = %q", got)
	}
}

func TestSavingsBar(t *testing.T) {
	// 25% of the 0-50% scale fills half a 10-wide bar.
	got := SavingsBar(25, 10)
	if !strings.Contains(got, strings.Repeat("█", 5)+strings.Repeat("░", 5)) {
		t.Errorf("bar = %q", got)
	}
	if !strings.Contains(got, "25%") {
		t.Errorf("label = %q", got)
	}

	// Percentages above the scale clamp at a full bar.
	full := SavingsBar(80, 10)
	if !strings.Contains(full, strings.Repeat("█", 10)) {
		t.Errorf("clamped bar = %q", full)
	}

	// Non-positive width falls back to the default.
	fallback := SavingsBar(0, 0)
	if !strings.Contains(fallback, strings.Repeat("░", 20)) {
		t.Errorf("fallback bar = %q", fallback)
	}
}

func TestLegality(t *testing.T) {
	if got := Legality(true); got != "legal" {
		t.Errorf("legal = %q", got)
	}
	if got := Legality(false); got != "against ToS" {
		t.Errorf("illegal = %q", got)
	}
}

func TestSection(t *testing.T) {
	got := Section("Route")
	if !strings.Contains(got, "Route") || !strings.Contains(got, "─") {
		t.Errorf("section = %q", got)
	}
}

func TestIsNoColor(t *testing.T) {
	if !IsNoColor() {
		t.Error("TestMain disabled color but IsNoColor reports false")
	}
}
