package reference

import (
	"math"
	"strings"
	"testing"

	"github.com/open-energy-transition/pypsa-grid-analysis/internal"
)

func normalizeRows(t *testing.T, dataRows ...[]string) ([]internal.Circuit, error) {
	t.Helper()
	rows := [][]string{fixtureGroups, fixtureFields}
	rows = append(rows, dataRows...)
	table, err := ReadTable(writeCSV(t, rows))
	if err != nil {
		t.Fatal(err)
	}
	return Normalize(table)
}

func TestNormalizeCapacityDerivation(t *testing.T) {
	circuits, err := normalizeRows(t,
		fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "1000", "110", "10", "10", "1", "40"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(circuits) != 1 {
		t.Fatalf("len=%d", len(circuits))
	}
	want := 1000 * 110 / 1e3 * math.Sqrt(3)
	if math.Abs(circuits[0].MVA-want) > 1e-9 {
		t.Fatalf("MVA=%v want %v", circuits[0].MVA, want)
	}
	if math.Abs(circuits[0].MVA-190.53) > 0.01 {
		t.Fatalf("MVA=%v not near 190.53", circuits[0].MVA)
	}
}

func TestNormalizeMergesReversedEndpoints(t *testing.T) {
	circuits, err := normalizeRows(t,
		fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "1000", "110", "10", "8", "1", "40"),
		fixtureRow("Beta", "12.9", "52.8", "Alpha", "12.1", "52.3", "1000", "110", "10", "8", "1", "40"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if len(circuits) != 1 {
		t.Fatalf("expected 1 merged circuit, got %d", len(circuits))
	}
	got := circuits[0]
	if got.LineName != "Alpha Beta" {
		t.Fatalf("lineName=%q", got.LineName)
	}
	if got.R != 5 {
		t.Fatalf("parallel r=%v want 5", got.R)
	}
	if got.X != 4 {
		t.Fatalf("parallel x=%v want 4", got.X)
	}
	wantMVA := 2 * (1000 * 110 / 1e3 * math.Sqrt(3))
	if math.Abs(got.MVA-wantMVA) > 1e-9 {
		t.Fatalf("summed MVA=%v want %v", got.MVA, wantMVA)
	}
	if got.KV != 110 || got.B != 1 || got.Length != 40 {
		t.Fatalf("averaged fields: kV=%v b=%v length=%v", got.KV, got.B, got.Length)
	}
	if got.Parallel != 2 {
		t.Fatalf("parallel=%d", got.Parallel)
	}
}

func TestNormalizeSingleCircuitPassesThrough(t *testing.T) {
	circuits, err := normalizeRows(t,
		fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "1000", "110", "7.5", "3", "1", "40"),
	)
	if err != nil {
		t.Fatal(err)
	}
	got := circuits[0]
	if got.R != 7.5 || got.X != 3 || got.Length != 40 || got.Parallel != 1 {
		t.Fatalf("single circuit changed: %+v", got)
	}
}

func TestNormalizeUniqueLineNames(t *testing.T) {
	circuits, err := normalizeRows(t,
		fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "1000", "110", "10", "10", "1", "40"),
		fixtureRow("Beta", "12.9", "52.8", "Alpha", "12.1", "52.3", "1000", "110", "10", "10", "1", "40"),
		fixtureRow("Beta", "12.9", "52.8", "Gamma", "13.3", "53.1", "2000", "220", "4", "6", "2", "80"),
	)
	if err != nil {
		t.Fatal(err)
	}
	seen := map[string]bool{}
	for _, c := range circuits {
		if seen[c.LineName] {
			t.Fatalf("duplicate line name %q after merge", c.LineName)
		}
		seen[c.LineName] = true
	}
	if len(circuits) != 2 {
		t.Fatalf("len=%d", len(circuits))
	}
}

func TestNormalizeGermanLocaleNumbers(t *testing.T) {
	circuits, err := normalizeRows(t,
		fixtureRow("Alpha", "12,1", "52,3", "Beta", "12,9", "52,8", "1 000", "110", "7,5", "3", "1", "40,5"),
	)
	if err != nil {
		t.Fatal(err)
	}
	got := circuits[0]
	if got.Lat1 != 52.3 || got.Lon1 != 12.1 || got.R != 7.5 || got.Length != 40.5 {
		t.Fatalf("locale parsing: %+v", got)
	}
}

func TestNormalizeMissingColumnFailsLoudly(t *testing.T) {
	groups := append([]string{}, fixtureGroups...)
	fields := append([]string{}, fixtureFields...)
	// drop the reactance column
	groups = append(groups[:9], groups[10:]...)
	fields = append(fields[:9], fields[10:]...)
	row := fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "1000", "110", "10", "1", "40", "")
	row = row[:11]

	table, err := ReadTable(writeCSV(t, [][]string{groups, fields, row}))
	if err != nil {
		t.Fatal(err)
	}
	_, err = Normalize(table)
	if err == nil {
		t.Fatal("expected missing-column error")
	}
	if !strings.Contains(err.Error(), "Reactance_X") {
		t.Fatalf("error does not name the missing pair: %v", err)
	}
}

func TestNormalizeBadNumericFailsLoudly(t *testing.T) {
	_, err := normalizeRows(t,
		fixtureRow("Alpha", "12.1", "52.3", "Beta", "12.9", "52.8", "n/a", "110", "10", "10", "1", "40"),
	)
	if err == nil {
		t.Fatal("expected numeric error")
	}
	if !strings.Contains(err.Error(), "MVA") {
		t.Fatalf("error does not name the column: %v", err)
	}
}
