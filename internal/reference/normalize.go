package reference

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/open-energy-transition/pypsa-grid-analysis/internal"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/util"
)

// The twelve columns of interest in the operator's export, with the
// canonical single-level names they collapse to. The "Fixed" column is
// the continuous current rating in amps; it becomes the MVA column once
// capacity is derived.
var referenceColumns = []struct {
	Key  HeaderKey
	Name string
}{
	{HeaderKey{"Substation_1", "Full_name"}, "Sub1"},
	{HeaderKey{"Longitude_Substation_1", ""}, "lon1"},
	{HeaderKey{"Latitude_Substation_1", ""}, "lat1"},
	{HeaderKey{"Substation_2", "Full_name"}, "Sub2"},
	{HeaderKey{"Longitude_Substation_2", ""}, "lon2"},
	{HeaderKey{"Latitude_Substation_2", ""}, "lat2"},
	{HeaderKey{"", "Fixed"}, "MVA"},
	{HeaderKey{"", "Voltage_level(kV)"}, "kV"},
	{HeaderKey{"Electrical Parameters", "Resistance_R(Ω)"}, "r"},
	{HeaderKey{"", "Reactance_X(Ω)"}, "x"},
	{HeaderKey{"", "Susceptance_B(μS)"}, "b"},
	{HeaderKey{"", "Length_(km)"}, "length"},
}

type circuitRow struct {
	lineName string
	sub1     string
	sub2     string
	lon1     float64
	lat1     float64
	lon2     float64
	lat2     float64
	mva      float64
	kv       float64
	r        float64
	x        float64
	b        float64
	length   float64
}

// Normalize flattens the two-level-header table to the canonical
// schema, derives thermal capacity from the current rating, keys every
// row by the sorted endpoint pair and merges parallel circuits. The
// capacity formula assumes a three-phase balanced system; single-phase
// rows would come out wrong without complaint.
func Normalize(table *RawTable) ([]internal.Circuit, error) {
	keys := make([]HeaderKey, len(referenceColumns))
	names := make([]string, len(referenceColumns))
	for i, col := range referenceColumns {
		keys[i] = col.Key
		names[i] = col.Name
	}

	frame, err := table.Select(keys, names)
	if err != nil {
		return nil, err
	}
	frame.DropDuplicateColumns()

	rows, err := parseRows(frame)
	if err != nil {
		return nil, err
	}

	for i := range rows {
		// from continuous current rating (A) to apparent power (MVA)
		rows[i].mva = rows[i].mva * rows[i].kv / 1e3 * math.Sqrt(3)
		rows[i].lineName = lineName(rows[i].sub1, rows[i].sub2)
	}

	return mergeParallel(rows), nil
}

func parseRows(frame *Frame) ([]circuitRow, error) {
	str := func(name string) ([]string, error) {
		col, ok := frame.Column(name)
		if !ok {
			return nil, fmt.Errorf("reference table: missing column %s", name)
		}
		return col, nil
	}
	num := func(name string) ([]float64, error) {
		col, err := str(name)
		if err != nil {
			return nil, err
		}
		out := make([]float64, len(col))
		for i, cell := range col {
			parsed, err := util.ParseFloat(cell)
			if err != nil {
				return nil, fmt.Errorf("reference table: row %d column %s: %w", i+1, name, err)
			}
			out[i] = parsed
		}
		return out, nil
	}

	sub1, err := str("Sub1")
	if err != nil {
		return nil, err
	}
	sub2, err := str("Sub2")
	if err != nil {
		return nil, err
	}

	numeric := map[string][]float64{}
	for _, name := range []string{"lon1", "lat1", "lon2", "lat2", "MVA", "kV", "r", "x", "b", "length"} {
		col, err := num(name)
		if err != nil {
			return nil, err
		}
		numeric[name] = col
	}

	rows := make([]circuitRow, len(sub1))
	for i := range rows {
		rows[i] = circuitRow{
			sub1:   strings.TrimSpace(sub1[i]),
			sub2:   strings.TrimSpace(sub2[i]),
			lon1:   numeric["lon1"][i],
			lat1:   numeric["lat1"][i],
			lon2:   numeric["lon2"][i],
			lat2:   numeric["lat2"][i],
			mva:    numeric["MVA"][i],
			kv:     numeric["kV"][i],
			r:      numeric["r"][i],
			x:      numeric["x"][i],
			b:      numeric["b"][i],
			length: numeric["length"][i],
		}
	}
	return rows, nil
}

// lineName joins the two endpoint names in lexicographic order so a
// circuit A-B and its reverse B-A collapse to the same key.
func lineName(sub1, sub2 string) string {
	pair := []string{sub1, sub2}
	sort.Strings(pair)
	return strings.Join(pair, " ")
}
