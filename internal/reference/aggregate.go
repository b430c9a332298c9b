package reference

import (
	"github.com/open-energy-transition/pypsa-grid-analysis/internal"
)

// mergeParallel collapses rows sharing a line name into one logical
// circuit. Resistance and reactance combine as parallel equivalents,
// capacity sums, coordinates, voltage, susceptance and length average,
// substation names take the first group member. Groups keep first-seen
// order; a single-row group passes through unchanged.
func mergeParallel(rows []circuitRow) []internal.Circuit {
	order := make([]string, 0, len(rows))
	groups := map[string][]circuitRow{}
	for _, row := range rows {
		if _, seen := groups[row.lineName]; !seen {
			order = append(order, row.lineName)
		}
		groups[row.lineName] = append(groups[row.lineName], row)
	}

	out := make([]internal.Circuit, 0, len(order))
	for _, name := range order {
		group := groups[name]
		first := group[0]
		out = append(out, internal.Circuit{
			LineName: name,
			Sub1:     first.sub1,
			Sub2:     first.sub2,
			Lon1:     mean(group, func(r circuitRow) float64 { return r.lon1 }),
			Lat1:     mean(group, func(r circuitRow) float64 { return r.lat1 }),
			Lon2:     mean(group, func(r circuitRow) float64 { return r.lon2 }),
			Lat2:     mean(group, func(r circuitRow) float64 { return r.lat2 }),
			MVA:      sum(group, func(r circuitRow) float64 { return r.mva }),
			KV:       mean(group, func(r circuitRow) float64 { return r.kv }),
			R:        parallelEquivalent(group, func(r circuitRow) float64 { return r.r }),
			X:        parallelEquivalent(group, func(r circuitRow) float64 { return r.x }),
			B:        mean(group, func(r circuitRow) float64 { return r.b }),
			Length:   mean(group, func(r circuitRow) float64 { return r.length }),
			Parallel: len(group),
		})
	}
	return out
}

// parallelEquivalent is 1 / sum(1/v), the combined impedance of
// circuits wired in parallel. A single circuit passes through exactly,
// not via the reciprocal round trip.
func parallelEquivalent(group []circuitRow, value func(circuitRow) float64) float64 {
	if len(group) == 1 {
		return value(group[0])
	}
	reciprocals := 0.0
	for _, row := range group {
		reciprocals += 1 / value(row)
	}
	return 1 / reciprocals
}

func sum(group []circuitRow, value func(circuitRow) float64) float64 {
	total := 0.0
	for _, row := range group {
		total += value(row)
	}
	return total
}

func mean(group []circuitRow, value func(circuitRow) float64) float64 {
	return sum(group, value) / float64(len(group))
}
