package pipeline

import (
	"fmt"

	"github.com/open-energy-transition/pypsa-grid-analysis/internal"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/network"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/webmap"
)

// Layer colors follow the published analysis: the first model gray, the
// second black, the operator's reference network red.
var modelColors = []string{"gray", "black"}

const referenceColor = "red"

// Compose draws both models and the merged reference table onto one
// layered map: a bus/marker layer and line and link polyline layers per
// model, plus reference substations and circuits, each independently
// toggleable. Only buses and branches in the target country are drawn;
// buses and links also need an AC or DC carrier.
func Compose(circuits []internal.Circuit, models []*network.Network, refName, country string, zoom int) (*webmap.Map, error) {
	if len(models) == 0 || len(models[0].BusIDs) == 0 {
		return nil, fmt.Errorf("no buses to center the map on")
	}
	first := models[0].Buses[models[0].BusIDs[0]]
	m := webmap.New(first.Y, first.X, zoom)

	for i, model := range models {
		addBusMarkers(m, model, country, modelColors[i%len(modelColors)])
	}
	addReferenceMarkers(m, circuits, refName)

	for i, model := range models {
		if err := addLinePolylines(m, model, country, modelColors[i%len(modelColors)]); err != nil {
			return nil, err
		}
	}
	for i, model := range models {
		if err := addLinkPolylines(m, model, country, modelColors[i%len(modelColors)]); err != nil {
			return nil, err
		}
	}
	addReferencePolylines(m, circuits, refName)

	return m, nil
}

func addBusMarkers(m *webmap.Map, model *network.Network, country, color string) {
	layer := m.Layer(model.Name + " buses")
	for _, id := range model.BusIDs {
		bus := model.Buses[id]
		if bus.Country != country || !acOrDC(bus.Carrier) {
			continue
		}
		layer.AddMarker(bus.Y, bus.X, bus.ID, color)
	}
}

// addReferenceMarkers draws one marker per distinct substation name,
// first occurrence wins for placement. The seen set is local to this
// pass.
func addReferenceMarkers(m *webmap.Map, circuits []internal.Circuit, refName string) {
	layer := m.Layer(refName + " buses")
	seen := map[string]struct{}{}
	add := func(name string, lat, lon float64) {
		if _, ok := seen[name]; ok {
			return
		}
		seen[name] = struct{}{}
		layer.AddMarker(lat, lon, name, referenceColor)
	}
	for _, circuit := range circuits {
		add(circuit.Sub1, circuit.Lat1, circuit.Lon1)
		add(circuit.Sub2, circuit.Lat2, circuit.Lon2)
	}
}

func addLinePolylines(m *webmap.Map, model *network.Network, country, color string) error {
	layer := m.Layer(model.Name + " lines")
	for _, line := range model.Lines {
		if line.Country != country {
			continue
		}
		points, err := branchPoints(model, line.ID, line.Bus0, line.Bus1)
		if err != nil {
			return err
		}
		popup := fmt.Sprintf("s_nom: %g <br>length: %g <br>kV: %g <br>r: %g<br>x: %g",
			line.SNom, line.Length, line.VNom, line.R, line.X)
		layer.AddPolyline(points, popup, color)
	}
	return nil
}

func addLinkPolylines(m *webmap.Map, model *network.Network, country, color string) error {
	layer := m.Layer(model.Name + " links")
	for _, link := range model.Links {
		if link.Country != country || !acOrDC(link.Carrier) {
			continue
		}
		points, err := branchPoints(model, link.ID, link.Bus0, link.Bus1)
		if err != nil {
			return err
		}
		popup := fmt.Sprintf("%s<br>p_nom: %g<br>p_nom_max: %g", link.ID, link.PNom, link.PNomMax)
		layer.AddPolyline(points, popup, color)
	}
	return nil
}

func addReferencePolylines(m *webmap.Map, circuits []internal.Circuit, refName string) {
	layer := m.Layer(refName + " lines")
	for _, circuit := range circuits {
		points := [][2]float64{{circuit.Lat1, circuit.Lon1}, {circuit.Lat2, circuit.Lon2}}
		popup := fmt.Sprintf("s_nom: %g <br>length: %g <br>kV: %g <br>r: %g<br>x: %g",
			circuit.MVA, circuit.Length, circuit.KV, circuit.R, circuit.X)
		layer.AddPolyline(points, popup, referenceColor)
	}
}

func branchPoints(model *network.Network, id, bus0, bus1 string) ([][2]float64, error) {
	from, ok := model.Bus(bus0)
	if !ok {
		return nil, fmt.Errorf("network %s: branch %s references unknown bus %s", model.Name, id, bus0)
	}
	to, ok := model.Bus(bus1)
	if !ok {
		return nil, fmt.Errorf("network %s: branch %s references unknown bus %s", model.Name, id, bus1)
	}
	return [][2]float64{{from.Y, from.X}, {to.Y, to.X}}, nil
}

func acOrDC(carrier string) bool {
	return carrier == "AC" || carrier == "DC"
}
