// Package network loads PyPSA network snapshots from their CSV-folder
// export and derives the attributes the comparison map consumes.
package network

import "fmt"

type Bus struct {
	ID      string
	X       float64 // longitude
	Y       float64 // latitude
	VNom    float64
	Carrier string
	Country string
}

type Line struct {
	ID      string
	Bus0    string
	Bus1    string
	SNom    float64
	R       float64
	X       float64
	B       float64
	Length  float64
	Country string

	// derived by CalculateDependentValues
	VNom float64
	RPu  float64
	XPu  float64
	BPu  float64
}

type Link struct {
	ID      string
	Bus0    string
	Bus1    string
	PNom    float64
	PNomMax float64
	Carrier string
	Length  float64
	Country string
}

type Network struct {
	Name   string
	BusIDs []string
	Buses  map[string]Bus
	Lines  []Line
	Links  []Link
}

func (n *Network) Bus(id string) (Bus, bool) {
	bus, ok := n.Buses[id]
	return bus, ok
}

// AnnotateCountries tags every line and link with the country of its
// bus0 bus. A branch spanning a border is tagged by its origin side
// only. A dangling bus reference is fatal.
func (n *Network) AnnotateCountries() error {
	for i, line := range n.Lines {
		bus, ok := n.Buses[line.Bus0]
		if !ok {
			return fmt.Errorf("network %s: line %s references unknown bus %s", n.Name, line.ID, line.Bus0)
		}
		n.Lines[i].Country = bus.Country
	}
	for i, link := range n.Links {
		bus, ok := n.Buses[link.Bus0]
		if !ok {
			return fmt.Errorf("network %s: link %s references unknown bus %s", n.Name, link.ID, link.Bus0)
		}
		n.Links[i].Country = bus.Country
	}
	return nil
}

// CalculateDependentValues fills in the derived electrical attributes
// pypsa computes after load: the nominal voltage a line inherits from
// its bus0 bus and the per-unit impedances on a v_nom² base.
func (n *Network) CalculateDependentValues() error {
	for i, line := range n.Lines {
		bus, ok := n.Buses[line.Bus0]
		if !ok {
			return fmt.Errorf("network %s: line %s references unknown bus %s", n.Name, line.ID, line.Bus0)
		}
		vn := bus.VNom
		n.Lines[i].VNom = vn
		if vn != 0 {
			n.Lines[i].RPu = line.R / (vn * vn)
			n.Lines[i].XPu = line.X / (vn * vn)
			n.Lines[i].BPu = line.B * vn * vn
		}
	}
	return nil
}
