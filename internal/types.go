package internal

// Circuit is one merged logical circuit from the operator's static
// network model. Parallel physical circuits between the same two
// substations collapse into a single Circuit keyed by LineName.
type Circuit struct {
	LineName string
	Sub1     string
	Sub2     string
	Lon1     float64
	Lat1     float64
	Lon2     float64
	Lat2     float64
	MVA      float64
	KV       float64
	R        float64
	X        float64
	B        float64
	Length   float64
	Parallel int
}
