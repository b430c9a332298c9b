// Package webmap builds a self-contained Leaflet map with named,
// toggleable overlay layers, the way folium does it: data serialized
// into one HTML page that pulls Leaflet and the markercluster plugin
// from CDN.
package webmap

type Map struct {
	CenterLat float64
	CenterLon float64
	Zoom      int
	Layers    []*Layer
}

type Layer struct {
	Name      string     `json:"name"`
	Markers   []Marker   `json:"markers"`
	Polylines []Polyline `json:"polylines"`
}

type Marker struct {
	Lat   float64 `json:"lat"`
	Lon   float64 `json:"lon"`
	Popup string  `json:"popup"`
	Color string  `json:"color"`
}

type Polyline struct {
	Points [][2]float64 `json:"points"` // lat, lon pairs
	Popup  string       `json:"popup"`
	Color  string       `json:"color"`
}

func New(centerLat, centerLon float64, zoom int) *Map {
	return &Map{CenterLat: centerLat, CenterLon: centerLon, Zoom: zoom}
}

// Layer returns the named overlay, creating and registering it on first
// use. Layers keep creation order in the map's layer control.
func (m *Map) Layer(name string) *Layer {
	for _, layer := range m.Layers {
		if layer.Name == name {
			return layer
		}
	}
	layer := &Layer{Name: name, Markers: []Marker{}, Polylines: []Polyline{}}
	m.Layers = append(m.Layers, layer)
	return layer
}

func (l *Layer) AddMarker(lat, lon float64, popup, color string) {
	l.Markers = append(l.Markers, Marker{Lat: lat, Lon: lon, Popup: popup, Color: color})
}

func (l *Layer) AddPolyline(points [][2]float64, popup, color string) {
	l.Polylines = append(l.Polylines, Polyline{Points: points, Popup: popup, Color: color})
}
