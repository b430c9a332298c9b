package webmap

import (
	"encoding/json"
	"html/template"
	"os"
	"path/filepath"
)

const leafletPage = `<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Grid topology comparison</title>
<link rel="stylesheet" href="https://unpkg.com/leaflet@1.9.4/dist/leaflet.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.css">
<link rel="stylesheet" href="https://unpkg.com/leaflet.markercluster@1.5.3/dist/MarkerCluster.Default.css">
<script src="https://unpkg.com/leaflet@1.9.4/dist/leaflet.js"></script>
<script src="https://unpkg.com/leaflet.markercluster@1.5.3/dist/leaflet.markercluster.js"></script>
<style>
html, body { margin: 0; padding: 0; height: 100%; }
#map { height: 100%; width: 100%; }
</style>
</head>
<body>
<div id="map"></div>
<script>
var map = L.map("map").setView([{{.CenterLat}}, {{.CenterLon}}], {{.Zoom}});
L.tileLayer("https://tile.openstreetmap.org/{z}/{x}/{y}.png", {
  maxZoom: 19,
  attribution: "&copy; OpenStreetMap contributors"
}).addTo(map);

var layers = {{.LayersJSON}};
var overlays = {};
layers.forEach(function (layer) {
  var group = L.markerClusterGroup();
  layer.markers.forEach(function (m) {
    L.circleMarker([m.lat, m.lon], { radius: 6, color: m.color, fillOpacity: 0.7 })
      .bindPopup(m.popup)
      .addTo(group);
  });
  layer.polylines.forEach(function (p) {
    L.polyline(p.points, { color: p.color })
      .bindPopup(p.popup)
      .addTo(group);
  });
  group.addTo(map);
  overlays[layer.name] = group;
});
L.control.layers(null, overlays).addTo(map);
</script>
</body>
</html>
`

var pageTemplate = template.Must(template.New("webmap").Parse(leafletPage))

// Save writes the map as one self-contained HTML page. Layer data is
// embedded as JSON; encoding/json escapes angle brackets, so substation
// names cannot break out of the script block.
func (m *Map) Save(path string) error {
	layers := m.Layers
	if layers == nil {
		layers = []*Layer{}
	}
	blob, err := json.Marshal(layers)
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	data := struct {
		CenterLat  float64
		CenterLon  float64
		Zoom       int
		LayersJSON template.JS
	}{m.CenterLat, m.CenterLon, m.Zoom, template.JS(blob)}

	if err := pageTemplate.Execute(f, data); err != nil {
		return err
	}
	return f.Close()
}
