package webmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveRendersLayers(t *testing.T) {
	m := New(52.5, 13.4, 5)
	buses := m.Layer("50Hertz buses")
	buses.AddMarker(52.5, 13.4, "Berlin/Mitte", "red")
	lines := m.Layer("50Hertz lines")
	lines.AddPolyline([][2]float64{{52.5, 13.4}, {52.8, 12.9}}, "s_nom: 190.5", "red")

	out := filepath.Join(t.TempDir(), "out", "map.html")
	if err := m.Save(out); err != nil {
		t.Fatal(err)
	}

	blob, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	html := string(blob)
	for _, want := range []string{"50Hertz buses", "50Hertz lines", "L.control.layers", "markerClusterGroup", "Berlin/Mitte"} {
		if !strings.Contains(html, want) {
			t.Fatalf("output missing %q", want)
		}
	}
}

func TestSaveEscapesAngleBrackets(t *testing.T) {
	m := New(52.5, 13.4, 5)
	m.Layer("buses").AddMarker(52.5, 13.4, "<script>alert(1)</script>", "red")

	out := filepath.Join(t.TempDir(), "map.html")
	if err := m.Save(out); err != nil {
		t.Fatal(err)
	}
	blob, err := os.ReadFile(out)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(blob), "<script>alert(1)</script>") {
		t.Fatal("popup content embedded unescaped")
	}
}

func TestLayerReuseByName(t *testing.T) {
	m := New(0, 0, 5)
	a := m.Layer("buses")
	b := m.Layer("buses")
	if a != b {
		t.Fatal("same name returned distinct layers")
	}
	if len(m.Layers) != 1 {
		t.Fatalf("layers=%d", len(m.Layers))
	}
}
