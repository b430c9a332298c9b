package pipeline

import (
	"fmt"

	"github.com/open-energy-transition/pypsa-grid-analysis/internal/config"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/network"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/reference"
)

type Result struct {
	Circuits int
	Layers   int
	Output   string
}

// Run executes the whole comparison: normalize the operator table, load
// and annotate both PyPSA snapshots, compose the layered map and write
// the HTML artifact. Any failure aborts the run; no partial output is
// written.
func Run(cfg config.Config) (Result, error) {
	table, err := reference.ReadTable(cfg.ReferenceTablePath)
	if err != nil {
		return Result{}, fmt.Errorf("read reference table: %w", err)
	}
	circuits, err := reference.Normalize(table)
	if err != nil {
		return Result{}, fmt.Errorf("normalize reference table: %w", err)
	}

	models := make([]*network.Network, 0, 2)
	for _, source := range []struct {
		name string
		dir  string
	}{
		{"PyPSA-Eur", cfg.EurModelDir},
		{"PyPSA-Earth", cfg.EarthModelDir},
	} {
		model, err := network.Load(source.name, source.dir)
		if err != nil {
			return Result{}, fmt.Errorf("load %s: %w", source.name, err)
		}
		if err := model.AnnotateCountries(); err != nil {
			return Result{}, err
		}
		if err := model.CalculateDependentValues(); err != nil {
			return Result{}, err
		}
		models = append(models, model)
	}

	m, err := Compose(circuits, models, cfg.ReferenceName, cfg.Country, cfg.MapZoom)
	if err != nil {
		return Result{}, err
	}
	if err := m.Save(cfg.OutputPath); err != nil {
		return Result{}, fmt.Errorf("write map: %w", err)
	}

	return Result{Circuits: len(circuits), Layers: len(m.Layers), Output: cfg.OutputPath}, nil
}
