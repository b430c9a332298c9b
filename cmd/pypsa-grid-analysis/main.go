package main

import (
	"fmt"
	"os"

	"github.com/open-energy-transition/pypsa-grid-analysis/internal/config"
	"github.com/open-energy-transition/pypsa-grid-analysis/internal/pipeline"
)

func main() {
	cfg, err := config.Load()
	must(err)

	result, err := pipeline.Run(cfg)
	must(err)
	fmt.Printf("comparison map written: circuits=%d layers=%d output=%s\n",
		result.Circuits, result.Layers, result.Output)
}

func must(err error) {
	if err == nil {
		return
	}
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}
