package evo

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"

	"numevo/internal/numeral"
)

// GenerationDiagnostics summarises one evaluated generation over the
// per-individual component sums. Average matches PopulationAverage.
type GenerationDiagnostics struct {
	Generation     int     `json:"generation"`
	PopulationSize int     `json:"population_size"`
	Average        float64 `json:"average"`
	StdDev         float64 `json:"stddev"`
	Min            float64 `json:"min"`
	Max            float64 `json:"max"`
}

// Observer is notified as a run progresses.
type Observer interface {
	ObserveGeneration(d GenerationDiagnostics)
	ObserveStop(generations int, stop string)
}

func diagnose[E any, N numeral.Numeral](shape numeral.Shape[E, N], population []E, generation int) GenerationDiagnostics {
	d := GenerationDiagnostics{
		Generation:     generation,
		PopulationSize: len(population),
	}
	if len(population) == 0 {
		return d
	}
	sums := individualSums(shape, population)
	if len(sums) > 1 {
		d.Average, d.StdDev = stat.MeanStdDev(sums, nil)
	} else {
		d.Average = sums[0]
	}
	d.Min = floats.Min(sums)
	d.Max = floats.Max(sums)
	return d
}
