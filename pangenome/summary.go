// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package pangenome

import (
	"slices"

	"gonum.org/v1/gonum/stat"
)

// Summary is a description of the distribution
// of diffusivity values.
type Summary struct {
	Families int
	Mean     float64
	Q1       float64
	Median   float64
	Q3       float64
	Max      int
}

// Summarize returns the summary of a diffusivity ranking.
func Summarize(rank []FamilyDiffusivity) Summary {
	if len(rank) == 0 {
		return Summary{}
	}

	x := make([]float64, 0, len(rank))
	var max int
	for _, f := range rank {
		x = append(x, float64(f.Diffusivity))
		if f.Diffusivity > max {
			max = f.Diffusivity
		}
	}
	slices.Sort(x)

	return Summary{
		Families: len(rank),
		Mean:     stat.Mean(x, nil),
		Q1:       stat.Quantile(0.25, stat.Empirical, x, nil),
		Median:   stat.Quantile(0.5, stat.Empirical, x, nil),
		Q3:       stat.Quantile(0.75, stat.Empirical, x, nil),
		Max:      max,
	}
}

// Bin is the number of families
// with a given diffusivity.
type Bin struct {
	Diffusivity int
	Families    int
}

// Histogram returns the number of families
// for each diffusivity value
// from 1 to the maximum diffusivity
// (families with no genomes are not counted).
func Histogram(rank []FamilyDiffusivity) []Bin {
	var max int
	for _, f := range rank {
		if f.Diffusivity > max {
			max = f.Diffusivity
		}
	}
	if max == 0 {
		return nil
	}

	bins := make([]Bin, max)
	for i := range bins {
		bins[i].Diffusivity = i + 1
	}
	for _, f := range rank {
		if f.Diffusivity == 0 {
			continue
		}
		bins[f.Diffusivity-1].Families++
	}
	return bins
}
