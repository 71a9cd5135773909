// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// the pangenome composition of the taxa
// of a PhyPan project.
package plot

import (
	"fmt"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/cmd/phypan/taxon/stats"
	"github.com/js-arias/phypan/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [-o|--output <file>]
	[--singleton <value>] [--core <value>]
	<project-file>`,
	Short: "draw the pangenome composition of the taxa",
	Long: `
Command plot reads the tree and the gene families of a PhyPan project and
draws a stacked bar chart with the number of singleton, dispensable, and core
gene families of each taxon.

The argument of the command is the name of the project file.

By default the thresholds are read from the analysis parameters of the
project. The flags --singleton and --core set different thresholds (see
'phypan taxon stats').

By default the plot will be saved as 'taxa.png'. Use the flag --output, or
-o, to set a different file name. The format of the image is defined by the
file extension.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var singleton int
var core int

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "taxa.png", "")
	c.Flags().StringVar(&output, "o", "taxa.png", "")
	c.Flags().IntVar(&singleton, "singleton", -1, "")
	c.Flags().IntVar(&core, "core", -1, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	ts, m, err := stats.Classify(c, p, singleton, core)
	if err != nil {
		return err
	}
	if len(ts) == 0 {
		return fmt.Errorf("on project %q: no taxa", args[0])
	}

	sv := make(plotter.Values, 0, len(ts))
	dv := make(plotter.Values, 0, len(ts))
	cv := make(plotter.Values, 0, len(ts))
	labels := make([]string, 0, len(ts))
	// the first bar is drawn at the bottom
	for i := len(ts) - 1; i >= 0; i-- {
		s := ts[i]
		sv = append(sv, float64(s.Singleton))
		dv = append(dv, float64(s.Dispensable))
		cv = append(cv, float64(s.Core))
		labels = append(labels, m.Apply(s.Taxon))
	}

	plt := plot.New()
	plt.Title.Text = "Pangenome composition"
	plt.X.Label.Text = "gene families"

	barWidth := vg.Points(10)
	height := vg.Length(len(ts))*barWidth*1.5 + 2*vg.Inch

	cats := []struct {
		name string
		vals plotter.Values
		col  float64
	}{
		{"core", cv, 0.9},
		{"dispensable", dv, 0.5},
		{"singleton", sv, 0.1},
	}
	var prev *plotter.BarChart
	for _, ct := range cats {
		bars, err := plotter.NewBarChart(ct.vals, barWidth)
		if err != nil {
			return err
		}
		bars.Horizontal = true
		bars.LineStyle.Width = vg.Length(0)
		bars.Color = blind.Sequential(blind.Iridescent, ct.col)
		if prev != nil {
			bars.StackOn(prev)
		}
		plt.Add(bars)
		plt.Legend.Add(ct.name, bars)
		prev = bars
	}
	plt.Legend.Top = true
	plt.NominalY(labels...)

	if err := plt.Save(8*vg.Inch, height, output); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
