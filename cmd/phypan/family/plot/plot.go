// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package plot implements a command to draw
// the distribution of diffusivity
// of the gene families of a PhyPan project.
package plot

import (
	"fmt"
	"strconv"

	"github.com/js-arias/blind"
	"github.com/js-arias/command"
	"github.com/js-arias/phypan/pangenome"
	"github.com/js-arias/phypan/project"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

var Command = &command.Command{
	Usage: `plot [-o|--output <file>]
	[--width <value>] [--height <value>]
	<project-file>`,
	Short: "draw a histogram of family diffusivity",
	Long: `
Command plot reads the gene families of a PhyPan project and draws a
histogram with the number of families for each diffusivity value.

The argument of the command is the name of the project file.

By default the plot will be saved as 'diffusivity.png'. Use the flag
--output, or -o, to set a different file name. The format of the image is
defined by the file extension, valid formats include "png", "svg", "pdf", and
"jpg".

The flags --width and --height set the size of the image, in inches. By
default the image is 6x4 inches.
	`,
	SetFlags: setFlags,
	Run:      run,
}

var output string
var width float64
var height float64

func setFlags(c *command.Command) {
	c.Flags().StringVar(&output, "output", "diffusivity.png", "")
	c.Flags().StringVar(&output, "o", "diffusivity.png", "")
	c.Flags().Float64Var(&width, "width", 6, "")
	c.Flags().Float64Var(&height, "height", 4, "")
}

func run(c *command.Command, args []string) error {
	if len(args) < 1 {
		return c.UsageError("expecting project file")
	}

	p, err := project.Read(args[0])
	if err != nil {
		return err
	}
	t, err := p.Families()
	if err != nil {
		return err
	}

	bins := pangenome.Histogram(pangenome.Rank(t))
	if len(bins) == 0 {
		return fmt.Errorf("on project %q: no families with genomes", args[0])
	}

	values := make(plotter.Values, 0, len(bins))
	labels := make([]string, 0, len(bins))
	for _, b := range bins {
		values = append(values, float64(b.Families))
		labels = append(labels, strconv.Itoa(b.Diffusivity))
	}

	plt := plot.New()
	plt.Title.Text = "Gene family diffusivity"
	plt.X.Label.Text = "diffusivity (genomes)"
	plt.Y.Label.Text = "families"

	barWidth := vg.Length(width) * vg.Inch * 0.8 / vg.Length(len(bins)+2)
	bars, err := plotter.NewBarChart(values, barWidth)
	if err != nil {
		return err
	}
	bars.LineStyle.Width = vg.Length(0)
	bars.Color = blind.Sequential(blind.Iridescent, 0.6)
	plt.Add(bars)
	plt.NominalX(labels...)

	if err := plt.Save(vg.Length(width)*vg.Inch, vg.Length(height)*vg.Inch, output); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
