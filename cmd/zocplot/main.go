// Copyright ©2026 The zoc Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// The zocplot program renders a 2D Z-order curve traversal over a grid and
// highlights the elements a range query returns, for visual inspection of
// how LITMAX/BIGMIN skip gaps outside a query box. Its flag set and plot
// assembly follow gonum.org/v1/gonum/dsp/window/cmd/leakage.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"sort"

	"github.com/twittner/zoc"
	"github.com/twittner/zoc/search"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
)

type cell struct {
	x, y int
	z    zoc.Z[uint8]
}

func (c cell) Z() zoc.Z[uint8] { return c.z }

func main() {
	n := flag.Int("n", 16, "grid side length (n x n points)")
	qx0 := flag.Int("qx0", 3, "query box low x")
	qy0 := flag.Int("qy0", 3, "query box low y")
	qx1 := flag.Int("qx1", 9, "query box high x")
	qy1 := flag.Int("qy1", 9, "query box high y")
	out := flag.String("o", "zorder.svg", "output file (formats eps, jpg, jpeg, pdf, png, svg, tex or tif)")
	width := flag.Float64("width", 12, "specify plot width (cm)")
	height := flag.Float64("height", 12, "specify plot height (cm)")
	flag.Parse()

	if *n <= 0 || *n > 256 {
		log.Fatalf("zocplot: n must be in (0, 256], got %d", *n)
	}

	var cells []cell
	for x := 0; x < *n; x++ {
		for y := 0; y < *n; y++ {
			cells = append(cells, cell{x: x, y: y, z: zoc.New2[uint8](uint8(y), uint8(x))})
		}
	}
	sort.Slice(cells, func(i, j int) bool { return cells[i].z.Less(cells[j].z) })

	path := make(plotter.XYs, len(cells))
	for i, c := range cells {
		path[i] = plotter.XY{X: float64(c.x), Y: float64(c.y)}
	}

	low := zoc.New2[uint8](uint8(*qy0), uint8(*qx0))
	high := zoc.New2[uint8](uint8(*qy1), uint8(*qx1))

	var hits plotter.XYs
	r := search.New(cells, low, high)
	for {
		c, ok := r.Next()
		if !ok {
			break
		}
		hits = append(hits, plotter.XY{X: float64(c.x), Y: float64(c.y)})
	}

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Z-order traversal of a %dx%d grid", *n, *n)
	p.X.Label.Text = "x"
	p.Y.Label.Text = "y"
	p.Add(plotter.NewGrid())

	curve, err := plotter.NewLine(path)
	if err != nil {
		log.Fatalf("zocplot: curve: %v", err)
	}
	curve.Color = color.RGBA{R: 0x40, G: 0x80, B: 0xff, A: 0xff}

	hitScatter, err := plotter.NewScatter(hits)
	if err != nil {
		log.Fatalf("zocplot: scatter: %v", err)
	}
	hitScatter.Color = color.RGBA{R: 0xff, A: 0xff}
	hitScatter.Radius = vg.Points(3)

	p.Add(curve, hitScatter)
	p.Legend.Add("traversal order", curve)
	p.Legend.Add(fmt.Sprintf("range [%d,%d]-[%d,%d]", *qx0, *qy0, *qx1, *qy1), hitScatter)
	p.Legend.Top = true

	if err := p.Save(vg.Length(*width)*vg.Centimeter, vg.Length(*height)*vg.Centimeter, *out); err != nil {
		log.Fatalf("zocplot: saving plot: %v", err)
	}
}
