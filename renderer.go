package heatmap

import (
	"math"

	"github.com/midbel/svg"
)

// Data is anything the chart can draw inside its drawing area.
type Data interface {
	Render() svg.Element
}

// Cell is one value of a heatmap: X selects the column, Y the row and Value
// the color.
type Cell struct {
	Ident string
	Title string
	X     float64
	Y     string
	Value float64
}

// GridRenderer draws one unstroked rectangle per cell. Cells whose row is
// unknown to the Y scaler are skipped.
type GridRenderer struct {
	X      Scaler[float64]
	Y      Scaler[string]
	Color  QuantizeScaler
	Width  float64
	Height float64
}

func (r GridRenderer) Render(cells []Cell) svg.Element {
	grp := getBaseGroup("cells", "cells")
	for _, c := range cells {
		var (
			x = r.X.Scale(c.X)
			y = r.Y.Scale(c.Y)
		)
		if math.IsNaN(x) || math.IsNaN(y) {
			continue
		}
		var el svg.Rect
		el.Id = c.Ident
		el.Class = append(el.Class, "cell")
		el.Title = c.Title
		el.Pos = svg.NewPos(x, y)
		el.Dim = svg.NewDim(r.Width, r.Height)
		el.Fill = svg.NewFill(r.Color.Scale(c.Value))
		grp.Append(el.AsElement())
	}
	return grp.AsElement()
}

// Grid binds cells to the renderer drawing them.
type Grid struct {
	Cells    []Cell
	Renderer GridRenderer
}

func (g Grid) Render() svg.Element {
	return g.Renderer.Render(g.Cells)
}

func getBaseGroup(ident string, class ...string) svg.Group {
	var g svg.Group
	g.Id = ident
	g.Class = class
	return g
}
