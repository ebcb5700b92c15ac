package heatmap

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPadding(t *testing.T) {
	t.Parallel()

	c := Chart{
		Width:  1200,
		Height: 500,
		Padding: Padding{
			Top:    30,
			Right:  170,
			Bottom: 20,
			Left:   100,
		},
	}
	assert.Equal(t, 930.0, c.DrawingWidth())
	assert.Equal(t, 450.0, c.DrawingHeight())
}

func TestChartRender(t *testing.T) {
	t.Parallel()

	var (
		xscale = NumberScaler(NumberDomain(2000, 2002), NewRange(0, 300))
		yscale = BandScaler([]string{"January", "February"}, NewRange(0, 200))
		colors = Quantize(NumberDomain(1, 4), Temperature)
		cells  = []Cell{
			{Ident: "c-0", Title: "first", X: 2000, Y: "January", Value: 1},
			{Ident: "c-1", Title: "last", X: 2002, Y: "February", Value: 4},
			{Ident: "c-2", Title: "lost", X: 2001, Y: "March", Value: 2},
		}
		chart = Chart{
			Width:   400,
			Height:  250,
			Padding: Padding{Top: 25, Left: 50, Bottom: 25, Right: 50},
			Left: CategoryAxis{
				Orientation: OrientLeft,
				Ident:       "y-axis",
				Scaler:      yscale,
			},
			Bottom: NumberAxis{
				Orientation: OrientBottom,
				Ident:       "x-axis",
				Ticks:       2,
				Scaler:      xscale,
			},
		}
	)
	chart.Legend.Legend = Legend{
		Title: "range",
		Scale: colors,
	}
	grid := Grid{
		Cells: cells,
		Renderer: GridRenderer{
			X:      xscale,
			Y:      yscale,
			Color:  colors,
			Width:  150,
			Height: yscale.Space(),
		},
	}

	var str strings.Builder
	require.NoError(t, chart.Render(&str, grid))

	out := str.String()
	assert.Contains(t, out, "<svg")
	for _, ident := range []string{"y-axis", "x-axis", "legend", "cells", "c-0", "c-1"} {
		assert.Contains(t, out, ident)
	}
	assert.NotContains(t, out, "c-2")
	assert.Contains(t, out, "January")
	assert.Contains(t, out, "2002")
	assert.Contains(t, out, Temperature[0])
	assert.Contains(t, out, Temperature[14])
}

func TestLegend(t *testing.T) {
	t.Parallel()

	g := Legend{
		Scale: Quantize(NumberDomain(0, 15), Temperature),
	}

	labels := g.Labels()
	require.Len(t, labels, 15)
	assert.Equal(t, "0.00 to 1.00", labels[0])
	assert.Equal(t, "14.00 to 15.00", labels[14])

	lo, hi := g.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 15.0, hi)

	lo, hi = Legend{}.Bounds()
	assert.Equal(t, 0.0, lo)
	assert.Equal(t, 0.0, hi)
}
