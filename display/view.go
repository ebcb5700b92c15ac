package display

import (
	"bytes"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/midbel/heatmap"
	"github.com/midbel/heatmap/temperature"
)

const (
	Title       = "Monthly Global Land-Surface Temperature"
	Description = "1753 - 2015 | base temperature 8.66 °C"
	AxisLabel   = "Year"
	LegendTitle = "Temperature Range in °C"

	Width  = 1200
	Height = 500
)

var Margin = heatmap.Padding{
	Top:    30,
	Right:  170,
	Bottom: 20,
	Left:   100,
}

const (
	monthCount = 12
	leftOffset = 12
	downOffset = 8
	cellPrefix = "cell-"
)

// view holds the scales and the chart built from a loaded dataset.
type view struct {
	X     heatmap.Scaler[float64]
	Y     heatmap.Scaler[string]
	Color heatmap.QuantizeScaler
	Chart heatmap.Chart
	Grid  heatmap.Grid
}

func newView(ds temperature.Dataset) view {
	var (
		chart = heatmap.Chart{
			Width:   Width,
			Height:  Height,
			Padding: Margin,
		}
		width  = chart.DrawingWidth()
		height = chart.DrawingHeight()
	)
	fst, lst := ds.Years()
	var (
		xscale = heatmap.NumberScaler(heatmap.NumberDomain(float64(fst), float64(lst)), heatmap.NewRange(0, width))
		yscale = heatmap.BandScaler(ds.Months(), heatmap.NewRange(0, height))
		temps  = heatmap.Extent(ds.Records, func(r temperature.Record) float64 { return r.Temp })
		colors = heatmap.Quantize(temps, heatmap.Temperature)
	)
	chart.Left = heatmap.CategoryAxis{
		Orientation: heatmap.OrientLeft,
		Ident:       "y-axis",
		Scaler:      yscale,
		TickOffset:  leftOffset,
		WithGrid:    true,
	}
	chart.Bottom = heatmap.NumberAxis{
		Orientation: heatmap.OrientBottom,
		Ident:       "x-axis",
		Ticks:       heatmap.DefaultTicks,
		Scaler:      xscale,
		TickOffset:  downOffset,
		WithGrid:    true,
	}
	chart.Legend.Legend = heatmap.Legend{
		Title: LegendTitle,
		Scale: colors,
	}
	chart.Legend.Left = width + 130
	chart.Legend.Top = 50

	cellWidth := width
	if span := lst - fst; span > 0 {
		cellWidth = width / float64(span)
	}
	grid := heatmap.Grid{
		Cells: makeCells(ds),
		Renderer: heatmap.GridRenderer{
			X:      xscale,
			Y:      yscale,
			Color:  colors,
			Width:  cellWidth,
			Height: height / monthCount,
		},
	}
	return view{
		X:     xscale,
		Y:     yscale,
		Color: colors,
		Chart: chart,
		Grid:  grid,
	}
}

func (v view) Render(w io.Writer) error {
	return v.Chart.Render(w, v.Grid)
}

func (v view) svg() (string, error) {
	var buf bytes.Buffer
	if err := v.Render(&buf); err != nil {
		return "", err
	}
	return buf.String(), nil
}

func makeCells(ds temperature.Dataset) []heatmap.Cell {
	list := make([]heatmap.Cell, 0, ds.Len())
	for i, r := range ds.Records {
		c := heatmap.Cell{
			Ident: cellIdent(i),
			Title: r.String(),
			X:     float64(r.Year),
			Y:     r.MonthName,
			Value: r.Temp,
		}
		list = append(list, c)
	}
	return list
}

func cellIdent(i int) string {
	return fmt.Sprintf("%s%d", cellPrefix, i)
}

func cellIndex(ident string) (int, bool) {
	str, ok := strings.CutPrefix(ident, cellPrefix)
	if !ok {
		return 0, false
	}
	i, err := strconv.Atoi(str)
	if err != nil {
		return 0, false
	}
	return i, true
}
