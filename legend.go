package heatmap

import (
	"fmt"

	"github.com/midbel/slices"
	"github.com/midbel/svg"
)

const DefaultSwatch = 18.0

// Legend draws one swatch per color of a quantize scaler, labelled with the
// sub domain it stands for.
type Legend struct {
	Title  string
	Scale  QuantizeScaler
	Swatch float64
	Format func(float64) string
}

func (g Legend) Render(left, top float64) svg.Element {
	var (
		grp    = svg.NewGroup(svg.WithID("legend"), svg.WithTranslate(left, top))
		size   = g.Swatch
		format = g.Format
		offset float64
	)
	grp.Class = append(grp.Class, "legend")
	if size <= 0 {
		size = DefaultSwatch
	}
	if format == nil {
		format = func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		}
	}
	if g.Title != "" {
		tx := svg.NewText(g.Title)
		tx.Pos = svg.NewPos(0, 0)
		tx.Font = svg.NewFont(FontSize)
		tx.Baseline = "hanging"
		grp.Append(tx.AsElement())
		offset = FontSize * 1.8
	}
	for i, color := range g.Scale.Colors {
		lo, hi, _ := g.Scale.Extent(color)

		cell := svg.NewGroup(svg.WithTranslate(0, offset+float64(i)*size))
		cell.Class = append(cell.Class, "swatch")

		var rec svg.Rect
		rec.Pos = svg.NewPos(0, 0)
		rec.Dim = svg.NewDim(size, size)
		rec.Fill = svg.NewFill(color)

		tx := svg.NewText(fmt.Sprintf("%s to %s", format(lo), format(hi)))
		tx.Pos = svg.NewPos(size+FontSize*0.5, size/2)
		tx.Font = svg.NewFont(FontSize * 0.9)
		tx.Baseline = "middle"

		cell.Append(rec.AsElement())
		cell.Append(tx.AsElement())
		grp.Append(cell.AsElement())
	}
	return grp.AsElement()
}

// Labels returns the text of every swatch, from the coldest to the hottest.
func (g Legend) Labels() []string {
	format := g.Format
	if format == nil {
		format = func(f float64) string {
			return fmt.Sprintf("%.2f", f)
		}
	}
	var list []string
	for _, color := range g.Scale.Colors {
		lo, hi, _ := g.Scale.Extent(color)
		list = append(list, fmt.Sprintf("%s to %s", format(lo), format(hi)))
	}
	return list
}

// Bounds gives the lowest and highest value covered by the legend.
func (g Legend) Bounds() (float64, float64) {
	if len(g.Scale.Colors) == 0 {
		return 0, 0
	}
	lo, _, _ := g.Scale.Extent(slices.Fst(g.Scale.Colors))
	_, hi, _ := g.Scale.Extent(slices.Lst(g.Scale.Colors))
	return lo, hi
}
