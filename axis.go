package heatmap

import (
	"strconv"

	"github.com/midbel/svg"
)

const (
	FontSize  = 12.0
	GridColor = "#f1f2f3"
)

type Orientation int

const (
	OrientTop Orientation = 1 << iota
	OrientRight
	OrientBottom
	OrientLeft
)

func (o Orientation) Vertical() bool {
	return o == OrientLeft || o == OrientRight
}

func (o Orientation) Reverse() bool {
	return o == OrientRight || o == OrientTop
}

// Axis draws itself along a side of the drawing area. length is the size of
// the side it follows, size the size of the area across it.
type Axis interface {
	Render(length, size, left, top float64) svg.Element
}

// NumberAxis draws one tick per round value of its scaler with a grid line
// crossing the whole drawing area.
type NumberAxis struct {
	Orientation
	Ident      string
	Ticks      int
	Scaler     Scaler[float64]
	Format     func(float64) string
	TickOffset float64
	GridColor  string
	WithGrid   bool
}

func (a NumberAxis) Render(length, size, left, top float64) svg.Element {
	g := axisGroup(a.Ident, left, top)

	var (
		font   = svg.NewFont(FontSize)
		format = a.Format
		stroke = svg.NewStroke(gridColor(a.GridColor), 1)
	)
	if format == nil {
		format = func(f float64) string {
			return strconv.FormatFloat(f, 'f', -1, 64)
		}
	}
	for _, f := range a.Scaler.Values(a.Ticks) {
		var (
			pos = a.Scaler.Scale(f)
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		grp.Class = append(grp.Class, "tick")
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithGrid {
			line := gridLine(a.Orientation, size, stroke)
			grp.Append(line.AsElement())
		}
		text := tickText(a.Orientation, format(f), a.TickOffset, font)
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

// CategoryAxis draws one tick per band of its scaler, centered in the band.
type CategoryAxis struct {
	Orientation
	Ident      string
	Scaler     Scaler[string]
	TickOffset float64
	GridColor  string
	WithGrid   bool
}

func (a CategoryAxis) Render(length, size, left, top float64) svg.Element {
	g := axisGroup(a.Ident, left, top)

	var (
		align  = a.Scaler.Space() / 2
		font   = svg.NewFont(FontSize)
		stroke = svg.NewStroke(gridColor(a.GridColor), 1)
	)
	for _, s := range a.Scaler.Values(0) {
		var (
			pos = a.Scaler.Scale(s) + align
			grp = svg.NewGroup(svg.WithTranslate(pos, 0))
		)
		grp.Class = append(grp.Class, "tick")
		if a.Vertical() {
			grp.Transform.TX = 0
			grp.Transform.TY = pos
		}
		if a.WithGrid {
			line := gridLine(a.Orientation, size, stroke)
			grp.Append(line.AsElement())
		}
		text := tickText(a.Orientation, s, a.TickOffset, font)
		grp.Append(text.AsElement())
		g.Append(grp.AsElement())
	}
	return g.AsElement()
}

func axisGroup(ident string, left, top float64) svg.Group {
	opts := []svg.Option{
		svg.WithTranslate(left, top),
	}
	if ident != "" {
		opts = append(opts, svg.WithID(ident))
	}
	g := svg.NewGroup(opts...)
	g.Class = append(g.Class, "axis")
	return g
}

func gridColor(color string) string {
	if color == "" {
		return GridColor
	}
	return color
}

// gridLine goes from the axis into the drawing area.
func gridLine(orient Orientation, size float64, stroke svg.Stroke) svg.Line {
	var (
		pos1 = svg.NewPos(0, 0)
		pos2 = svg.NewPos(0, -size)
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		pos2.X, pos2.Y = size, 0
	case orient.Vertical() && orient.Reverse():
		pos2.X, pos2.Y = -size, 0
	case !orient.Vertical() && orient.Reverse():
		pos2.Y = size
	default:
	}
	line := svg.NewLine(pos1, pos2)
	line.Stroke = stroke
	return line
}

func tickText(orient Orientation, str string, offset float64, font svg.Font) svg.Text {
	var (
		base   = "hanging"
		anchor = "middle"
		x, y   = 0.0, offset
	)
	switch {
	case orient.Vertical() && !orient.Reverse():
		base = "middle"
		anchor = "end"
		x, y = -offset, 0
	case orient.Vertical() && orient.Reverse():
		base = "middle"
		anchor = "start"
		x, y = offset, 0
	case !orient.Vertical() && orient.Reverse():
		base = "auto"
		y = -offset
	default:
	}
	text := svg.NewText(str)
	text.Pos = svg.NewPos(x, y)
	text.Font = font
	text.Anchor = anchor
	text.Baseline = base
	return text
}
