package display

import (
	"fmt"
	"html/template"
	"io"
	"strconv"

	"github.com/midbel/heatmap/temperature"
)

type TooltipState int

const (
	TooltipHidden TooltipState = iota
	TooltipVisible
)

func (s TooltipState) String() string {
	if s == TooltipVisible {
		return "visible"
	}
	return "hidden"
}

// the tooltip is drawn at this distance from the pointer.
const (
	TooltipOffsetX = 15
	TooltipOffsetY = -25
)

type Pointer struct {
	X float64
	Y float64
}

// Tooltip follows the pointer and shows the hovered record, if any.
type Tooltip struct {
	pointer Pointer
	record  temperature.Record
	hovered bool
}

func (t *Tooltip) Enter(r temperature.Record) {
	t.record = r
	t.hovered = true
}

func (t *Tooltip) Leave() {
	t.record = temperature.Record{}
	t.hovered = false
}

func (t *Tooltip) Move(x, y float64) {
	t.pointer = Pointer{
		X: x,
		Y: y,
	}
}

func (t Tooltip) State() TooltipState {
	if t.hovered {
		return TooltipVisible
	}
	return TooltipHidden
}

func (t Tooltip) Pointer() Pointer {
	return t.pointer
}

func (t Tooltip) Record() (temperature.Record, bool) {
	return t.record, t.hovered
}

// Position returns where the tooltip is drawn on the page.
func (t Tooltip) Position() (float64, float64) {
	return t.pointer.X + TooltipOffsetX, t.pointer.Y + TooltipOffsetY
}

func (t Tooltip) Render(w io.Writer) error {
	return views.ExecuteTemplate(w, "tooltip.html", t.view())
}

type tooltipView struct {
	Visible  bool
	Style    template.CSS
	Year     int
	Month    string
	Temp     string
	Variance string
}

func (t Tooltip) view() tooltipView {
	if !t.hovered {
		return tooltipView{
			Style: "visibility: hidden",
		}
	}
	left, top := t.Position()
	return tooltipView{
		Visible:  true,
		Style:    template.CSS(fmt.Sprintf("left: %spx; top: %spx", formatPixel(left), formatPixel(top))),
		Year:     t.record.Year,
		Month:    t.record.MonthName,
		Temp:     strconv.FormatFloat(t.record.Temp, 'f', 2, 64),
		Variance: strconv.FormatFloat(t.record.Variance, 'f', 2, 64),
	}
}

func formatPixel(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
