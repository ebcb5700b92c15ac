package display

import (
	"embed"
	"html/template"
	"io"
)

const (
	FormatSVG  = "svg"
	FormatHTML = "html"
)

//go:embed templates/*.html
var viewsFS embed.FS

var views = template.Must(template.ParseFS(viewsFS, "templates/*.html"))

type pageData struct {
	Title       string
	Description string
	AxisLabel   string
	Width       float64
	Chart       template.HTML
	Tooltip     tooltipView
	Interactive bool
}

func renderLoading(w io.Writer) error {
	return views.ExecuteTemplate(w, "loading.html", nil)
}

func renderPage(w io.Writer, v view, tip Tooltip, interactive bool) error {
	str, err := v.svg()
	if err != nil {
		return err
	}
	data := pageData{
		Title:       Title,
		Description: Description,
		AxisLabel:   AxisLabel,
		Width:       Width,
		Chart:       template.HTML(str),
		Tooltip:     tip.view(),
		Interactive: interactive,
	}
	return views.ExecuteTemplate(w, "page.html", data)
}
