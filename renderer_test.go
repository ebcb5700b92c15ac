package heatmap

import (
	"regexp"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var rectTag = regexp.MustCompile(`<rect\s[^>]*>`)

// rectAttrs returns the attributes of every rect element found in str.
func rectAttrs(str string) []map[string]string {
	var (
		attr = regexp.MustCompile(`(?:^|\s)([a-z-]+)="([^"]*)"`)
		list []map[string]string
	)
	for _, tag := range rectTag.FindAllString(str, -1) {
		tag = strings.TrimPrefix(tag, "<rect")
		set := make(map[string]string)
		for _, m := range attr.FindAllStringSubmatch(tag, -1) {
			set[m[1]] = m[2]
		}
		list = append(list, set)
	}
	return list
}

func attrFloat(t *testing.T, set map[string]string, name string) float64 {
	t.Helper()

	str, ok := set[name]
	require.True(t, ok, "missing attribute %s", name)
	f, err := strconv.ParseFloat(str, 64)
	require.NoError(t, err)
	return f
}

func TestGridRenderer(t *testing.T) {
	t.Parallel()

	var (
		xscale = NumberScaler(NumberDomain(2000, 2002), NewRange(0, 300))
		yscale = BandScaler([]string{"January", "February"}, NewRange(0, 200))
		colors = Quantize(NumberDomain(1, 4), Temperature)
		render = GridRenderer{
			X:      xscale,
			Y:      yscale,
			Color:  colors,
			Width:  150,
			Height: 100,
		}
		cells = []Cell{
			{Ident: "c-0", Title: "first", X: 2000, Y: "January", Value: 1},
			{Ident: "c-1", Title: "last", X: 2002, Y: "February", Value: 4},
			{Ident: "c-2", Title: "lost", X: 2001, Y: "March", Value: 2},
		}
	)

	var str strings.Builder
	require.NoError(t, Chart{Width: 300, Height: 200}.Render(&str, Grid{Cells: cells, Renderer: render}))

	rects := rectAttrs(str.String())
	require.Len(t, rects, 2)

	want := []struct {
		id   string
		x, y float64
		fill string
	}{
		{id: "c-0", x: 0, y: 0, fill: Temperature[0]},
		{id: "c-1", x: 300, y: 100, fill: Temperature[14]},
	}
	for i, w := range want {
		r := rects[i]
		assert.Equal(t, w.id, r["id"])
		assert.Equal(t, "cell", r["class"])
		assert.Equal(t, w.fill, r["fill"])
		assert.InDelta(t, w.x, attrFloat(t, r, "x"), 0.01)
		assert.InDelta(t, w.y, attrFloat(t, r, "y"), 0.01)
		assert.InDelta(t, 150, attrFloat(t, r, "width"), 0.01)
		assert.InDelta(t, 100, attrFloat(t, r, "height"), 0.01)
		assert.NotContains(t, r, "stroke")
		assert.NotContains(t, r, "stroke-width")
	}
}
