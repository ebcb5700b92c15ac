package display

import (
	"regexp"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/midbel/heatmap"
	"github.com/midbel/heatmap/temperature"
)

func TestNewView(t *testing.T) {
	t.Parallel()

	v := newView(sampleDataset())

	assert.Equal(t, 0.0, v.X.Scale(1753))
	assert.Equal(t, float64(Width)-Margin.Horizontal(), v.X.Scale(1755))
	assert.Equal(t, 0.0, v.Y.Scale("January"))
	assert.InDelta(t, (float64(Height)-Margin.Vertical())/12, v.Y.Space(), 1e-9)
	assert.Len(t, v.Y.Values(0), 12)
	assert.Len(t, v.Color.Colors, len(heatmap.Temperature))
	assert.Len(t, v.Grid.Cells, 36)

	c := v.Grid.Cells[0]
	assert.Equal(t, "cell-0", c.Ident)
	assert.Equal(t, 1753.0, c.X)
	assert.Equal(t, "January", c.Y)
}

func TestNewViewSingleYear(t *testing.T) {
	t.Parallel()

	ds := temperature.Derive(temperature.BaseTemperature, []temperature.Record{
		{Year: 2000, Month: 1, Variance: 0},
	})
	v := newView(ds)

	assert.Equal(t, 0.0, v.X.Scale(2000))
	assert.Equal(t, float64(Width)-Margin.Horizontal(), v.Grid.Renderer.Width)

	_, err := v.svg()
	require.NoError(t, err)
}

func TestCellIndex(t *testing.T) {
	t.Parallel()

	i, ok := cellIndex(cellIdent(42))
	require.True(t, ok)
	assert.Equal(t, 42, i)

	_, ok = cellIndex("42")
	assert.False(t, ok)
	_, ok = cellIndex("cell-x")
	assert.False(t, ok)
}

var (
	cellTag  = regexp.MustCompile(`<rect\s[^>]*id="cell-[0-9]+"[^>]*>`)
	cellAttr = regexp.MustCompile(`(?:^|\s)([a-z-]+)="([^"]*)"`)
)

// renderedCells returns the attributes of the cell rects of the view, by id.
func renderedCells(t *testing.T, v view) map[string]map[string]string {
	t.Helper()

	str, err := v.svg()
	require.NoError(t, err)

	list := make(map[string]map[string]string)
	for _, tag := range cellTag.FindAllString(str, -1) {
		set := make(map[string]string)
		for _, m := range cellAttr.FindAllStringSubmatch(tag[len("<rect"):], -1) {
			set[m[1]] = m[2]
		}
		list[set["id"]] = set
	}
	return list
}

func number(t *testing.T, set map[string]string, name string) float64 {
	t.Helper()

	f, err := strconv.ParseFloat(set[name], 64)
	require.NoError(t, err, name)
	return f
}

func TestRenderSingleRecord(t *testing.T) {
	t.Parallel()

	ds := temperature.Derive(temperature.BaseTemperature, []temperature.Record{
		{Year: 1753, Month: 1, Variance: -1.5},
	})
	v := newView(ds)

	cells := renderedCells(t, v)
	require.Len(t, cells, 1)

	c := cells["cell-0"]
	require.NotNil(t, c)
	assert.Equal(t, "cell", c["class"])
	assert.InDelta(t, v.X.Scale(1753), number(t, c, "x"), 0.01)
	assert.InDelta(t, v.Y.Scale("January"), number(t, c, "y"), 0.01)
	assert.InDelta(t, float64(Width)-Margin.Horizontal(), number(t, c, "width"), 0.01)
	assert.InDelta(t, 37.5, number(t, c, "height"), 0.01)
	assert.Equal(t, v.Color.Scale(ds.Records[0].Temp), c["fill"])
	assert.NotContains(t, c, "stroke")
}

func TestRenderGrid(t *testing.T) {
	t.Parallel()

	ds := temperature.Derive(temperature.BaseTemperature, []temperature.Record{
		{Year: 1753, Month: 1, Variance: -1.5},
		{Year: 1754, Month: 2, Variance: 0.5},
		{Year: 1755, Month: 1, Variance: 1},
		{Year: 1754, Month: 2, Variance: 0.75},
	})
	v := newView(ds)

	cells := renderedCells(t, v)
	require.Len(t, cells, 4)

	width := (float64(Width) - Margin.Horizontal()) / 2
	for i, r := range ds.Records {
		c := cells[cellIdent(i)]
		require.NotNil(t, c, cellIdent(i))
		assert.InDelta(t, v.X.Scale(float64(r.Year)), number(t, c, "x"), 0.01)
		assert.InDelta(t, v.Y.Scale(r.MonthName), number(t, c, "y"), 0.01)
		assert.InDelta(t, width, number(t, c, "width"), 0.01)
		assert.InDelta(t, 37.5, number(t, c, "height"), 0.01)
		assert.Equal(t, v.Color.Scale(r.Temp), c["fill"])
		assert.NotContains(t, c, "stroke")
	}

	dup1, dup2 := cells[cellIdent(1)], cells[cellIdent(3)]
	assert.Equal(t, dup1["x"], dup2["x"])
	assert.Equal(t, dup1["y"], dup2["y"])
	assert.NotEqual(t, dup1["fill"], dup2["fill"])
}
