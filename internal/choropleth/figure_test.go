package choropleth

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuild(t *testing.T) {
	pts := []Point{
		{ISO: "USA", Bin: 3, Hover: "a"},
		{ISO: "FRA", Bin: -1, Hover: "b"},
	}
	fig := Build(pts, binning.SCC, "Title")
	require.Len(t, fig.Data, 1)
	tr := fig.Data[0]
	assert.Equal(t, []string{"USA", "FRA"}, tr.Locations)
	require.NotNil(t, tr.Z[0])
	assert.Equal(t, 3, *tr.Z[0])
	assert.Nil(t, tr.Z[1])
	assert.Equal(t, 0, *tr.ZMin)
	assert.Equal(t, 8, *tr.ZMax)
	assert.Equal(t, MissingColor, tr.MissingColor)
	assert.Equal(t, "Title", fig.Layout.Title)
	assert.Equal(t, Projection, fig.Layout.Geo.Projection.Type)

	b, err := json.Marshal(fig)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"z":[3,null]`)
	assert.Contains(t, s, `"colorscale":[[0,"#214d8d"],[0.125,"#3d7cbd"]`)
	assert.Contains(t, s, `"locationmode":"ISO-3"`)
	assert.Contains(t, s, `"projection":{"type":"natural earth"}`)
	assert.Contains(t, s, `"margin":{"l":0,"r":0,"t":60,"b":0}`)
	assert.False(t, strings.Contains(s, "showlegend"))
}

func TestColorscaleSingle(t *testing.T) {
	def := binning.Definition{Name: "one", Edges: []float64{0, 1}, Labels: []string{"a"}, Colors: []string{"#000"}}
	cs := Colorscale(def)
	require.Len(t, cs, 1)
	assert.Equal(t, 1.0, cs[0].Pos)
	last := Colorscale(binning.CCI)
	assert.Equal(t, 1.0, last[len(last)-1].Pos)
}

func TestOutline(t *testing.T) {
	tr := Outline("BRA", "hover")
	b, err := json.Marshal(tr)
	require.NoError(t, err)
	s := string(b)
	assert.Contains(t, s, `"locations":["BRA"]`)
	assert.Contains(t, s, `"z":[0]`)
	assert.Contains(t, s, `"showlegend":false`)
	assert.Contains(t, s, `"line":{"color":"red","width":3}`)
	assert.NotContains(t, s, "missingcolor")
}

func TestHover(t *testing.T) {
	got := Hover("France", "CSCC: 1.00", Extra{Label: "66% CI", Text: "[0.50, 2.00]"})
	assert.Equal(t, "<b>France</b><br>CSCC: 1.00<br>66% CI: [0.50, 2.00]<extra></extra>", got)
	assert.Equal(t, "<b>X</b><br>y<extra></extra>", Hover("X", "y"))
}
