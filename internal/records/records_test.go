package records

import (
	"testing"

	"github.com/KaramelBytes/carbonmap/internal/binning"
	"github.com/KaramelBytes/carbonmap/internal/dataset"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var csccFields = Fields{Value: "CSCC_median", Lower: "CSCC_q17", Upper: "CSCC_q83"}

func TestFormat(t *testing.T) {
	assert.Equal(t, "1.01", Format(dataset.Of(1.005), 2))
	assert.Equal(t, "2.30", Format(dataset.Of(2.3), 2))
	assert.Equal(t, "-5.50", Format(dataset.Of(-5.495), 2))
	assert.Equal(t, "0.123", Format(dataset.Of(0.1234), 3))
	assert.Equal(t, NA, Format(dataset.Missing(), 2))
}

func TestFormatCI(t *testing.T) {
	assert.Equal(t, "[1.01, 2.30]", FormatCI(dataset.Of(1.005), dataset.Of(2.3)))
	assert.Equal(t, "", FormatCI(dataset.Missing(), dataset.Of(2.3)))
	assert.Equal(t, "", FormatCI(dataset.Of(1), dataset.Missing()))
}

func TestAssemble(t *testing.T) {
	rows := []dataset.Row{
		{"iso": "USA", "Country": "United States", "CSCC_median": "0", "CSCC_q17": "-1.005", "CSCC_q83": "2.3"},
		{"iso": "FRA", "Country": "", "CSCC_median": "4.2", "CSCC_q17": "", "CSCC_q83": "5"},
		{"iso": "BRA", "Country": "Brazil", "CSCC_median": "n/a"},
	}
	recs := Assemble(rows, csccFields, binning.SCC)
	require.Len(t, recs, 3)

	assert.Equal(t, "United States", recs[0].Country)
	assert.Equal(t, "-1 to 0", recs[0].Bin)
	assert.Equal(t, 2, recs[0].BinIndex)
	assert.Equal(t, "[-1.01, 2.30]", recs[0].CI)

	assert.Equal(t, "FRA", recs[1].Country)
	assert.Equal(t, "3 to 5", recs[1].Bin)
	assert.Equal(t, "", recs[1].CI)

	assert.False(t, recs[2].Value.Valid)
	assert.Equal(t, "", recs[2].Bin)
	assert.Equal(t, -1, recs[2].BinIndex)

	recs[0].Raw["_bin"] = recs[0].Bin
	_, leaked := rows[0]["_bin"]
	assert.False(t, leaked, "source row mutated")
}

func TestAssemblePerHectare(t *testing.T) {
	rows := []dataset.Row{
		{"iso": "BRA", "Country": "Brazil", "v": "2", "lo": "1", "hi": "3", "Forest_ha": "4e8"},
		{"iso": "ZER", "v": "2", "Forest_ha": "0"},
		{"iso": "NEG", "v": "2", "Forest_ha": "-5"},
		{"iso": "NIL", "v": "2", "Forest_ha": ""},
		{"iso": "IDN", "v": "", "lo": "1", "hi": "", "Forest_ha": "1e9"},
	}
	recs := AssemblePerHectare(rows, Fields{Value: "v", Lower: "lo", Upper: "hi"}, "Forest_ha", binning.CCI)
	require.Len(t, recs, 2)
	assert.Equal(t, "BRA", recs[0].ISO)
	assert.InDelta(t, 5.0, recs[0].Value.Float, 1e-12)
	assert.InDelta(t, 2.5, recs[0].Lower.Float, 1e-12)
	assert.InDelta(t, 7.5, recs[0].Upper.Float, 1e-12)
	assert.Equal(t, "[2.50, 7.50]", recs[0].CI)
	assert.Equal(t, "1 to 10", recs[0].Bin)

	assert.Equal(t, "IDN", recs[1].ISO)
	assert.False(t, recs[1].Value.Valid)
	assert.Equal(t, "", recs[1].CI)
}

func TestSaturatedRecords(t *testing.T) {
	rows := []dataset.Row{
		{"iso": "A", "flow": "-1"},
		{"iso": "B", "flow": "0"},
	}
	recs := Assemble(rows, Fields{Value: "flow"}, binning.FlowPerHa)
	sat := Saturated(recs)
	require.Len(t, sat, 1)
	assert.Equal(t, "A", sat[0].ISO)
	assert.Equal(t, ">300", sat[0].Bin)
	assert.Equal(t, "0–0.1", recs[1].Bin)
}
