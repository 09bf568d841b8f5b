package fish

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const collectedJSON = `{
	"columns": ["Date_time", "atag", "species", "X", "Y", "Z"],
	"index": [0, 1, 2, 3],
	"data": [
		[1559347200000, "A1", "Coho", -122.6830, 47.1550, 3.1],
		[1559347203000, "A2", "Chinook", "-122.6831", "47.1551", 2.0],
		[1559347206000, "A1", "Coho", null, 47.1552, 1.0],
		[1559347209000, 4411, "Steelhead", -122.6833, 47.1553, 1.0]
	]
}`

const atLargeJSON = `{
	"columns": ["Date_time", "atag", "species", "X", "Y", "Z"],
	"index": [0, 1],
	"data": [
		["2019-06-01T00:00:00.000", "B1", "unknown", -122.6840, 47.1560, 3.1],
		["2019-06-01T00:00:03.000", "B2", "Coho", "n/a", 47.1561, 2.0]
	]
}`

const summaryJSON = `{
	"columns": ["Group", "Species", "Count", "Mean X", "Mean Y", "Speed"],
	"index": [0],
	"data": [["collected", "Coho", 12, -122.68301234, 47.15501234, 1.25]]
}`

func writeFixtures(t *testing.T, withSummary bool) Files {
	t.Helper()
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fish_collected.json"), []byte(collectedJSON), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "fish_atlarge.json"), []byte(atLargeJSON), 0o644))
	if withSummary {
		require.NoError(t, os.WriteFile(filepath.Join(dir, "summary_statistics.json"), []byte(summaryJSON), 0o644))
	}
	return Files{Dir: dir, Collected: "fish_collected.json", AtLarge: "fish_atlarge.json", Summary: "summary_statistics.json"}
}

func TestFileService_Load(t *testing.T) {
	ds, err := NewFileService(writeFixtures(t, true)).Load()
	require.NoError(t, err)

	collected := ds.Tables[Collected]
	require.Len(t, collected, 3, "row with null X is skipped")
	assert.Equal(t, Point{Lon: -122.6830, Lat: 47.1550}, collected[0].Point)
	assert.Equal(t, Point{Lon: -122.6831, Lat: 47.1551}, collected[1].Point)
	assert.Equal(t, Chinook, collected[1].Species)
	assert.Equal(t, "4411", collected[2].Tag)
	assert.Equal(t, time.Date(2019, 6, 1, 0, 0, 0, 0, time.UTC), collected[0].Time)
	for _, o := range collected {
		assert.Equal(t, Collected, o.Group)
	}

	atLarge := ds.Tables[AtLarge]
	require.Len(t, atLarge, 1)
	assert.Equal(t, Unknown, atLarge[0].Species)
	assert.Equal(t, 2019, atLarge[0].Time.Year())

	require.NotNil(t, ds.Summary)
	assert.Equal(t, "Species", ds.Summary.Columns[1])
	assert.Len(t, ds.Summary.Rows, 1)
}

func TestFileService_MissingSummaryIsOptional(t *testing.T) {
	ds, err := NewFileService(writeFixtures(t, false)).Load()
	require.NoError(t, err)
	assert.Nil(t, ds.Summary)
}

func TestFileService_MissingTable(t *testing.T) {
	files := writeFixtures(t, false)
	files.AtLarge = "nope.json"
	_, err := NewFileService(files).Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "atlarge")
}

func TestDecodeTable_MissingColumn(t *testing.T) {
	_, err := DecodeTable([]string{"X", "Y"}, nil, Collected)
	require.ErrorIs(t, err, ErrMissingColumn)
	assert.Contains(t, err.Error(), "species")
}

func TestDecodeTable_ShortRows(t *testing.T) {
	got, err := DecodeTable([]string{"species", "X", "Y"}, [][]any{{"Coho", 1.0}, {"Coho", 1.0, 2.0}}, AtLarge)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, Point{1, 2}, got[0].Point)
	assert.True(t, got[0].Time.IsZero())
}

func TestDecodeTable_MissingColumnsReportedInOrder(t *testing.T) {
	for i := 0; i < 20; i++ {
		_, err := DecodeTable([]string{"Date_time"}, nil, Collected)
		require.ErrorIs(t, err, ErrMissingColumn)
		assert.Contains(t, err.Error(), `"species"`)
	}
	_, err := DecodeTable([]string{"species"}, nil, Collected)
	assert.Contains(t, err.Error(), `"X"`)
}
