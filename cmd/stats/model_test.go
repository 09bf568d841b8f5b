package stats

import (
	"testing"

	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/mapview"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatCell(t *testing.T) {
	assert.Equal(t, "-122.68312", FormatCell(3, -122.683123456))
	assert.Equal(t, "47.15550", FormatCell(4, 47.1555))
	assert.Equal(t, "12.3", FormatCell(5, 12.34))
	assert.Equal(t, "7", FormatCell(1, 7.0))
	assert.Equal(t, "Coho", FormatCell(0, "Coho"))
	assert.Equal(t, "", FormatCell(3, nil))
	assert.Equal(t, "n/a", FormatCell(3, "n/a"))
}

func TestTracks_Length(t *testing.T) {
	a := fish.Point{Lon: -122.683, Lat: 47.1555}
	b := fish.Point{Lon: -122.673, Lat: 47.1555}
	c := fish.Point{Lon: -122.673, Lat: 47.1655}
	ls := []layers.Layer{
		{ID: "collected Coho", Points: []fish.Point{a, b, c}},
		{ID: "atlarge Coho", Points: []fish.Point{a}},
	}

	got := Tracks(ls)
	require.Len(t, got, 2)
	assert.Equal(t, "collected Coho", got[0].Label)
	assert.Equal(t, 3, got[0].Points)

	ab := mapview.ToMercator(b).X - mapview.ToMercator(a).X
	bc := mapview.ToMercator(c).Y - mapview.ToMercator(b).Y
	assert.InDelta(t, ab+bc, got[0].Length, 1e-6)

	assert.Zero(t, got[1].Length, "a single point has no length")
}

func TestPane_View(t *testing.T) {
	sum := &fish.Summary{
		Columns: []string{"group", "species", "count", "mean X", "mean Y", "dist"},
		Rows:    [][]any{{"collected", "Coho", 12.0, -122.6831234, 47.15551, 321.04}},
	}
	p := NewPane(sum)
	p.SetSize(100, 30)
	p.SetTracks([]layers.Layer{{ID: "collected Coho", Points: []fish.Point{{Lon: 1, Lat: 1}}}})

	out := View(p)
	assert.Contains(t, out, "Summary Statistics")
	assert.Contains(t, out, "-122.68312")
	assert.Contains(t, out, "321.0")
	assert.Contains(t, out, "collected Coho")
}

func TestPane_ViewWithoutSummary(t *testing.T) {
	p := NewPane(nil)
	out := View(p)
	assert.Contains(t, out, "No summary statistics loaded")
	assert.Contains(t, out, "No layers shown")
}

func TestTracks_DegenerateTrack(t *testing.T) {
	p := fish.Point{Lon: -122.683, Lat: 47.1555}
	got := Tracks([]layers.Layer{{ID: "collected Coho", Points: []fish.Point{p, p}}})
	require.Len(t, got, 1)
	assert.Zero(t, got[0].Length)
	assert.Equal(t, 2, got[0].Points)
}

func TestPane_SetTracksReusesLengths(t *testing.T) {
	pts := []fish.Point{{Lon: -122.683, Lat: 47.1555}, {Lon: -122.673, Lat: 47.1555}}
	p := NewPane(nil)
	p.SetTracks([]layers.Layer{{ID: "collected Coho", Points: pts}})
	first := p.tracks[0].Length
	require.Greater(t, first, 0.0)

	// a cached entry is returned as long as the slice is unchanged
	p.lengths["collected Coho"] = measured{first: &pts[0], n: 2, length: 42}
	p.SetTracks([]layers.Layer{{ID: "collected Coho", Points: pts}})
	assert.Equal(t, 42.0, p.tracks[0].Length)

	moved := []fish.Point{pts[0], pts[1]}
	p.SetTracks([]layers.Layer{{ID: "collected Coho", Points: moved}})
	assert.InDelta(t, first, p.tracks[0].Length, 1e-9, "a new slice is measured again")
}

func BenchmarkPane_SetTracks(b *testing.B) {
	pts := make([]fish.Point, 20000)
	for i := range pts {
		pts[i] = fish.Point{Lon: -122.7 + float64(i%200)*1e-4, Lat: 47.1 + float64(i/200)*1e-4}
	}
	ls := []layers.Layer{{ID: "collected Coho", Points: pts}}
	p := NewPane(nil)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.SetTracks(ls)
	}
}
