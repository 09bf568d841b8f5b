package cmd

import (
	"io"
	"log/slog"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prowe/fishtrack/cmd/animate"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func uiDataset() fish.Dataset {
	at := func(g fish.Group, s fish.Species, lon, lat float64) fish.Observation {
		return fish.Observation{Group: g, Species: s, Point: fish.Point{Lon: lon, Lat: lat}}
	}
	return fish.Dataset{Tables: map[fish.Group]fish.Table{
		fish.Collected: {
			at(fish.Collected, fish.Coho, -122.683, 47.155),
			at(fish.Collected, fish.Chinook, -122.684, 47.156),
			at(fish.Collected, fish.Coho, -122.685, 47.157),
		},
		fish.AtLarge: {
			at(fish.AtLarge, fish.Coho, -122.690, 47.160),
		},
	}}
}

func testModel(t *testing.T) model {
	t.Helper()
	cfg, err := loadConfig(defaultViper())
	require.NoError(t, err)
	cfg.Animation.Tick = time.Millisecond
	return newModel(uiDataset(), cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func press(t *testing.T, m model, k string) (model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)})
	nm, ok := next.(model)
	require.True(t, ok)
	return nm, cmd
}

func TestModel_InitialLayers(t *testing.T) {
	m := testModel(t)
	require.Len(t, m.layers, 3)
	assert.Equal(t, "collected Coho", m.layers[0].ID)
	assert.Equal(t, 4, m.canvas.Len())
	require.Len(t, m.legend, 2)
	assert.Equal(t, "collected", m.legend[0].Label)
	assert.Zero(t, m.director.Len())
}

func TestModel_ModeKeys(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "m")
	assert.Equal(t, fish.BySpecies, m.sel.Mode)
	assert.Len(t, m.legend, 4)

	m, _ = press(t, m, "4")
	assert.Equal(t, fish.Uniform, m.sel.Mode)
	require.Len(t, m.legend, 1)
	assert.Equal(t, "All", m.legend[0].Label)
	assert.Equal(t, 4, m.canvas.Len(), "recolored layers are remounted, not duplicated")
}

func TestModel_TogglePoints(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "p")
	assert.False(t, m.sel.ShowPoints)
	assert.Zero(t, m.canvas.Len())

	m, _ = press(t, m, "p")
	assert.Equal(t, 4, m.canvas.Len())
}

func TestModel_StartTickClear(t *testing.T) {
	m := testModel(t)
	m, cmd := press(t, m, "s")
	assert.NotNil(t, cmd)
	assert.Equal(t, 3, m.director.Len())

	key := fish.CategoryKey{Group: fish.Collected, Species: fish.Coho}
	a, ok := m.director.Animator(key)
	require.True(t, ok)
	assert.Equal(t, animate.Running, a.State())

	next, cmd := m.Update(animate.TickMsg{Key: key, Generation: a.Generation()})
	m = next.(model)
	assert.NotNil(t, cmd, "the loop schedules its next tick")
	assert.Equal(t, 1, a.Live())
	assert.Equal(t, 5, m.canvas.Len())

	m, _ = press(t, m, "c")
	assert.True(t, m.sel.Clear)
	assert.False(t, m.sel.Animate)
	assert.Zero(t, a.Live())
	assert.Equal(t, animate.Idle, a.State())
	assert.Equal(t, 4, m.canvas.Len())
}

func TestModel_StopDrains(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "s")
	key := fish.CategoryKey{Group: fish.AtLarge, Species: fish.Coho}
	a, _ := m.director.Animator(key)
	m.Update(animate.TickMsg{Key: key, Generation: a.Generation()})

	m, _ = press(t, m, "x")
	assert.Equal(t, animate.Draining, a.State())
	assert.Equal(t, 1, a.Live(), "live particles keep fading after stop")
}

func TestModel_FilterFormOpensAndCancels(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "f")
	assert.Equal(t, paneFilter, m.view)
	require.NotNil(t, m.controls)
	assert.Contains(t, m.View(), "Filters")

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m = next.(model)
	assert.Equal(t, paneMap, m.view)
	assert.Nil(t, m.controls)
}

func TestModel_StatisticsToggle(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "t")
	assert.Equal(t, paneStats, m.view)
	assert.Contains(t, m.View(), "Summary Statistics")
	m, _ = press(t, m, "t")
	assert.Equal(t, paneMap, m.view)
}

func TestModel_QuitReleasesEverything(t *testing.T) {
	m := testModel(t)
	m, _ = press(t, m, "s")
	m, cmd := press(t, m, "q")
	require.NotNil(t, cmd)
	assert.IsType(t, tea.QuitMsg{}, cmd())
	assert.Zero(t, m.director.Len())
	assert.Zero(t, m.canvas.Len())
}

func TestModel_View(t *testing.T) {
	m := testModel(t)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	m = next.(model)
	out := m.View()
	assert.Contains(t, out, "fishtrack")
	assert.Contains(t, out, "Legend")
	assert.Contains(t, out, "collected")
	assert.Contains(t, out, "3 layers")
}

func TestModel_LargeDatasetStaysResponsive(t *testing.T) {
	ds := fish.Dataset{Tables: map[fish.Group]fish.Table{}}
	for i := 0; i < 20000; i++ {
		g := fish.AllGroups[i%2]
		ds.Tables[g] = append(ds.Tables[g], fish.Observation{
			Group:   g,
			Species: fish.AllSpecies[i%3],
			Point:   fish.Point{Lon: -122.7 + float64(i%200)*1e-4, Lat: 47.1 + float64(i/200)*1e-4},
		})
	}
	cfg, err := loadConfig(defaultViper())
	require.NoError(t, err)

	start := time.Now()
	m := newModel(ds, cfg, slog.New(slog.NewTextHandler(io.Discard, nil)))
	m, _ = press(t, m, "m")
	m, _ = press(t, m, "s")
	elapsed := time.Since(start)

	assert.Equal(t, 20000, m.canvas.Len())
	assert.Less(t, elapsed, 2*time.Second)
}
