package cmd

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/prowe/fishtrack/cmd/animate"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func defaultViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	return v
}

func TestLoadConfig_Defaults(t *testing.T) {
	cfg, err := loadConfig(defaultViper())
	require.NoError(t, err)

	assert.Equal(t, "json", cfg.Data.Source)
	assert.Equal(t, animate.DefaultSettings(), cfg.Settings())
	assert.Equal(t, 25*time.Millisecond, cfg.Animation.Tick)
	assert.Equal(t, fish.Point{Lon: -122.683, Lat: 47.1555}, cfg.Center())
	assert.Equal(t, fish.ByGroup, cfg.Mode())
	assert.Equal(t, 0.35, cfg.Map.LayerOpacity)
	assert.Equal(t, fish.Files{
		Dir:       "data",
		Collected: "fish_collected.json",
		AtLarge:   "fish_atlarge.json",
		Summary:   "summary_statistics.json",
	}, cfg.Files())
	assert.Equal(t, filepath.Join("data", "fishtrack.db"), cfg.SQLitePath())
}

func TestLoadConfig_Overrides(t *testing.T) {
	v := defaultViper()
	v.Set("animation.tick", "1ms")
	v.Set("ui.mode", "option3")
	v.Set("data.sqlite", "/var/lib/fish.db")

	cfg, err := loadConfig(v)
	require.NoError(t, err)
	assert.Equal(t, time.Millisecond, cfg.Settings().Tick)
	assert.Equal(t, fish.ByGroupAndSpecies, cfg.Mode())
	assert.Equal(t, "/var/lib/fish.db", cfg.SQLitePath())
}

func TestLoadConfig_Invalid(t *testing.T) {
	tests := []struct {
		name  string
		key   string
		value any
	}{
		{"zero tick", "animation.tick", "0s"},
		{"opacity above one", "animation.startOpacity", 1.5},
		{"floor not below start", "animation.floor", 0.6},
		{"negative step", "animation.step", -0.02},
		{"unknown source", "data.source", "parquet"},
		{"missing table", "data.collected", ""},
		{"latitude out of range", "map.center.lat", 91.0},
		{"unknown mode", "ui.mode", "heatmap"},
		{"bad log level", "log.level", "trace"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := defaultViper()
			v.Set(tt.key, tt.value)
			_, err := loadConfig(v)
			assert.ErrorContains(t, err, "invalid config")
		})
	}
}
