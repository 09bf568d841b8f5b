package cmd

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/prowe/fishtrack/cmd/animate"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/spf13/viper"
)

// Config mirrors the viper keys fishtrack reads.
type Config struct {
	Data struct {
		Source    string `mapstructure:"source" validate:"oneof=json sqlite"`
		Dir       string `mapstructure:"dir"`
		Collected string `mapstructure:"collected" validate:"required"`
		AtLarge   string `mapstructure:"atlarge" validate:"required"`
		Summary   string `mapstructure:"summary"`
		SQLite    string `mapstructure:"sqlite"`
	} `mapstructure:"data"`
	Map struct {
		Center struct {
			Lon float64 `mapstructure:"lon" validate:"gte=-180,lte=180"`
			Lat float64 `mapstructure:"lat" validate:"gte=-90,lte=90"`
		} `mapstructure:"center"`
		LayerOpacity float64 `mapstructure:"layerOpacity" validate:"gt=0,lte=1"`
	} `mapstructure:"map"`
	Animation struct {
		Tick         time.Duration `mapstructure:"tick" validate:"gt=0"`
		StartOpacity float64       `mapstructure:"startOpacity" validate:"gt=0,lte=1"`
		Step         float64       `mapstructure:"step" validate:"gt=0"`
		Floor        float64       `mapstructure:"floor" validate:"gte=0,ltfield=StartOpacity"`
	} `mapstructure:"animation"`
	UI struct {
		Mode string `mapstructure:"mode"`
	} `mapstructure:"ui"`
	Log struct {
		File  string `mapstructure:"file"`
		Level string `mapstructure:"level" validate:"omitempty,oneof=debug info warn error DEBUG INFO WARN ERROR"`
	} `mapstructure:"log"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("data.source", "json")
	v.SetDefault("data.dir", "data")
	v.SetDefault("data.collected", "fish_collected.json")
	v.SetDefault("data.atlarge", "fish_atlarge.json")
	v.SetDefault("data.summary", "summary_statistics.json")
	v.SetDefault("data.sqlite", "fishtrack.db")

	v.SetDefault("map.center.lon", -122.683)
	v.SetDefault("map.center.lat", 47.1555)
	v.SetDefault("map.layerOpacity", 0.35)

	def := animate.DefaultSettings()
	v.SetDefault("animation.tick", def.Tick.String())
	v.SetDefault("animation.startOpacity", def.StartOpacity)
	v.SetDefault("animation.step", def.Step)
	v.SetDefault("animation.floor", def.Floor)

	v.SetDefault("ui.mode", string(fish.ByGroup))

	v.SetDefault("log.file", "fishtrack.log")
	v.SetDefault("log.level", "info")
}

// loadConfig decodes and validates the settings held by v.
func loadConfig(v *viper.Viper) (Config, error) {
	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config: %w", err)
	}
	if err := validator.New().Struct(cfg); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	if _, ok := fish.ParseMode(cfg.UI.Mode); !ok {
		return Config{}, fmt.Errorf("invalid config: unknown ui.mode %q", cfg.UI.Mode)
	}
	return cfg, nil
}

// Settings returns the animation parameters.
func (c Config) Settings() animate.Settings {
	return animate.Settings{
		Tick:         c.Animation.Tick,
		StartOpacity: c.Animation.StartOpacity,
		Step:         c.Animation.Step,
		Floor:        c.Animation.Floor,
	}
}

// Center is the study site the map falls back to without data.
func (c Config) Center() fish.Point {
	return fish.Point{Lon: c.Map.Center.Lon, Lat: c.Map.Center.Lat}
}

// Mode is the configured initial comparison mode.
func (c Config) Mode() fish.Mode {
	m, _ := fish.ParseMode(c.UI.Mode)
	return m
}

// Files names the JSON inputs.
func (c Config) Files() fish.Files {
	return fish.Files{
		Dir:       c.Data.Dir,
		Collected: c.Data.Collected,
		AtLarge:   c.Data.AtLarge,
		Summary:   c.Data.Summary,
	}
}

// SQLitePath resolves data.sqlite against data.dir unless it is absolute.
func (c Config) SQLitePath() string {
	if filepath.IsAbs(c.Data.SQLite) {
		return c.Data.SQLite
	}
	return filepath.Join(c.Data.Dir, c.Data.SQLite)
}
