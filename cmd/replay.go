/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/prowe/fishtrack/cmd/animate"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/mapview"
	"github.com/prowe/fishtrack/cmd/palette"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	// ErrEmptyCategory is returned when the replayed category has no points.
	ErrEmptyCategory   = errors.New("category has no points")
	// ErrUnknownCategory is returned for a group or species outside the fixed sets.
	ErrUnknownCategory = errors.New("unknown category")
)

// replayCmd runs one category's animation without the TUI and prints a
// line per tick.
var replayCmd = &cobra.Command{
	Use:   "replay <group> <species>",
	Short: "Replay one category's track and trace every tick",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		logger, closer, err := setupLogging(cfg)
		if err != nil {
			return fmt.Errorf("open log: %w", err)
		}
		defer closer.Close()

		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}
		key, err := parseCategory(args[0], args[1])
		if err != nil {
			return err
		}
		points := layers.NewCompositor(ds.Tables).Points(key)
		if len(points) == 0 {
			return fmt.Errorf("%w: %s", ErrEmptyCategory, key)
		}
		rows := fish.SubsetRows(ds.Tables[key.Group], key.Species)

		withMap, _ := cmd.Flags().GetBool("map")
		width, _ := cmd.Flags().GetInt("width")
		height, _ := cmd.Flags().GetInt("height")

		canvas := mapview.NewCanvas(cfg.Map.LayerOpacity, cfg.Center())
		canvas.Fit(points, cfg.Center())
		color := palette.Resolve(key.Group, key.Species, cfg.Mode())
		a := animate.New(key, points, color, canvas, cfg.Settings(), logger)

		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
		defer stop()

		out := cmd.OutOrStdout()
		err = animate.Run(ctx, a, func(tick int) {
			fmt.Fprintln(out, traceLine(tick, a, rows))
			if withMap {
				fmt.Fprintln(out, canvas.Render(width, height))
			}
		})
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, "replay interrupted")
			return nil
		}
		return err
	},
}

func init() {
	replayCmd.Flags().Bool("map", false, "render the map after every tick")
	replayCmd.Flags().Int("width", 60, "map width in cells")
	replayCmd.Flags().Int("height", 20, "map height in cells")
}

// parseCategory builds a key from command-line names. Species are matched
// ignoring case; anything outside the fixed sets is rejected.
func parseCategory(group, species string) (fish.CategoryKey, error) {
	key := fish.CategoryKey{Group: fish.Group(strings.ToLower(group)), Species: fish.CanonicalSpecies(species)}
	if !key.Group.Known() || !key.Species.Known() {
		return fish.CategoryKey{}, fmt.Errorf("%w: %q %q", ErrUnknownCategory, group, species)
	}
	return key, nil
}

// traceLine describes one tick. The detection time and tag are those of the
// most recently spawned point.
func traceLine(tick int, a *animate.Animator, rows fish.Table) string {
	line := fmt.Sprintf("tick %4d  cursor %d/%d  live %d  %-8s", tick, a.Cursor(), len(rows), a.Live(), a.State())
	if c := a.Cursor(); c > 0 && c <= len(rows) {
		obs := rows[c-1]
		if obs.Tag != "" {
			line += "  tag " + obs.Tag
		}
		if !obs.Time.IsZero() {
			line += "  " + obs.Time.UTC().Format(time.RFC3339)
		}
	}
	return line
}
