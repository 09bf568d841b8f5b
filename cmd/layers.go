/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	ltable "github.com/charmbracelet/lipgloss/table"
	"github.com/prowe/fishtrack/cmd/controls"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/stats"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// layersCmd prints the layers and legend a selection produces.
var layersCmd = &cobra.Command{
	Use:   "layers",
	Short: "Print the layers and legend for a selection",
	Example: `  fishtrack layers --mode bySpecies
  fishtrack layers --groups atlarge --species Coho,Chinook --mode option3`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		ds, err := loadDataset(cfg)
		if err != nil {
			return err
		}

		groups, _ := cmd.Flags().GetStringSlice("groups")
		species, _ := cmd.Flags().GetStringSlice("species")
		mode, _ := cmd.Flags().GetString("mode")
		if mode == "" {
			mode = string(cfg.Mode())
		}
		sel, err := selectionFromFlags(groups, species, mode)
		if err != nil {
			return err
		}

		ls := layers.NewCompositor(ds.Tables).Build(sel)
		printLayers(cmd.OutOrStdout(), ls, layers.BuildLegend(sel))
		return nil
	},
}

func init() {
	layersCmd.Flags().StringSlice("groups", groupNames(fish.AllGroups), "groups to show")
	layersCmd.Flags().StringSlice("species", speciesNames(fish.AllSpecies), "species to show")
	layersCmd.Flags().String("mode", "", "comparison mode (byGroup, bySpecies, byGroupAndSpecies, uniform or option1-4)")
}

// selectionFromFlags builds a selection, rejecting unknown modes so a typo
// does not silently fall back to red.
func selectionFromFlags(groups, species []string, mode string) (fish.Selection, error) {
	if _, ok := fish.ParseMode(mode); !ok {
		return fish.Selection{}, fmt.Errorf("unknown mode %q", mode)
	}
	for i, s := range species {
		species[i] = string(fish.CanonicalSpecies(s))
	}
	return controls.Merge(fish.DefaultSelection(), groups, species, mode), nil
}

func groupNames(gs []fish.Group) []string {
	out := make([]string, len(gs))
	for i, g := range gs {
		out[i] = string(g)
	}
	return out
}

func speciesNames(ss []fish.Species) []string {
	out := make([]string, len(ss))
	for i, s := range ss {
		out[i] = string(s)
	}
	return out
}

func printLayers(w io.Writer, ls []layers.Layer, legend []layers.LegendEntry) {
	tracks := stats.Tracks(ls)
	t := ltable.New().
		Border(lipgloss.NormalBorder()).
		Headers("LAYER", "COLOR", "RADIUS", "POINTS", "TRACK KM")
	for i, l := range ls {
		t.Row(l.ID, string(l.Color), strconv.FormatFloat(l.Radius, 'f', -1, 64),
			strconv.Itoa(len(l.Points)), fmt.Sprintf("%.2f", tracks[i].Length/1000))
	}
	fmt.Fprintln(w, t.Render())

	fmt.Fprintln(w, "Legend:")
	for _, e := range legend {
		fmt.Fprintf(w, "  %-20s %s\n", e.Label, e.Color)
	}
}
