/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var cfgFile string

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "fishtrack",
	Short: "Compare and replay tracked fish positions on a terminal map",
	Long: `Shows telemetry detections of collected and at-large fish as colored
point layers, compares them by group, species or both, and replays each
category's track as fading particles.`,
	SilenceUsage: true,
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
		logger.Info("dataset loaded", "source", cfg.Data.Source,
			"collected", len(ds.Tables[fish.Collected]), "atlarge", len(ds.Tables[fish.AtLarge]))

		p := tea.NewProgram(newModel(ds, cfg, logger), tea.WithAltScreen())
		_, err = p.Run()
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.fishtrack.yaml)")
	rootCmd.PersistentFlags().String("data-dir", "", "directory holding the observation files")
	rootCmd.PersistentFlags().String("source", "", "observation source: json or sqlite")
	rootCmd.PersistentFlags().String("log-level", "", "log level: debug, info, warn or error")
	cobra.CheckErr(viper.BindPFlag("data.dir", rootCmd.PersistentFlags().Lookup("data-dir")))
	cobra.CheckErr(viper.BindPFlag("data.source", rootCmd.PersistentFlags().Lookup("source")))
	cobra.CheckErr(viper.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level")))

	rootCmd.AddCommand(layersCmd, replayCmd, importCmd)
}

// initConfig reads in config file and ENV variables if set.
func initConfig() {
	setDefaults(viper.GetViper())

	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".fishtrack" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".fishtrack")
	}

	viper.SetEnvPrefix("FISHTRACK")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}
