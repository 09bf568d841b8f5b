/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// importCmd copies the JSON observation tables into the SQLite store.
var importCmd = &cobra.Command{
	Use:   "import",
	Short: "Load the JSON observation tables into the SQLite store",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(viper.GetViper())
		if err != nil {
			return err
		}
		n, err := importDataset(cfg)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "imported %d observations into %s\n", n, cfg.SQLitePath())
		return nil
	},
}

func importDataset(cfg Config) (int, error) {
	ds, err := fish.NewFileService(cfg.Files()).Load()
	if err != nil {
		return 0, err
	}
	store, err := fish.OpenStore(cfg.SQLitePath())
	if err != nil {
		return 0, err
	}
	defer store.Close()
	return store.Replace(ds)
}
