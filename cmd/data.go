package cmd

import (
	"errors"
	"fmt"

	"github.com/prowe/fishtrack/cmd/fish"
)

// ErrUnknownSource is returned for a data.source other than json or sqlite.
var ErrUnknownSource = errors.New("unknown data source")

// loadDataset reads observations from the configured source. The summary
// statistics always come from the JSON file, if any.
func loadDataset(cfg Config) (fish.Dataset, error) {
	switch cfg.Data.Source {
	case "json":
		return fish.NewFileService(cfg.Files()).Load()
	case "sqlite":
		store, err := fish.OpenStore(cfg.SQLitePath())
		if err != nil {
			return fish.Dataset{}, err
		}
		defer store.Close()
		ds, err := store.Load()
		if err != nil {
			return fish.Dataset{}, err
		}
		ds.Summary, err = fish.LoadSummary(cfg.Files())
		if err != nil {
			return fish.Dataset{}, fmt.Errorf("load summary: %w", err)
		}
		return ds, nil
	default:
		return fish.Dataset{}, fmt.Errorf("%w %q", ErrUnknownSource, cfg.Data.Source)
	}
}
