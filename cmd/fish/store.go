package fish

import (
	"errors"
	"fmt"
	"time"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// observationRow is the SQLite representation of an Observation. Seq keeps
// the original table order within a group.
type observationRow struct {
	ID      uint   `gorm:"primaryKey"`
	Group   string `gorm:"index:idx_group_seq,priority:1;not null"`
	Seq     int    `gorm:"index:idx_group_seq,priority:2;not null"`
	Species string `gorm:"index;not null"`
	Lon     float64
	Lat     float64
	Time    *time.Time
	Tag     string
}

func (observationRow) TableName() string { return "observations" }

var _ Service = (*Store)(nil)

// Store is a SQLite-backed observation store.
type Store struct {
	db *gorm.DB
}

// OpenStore opens (creating if needed) the SQLite database at path.
func OpenStore(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("empty sqlite path")
	}
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open sqlite %s: %w", path, err)
	}
	if err := db.AutoMigrate(&observationRow{}); err != nil {
		if sqlDB, derr := db.DB(); derr == nil {
			sqlDB.Close()
		}
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return &Store{db: db}, nil
}

// Close releases the underlying connection.
func (s *Store) Close() error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Replace swaps the stored rows of every group in ds for the given tables.
func (s *Store) Replace(ds Dataset) (int, error) {
	var total int
	err := s.db.Transaction(func(tx *gorm.DB) error {
		for g, table := range ds.Tables {
			if err := tx.Where("`group` = ?", string(g)).Delete(&observationRow{}).Error; err != nil {
				return err
			}
			if len(table) == 0 {
				continue
			}
			rows := make([]observationRow, len(table))
			for i, o := range table {
				rows[i] = observationRow{
					Group:   string(g),
					Seq:     i,
					Species: string(o.Species),
					Lon:     o.Point.Lon,
					Lat:     o.Point.Lat,
					Tag:     o.Tag,
				}
				if !o.Time.IsZero() {
					t := o.Time
					rows[i].Time = &t
				}
			}
			if err := tx.CreateInBatches(rows, 500).Error; err != nil {
				return err
			}
			total += len(rows)
		}
		return nil
	})
	if err != nil {
		return 0, fmt.Errorf("replace observations: %w", err)
	}
	return total, nil
}

// Load reads every group back in its original order. Summary statistics are
// not stored in SQLite.
func (s *Store) Load() (Dataset, error) {
	ds := Dataset{Tables: make(map[Group]Table, len(AllGroups))}
	for _, g := range AllGroups {
		var rows []observationRow
		if err := s.db.Where("`group` = ?", string(g)).Order("seq").Find(&rows).Error; err != nil {
			return Dataset{}, fmt.Errorf("load %s observations: %w", g, err)
		}
		table := make(Table, 0, len(rows))
		for _, r := range rows {
			o := Observation{
				Group:   g,
				Species: Species(r.Species),
				Point:   Point{Lon: r.Lon, Lat: r.Lat},
				Tag:     r.Tag,
			}
			if r.Time != nil {
				o.Time = *r.Time
			}
			table = append(table, o)
		}
		ds.Tables[g] = table
	}
	return ds, nil
}
