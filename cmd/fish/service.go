package fish

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

// Service loads the observation dataset from some backing store.
type Service interface {
	Load() (Dataset, error)
}

var _ Service = (*fileService)(nil)

// ErrMissingColumn is returned when a split table lacks a required column.
var ErrMissingColumn = errors.New("missing column")

// Files names the per-group observation files and the summary file inside Dir.
type Files struct {
	Dir       string
	Collected string
	AtLarge   string
	Summary   string // optional
}

// fileService reads pandas "split" JSON files
// ({"columns": [...], "index": [...], "data": [[...]]}).
type fileService struct {
	files Files
}

// NewFileService creates a loader for the JSON tables described by files.
func NewFileService(files Files) Service {
	return &fileService{files: files}
}

type splitTable struct {
	Columns []string `json:"columns"`
	Data    [][]any  `json:"data"`
}

func (s *fileService) path(name string) string { return filepath.Join(s.files.Dir, name) }

// Load reads both group tables and, when present, the summary statistics.
func (s *fileService) Load() (Dataset, error) {
	ds := Dataset{Tables: make(map[Group]Table, len(AllGroups))}
	for g, name := range map[Group]string{Collected: s.files.Collected, AtLarge: s.files.AtLarge} {
		t, err := readTable(s.path(name), g)
		if err != nil {
			return Dataset{}, fmt.Errorf("load %s table: %w", g, err)
		}
		ds.Tables[g] = t
	}
	if s.files.Summary != "" {
		sum, err := readSummary(s.path(s.files.Summary))
		switch {
		case errors.Is(err, fs.ErrNotExist):
		case err != nil:
			return Dataset{}, fmt.Errorf("load summary: %w", err)
		default:
			ds.Summary = sum
		}
	}
	return ds, nil
}

func readSplit(path string) (splitTable, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return splitTable{}, err
	}
	var st splitTable
	if err := json.Unmarshal(b, &st); err != nil {
		return splitTable{}, fmt.Errorf("decode %s: %w", filepath.Base(path), err)
	}
	return st, nil
}

func readTable(path string, group Group) (Table, error) {
	st, err := readSplit(path)
	if err != nil {
		return nil, err
	}
	return DecodeTable(st.Columns, st.Data, group)
}

// DecodeTable converts split-format rows into observations of one group.
// X is longitude and Y latitude. Rows with unparsable coordinates are
// skipped; the species column is canonicalized with CanonicalSpecies.
func DecodeTable(columns []string, data [][]any, group Group) (Table, error) {
	idx := func(name string) int {
		for i, c := range columns {
			if c == name {
				return i
			}
		}
		return -1
	}
	ilon, ilat, ispecies := idx("X"), idx("Y"), idx("species")
	itime, itag := idx("Date_time"), idx("atag")
	required := []struct {
		name string
		idx  int
	}{{"species", ispecies}, {"X", ilon}, {"Y", ilat}}
	for _, c := range required {
		if c.idx < 0 {
			return nil, fmt.Errorf("%w %q", ErrMissingColumn, c.name)
		}
	}

	table := make(Table, 0, len(data))
	for _, row := range data {
		lon, ok := cellFloat(row, ilon)
		if !ok {
			continue
		}
		lat, ok := cellFloat(row, ilat)
		if !ok {
			continue
		}
		obs := Observation{
			Group:   group,
			Species: CanonicalSpecies(cellString(row, ispecies)),
			Point:   Point{Lon: lon, Lat: lat},
			Time:    cellTime(row, itime),
			Tag:     cellString(row, itag),
		}
		if !obs.Point.Valid() {
			continue
		}
		table = append(table, obs)
	}
	return table, nil
}

func cell(row []any, i int) (any, bool) {
	if i < 0 || i >= len(row) || row[i] == nil {
		return nil, false
	}
	return row[i], true
}

func cellFloat(row []any, i int) (float64, bool) {
	v, ok := cell(row, i)
	if !ok {
		return 0, false
	}
	switch x := v.(type) {
	case float64:
		return x, !math.IsNaN(x) && !math.IsInf(x, 0)
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(x), 64)
		return f, err == nil && !math.IsNaN(f) && !math.IsInf(f, 0)
	default:
		return 0, false
	}
}

func cellString(row []any, i int) string {
	v, ok := cell(row, i)
	if !ok {
		return ""
	}
	switch x := v.(type) {
	case string:
		return x
	case float64:
		return strconv.FormatFloat(x, 'f', -1, 64)
	default:
		return fmt.Sprint(x)
	}
}

// pandas writes datetimes as epoch milliseconds unless date_format="iso".
func cellTime(row []any, i int) time.Time {
	v, ok := cell(row, i)
	if !ok {
		return time.Time{}
	}
	switch x := v.(type) {
	case float64:
		return time.UnixMilli(int64(x)).UTC()
	case string:
		for _, layout := range []string{time.RFC3339Nano, "2006-01-02T15:04:05.000", "2006-01-02 15:04:05"} {
			if t, err := time.Parse(layout, x); err == nil {
				return t
			}
		}
	}
	return time.Time{}
}

func readSummary(path string) (*Summary, error) {
	st, err := readSplit(path)
	if err != nil {
		return nil, err
	}
	return &Summary{Columns: st.Columns, Rows: st.Data}, nil
}

// LoadSummary reads only the summary statistics named by files. A missing
// file yields a nil summary.
func LoadSummary(files Files) (*Summary, error) {
	if files.Summary == "" {
		return nil, nil
	}
	sum, err := readSummary(filepath.Join(files.Dir, files.Summary))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	return sum, err
}
