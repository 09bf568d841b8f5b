package fish

import (
	"math"
	"strings"
	"time"
)

// Group is the capture status of a tracked fish.
type Group string

const (
	Collected Group = "collected"
	AtLarge   Group = "atlarge"
)

// Species is the biological species label of a tracked fish.
type Species string

const (
	Coho      Species = "Coho"
	Chinook   Species = "Chinook"
	Steelhead Species = "Steelhead"
	Unknown   Species = "Unknown"
)

// AllGroups and AllSpecies list the closed category sets in display order.
var (
	AllGroups  = []Group{Collected, AtLarge}
	AllSpecies = []Species{Coho, Chinook, Steelhead, Unknown}
)

// Known reports whether g is one of the fixed groups.
func (g Group) Known() bool {
	return g == Collected || g == AtLarge
}

// Known reports whether s is one of the fixed species.
func (s Species) Known() bool {
	for _, k := range AllSpecies {
		if s == k {
			return true
		}
	}
	return false
}

// CanonicalSpecies maps a raw species label onto the closed set ignoring
// case ("unknown" becomes Unknown). Unrecognized labels are returned as-is.
func CanonicalSpecies(raw string) Species {
	trimmed := strings.TrimSpace(raw)
	if trimmed == "" {
		return Unknown
	}
	for _, s := range AllSpecies {
		if strings.EqualFold(trimmed, string(s)) {
			return s
		}
	}
	return Species(raw)
}

// Point is a (longitude, latitude) pair.
type Point struct {
	Lon float64
	Lat float64
}

// Valid reports whether both coordinates are finite.
func (p Point) Valid() bool {
	return !math.IsNaN(p.Lon) && !math.IsInf(p.Lon, 0) &&
		!math.IsNaN(p.Lat) && !math.IsInf(p.Lat, 0)
}

// Observation is one row of an observation table.
type Observation struct {
	Group   Group
	Species Species
	Point   Point
	Time    time.Time // zero when the source has no timestamp
	Tag     string
}

// Table is an ordered, read-only sequence of observations. Row order is
// playback order.
type Table []Observation

// CategoryKey identifies one (group, species) category.
type CategoryKey struct {
	Group   Group
	Species Species
}

// String returns "<group> <species>", which is also the layer identity.
func (k CategoryKey) String() string {
	return string(k.Group) + " " + string(k.Species)
}

// Categories enumerates the full group x species product, group-major.
func Categories() []CategoryKey {
	keys := make([]CategoryKey, 0, len(AllGroups)*len(AllSpecies))
	for _, g := range AllGroups {
		for _, s := range AllSpecies {
			keys = append(keys, CategoryKey{Group: g, Species: s})
		}
	}
	return keys
}

// Mode selects how categories are colored.
type Mode string

const (
	ByGroup           Mode = "byGroup"
	BySpecies         Mode = "bySpecies"
	ByGroupAndSpecies Mode = "byGroupAndSpecies"
	Uniform           Mode = "uniform"
)

// Modes lists the comparison modes in the order the selector cycles them.
var Modes = []Mode{ByGroup, BySpecies, ByGroupAndSpecies, Uniform}

var modeAliases = map[string]Mode{
	"option1": ByGroup,
	"option2": BySpecies,
	"option3": ByGroupAndSpecies,
	"option4": Uniform,
}

// ParseMode accepts a mode name (case-insensitive) or one of the
// option1..option4 aliases.
func ParseMode(s string) (Mode, bool) {
	v := strings.ToLower(strings.TrimSpace(s))
	if m, ok := modeAliases[v]; ok {
		return m, true
	}
	for _, m := range Modes {
		if strings.ToLower(string(m)) == v {
			return m, true
		}
	}
	return Mode(s), false
}

// Next returns the mode after m in selector order; unknown modes restart at
// the first one.
func (m Mode) Next() Mode {
	for i, k := range Modes {
		if k == m {
			return Modes[(i+1)%len(Modes)]
		}
	}
	return Modes[0]
}

// Title is the human label shown on the mode selector.
func (m Mode) Title() string {
	switch m {
	case ByGroup:
		return "Collected vs At Large"
	case BySpecies:
		return "Fish by Species"
	case ByGroupAndSpecies:
		return "Group and Species"
	case Uniform:
		return "None"
	default:
		return string(m)
	}
}

// Selection is the operator's current control state. It is a plain value,
// rebuilt whenever a control changes.
type Selection struct {
	Groups     []Group
	Species    []Species
	Mode       Mode
	ShowPoints bool
	Animate    bool
	Clear      bool
}

// DefaultSelection shows every category colored by group.
func DefaultSelection() Selection {
	return Selection{
		Groups:     append([]Group(nil), AllGroups...),
		Species:    append([]Species(nil), AllSpecies...),
		Mode:       ByGroup,
		ShowPoints: true,
	}
}

// Pairs returns Groups x Species, group-major, in selection order.
func (s Selection) Pairs() []CategoryKey {
	keys := make([]CategoryKey, 0, len(s.Groups)*len(s.Species))
	for _, g := range s.Groups {
		for _, sp := range s.Species {
			keys = append(keys, CategoryKey{Group: g, Species: sp})
		}
	}
	return keys
}

// Dataset is everything a loader produces.
type Dataset struct {
	Tables  map[Group]Table
	Summary *Summary
}

// Summary is the tabular summary statistics shown next to the map.
type Summary struct {
	Columns []string
	Rows    [][]any
}
