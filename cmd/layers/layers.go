package layers

import (
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/palette"
)

// Marker radii. Coho are drawn smaller than every other species.
const (
	SmallRadius   = 2.0
	DefaultRadius = 4.0
)

// RadiusFor returns the marker radius used for species.
func RadiusFor(species fish.Species) float64 {
	if species == fish.Coho {
		return SmallRadius
	}
	return DefaultRadius
}

// Layer is one colored set of points for a category under the active mode.
type Layer struct {
	Key    fish.CategoryKey
	ID     string
	Points []fish.Point
	Color  palette.Color
	Radius float64
}

// Compositor turns per-group tables and a selection into layers. Species
// subsets are memoized per category; tables are immutable so the memo only
// resets when SetTables replaces them.
type Compositor struct {
	tables map[fish.Group]fish.Table
	memo   map[fish.CategoryKey][]fish.Point
}

// NewCompositor creates a compositor over tables.
func NewCompositor(tables map[fish.Group]fish.Table) *Compositor {
	c := &Compositor{}
	c.SetTables(tables)
	return c
}

// SetTables replaces the source tables and drops every memoized subset.
func (c *Compositor) SetTables(tables map[fish.Group]fish.Table) {
	c.tables = tables
	c.memo = make(map[fish.CategoryKey][]fish.Point)
}

// Points returns the memoized subset for key.
func (c *Compositor) Points(key fish.CategoryKey) []fish.Point {
	if pts, ok := c.memo[key]; ok {
		return pts
	}
	pts := fish.Subset(c.tables[key.Group], key.Species)
	c.memo[key] = pts
	return pts
}

// Build returns one layer per selected (group, species) pair with data,
// group-major in selection order. Empty categories are omitted.
func (c *Compositor) Build(sel fish.Selection) []Layer {
	var out []Layer
	for _, key := range sel.Pairs() {
		pts := c.Points(key)
		if len(pts) == 0 {
			continue
		}
		out = append(out, Layer{
			Key:    key,
			ID:     key.String(),
			Points: pts,
			Color:  palette.Resolve(key.Group, key.Species, sel.Mode),
			Radius: RadiusFor(key.Species),
		})
	}
	return out
}
