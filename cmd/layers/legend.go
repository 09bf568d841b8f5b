package layers

import (
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/palette"
)

// AllLabel is the single legend label of the uniform mode.
const AllLabel = "All"

// LegendEntry is one swatch of the legend.
type LegendEntry struct {
	Label string
	Color palette.Color
}

// BuildLegend lists the legend swatches for a selection. It needs no point
// data, so categories without observations still get an entry.
func BuildLegend(sel fish.Selection) []LegendEntry {
	var out []LegendEntry
	switch sel.Mode {
	case fish.ByGroup:
		for _, g := range sel.Groups {
			out = append(out, LegendEntry{Label: string(g), Color: palette.Resolve(g, "", sel.Mode)})
		}
	case fish.BySpecies:
		for _, s := range sel.Species {
			out = append(out, LegendEntry{Label: string(s), Color: palette.Resolve("", s, sel.Mode)})
		}
	case fish.ByGroupAndSpecies:
		for _, key := range sel.Pairs() {
			out = append(out, LegendEntry{Label: key.String(), Color: palette.Resolve(key.Group, key.Species, sel.Mode)})
		}
	default:
		// unrecognized modes color every layer with the fallback, so does the legend
		out = append(out, LegendEntry{Label: AllLabel, Color: palette.Resolve("", "", sel.Mode)})
	}
	return out
}
