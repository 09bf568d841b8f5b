package palette

import "github.com/prowe/fishtrack/cmd/fish"

// Color is a CSS color name.
type Color string

const (
	Blue        Color = "blue"
	Orange      Color = "orange"
	Brown       Color = "brown"
	Green       Color = "green"
	Gray        Color = "gray"
	Purple      Color = "purple"
	Cyan        Color = "cyan"
	Pink        Color = "pink"
	GreenYellow Color = "greenyellow"
	Red         Color = "red"
)

// Fallback is returned for any combination the palettes do not cover.
const Fallback = Red

var hex = map[Color]string{
	Blue:        "#0000FF",
	Orange:      "#FFA500",
	Brown:       "#A52A2A",
	Green:       "#008000",
	Gray:        "#808080",
	Purple:      "#800080",
	Cyan:        "#00FFFF",
	Pink:        "#FFC0CB",
	GreenYellow: "#ADFF2F",
	Red:         "#FF0000",
}

// Hex returns the #RRGGBB form of c; unknown names render as the fallback.
func (c Color) Hex() string {
	if h, ok := hex[c]; ok {
		return h
	}
	return hex[Fallback]
}

var (
	groupColors = map[fish.Group]Color{
		fish.Collected: Blue,
		fish.AtLarge:   Orange,
	}
	speciesColors = map[fish.Species]Color{
		fish.Coho:      Blue,
		fish.Chinook:   Brown,
		fish.Steelhead: Green,
		fish.Unknown:   Gray,
	}
	categoryColors = map[fish.CategoryKey]Color{
		{Group: fish.Collected, Species: fish.Coho}:      Blue,
		{Group: fish.Collected, Species: fish.Chinook}:   Purple,
		{Group: fish.Collected, Species: fish.Steelhead}: Green,
		{Group: fish.AtLarge, Species: fish.Coho}:        Cyan,
		{Group: fish.AtLarge, Species: fish.Chinook}:     Pink,
		{Group: fish.AtLarge, Species: fish.Steelhead}:   GreenYellow,
		{Group: fish.AtLarge, Species: fish.Unknown}:     Gray,
	}
)

// Resolve returns the display color of a category under mode. It never
// fails: anything outside the palette for that mode yields Fallback.
func Resolve(group fish.Group, species fish.Species, mode fish.Mode) Color {
	switch mode {
	case fish.Uniform:
		return Blue
	case fish.ByGroup:
		return lookup(groupColors, group)
	case fish.BySpecies:
		return lookup(speciesColors, species)
	case fish.ByGroupAndSpecies:
		return lookup(categoryColors, fish.CategoryKey{Group: group, Species: species})
	default:
		return Fallback
	}
}

func lookup[K comparable](table map[K]Color, k K) Color {
	if c, ok := table[k]; ok {
		return c
	}
	return Fallback
}
