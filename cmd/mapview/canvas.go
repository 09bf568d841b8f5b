package mapview

import (
	"sort"

	"github.com/NimbleMarkets/ntcharts/canvas"
	"github.com/charmbracelet/lipgloss"
	"github.com/google/uuid"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/palette"
	geom "github.com/peterstace/simplefeatures/geom"
)

var _ Surface = (*Canvas)(nil)

type marker struct {
	point   fish.Point
	xy      geom.XY
	color   palette.Color
	radius  float64
	opacity float64
	seq     uint64
}

// Canvas is a terminal map: a Surface whose markers are rasterized onto an
// ntcharts canvas on every Render.
type Canvas struct {
	markers        map[Handle]*marker
	seq            uint64
	defaultOpacity float64
	background     colorful.Color
	viewport       Viewport
}

// NewCanvas creates an empty map. Markers added through AddMarker start at
// defaultOpacity until SetOpacity is called.
func NewCanvas(defaultOpacity float64, center fish.Point) *Canvas {
	bg, _ := colorful.Hex("#101418")
	return &Canvas{
		markers:        make(map[Handle]*marker),
		defaultOpacity: defaultOpacity,
		background:     bg,
		viewport:       FitViewport(nil, center),
	}
}

// Fit zooms the map to cover points.
func (c *Canvas) Fit(points []fish.Point, center fish.Point) {
	c.viewport = FitViewport(points, center)
}

func (c *Canvas) AddMarker(p fish.Point, col palette.Color, radius float64) Handle {
	h := uuid.New()
	c.seq++
	c.markers[h] = &marker{
		point:   p,
		xy:      ToMercator(p),
		color:   col,
		radius:  radius,
		opacity: c.defaultOpacity,
		seq:     c.seq,
	}
	return h
}

func (c *Canvas) RemoveMarker(h Handle) {
	delete(c.markers, h)
}

func (c *Canvas) SetOpacity(h Handle, v float64) {
	if m, ok := c.markers[h]; ok {
		m.opacity = v
	}
}

// Len is the number of live markers.
func (c *Canvas) Len() int { return len(c.markers) }

// Opacity returns the opacity of h and whether h is live.
func (c *Canvas) Opacity(h Handle) (float64, bool) {
	m, ok := c.markers[h]
	if !ok {
		return 0, false
	}
	return m.opacity, true
}

// Render draws every live marker, oldest first, onto a width x height grid.
func (c *Canvas) Render(width, height int) string {
	cv := canvas.New(width, height)
	ordered := make([]*marker, 0, len(c.markers))
	for _, m := range c.markers {
		ordered = append(ordered, m)
	}
	sort.Slice(ordered, func(i, j int) bool { return ordered[i].seq < ordered[j].seq })
	for _, m := range ordered {
		col, row, ok := c.viewport.Cell(m.xy, width, height)
		if !ok {
			continue
		}
		cv.SetCell(canvas.Point{X: col, Y: row}, canvas.NewCellWithStyle(c.glyph(m), c.style(m)))
	}
	return cv.View()
}

// Terminal cells have no alpha channel: opacity is rendered by blending the
// marker color into the background, saturating at 0.5.
func (c *Canvas) intensity(m *marker) float64 {
	v := m.opacity * 2
	if v > 1 {
		return 1
	}
	if v < 0 {
		return 0
	}
	return v
}

func (c *Canvas) style(m *marker) lipgloss.Style {
	fg, err := colorful.Hex(m.color.Hex())
	if err != nil {
		fg, _ = colorful.Hex(palette.Fallback.Hex())
	}
	blended := c.background.BlendRgb(fg, c.intensity(m)).Clamped()
	return lipgloss.NewStyle().Foreground(lipgloss.Color(blended.Hex()))
}

func (c *Canvas) glyph(m *marker) rune {
	switch {
	case c.intensity(m) < 0.25:
		return '·'
	case m.radius <= 2:
		return '•'
	default:
		return '●'
	}
}
