package mapview

import (
	"math"

	"github.com/prowe/fishtrack/cmd/fish"
	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/wroge/wgs84"
)

// terminal cells are roughly twice as tall as they are wide
const cellAspect = 2.0

// minSpan keeps a view around a single point (or an empty map) from
// collapsing to zero width, in meters.
const minSpan = 200.0

var mercator = wgs84.EPSG().Transform(4326, 3857)

// ToMercator projects a WGS84 point to EPSG:3857 meters.
func ToMercator(p fish.Point) geom.XY {
	x, y, _ := mercator(p.Lon, p.Lat, 0)
	return geom.XY{X: x, Y: y}
}

// Viewport maps projected coordinates onto a width x height grid of cells.
type Viewport struct {
	minX, maxX float64
	minY, maxY float64
}

// FitViewport returns a viewport covering every valid point, or a minSpan
// square around center when there are none.
func FitViewport(points []fish.Point, center fish.Point) Viewport {
	v := Viewport{
		minX: math.Inf(1), maxX: math.Inf(-1),
		minY: math.Inf(1), maxY: math.Inf(-1),
	}
	n := 0
	for _, p := range points {
		if !p.Valid() {
			continue
		}
		xy := ToMercator(p)
		v.minX, v.maxX = math.Min(v.minX, xy.X), math.Max(v.maxX, xy.X)
		v.minY, v.maxY = math.Min(v.minY, xy.Y), math.Max(v.maxY, xy.Y)
		n++
	}
	if n == 0 {
		c := ToMercator(center)
		v = Viewport{minX: c.X, maxX: c.X, minY: c.Y, maxY: c.Y}
	}
	if v.maxX-v.minX < minSpan {
		mid := (v.minX + v.maxX) / 2
		v.minX, v.maxX = mid-minSpan/2, mid+minSpan/2
	}
	if v.maxY-v.minY < minSpan {
		mid := (v.minY + v.maxY) / 2
		v.minY, v.maxY = mid-minSpan/2, mid+minSpan/2
	}
	return v
}

// Cell returns the grid cell of xy on a width x height grid, preserving the
// aspect ratio of the viewport. ok is false when xy falls outside the grid.
func (v Viewport) Cell(xy geom.XY, width, height int) (col, row int, ok bool) {
	if width <= 0 || height <= 0 {
		return 0, 0, false
	}
	spanX, spanY := v.maxX-v.minX, v.maxY-v.minY
	perCol := math.Max(spanX/float64(width), spanY*cellAspect/float64(height))
	perRow := perCol / cellAspect
	// center the data extent inside the grid
	offX := (float64(width) - spanX/perCol) / 2
	offY := (float64(height) - spanY/perRow) / 2

	fc := offX + (xy.X-v.minX)/perCol
	fr := offY + (v.maxY-xy.Y)/perRow
	col, row = int(math.Floor(fc)), int(math.Floor(fr))
	if col == width {
		col--
	}
	if row == height {
		row--
	}
	if col < 0 || col >= width || row < 0 || row >= height {
		return 0, 0, false
	}
	return col, row, true
}
