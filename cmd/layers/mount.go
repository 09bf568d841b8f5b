package layers

import (
	"log/slog"

	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/mapview"
)

type mounted struct {
	layer   Layer
	handles []mapview.Handle
}

// Mounter keeps the drawn markers of a set of layers in step with the layers
// last passed to Sync. Every mounted layer owns its handles exclusively.
type Mounter struct {
	surface mapview.Surface
	mounted map[string]*mounted
	logger  *slog.Logger
}

// NewMounter creates a mounter drawing onto surface.
func NewMounter(surface mapview.Surface, logger *slog.Logger) *Mounter {
	if logger == nil {
		logger = slog.Default()
	}
	return &Mounter{surface: surface, mounted: make(map[string]*mounted), logger: logger}
}

// Sync unmounts layers that vanished or changed and mounts new ones.
func (m *Mounter) Sync(layers []Layer) {
	want := make(map[string]Layer, len(layers))
	for _, l := range layers {
		want[l.ID] = l
	}
	for id, cur := range m.mounted {
		next, ok := want[id]
		if ok && sameLayer(cur.layer, next) {
			continue
		}
		m.unmount(id)
	}
	for _, l := range layers {
		if _, ok := m.mounted[l.ID]; ok || len(l.Points) == 0 {
			continue
		}
		m.mount(l)
	}
}

// UnmountAll releases every mounted layer.
func (m *Mounter) UnmountAll() {
	for id := range m.mounted {
		m.unmount(id)
	}
}

// Mounted returns the IDs currently drawn.
func (m *Mounter) Mounted() map[string]int {
	out := make(map[string]int, len(m.mounted))
	for id, mt := range m.mounted {
		out[id] = len(mt.handles)
	}
	return out
}

func (m *Mounter) mount(l Layer) {
	mt := &mounted{layer: l, handles: make([]mapview.Handle, 0, len(l.Points))}
	for _, p := range l.Points {
		mt.handles = append(mt.handles, m.surface.AddMarker(p, l.Color, l.Radius))
	}
	m.mounted[l.ID] = mt
	m.logger.Debug("layer mounted", "layer", l.ID, "points", len(l.Points), "color", l.Color)
}

func (m *Mounter) unmount(id string) {
	mt, ok := m.mounted[id]
	if !ok {
		return
	}
	for _, h := range mt.handles {
		m.surface.RemoveMarker(h)
	}
	delete(m.mounted, id)
	m.logger.Debug("layer unmounted", "layer", id)
}

// sameLayer compares data by identity: memoized subsets are shared slices,
// so a rebuilt layer over the same subset is not remounted.
func sameLayer(a, b Layer) bool {
	return a.Color == b.Color && a.Radius == b.Radius && samePoints(a.Points, b.Points)
}

func samePoints(a, b []fish.Point) bool {
	if len(a) != len(b) {
		return false
	}
	return len(a) == 0 || &a[0] == &b[0]
}
