package animate

import (
	"log/slog"
	"time"

	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/mapview"
	"github.com/prowe/fishtrack/cmd/palette"
)

// ParticleRadius is the marker radius of every particle.
const ParticleRadius = 4.0

// opacities are computed, not accumulated, but the floor comparison still
// needs slack for values like 0.5-24*0.02
const epsilon = 1e-9

// State of an Animator.
type State int

const (
	// Idle has no live particles and no tick loop.
	Idle State = iota
	// Running spawns one particle per tick and decays the live ones.
	Running
	// Draining no longer spawns; live particles decay until none remain.
	Draining
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Running:
		return "running"
	case Draining:
		return "draining"
	default:
		return "unknown"
	}
}

// Settings are the fixed parameters of the tick loop.
type Settings struct {
	Tick         time.Duration
	StartOpacity float64
	Step         float64
	Floor        float64
}

// DefaultSettings: a particle lives for 24 ticks (0.5 down to 0.02).
func DefaultSettings() Settings {
	return Settings{
		Tick:         25 * time.Millisecond,
		StartOpacity: 0.5,
		Step:         0.02,
		Floor:        0.02,
	}
}

type particle struct {
	handle mapview.Handle
	age    int
}

// Animator replays one category's points as fading particles.
//
// The loop is cancelled through generation: every loop start captures the
// current value in its tick messages and Clear/Teardown bump it, so a tick
// from an earlier loop is dropped.
type Animator struct {
	key      fish.CategoryKey
	source   []fish.Point
	color    palette.Color
	settings Settings
	surface  mapview.Surface
	logger   *slog.Logger

	state      State
	cursor     int
	particles  []particle
	generation int
}

// New creates an idle animator for key over source.
func New(key fish.CategoryKey, source []fish.Point, color palette.Color, surface mapview.Surface, settings Settings, logger *slog.Logger) *Animator {
	if logger == nil {
		logger = slog.Default()
	}
	return &Animator{
		key:      key,
		source:   source,
		color:    color,
		settings: settings,
		surface:  surface,
		logger:   logger.With("category", key.String()),
	}
}

func (a *Animator) Key() fish.CategoryKey { return a.key }
func (a *Animator) State() State          { return a.state }
func (a *Animator) Cursor() int           { return a.cursor }
func (a *Animator) Live() int             { return len(a.particles) }
func (a *Animator) Generation() int       { return a.generation }

// Opacities returns the opacity of every live particle, oldest first.
func (a *Animator) Opacities() []float64 {
	out := make([]float64, len(a.particles))
	for i, p := range a.particles {
		out[i] = a.opacity(p.age)
	}
	return out
}

// SetColor changes the color of particles spawned from now on.
func (a *Animator) SetColor(c palette.Color) { a.color = c }

// begin moves the animator into Running. It reports whether a new tick loop
// has to be scheduled.
func (a *Animator) begin() bool {
	if len(a.source) == 0 {
		return false
	}
	switch a.state {
	case Running:
		return false
	case Draining:
		// the loop is still ticking, only spawning resumes
		a.state = Running
		return false
	}
	if a.cursor >= len(a.source) {
		a.cursor = 0
	}
	a.state = Running
	a.generation++
	a.logger.Debug("animation started", "cursor", a.cursor, "points", len(a.source))
	return true
}

// Stop halts spawning; live particles keep fading and the loop ends once
// they are gone. The cursor is kept so Start resumes where it stopped.
func (a *Animator) Stop() {
	if a.state == Running {
		a.state = Draining
		a.logger.Debug("animation stopping", "cursor", a.cursor, "live", len(a.particles))
	}
}

// Clear removes every particle, rewinds the cursor and cancels the loop,
// whatever the current state.
func (a *Animator) Clear() {
	for _, p := range a.particles {
		a.surface.RemoveMarker(p.handle)
	}
	a.particles = nil
	a.cursor = 0
	a.state = Idle
	a.generation++
}

// Teardown releases everything the animator drew; it is called when its
// category is unmounted.
func (a *Animator) Teardown() {
	a.Clear()
	a.logger.Debug("animation torn down")
}

func (a *Animator) opacity(age int) float64 {
	return a.settings.StartOpacity - float64(age)*a.settings.Step
}

// Step runs one tick and reports whether the loop continues.
func (a *Animator) Step() bool {
	if a.state == Idle {
		return false
	}
	if a.state == Running && a.cursor < len(a.source) {
		h := a.surface.AddMarker(a.source[a.cursor], a.color, ParticleRadius)
		a.surface.SetOpacity(h, a.settings.StartOpacity)
		a.particles = append(a.particles, particle{handle: h})
		a.cursor++
	}

	live := a.particles[:0]
	for _, p := range a.particles {
		p.age++
		op := a.opacity(p.age)
		if op <= a.settings.Floor+epsilon {
			a.surface.RemoveMarker(p.handle)
			continue
		}
		a.surface.SetOpacity(p.handle, op)
		live = append(live, p)
	}
	a.particles = live

	if len(a.particles) == 0 && (a.state == Draining || a.cursor >= len(a.source)) {
		a.state = Idle
		a.logger.Debug("animation finished", "cursor", a.cursor)
		return false
	}
	return true
}
