package animate

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/prowe/fishtrack/cmd/fish"
)

// TickMsg fires one step of the animator for Key, provided its loop
// generation is still current.
type TickMsg struct {
	Key        fish.CategoryKey
	Generation int
}

// Start moves the animator into Running and returns the command scheduling
// its first tick, or nil when no new loop is needed.
func (a *Animator) Start() tea.Cmd {
	if !a.begin() {
		return nil
	}
	return a.schedule()
}

func (a *Animator) schedule() tea.Cmd {
	key, gen := a.key, a.generation
	return tea.Tick(a.settings.Tick, func(time.Time) tea.Msg {
		return TickMsg{Key: key, Generation: gen}
	})
}

// Update handles a tick addressed to this animator and schedules the next
// one while the loop runs. Stale ticks are ignored.
func (a *Animator) Update(msg TickMsg) tea.Cmd {
	if msg.Key != a.key || msg.Generation != a.generation {
		return nil
	}
	if !a.Step() {
		return nil
	}
	return a.schedule()
}

// Run drives the animator from a ticker until the replay finishes or ctx is
// cancelled; frame is called after every tick. Cancellation tears the
// animator down.
func Run(ctx context.Context, a *Animator, frame func(tick int)) error {
	if !a.begin() {
		return nil
	}
	ticker := time.NewTicker(a.settings.Tick)
	defer ticker.Stop()
	for tick := 1; ; tick++ {
		select {
		case <-ctx.Done():
			a.Teardown()
			return ctx.Err()
		case <-ticker.C:
			if ctx.Err() != nil {
				a.Teardown()
				return ctx.Err()
			}
			running := a.Step()
			if frame != nil {
				frame(tick)
			}
			if !running {
				return nil
			}
		}
	}
}
