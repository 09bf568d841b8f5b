package animate

import (
	"testing"

	"github.com/prowe/fishtrack/cmd/fish"
	"github.com/prowe/fishtrack/cmd/layers"
	"github.com/prowe/fishtrack/cmd/palette"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func directorLayers() []layers.Layer {
	atLarge := fish.CategoryKey{Group: fish.AtLarge, Species: fish.Chinook}
	return []layers.Layer{
		{Key: cohoKey, ID: cohoKey.String(), Points: threePoints(), Color: palette.Blue, Radius: layers.SmallRadius},
		{Key: atLarge, ID: atLarge.String(), Points: threePoints()[:2], Color: palette.Orange, Radius: layers.DefaultRadius},
	}
}

func TestDirector_CreatesAnimatorsOnlyWhenAnimating(t *testing.T) {
	d := NewDirector(newRecordingSurface(), DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()

	d.Reconcile(ls, sel)
	assert.Zero(t, d.Len())

	sel.Animate = true
	assert.NotNil(t, d.Reconcile(ls, sel))
	require.Equal(t, 2, d.Len())
	a, ok := d.Animator(cohoKey)
	require.True(t, ok)
	assert.Equal(t, Running, a.State())
}

func TestDirector_RoutesTicks(t *testing.T) {
	d := NewDirector(newRecordingSurface(), DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(ls, sel)

	a, _ := d.Animator(cohoKey)
	assert.NotNil(t, d.Update(TickMsg{Key: cohoKey, Generation: a.Generation()}))
	assert.Equal(t, 1, a.Cursor())

	other, _ := d.Animator(ls[1].Key)
	assert.Zero(t, other.Cursor())

	assert.Nil(t, d.Update("not a tick"))
	assert.Nil(t, d.Update(TickMsg{Key: fish.CategoryKey{Group: fish.AtLarge, Species: fish.Unknown}}))
}

func TestDirector_ClearResetsEveryAnimator(t *testing.T) {
	s := newRecordingSurface()
	d := NewDirector(s, DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(ls, sel)
	for _, l := range ls {
		a, _ := d.Animator(l.Key)
		a.Step()
		a.Step()
	}
	require.NotEmpty(t, s.live)

	sel.Animate, sel.Clear = false, true
	d.Reconcile(ls, sel)
	for _, l := range ls {
		a, _ := d.Animator(l.Key)
		assert.Equal(t, Idle, a.State())
		assert.Zero(t, a.Cursor())
		assert.Zero(t, a.Live())
	}
	assert.Empty(t, s.live)

	// start after clear replays from the beginning
	sel.Animate, sel.Clear = true, false
	assert.NotNil(t, d.Reconcile(ls, sel))
	a, _ := d.Animator(cohoKey)
	assert.Equal(t, Running, a.State())
}

func TestDirector_StopDrains(t *testing.T) {
	d := NewDirector(newRecordingSurface(), DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(ls, sel)
	a, _ := d.Animator(cohoKey)
	a.Step()

	sel.Animate = false
	d.Reconcile(ls, sel)
	assert.Equal(t, Draining, a.State())
	assert.Equal(t, 1, a.Live())
}

func TestDirector_ModeChangeDoesNotRestart(t *testing.T) {
	d := NewDirector(newRecordingSurface(), DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(ls, sel)
	a, _ := d.Animator(cohoKey)
	for a.Step() {
	}
	require.Equal(t, Idle, a.State())

	ls[0].Color = palette.Cyan
	d.Reconcile(ls, sel)
	assert.Equal(t, Idle, a.State(), "a finished replay stays finished")
	assert.Equal(t, 3, a.Cursor())
	assert.Equal(t, palette.Cyan, a.color)
}

func TestDirector_TearsDownVanishedCategories(t *testing.T) {
	s := newRecordingSurface()
	d := NewDirector(s, DefaultSettings(), nil)
	ls := directorLayers()
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(ls, sel)
	gone, _ := d.Animator(ls[1].Key)
	gen := gone.Generation()
	gone.Step()
	require.Len(t, s.live, 1)

	d.Reconcile(ls[:1], sel)
	assert.Equal(t, 1, d.Len())
	_, ok := d.Animator(ls[1].Key)
	assert.False(t, ok)
	assert.Empty(t, s.live)
	assert.Nil(t, d.Update(TickMsg{Key: ls[1].Key, Generation: gen}))
}

func TestDirector_TeardownAll(t *testing.T) {
	s := newRecordingSurface()
	d := NewDirector(s, DefaultSettings(), nil)
	sel := fish.DefaultSelection()
	sel.Animate = true
	d.Reconcile(directorLayers(), sel)
	a, _ := d.Animator(cohoKey)
	a.Step()

	d.TeardownAll()
	assert.Zero(t, d.Len())
	assert.Empty(t, s.live)
}
