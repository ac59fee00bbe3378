package sim

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/tui-bomber/internal/core"
)

func TestBombLifecycle(t *testing.T) {
	w := newTestWorld(t, playerAt(0, 0))

	r := w.Step(tick, Input{PlaceBomb: true})
	p, _ := w.Player()
	assert.Equal(t, 4, p.Bombs, "placing a bomb spends one")
	require.Len(t, w.Bombs(), 1)
	assert.Equal(t, 1, r.Count(EventBombPlaced))

	// 1.9s elapsed: still ticking
	stepN(w, 18, Input{})
	require.Len(t, w.Bombs(), 1)
	assert.Empty(t, w.Explosions())

	// 2.0s: the bomb is gone and one explosion sits where it was
	r = w.Step(tick, Input{})
	assert.Empty(t, w.Bombs())
	require.Len(t, w.Explosions(), 1)
	assert.Equal(t, core.V(0, 0), w.Explosions()[0].Pos)
	assert.Equal(t, 1, r.Count(EventBombExploded))
	assert.Equal(t, 2*time.Second, w.Session().Clock)

	// 2.7s: still animating
	stepN(w, 7, Input{})
	require.Len(t, w.Explosions(), 1)
	assert.Equal(t, 14, w.Explosions()[0].Frame)

	// 2.8s: sixteen frames later it is removed
	r = w.Step(tick, Input{})
	assert.Empty(t, w.Explosions())
	assert.Equal(t, 1, r.Count(EventExplosionEnded))
}

func TestBombStaysAtPlacement(t *testing.T) {
	w := newTestWorld(t, playerAt(0, 0))
	w.Step(tick, Input{PlaceBomb: true})
	stepN(w, 5, Input{MoveX: -1})

	p, _ := w.Player()
	require.Len(t, w.Bombs(), 1)
	assert.Equal(t, core.V(0, 0), w.Bombs()[0].Pos)
	assert.NotEqual(t, p.Pos, w.Bombs()[0].Pos)
}

func TestPlaceBombWithEmptyInventory(t *testing.T) {
	w := newTestWorld(t, playerAt(0, 0), func(o *Options) { o.Tuning.StartBombs = 0 })

	r := w.Step(tick, Input{PlaceBomb: true})
	p, _ := w.Player()
	assert.Equal(t, 0, p.Bombs)
	assert.Empty(t, w.Bombs())
	assert.Zero(t, r.Count(EventBombPlaced))
	assert.False(t, w.PlaceBomb())
}

func TestBombsAreIndependent(t *testing.T) {
	w := newTestWorld(t, playerAt(0, 0))

	w.Step(tick, Input{PlaceBomb: true})
	stepN(w, 4, Input{})
	w.Step(tick, Input{PlaceBomb: true})
	require.Len(t, w.Bombs(), 2)

	// First fuse runs out at tick 20, second at tick 25
	stepN(w, 14, Input{})
	assert.Len(t, w.Bombs(), 1)
	assert.Len(t, w.Explosions(), 1)

	stepN(w, 5, Input{})
	assert.Empty(t, w.Bombs())
	assert.Len(t, w.Explosions(), 2)
}

func TestExplosionLongTickAdvancesSeveralFrames(t *testing.T) {
	w := newTestWorld(t, playerAt(0, 0))
	w.PlaceBomb()
	w.Step(DefaultBombFuse, Input{})
	require.Len(t, w.Explosions(), 1)
	assert.Equal(t, 0, w.Explosions()[0].Frame)

	w.Step(175*time.Millisecond, Input{})
	require.Len(t, w.Explosions(), 1)
	assert.Equal(t, 3, w.Explosions()[0].Frame)
}

func TestExplosionDisplayFrame(t *testing.T) {
	assert.Equal(t, 15, Explosion{Frame: 16}.DisplayFrame(16))
	assert.Equal(t, 4, Explosion{Frame: 4}.DisplayFrame(16))
}
