package systems

import (
	"testing"

	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotRoundTrip(t *testing.T) {
	src := newTestECS()
	factory.CreateWall(src, 0, 0, 100, 10)
	factory.CreateMover(src, -20, 20, 10, 10, perStep(1), perStep(-10))
	factory.CreateMover(src, 20, 40, 10, 10, perStep(-1), 0)
	src.Update()

	snap := CaptureSnapshot(src)
	require.Len(t, snap.Movers, 2)
	assert.True(t, snap.Movers[0].OnGround)
	assert.InDelta(t, 10.0, snap.Movers[0].Y, 1e-9)

	dst := newTestECS()
	a := factory.CreateMover(dst, 0, 0, 10, 10, 0, 0)
	b := factory.CreateMover(dst, 0, 0, 10, 10, 0, 0)
	ApplySnapshot(dst, snap)

	assert.Equal(t, snap, CaptureSnapshot(dst))
	assert.True(t, components.BoundingBox.Get(a).OnGround)
	assert.InDelta(t, 19.0, components.BoundingBox.Get(b).Position.X, 1e-9)

	box := components.BoundingBox.Get(a)
	assert.Equal(t, box.Position, box.OldPosition, "restored movers start a fresh step")
}

func TestApplySnapshotIgnoresExtras(t *testing.T) {
	e := newTestECS()
	m := factory.CreateMover(e, 1, 2, 10, 10, 0, 0)

	ApplySnapshot(e, Snapshot{})
	assert.Equal(t, 1.0, components.BoundingBox.Get(m).Position.X)

	ApplySnapshot(e, Snapshot{Movers: []MoverSnapshot{{X: 5, Y: 6}, {X: 7, Y: 8}}})
	assert.Equal(t, 5.0, components.BoundingBox.Get(m).Position.X)
	assert.Equal(t, 6.0, components.BoundingBox.Get(m).Position.Y)
}

func TestSnapshotWithoutPersistence(t *testing.T) {
	e := newTestECS()
	factory.CreateMover(e, 0, 0, 10, 10, 0, 0)

	assert.NoError(t, SaveSnapshot(e, "alpha"))
	found, err := LoadSnapshot(e, "alpha")
	assert.NoError(t, err)
	assert.False(t, found)
}
