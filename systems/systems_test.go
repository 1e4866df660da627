package systems

import (
	"testing"

	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/automoto/doomerang-collide/shared/leveldata"
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/automoto/doomerang-collide/systems/factory"
	"github.com/stretchr/testify/assert"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// perStep converts a per-step displacement into a velocity at the configured rate.
func perStep(d float64) float64 {
	return d / cfg.StepSeconds()
}

func newTestECS() *ecs.ECS {
	e := ecs.NewECS(donburi.NewWorld())
	e.AddSystem(UpdateTweens)
	e.AddSystem(UpdateMotion)
	e.AddSystem(UpdateCollisions)
	e.AddSystem(UpdateTransforms)
	e.AddSystem(UpdateNetBoxes)
	return e
}

func withCollision(t *testing.T, c cfg.CollisionConfig) {
	t.Helper()
	prev := cfg.Collision
	cfg.Collision = c
	t.Cleanup(func() { cfg.Collision = prev })
}

func TestMoverLandsOnFloor(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 0, 100, 10) // top = 5
	mover := factory.CreateMover(e, 0, 20, 10, 10, 0, perStep(-10))

	e.Update()

	box := components.BoundingBox.Get(mover)
	assert.InDelta(t, 10.0, box.Position.Y, 1e-9)
	assert.True(t, box.OnGround)
	assert.Zero(t, components.Velocity.Get(mover).SpeedY)

	// Resting on the floor with no vertical speed keeps the mover grounded.
	e.Update()
	assert.InDelta(t, 10.0, box.Position.Y, 1e-9)
	assert.True(t, components.BoundingBox.Get(mover).OnGround)
}

func TestMoverStopsAtWall(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 20, 0, 10, 10) // left = 15
	mover := factory.CreateMover(e, 0, 0, 10, 10, perStep(30), 0)

	e.Update()

	box := components.BoundingBox.Get(mover)
	assert.InDelta(t, 10.0, box.Position.X, 1e-9)
	assert.InDelta(t, 0.0, box.OldPosition.X, 1e-9)
	assert.Zero(t, components.Velocity.Get(mover).SpeedX)
	assert.False(t, box.OnGround)
}

func TestMoverCatchesRetreatingWall(t *testing.T) {
	e := newTestECS()
	wall := factory.CreateWall(e, 20, 0, 10, 10) // left = 15
	wall.AddComponent(components.Velocity)
	components.Velocity.SetValue(wall, components.VelocityData{SpeedX: perStep(4)})
	mover := factory.CreateMover(e, 0, 0, 10, 10, perStep(30), 0) // right = 5

	e.Update()

	// Contact when the closing distance 10 is covered at relative speed 26.
	box := components.BoundingBox.Get(mover)
	assert.InDelta(t, 15+4*10.0/26-5, box.Position.X, 1e-9)
	assert.Zero(t, components.Velocity.Get(mover).SpeedX)

	w := components.BoundingBox.Get(wall)
	assert.InDelta(t, 24.0, w.Position.X, 1e-9, "walls move unobstructed")
	assert.LessOrEqual(t, box.Right(), w.Left()+1e-9)
}

func TestStopOnHitDisabled(t *testing.T) {
	withCollision(t, cfg.CollisionConfig{Policy: "nearest", StopOnHit: false})

	e := newTestECS()
	factory.CreateWall(e, 20, 0, 10, 10)
	mover := factory.CreateMover(e, 0, 0, 10, 10, perStep(30), 0)

	e.Update()

	assert.InDelta(t, 10.0, components.BoundingBox.Get(mover).Position.X, 1e-9)
	assert.InDelta(t, perStep(30), components.Velocity.Get(mover).SpeedX, 1e-9)
}

func TestPlatformIsOneWay(t *testing.T) {
	t.Run("passes through from below", func(t *testing.T) {
		e := newTestECS()
		factory.CreatePlatform(e, 0, 12, 20, 4) // bottom = 10, top = 14
		mover := factory.CreateMover(e, 0, 0, 10, 10, 0, perStep(10))

		e.Update()

		assert.InDelta(t, 10.0, components.BoundingBox.Get(mover).Position.Y, 1e-9)
		assert.NotZero(t, components.Velocity.Get(mover).SpeedY)
	})

	t.Run("lands from above", func(t *testing.T) {
		e := newTestECS()
		factory.CreatePlatform(e, 0, 12, 20, 4) // top = 14
		mover := factory.CreateMover(e, 0, 25, 10, 10, 0, perStep(-10))

		e.Update()

		box := components.BoundingBox.Get(mover)
		assert.InDelta(t, 19.0, box.Position.Y, 1e-9)
		assert.True(t, box.OnGround)
	})
}

func TestMoversAreIndependent(t *testing.T) {
	e := newTestECS()
	factory.CreateWall(e, 0, 0, 200, 10)
	a := factory.CreateMover(e, -50, 20, 10, 10, 0, perStep(-10))
	b := factory.CreateMover(e, -45, 20, 10, 10, 0, perStep(-10)) // overlaps a

	e.Update()

	assert.InDelta(t, 10.0, components.BoundingBox.Get(a).Position.Y, 1e-9)
	assert.InDelta(t, 10.0, components.BoundingBox.Get(b).Position.Y, 1e-9)
	assert.Len(t, Overlapping(e.World, a), 1)
}

func TestMotionUpdatesFacing(t *testing.T) {
	e := newTestECS()
	mover := factory.CreateMover(e, 0, 0, 10, 10, perStep(-2), 0)
	assert.Equal(t, components.DirectionLeft, components.Facing.Get(mover).Direction)

	components.Velocity.Get(mover).SpeedX = perStep(3)
	e.Update()
	assert.Equal(t, components.DirectionRight, components.Facing.Get(mover).Direction)

	// Standing still keeps the last direction.
	components.Velocity.Get(mover).SpeedX = 0
	e.Update()
	assert.Equal(t, components.DirectionRight, components.Facing.Get(mover).Direction)
}

func TestTransformsAndNetBoxesFollowTheBox(t *testing.T) {
	e := newTestECS()
	mover := factory.CreateMover(e, 3, 4, 10, 20, perStep(1), perStep(2))

	e.Update()

	box := components.BoundingBox.Get(mover)
	tr := transform.Transform.Get(mover)
	assert.InDelta(t, box.Position.X, tr.LocalPosition.X, 1e-9)
	assert.InDelta(t, box.Position.Y, tr.LocalPosition.Y, 1e-9)

	net := netcomponents.NetBox.Get(mover)
	assert.Equal(t, box.Position.X, net.X)
	assert.Equal(t, box.Position.Y, net.Y)
	assert.Equal(t, 10.0, net.Width)
	assert.Equal(t, 20.0, net.Height)
	assert.Equal(t, box.OnGround, net.OnGround)
}

func TestMovingObstacle(t *testing.T) {
	e := newTestECS()
	platform := factory.CreateMovingObstacle(e, leveldata.Obstacle{
		Rect:    leveldata.Rect{X: 0, Y: 0, W: 32, H: 8},
		Kind:    leveldata.KindPlatform,
		MoveX:   48,
		Seconds: 2,
	})

	e.Update()
	box := components.BoundingBox.Get(platform)
	tw := components.Tween.Get(platform)
	assert.Greater(t, box.Position.X, 0.0)
	assert.InDelta(t, tw.Offset, box.Position.X, 1e-6)
	assert.Zero(t, box.Position.Y)

	for i := 1; i < 2*cfg.Sim.StepsPerSecond; i++ {
		e.Update()
	}
	assert.InDelta(t, 48.0, components.BoundingBox.Get(platform).Position.X, 0.5, "out after one leg")

	for i := 0; i < 2*cfg.Sim.StepsPerSecond; i++ {
		e.Update()
	}
	assert.InDelta(t, 0.0, components.BoundingBox.Get(platform).Position.X, 0.5, "back after two legs")
}

func TestResolveMoverGrounding(t *testing.T) {
	e := newTestECS()
	floor := factory.CreateWall(e, 0, 0, 100, 10) // top = 5
	mover := factory.CreateMover(e, 0, 10, 10, 10, 0, 0)
	walls := obstaclesOf(floor)

	box := *components.BoundingBox.Get(mover)

	t.Run("resting", func(t *testing.T) {
		got, hitX, hitY := resolveMover(box, 0, 10, walls, nil, cfg.CollisionPolicy())
		assert.True(t, got.OnGround)
		assert.False(t, hitX)
		assert.False(t, hitY)
	})

	t.Run("jumping", func(t *testing.T) {
		got, _, hitY := resolveMover(box, 0, 12, walls, nil, cfg.CollisionPolicy())
		assert.False(t, got.OnGround)
		assert.False(t, hitY)
	})

	t.Run("walked off the edge", func(t *testing.T) {
		off := box
		off.SetPosition(80, 10)
		got, _, _ := resolveMover(off, 80, 10, walls, nil, cfg.CollisionPolicy())
		assert.False(t, got.OnGround)
	})
}

func obstaclesOf(entries ...*donburi.Entry) []aabb.Obstacle {
	out := make([]aabb.Obstacle, 0, len(entries))
	for _, e := range entries {
		out = append(out, aabb.Obstacle{Box: *components.BoundingBox.Get(e)})
	}
	return out
}

func TestMaxSpeedClampsMovers(t *testing.T) {
	prev := cfg.Mover
	cfg.Mover.MaxSpeed = perStep(1)
	t.Cleanup(func() { cfg.Mover = prev })

	e := newTestECS()
	mover := factory.CreateMover(e, 0, 0, 10, 10, perStep(5), perStep(-5))

	e.Update()

	box := components.BoundingBox.Get(mover)
	assert.InDelta(t, 1.0, box.Position.X, 1e-9)
	assert.InDelta(t, -1.0, box.Position.Y, 1e-9)
	assert.InDelta(t, perStep(1), components.Velocity.Get(mover).SpeedX, 1e-9)
}
