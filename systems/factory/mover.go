package factory

import (
	"github.com/automoto/doomerang-collide/archetypes"
	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// CreateMover spawns a collidable entity centred on (x, y). A zero width or
// height falls back to the configured mover size.
func CreateMover(ecs *ecs.ECS, x, y, w, h, speedX, speedY float64) *donburi.Entry {
	mover := archetypes.Mover.Spawn(ecs)

	if w == 0 {
		w = cfg.Mover.Width
	}
	if h == 0 {
		h = cfg.Mover.Height
	}

	box := aabb.New(w, h)
	box.SetPosition(x, y)
	box.BeginStep()
	box.HitBoxOffsetFront = cfg.Mover.HitBoxOffsetFront
	box.HitBoxOffsetBack = cfg.Mover.HitBoxOffsetBack
	components.BoundingBox.SetValue(mover, box)

	components.Velocity.SetValue(mover, components.VelocityData{SpeedX: speedX, SpeedY: speedY})
	components.Motion.SetValue(mover, components.MotionData{ProposedX: x, ProposedY: y})
	if speedX < 0 {
		components.Facing.SetValue(mover, components.FacingData{Direction: components.DirectionLeft})
	}

	box.UpdateTransformPosition(components.Translation{TransformData: transform.Transform.Get(mover)})
	netcomponents.NetBox.SetValue(mover, netcomponents.NetBoxData{X: x, Y: y, Width: w, Height: h})

	return mover
}
