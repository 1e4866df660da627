package systems

import (
	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/shared/gamemath"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateMotion starts a step for every box and proposes its next position from
// its velocity. Positions are not committed here; UpdateCollisions does that.
func UpdateMotion(ecs *ecs.ECS) {
	dt := cfg.StepSeconds()

	components.Motion.Each(ecs.World, func(e *donburi.Entry) {
		box := components.BoundingBox.Get(e)
		box.BeginStep()

		motion := components.Motion.Get(e)
		motion.ProposedX = box.Position.X
		motion.ProposedY = box.Position.Y

		if !e.HasComponent(components.Velocity) {
			return
		}
		vel := components.Velocity.Get(e)
		if e.HasComponent(tags.Mover) {
			vel.SpeedX = gamemath.ClampSpeed(vel.SpeedX, cfg.Mover.MaxSpeed)
			vel.SpeedY = gamemath.ClampSpeed(vel.SpeedY, cfg.Mover.MaxSpeed)
		}
		motion.ProposedX += vel.SpeedX * dt
		motion.ProposedY += vel.SpeedY * dt

		if e.HasComponent(components.Facing) && vel.SpeedX != 0 {
			facing := components.Facing.Get(e)
			if vel.SpeedX > 0 {
				facing.Direction = components.DirectionRight
			} else {
				facing.Direction = components.DirectionLeft
			}
		}
	})
}
