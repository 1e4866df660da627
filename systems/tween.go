package systems

import (
	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateTweens advances every moving obstacle's tween and turns this step's
// offset change into a velocity for the motion stage. Finished sequences loop.
func UpdateTweens(ecs *ecs.ECS) {
	dt := cfg.StepSeconds()

	components.Tween.Each(ecs.World, func(e *donburi.Entry) {
		tw := components.Tween.Get(e)
		vel := components.Velocity.Get(e)

		current, _, finished := tw.Sequence.Update(float32(dt))
		offset := float64(current)
		delta := offset - tw.Offset
		tw.Offset = offset
		if finished {
			tw.Sequence.Reset()
		}

		switch tw.Axis {
		case components.AxisX:
			vel.SpeedX, vel.SpeedY = delta/dt, 0
		case components.AxisY:
			vel.SpeedX, vel.SpeedY = 0, delta/dt
		}
	})
}
