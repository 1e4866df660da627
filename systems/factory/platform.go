package factory

import (
	"github.com/automoto/doomerang-collide/archetypes"
	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/shared/leveldata"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreatePlatform spawns a one-way platform: movers land on its top but pass
// through it from below and from the sides.
func CreatePlatform(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	platform := archetypes.Platform.Spawn(ecs)
	placeBox(platform, x, y, w, h)
	return platform
}

// CreateMovingObstacle spawns a wall or platform that travels back and forth.
// Only one axis is driven; MoveX wins when both are set.
func CreateMovingObstacle(ecs *ecs.ECS, o leveldata.Obstacle) *donburi.Entry {
	extra := []donburi.IComponentType{tags.MovingPlatform, components.Tween, components.Velocity}

	var e *donburi.Entry
	if o.Kind == leveldata.KindPlatform {
		e = archetypes.Platform.Spawn(ecs, extra...)
	} else {
		e = archetypes.Solid.Spawn(ecs, extra...)
	}
	placeBox(e, o.X, o.Y, o.W, o.H)

	axis, distance := components.AxisX, o.MoveX
	if distance == 0 {
		axis, distance = components.AxisY, o.MoveY
	}

	// The moving platform uses a *gween.Sequence of tweens, moving it out and back.
	seq := gween.NewSequence(
		gween.New(0, float32(distance), float32(o.Seconds), ease.InOutSine),
		gween.New(float32(distance), 0, float32(o.Seconds), ease.InOutSine),
	)
	components.Tween.SetValue(e, components.TweenData{Sequence: seq, Axis: axis})

	return e
}
