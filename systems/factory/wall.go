package factory

import (
	"github.com/automoto/doomerang-collide/archetypes"
	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// CreateWall spawns a solid box centred on (x, y) that blocks from every side.
func CreateWall(ecs *ecs.ECS, x, y, w, h float64) *donburi.Entry {
	wall := archetypes.Solid.Spawn(ecs)
	placeBox(wall, x, y, w, h)
	return wall
}

func placeBox(e *donburi.Entry, x, y, w, h float64) {
	box := aabb.New(w, h)
	box.SetPosition(x, y)
	box.BeginStep()
	components.BoundingBox.SetValue(e, box)
	components.Motion.SetValue(e, components.MotionData{ProposedX: x, ProposedY: y})
	box.UpdateTransformPosition(components.Translation{TransformData: transform.Transform.Get(e)})
}
