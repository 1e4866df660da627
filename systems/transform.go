package systems

import (
	"github.com/automoto/doomerang-collide/components"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

// UpdateTransforms pushes each committed box position into its renderable transform.
func UpdateTransforms(ecs *ecs.ECS) {
	components.BoundingBox.Each(ecs.World, func(e *donburi.Entry) {
		if !e.HasComponent(transform.Transform) {
			return
		}
		box := components.BoundingBox.Get(e)
		box.UpdateTransformPosition(components.Translation{TransformData: transform.Transform.Get(e)})
	})
}
