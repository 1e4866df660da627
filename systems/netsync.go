package systems

import (
	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// UpdateNetBoxes copies each mover's box into its replicated component.
func UpdateNetBoxes(ecs *ecs.ECS) {
	netcomponents.NetBox.Each(ecs.World, func(e *donburi.Entry) {
		box := components.BoundingBox.Get(e)
		net := netcomponents.NetBox.Get(e)

		net.X = box.Position.X
		net.Y = box.Position.Y
		net.Width = box.Width()
		net.Height = box.Height()
		net.OnGround = box.OnGround
	})
}
