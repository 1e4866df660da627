package archetypes

import (
	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/shared/netcomponents"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/features/transform"
)

var (
	Mover = newArchetype(
		tags.Mover,
		components.BoundingBox,
		components.Velocity,
		components.Motion,
		components.Facing,
		transform.Transform,
		netcomponents.NetBox,
	)
	Solid = newArchetype(
		tags.Solid,
		components.BoundingBox,
		components.Motion,
		transform.Transform,
	)
	Platform = newArchetype(
		tags.Platform,
		components.BoundingBox,
		components.Motion,
		transform.Transform,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus cs.
func (a *archetype) Spawn(ecs *ecs.ECS, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	e := ecs.World.Entry(ecs.Create(
		cfg.Default,
		all...,
	))
	return e
}
