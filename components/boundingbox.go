package components

import (
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/yohamta/donburi"
)

// BoundingBox is the collision extent of an entity.
var BoundingBox = donburi.NewComponentType[aabb.Box]()
