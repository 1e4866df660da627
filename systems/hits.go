package systems

import (
	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/yohamta/donburi"
)

// Overlapping returns every other boxed entity currently intersecting e's box.
// Touching boxes do not count.
func Overlapping(w donburi.World, e *donburi.Entry) []*donburi.Entry {
	self := components.BoundingBox.Get(e)

	var hits []*donburi.Entry
	components.BoundingBox.Each(w, func(other *donburi.Entry) {
		if other.Entity() == e.Entity() {
			return
		}
		if self.IsOverlappingWith(components.BoundingBox.Get(other)) {
			hits = append(hits, other)
		}
	})
	return hits
}

// AttackBox returns the reach of an attack from box: HitBoxOffsetFront past
// the leading edge and HitBoxOffsetBack past the trailing edge for the facing
// direction, over the box's full height.
func AttackBox(box *aabb.Box, facing float64) aabb.Box {
	left := box.Left() - box.HitBoxOffsetBack
	right := box.Right() + box.HitBoxOffsetFront
	if facing < 0 {
		left = box.Left() - box.HitBoxOffsetFront
		right = box.Right() + box.HitBoxOffsetBack
	}

	reach := aabb.New(right-left, box.Height())
	reach.SetPosition((left+right)/2, box.Position.Y)
	return reach
}

// AttackHits returns the other movers inside attacker's reach.
func AttackHits(w donburi.World, attacker *donburi.Entry) []*donburi.Entry {
	facing := components.DirectionRight
	if attacker.HasComponent(components.Facing) {
		facing = components.Facing.Get(attacker).Direction
	}
	reach := AttackBox(components.BoundingBox.Get(attacker), facing)

	var hits []*donburi.Entry
	tags.Mover.Each(w, func(other *donburi.Entry) {
		if other.Entity() == attacker.Entity() {
			return
		}
		if reach.IsOverlappingWith(components.BoundingBox.Get(other)) {
			hits = append(hits, other)
		}
	})
	return hits
}
