package systems

import (
	"math"

	"github.com/automoto/doomerang-collide/components"
	cfg "github.com/automoto/doomerang-collide/config"
	"github.com/automoto/doomerang-collide/shared/aabb"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
	"github.com/yohamta/donburi/filter"
)

// supportTolerance is how close a mover's bottom must sit to an obstacle's top
// to stay grounded while not moving vertically.
const supportTolerance = 1e-6

type moverResult struct {
	entry *donburi.Entry
	box   aabb.Box
	hitX  bool
	hitY  bool
}

// UpdateCollisions resolves every mover's proposed position against the walls
// and platforms, horizontal axis first. All corrections are computed against a
// snapshot of the obstacles taken before anything is written back, so the
// result does not depend on which mover is processed first.
func UpdateCollisions(ecs *ecs.ECS) {
	policy := cfg.CollisionPolicy()

	// Read phase
	walls := obstacles(ecs.World, tags.Solid)
	platforms := obstacles(ecs.World, tags.Platform)

	var results []moverResult
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		box, hitX, hitY := resolveMover(*components.BoundingBox.Get(e), motion.ProposedX, motion.ProposedY, walls, platforms, policy)
		results = append(results, moverResult{entry: e, box: box, hitX: hitX, hitY: hitY})
	})

	// Write phase
	for _, r := range results {
		components.BoundingBox.SetValue(r.entry, r.box)
		if !cfg.Collision.StopOnHit {
			continue
		}
		vel := components.Velocity.Get(r.entry)
		if r.hitX {
			vel.SpeedX = 0
		}
		if r.hitY {
			vel.SpeedY = 0
		}
	}

	// Obstacles travel unobstructed.
	commitObstacle := func(e *donburi.Entry) {
		motion := components.Motion.Get(e)
		components.BoundingBox.Get(e).SetPosition(motion.ProposedX, motion.ProposedY)
	}
	tags.Solid.Each(ecs.World, commitObstacle)
	tags.Platform.Each(ecs.World, commitObstacle)
}

// obstacles snapshots every box carrying tag, with its displacement this step.
func obstacles(w donburi.World, tag donburi.IComponentType) []aabb.Obstacle {
	var out []aabb.Obstacle
	donburi.NewQuery(filter.Contains(tag)).Each(w, func(e *donburi.Entry) {
		box := components.BoundingBox.Get(e)
		motion := components.Motion.Get(e)
		out = append(out, aabb.Obstacle{
			Box: *box,
			DX:  motion.ProposedX - box.Position.X,
		})
	})
	return out
}

// resolveMover corrects one mover's proposed move. Walls block on both axes;
// platforms only stop a downward move onto their top.
func resolveMover(box aabb.Box, proposedX, proposedY float64, walls, platforms []aabb.Obstacle, policy aabb.Policy) (aabb.Box, bool, bool) {
	rx := aabb.ResolveX(box, proposedX, walls, policy)
	box.Position.X = rx.X

	candidates := walls
	if proposedY < box.Position.Y {
		candidates = append(walls[:len(walls):len(walls)], platforms...)
	}
	dy := proposedY - box.Position.Y
	ry := aabb.ResolveY(box, proposedY, candidates, policy)
	box.Position.Y = ry.Y

	switch {
	case ry.Changed:
		box.OnGround = ry.Landed
	case dy != 0:
		box.OnGround = false
	default:
		box.OnGround = supported(&box, walls) || supported(&box, platforms)
	}

	return box, rx.Changed, ry.Changed
}

// supported reports whether box rests on top of any obstacle.
func supported(box *aabb.Box, obstacles []aabb.Obstacle) bool {
	for i := range obstacles {
		o := &obstacles[i].Box
		if box.OverlappingX(o) && math.Abs(o.Top()-box.Bottom()) <= supportTolerance {
			return true
		}
	}
	return false
}
