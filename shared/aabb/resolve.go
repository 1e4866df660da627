package aabb

import (
	"fmt"
	"math"
)

// Policy decides which correction wins when a move triggers against several
// obstacles in the same step.
type Policy int

const (
	// PolicyNearest evaluates every obstacle against the uncorrected move and
	// keeps the correction that leaves the mover closest to where it started.
	// The outcome does not depend on obstacle order; exact ties keep the lower index.
	PolicyNearest Policy = iota
	// PolicyLast feeds each correction into the next obstacle's test, so the
	// last obstacle that still triggers wins.
	PolicyLast
)

func (p Policy) String() string {
	switch p {
	case PolicyNearest:
		return "nearest"
	case PolicyLast:
		return "last"
	default:
		return fmt.Sprintf("Policy(%d)", int(p))
	}
}

// ParsePolicy maps a config name to a Policy.
func ParsePolicy(name string) (Policy, error) {
	switch name {
	case "", "nearest":
		return PolicyNearest, nil
	case "last":
		return PolicyLast, nil
	}
	return PolicyNearest, fmt.Errorf("unknown collision policy %q", name)
}

// Obstacle is a box the mover is tested against, as it was at the start of
// the step. DX is how far the obstacle moves along x during the step.
type Obstacle struct {
	Box Box
	DX  float64
}

// XResult is the outcome of resolving a horizontal move.
type XResult struct {
	X       float64 // corrected centre x
	Changed bool
	Index   int // winning obstacle, -1 when unchanged
}

// YResult is the outcome of resolving a vertical move.
type YResult struct {
	Y       float64 // corrected centre y
	Changed bool
	Landed  bool // a downward move stopped on top of an obstacle
	Index   int
}

// ResolveX moves mover's centre from its current x towards proposedX, stopping
// at the first contact with any obstacle whose vertical span it overlaps.
func ResolveX(mover Box, proposedX float64, obstacles []Obstacle, policy Policy) XResult {
	res := XResult{X: proposedX, Index: -1}
	dx := proposedX - mover.Position.X
	if dx == 0 {
		return res
	}

	var (
		oldEdge float64
		next    func(other *Box, oldX, proposedX, velocityBX float64) (float64, bool)
	)
	if dx > 0 {
		oldEdge = mover.Right()
		next = mover.NextRight
	} else {
		oldEdge = mover.Left()
		next = mover.NextLeft
	}

	proposedEdge := oldEdge + dx
	edge := proposedEdge
	for i := range obstacles {
		o := &obstacles[i]
		switch policy {
		case PolicyLast:
			if x, ok := next(&o.Box, oldEdge, edge, o.DX); ok {
				edge, res.Changed, res.Index = x, true, i
			}
		default:
			x, ok := next(&o.Box, oldEdge, proposedEdge, o.DX)
			if !ok {
				continue
			}
			if !res.Changed || math.Abs(x-oldEdge) < math.Abs(edge-oldEdge) {
				edge, res.Changed, res.Index = x, true, i
			}
		}
	}

	if res.Changed {
		res.X = edge - oldEdge + mover.Position.X
	}
	return res
}

// ResolveY moves mover's centre from its current y towards proposedY against
// obstacles whose horizontal span it overlaps. Resolve x first so the overlap
// test sees the corrected horizontal position.
func ResolveY(mover Box, proposedY float64, obstacles []Obstacle, policy Policy) YResult {
	res := YResult{Y: proposedY, Index: -1}
	dy := proposedY - mover.Position.Y
	if dy == 0 {
		return res
	}

	var (
		oldEdge float64
		next    func(other *Box, oldY, proposedY float64) (float64, bool)
	)
	if dy > 0 {
		oldEdge = mover.Top()
		next = mover.nextTop
	} else {
		oldEdge = mover.Bottom()
		next = mover.nextBottom
	}

	proposedEdge := oldEdge + dy
	edge := proposedEdge
	for i := range obstacles {
		o := &obstacles[i]
		switch policy {
		case PolicyLast:
			if y, ok := next(&o.Box, oldEdge, edge); ok {
				edge, res.Changed, res.Index = y, true, i
			}
		default:
			y, ok := next(&o.Box, oldEdge, proposedEdge)
			if !ok {
				continue
			}
			if !res.Changed || math.Abs(y-oldEdge) < math.Abs(edge-oldEdge) {
				edge, res.Changed, res.Index = y, true, i
			}
		}
	}

	if res.Changed {
		res.Y = edge - oldEdge + mover.Position.Y
		res.Landed = dy < 0
	}
	return res
}
