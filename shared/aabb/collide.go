package aabb

import "math"

// OverlappingX reports whether the horizontal spans strictly intersect.
// Touching edges do not overlap.
func (b *Box) OverlappingX(other *Box) bool {
	return b.Left() < other.Right() && other.Left() < b.Right()
}

// OverlappingY reports whether the vertical spans strictly intersect.
func (b *Box) OverlappingY(other *Box) bool {
	return b.Bottom() < other.Top() && other.Bottom() < b.Top()
}

// IsOverlappingWith is the discrete intersection test used for hit detection.
// It compares centre distance against summed half extents; a distance equal to
// the sum on either axis is not an overlap.
func (b *Box) IsOverlappingWith(other *Box) bool {
	if math.Abs(b.Position.X-other.Position.X) >= math.Abs(b.HalfSize.X+other.HalfSize.X) {
		return false
	}
	if math.Abs(b.Position.Y-other.Position.Y) >= math.Abs(b.HalfSize.Y+other.HalfSize.Y) {
		return false
	}
	return true
}

// NextRight corrects a rightward move of the mover's right edge from oldX to
// proposedX against other, which itself moves velocityBX along x this step.
// It returns the edge position at the moment of contact and true when the move
// would carry the mover into other.
//
// When both boxes displace identically there is no time of impact; the move is
// left uncorrected rather than producing a non-finite position.
func (b *Box) NextRight(other *Box, oldX, proposedX, velocityBX float64) (float64, bool) {
	left := other.Left()
	if !b.OverlappingY(other) || oldX > left || proposedX < left+velocityBX {
		return proposedX, false
	}

	relative := (proposedX - oldX) - velocityBX
	if math.Abs(relative) < Epsilon {
		return proposedX, false
	}

	x := left + velocityBX*(left-oldX)/relative
	if !isFinite(x) {
		return proposedX, false
	}
	return x, true
}

// NextLeft is the mirror of NextRight for a leftward move of the mover's left edge.
func (b *Box) NextLeft(other *Box, oldX, proposedX, velocityBX float64) (float64, bool) {
	right := other.Right()
	if !b.OverlappingY(other) || oldX < right || proposedX > right+velocityBX {
		return proposedX, false
	}

	relative := (oldX - proposedX) + velocityBX
	if math.Abs(relative) < Epsilon {
		return proposedX, false
	}

	x := right + velocityBX*(oldX-right)/relative
	if !isFinite(x) {
		return proposedX, false
	}
	return x, true
}

// NextTop clamps an upward move of the mover's top edge to other's underside.
// Obstacles are treated as stationary on y.
func (b *Box) NextTop(other *Box, oldY, proposedY float64) float64 {
	y, _ := b.nextTop(other, oldY, proposedY)
	return y
}

// NextBottom clamps a downward move of the mover's bottom edge to other's top.
func (b *Box) NextBottom(other *Box, oldY, proposedY float64) float64 {
	y, _ := b.nextBottom(other, oldY, proposedY)
	return y
}

func (b *Box) nextTop(other *Box, oldY, proposedY float64) (float64, bool) {
	bottom := other.Bottom()
	if b.OverlappingX(other) && oldY <= bottom && proposedY >= bottom {
		return bottom, true
	}
	return proposedY, false
}

func (b *Box) nextBottom(other *Box, oldY, proposedY float64) (float64, bool) {
	top := other.Top()
	if b.OverlappingX(other) && oldY >= top && proposedY <= top {
		return top, true
	}
	return proposedY, false
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
