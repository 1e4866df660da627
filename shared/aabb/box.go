// Package aabb holds the axis-aligned bounding box used for every collidable
// entity, plus the swept per-axis corrections run against obstacle boxes.
// It is pure data and math, with no dependency on donburi or the level format.
package aabb

import "math"

// Epsilon is the smallest relative displacement treated as motion by the
// horizontal time-of-impact interpolation.
const Epsilon = 1e-9

// Vec2 is a 2D vector. Y points up.
type Vec2 struct {
	X, Y float64
}

// Translator is implemented by renderable transforms that can receive a box position.
type Translator interface {
	SetTranslation(x, y float64)
}

// Box is a rectangle centred on Position.
type Box struct {
	HalfSize    Vec2
	Center      Vec2 // carried for collaborators, not read by any geometry method
	Position    Vec2
	OldPosition Vec2
	OnGround    bool

	// Facing-dependent hit reach, carried for the attack stage.
	HitBoxOffsetFront float64
	HitBoxOffsetBack  float64
}

// New returns a box of the given full width and height at the origin.
func New(width, height float64) Box {
	return Box{
		HalfSize: Vec2{X: math.Max(width, 0) / 2, Y: math.Max(height, 0) / 2},
	}
}

// BeginStep records the current position as the start of the step.
// Call it before the motion stage moves Position.
func (b *Box) BeginStep() {
	b.OldPosition = b.Position
}

func (b *Box) SetPosition(x, y float64) {
	b.Position = Vec2{X: x, Y: y}
}

// UpdateTransformPosition pushes the box position into t.
func (b *Box) UpdateTransformPosition(t Translator) {
	t.SetTranslation(b.Position.X, b.Position.Y)
}

func (b *Box) Width() float64  { return b.HalfSize.X * 2 }
func (b *Box) Height() float64 { return b.HalfSize.Y * 2 }

func (b *Box) Top() float64 {
	return b.Position.Y + b.HalfSize.Y
}

func (b *Box) SetTop(top float64) {
	b.Position.Y = top - b.HalfSize.Y
}

func (b *Box) Bottom() float64 {
	return b.Position.Y - b.HalfSize.Y
}

func (b *Box) SetBottom(bottom float64) {
	b.Position.Y = bottom + b.HalfSize.Y
}

func (b *Box) Left() float64 {
	return b.Position.X - b.HalfSize.X
}

func (b *Box) SetLeft(left float64) {
	b.Position.X = left + b.HalfSize.X
}

func (b *Box) Right() float64 {
	return b.Position.X + b.HalfSize.X
}

func (b *Box) SetRight(right float64) {
	b.Position.X = right - b.HalfSize.X
}
