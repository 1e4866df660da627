package components

import (
	"github.com/tanema/gween"
	"github.com/yohamta/donburi"
)

type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// TweenData drives a moving obstacle back and forth along one axis. The
// sequence yields the offset from the obstacle's start position.
type TweenData struct {
	Sequence *gween.Sequence
	Axis     Axis
	Offset   float64 // offset reached at the end of the last step
}

var Tween = donburi.NewComponentType[TweenData]()
