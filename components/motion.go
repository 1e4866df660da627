package components

import (
	"github.com/yohamta/donburi"
)

// MotionData holds the position the motion stage proposes for this step,
// before collision correction.
type MotionData struct {
	ProposedX float64
	ProposedY float64
}

var Motion = donburi.NewComponentType[MotionData]()
