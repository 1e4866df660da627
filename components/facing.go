package components

import (
	"github.com/yohamta/donburi"
)

// Direction constants for facing
const (
	DirectionLeft  = -1.0
	DirectionRight = 1.0
)

type FacingData struct {
	Direction float64
}

var Facing = donburi.NewComponentType[FacingData](FacingData{Direction: DirectionRight})
