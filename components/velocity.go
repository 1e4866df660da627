package components

import (
	"github.com/yohamta/donburi"
)

// VelocityData is in world units per second. Y points up.
type VelocityData struct {
	SpeedX float64
	SpeedY float64
}

var Velocity = donburi.NewComponentType[VelocityData]()
