package netcomponents

import "github.com/yohamta/donburi"

// NetBoxData is the replicated view of a mover's bounding box.
type NetBoxData struct {
	X, Y          float64
	Width, Height float64
	OnGround      bool
}

var NetBox = donburi.NewComponentType[NetBoxData]()

// LerpNetBox interpolates position between two snapshots. Size and ground
// contact snap to the target.
func LerpNetBox(from, to NetBoxData, t float64) *NetBoxData {
	return &NetBoxData{
		X:        from.X + (to.X-from.X)*t,
		Y:        from.Y + (to.Y-from.Y)*t,
		Width:    to.Width,
		Height:   to.Height,
		OnGround: to.OnGround,
	}
}
