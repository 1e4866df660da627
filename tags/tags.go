package tags

import "github.com/yohamta/donburi"

var (
	Mover          = donburi.NewTag().SetName("Mover")
	Solid          = donburi.NewTag().SetName("Solid")
	Platform       = donburi.NewTag().SetName("Platform")
	MovingPlatform = donburi.NewTag().SetName("MovingPlatform")
)
