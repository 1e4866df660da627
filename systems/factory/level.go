package factory

import (
	"github.com/automoto/doomerang-collide/shared/leveldata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel spawns every solid run, obstacle and spawn point of a level and
// returns the movers in spawn order.
func CreateLevel(ecs *ecs.ECS, data *leveldata.CollisionData) []*donburi.Entry {
	for _, r := range data.SolidRects {
		CreateWall(ecs, r.X, r.Y, r.W, r.H)
	}

	for _, o := range data.Obstacles {
		switch {
		case o.Moving():
			CreateMovingObstacle(ecs, o)
		case o.Kind == leveldata.KindPlatform:
			CreatePlatform(ecs, o.X, o.Y, o.W, o.H)
		default:
			CreateWall(ecs, o.X, o.Y, o.W, o.H)
		}
	}

	movers := make([]*donburi.Entry, 0, len(data.SpawnPoints))
	for _, s := range data.SpawnPoints {
		movers = append(movers, CreateMover(ecs, s.X, s.Y, s.Width, s.Height, s.SpeedX, s.SpeedY))
	}
	return movers
}
