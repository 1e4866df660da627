// Package leveldata provides TMX level parsing for the collision simulation.
// It has no dependencies on donburi or the server; pure data only.
//
// Tiled stores pixel rectangles with y pointing down from the top-left corner.
// Everything here is converted to box space: centre coordinates with y pointing
// up from the bottom edge of the map.
package leveldata

// CollisionData holds all collision-relevant data parsed from a TMX level file.
type CollisionData struct {
	SolidRects  []Rect
	Obstacles   []Obstacle
	SpawnPoints []SpawnPoint
	MapWidth    int
	MapHeight   int
}

// Rect is a centred rectangle in box space.
type Rect struct {
	X, Y, W, H float64
}

// Obstacle kinds
const (
	KindSolid    = "solid"
	KindPlatform = "platform"
)

// Obstacle is a placed box that may travel back and forth.
type Obstacle struct {
	Rect
	Kind    string
	MoveX   float64 // travel distance along x before returning
	MoveY   float64
	Seconds float64 // duration of one leg
}

// Moving reports whether the obstacle travels.
func (o Obstacle) Moving() bool {
	return (o.MoveX != 0 || o.MoveY != 0) && o.Seconds > 0
}

// SpawnPoint is a mover start location.
type SpawnPoint struct {
	X, Y   float64
	Index  int
	Width  float64 // 0 means the configured default
	Height float64
	SpeedX float64
	SpeedY float64
}
