package systems

import (
	"encoding/json"
	"log"

	"github.com/automoto/doomerang-collide/components"
	"github.com/automoto/doomerang-collide/tags"
	"github.com/quasilyte/gdata"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// MoverSnapshot is the saved state of one mover.
type MoverSnapshot struct {
	X        float64 `json:"x"`
	Y        float64 `json:"y"`
	SpeedX   float64 `json:"speedX"`
	SpeedY   float64 `json:"speedY"`
	OnGround bool    `json:"onGround"`
}

// Snapshot is the saved state of every mover, in iteration order.
type Snapshot struct {
	Movers []MoverSnapshot `json:"movers"`
}

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for snapshot storage
func InitPersistence() error {
	m, err := gdata.Open(gdata.Config{
		AppName: "doomerang-collide",
	})
	if err != nil {
		log.Printf("Warning: Could not initialize persistence: %v", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

func snapshotKey(level string) string {
	return "snapshot-" + level
}

// SaveSnapshot stores the movers of the level on disk.
func SaveSnapshot(ecs *ecs.ECS, level string) error {
	if !gdataInitialized || gdataManager == nil {
		return nil
	}

	data, err := json.Marshal(CaptureSnapshot(ecs))
	if err != nil {
		log.Printf("Warning: Could not serialize snapshot: %v", err)
		return err
	}

	if err := gdataManager.SaveItem(snapshotKey(level), data); err != nil {
		log.Printf("Warning: Could not save snapshot: %v", err)
		return err
	}
	return nil
}

// LoadSnapshot restores the movers of the level from disk. It reports whether
// a snapshot was found.
func LoadSnapshot(ecs *ecs.ECS, level string) (bool, error) {
	if !gdataInitialized || gdataManager == nil {
		return false, nil
	}

	data, err := gdataManager.LoadItem(snapshotKey(level))
	if err != nil {
		log.Printf("Warning: Could not load snapshot: %v", err)
		return false, nil
	}
	if data == nil {
		// Nothing saved for this level yet
		return false, nil
	}

	var snap Snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		log.Printf("Warning: Could not parse saved snapshot: %v", err)
		return false, err
	}

	ApplySnapshot(ecs, snap)
	return true, nil
}

// CaptureSnapshot records every mover's position, velocity and ground contact.
func CaptureSnapshot(ecs *ecs.ECS) Snapshot {
	var snap Snapshot
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		box := components.BoundingBox.Get(e)
		vel := components.Velocity.Get(e)
		snap.Movers = append(snap.Movers, MoverSnapshot{
			X:        box.Position.X,
			Y:        box.Position.Y,
			SpeedX:   vel.SpeedX,
			SpeedY:   vel.SpeedY,
			OnGround: box.OnGround,
		})
	})
	return snap
}

// ApplySnapshot writes saved state back onto movers in iteration order. Extra
// entries on either side are ignored.
func ApplySnapshot(ecs *ecs.ECS, snap Snapshot) {
	i := 0
	tags.Mover.Each(ecs.World, func(e *donburi.Entry) {
		if i >= len(snap.Movers) {
			return
		}
		m := snap.Movers[i]
		i++

		box := components.BoundingBox.Get(e)
		box.SetPosition(m.X, m.Y)
		box.BeginStep()
		box.OnGround = m.OnGround

		vel := components.Velocity.Get(e)
		vel.SpeedX, vel.SpeedY = m.SpeedX, m.SpeedY

		motion := components.Motion.Get(e)
		motion.ProposedX, motion.ProposedY = m.X, m.Y
	})
}
