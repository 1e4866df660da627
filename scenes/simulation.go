package scenes

import (
	"github.com/automoto/doomerang-collide/shared/leveldata"
	"github.com/automoto/doomerang-collide/systems"
	"github.com/automoto/doomerang-collide/systems/factory"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// SimulationScene runs the collision step for one level. It has no draw pass;
// collaborators read positions from the transforms and net components.
type SimulationScene struct {
	ecs    *ecs.ECS
	movers []*donburi.Entry
	steps  int
}

// NewSimulationScene spawns level into world and wires the step systems.
func NewSimulationScene(world donburi.World, level *leveldata.CollisionData) *SimulationScene {
	ecs := ecs.NewECS(world)

	// Order matters: obstacles pick their velocity, every box proposes a move,
	// movers are corrected against the obstacles, then results are published.
	ecs.AddSystem(systems.UpdateTweens)
	ecs.AddSystem(systems.UpdateMotion)
	ecs.AddSystem(systems.UpdateCollisions)
	ecs.AddSystem(systems.UpdateTransforms)
	ecs.AddSystem(systems.UpdateNetBoxes)

	var movers []*donburi.Entry
	if level != nil {
		movers = factory.CreateLevel(ecs, level)
	}

	return &SimulationScene{
		ecs:    ecs,
		movers: movers,
	}
}

// Update advances the simulation by one fixed step.
func (s *SimulationScene) Update() {
	s.ecs.Update()
	s.steps++
}

func (s *SimulationScene) ECS() *ecs.ECS {
	return s.ecs
}

// Movers returns the level's spawned movers in spawn order.
func (s *SimulationScene) Movers() []*donburi.Entry {
	return s.movers
}

// Steps returns how many steps have run.
func (s *SimulationScene) Steps() int {
	return s.steps
}
