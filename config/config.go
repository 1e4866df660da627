package config

import "github.com/yohamta/donburi/ecs"

// Default is the only ECS layer; the simulation has no draw passes.
const Default ecs.LayerID = 0

// CollisionConfig contains collision resolution settings
type CollisionConfig struct {
	// Policy picks the winning correction when several obstacles trigger in one
	// step: "nearest" (order independent) or "last" (iteration order wins).
	Policy string `yaml:"policy"`

	// StopOnHit zeroes the velocity component that was corrected.
	StopOnHit bool `yaml:"stopOnHit"`
}

// SimConfig contains fixed-step simulation settings
type SimConfig struct {
	StepsPerSecond int `yaml:"stepsPerSecond"` // simulation rate; dt = 1 / StepsPerSecond
	StepsPerTick   int `yaml:"stepsPerTick"`   // sub-steps per server tick
}

// MoverConfig contains defaults for spawned movers
type MoverConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`

	// Hit reach for the attack stage, in front of and behind the facing direction
	HitBoxOffsetFront float64 `yaml:"hitBoxOffsetFront"`
	HitBoxOffsetBack  float64 `yaml:"hitBoxOffsetBack"`

	// MaxSpeed caps each velocity component before a move is proposed; 0 = no cap
	MaxSpeed float64 `yaml:"maxSpeed"`
}

// ServerConfig contains headless server settings
type ServerConfig struct {
	Port      uint   `yaml:"port"`
	TickRate  int    `yaml:"tickRate"`
	Name      string `yaml:"name"`
	AssetsDir string `yaml:"assetsDir"`
	Level     string `yaml:"level"`
	Persist   bool   `yaml:"persist"` // restore and save mover snapshots between runs
}

// Config is the YAML document shape accepted by Load.
type Config struct {
	Collision CollisionConfig `yaml:"collision"`
	Sim       SimConfig       `yaml:"sim"`
	Mover     MoverConfig     `yaml:"mover"`
	Server    ServerConfig    `yaml:"server"`
}

var Collision CollisionConfig
var Sim SimConfig
var Mover MoverConfig
var Server ServerConfig

func init() {
	Collision = CollisionConfig{
		Policy:    "nearest",
		StopOnHit: true,
	}

	Sim = SimConfig{
		StepsPerSecond: 60,
		StepsPerTick:   3, // 20 Hz server ticks
	}

	Mover = MoverConfig{
		Width:             16,
		Height:            40,
		HitBoxOffsetFront: 12,
		HitBoxOffsetBack:  4,
		MaxSpeed:          0,
	}

	Server = ServerConfig{
		Port:      7373,
		TickRate:  20,
		Name:      "Doomerang Collide",
		AssetsDir: "assets",
		Level:     "",
		Persist:   false,
	}
}

// Current returns the active package-level values as one document.
func Current() Config {
	return Config{
		Collision: Collision,
		Sim:       Sim,
		Mover:     Mover,
		Server:    Server,
	}
}

// Apply replaces the package-level values with c.
func Apply(c Config) {
	Collision = c.Collision
	Sim = c.Sim
	Mover = c.Mover
	Server = c.Server
}

// StepSeconds is the fixed simulation step length.
func StepSeconds() float64 {
	return 1 / float64(Sim.StepsPerSecond)
}
