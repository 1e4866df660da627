package config

import (
	"fmt"
	"os"

	"github.com/automoto/doomerang-collide/shared/aabb"
	"gopkg.in/yaml.v3"
)

// Load reads a YAML overlay from path on top of the current values, validates
// the result and applies it. Keys missing from the file keep their values.
func Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config %s: %w", path, err)
	}

	c, err := Parse(data)
	if err != nil {
		return fmt.Errorf("load config %s: %w", path, err)
	}

	Apply(c)
	return nil
}

// Parse decodes a YAML overlay on top of the current values without applying it.
func Parse(data []byte) (Config, error) {
	c := Current()
	if err := yaml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("parse yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// Validate checks the values the simulation cannot run without.
func (c Config) Validate() error {
	if _, err := aabb.ParsePolicy(c.Collision.Policy); err != nil {
		return fmt.Errorf("collision.policy: %w", err)
	}
	if c.Sim.StepsPerSecond <= 0 {
		return fmt.Errorf("sim.stepsPerSecond must be positive, got %d", c.Sim.StepsPerSecond)
	}
	if c.Sim.StepsPerTick <= 0 {
		return fmt.Errorf("sim.stepsPerTick must be positive, got %d", c.Sim.StepsPerTick)
	}
	if c.Mover.Width < 0 || c.Mover.Height < 0 {
		return fmt.Errorf("mover size must not be negative, got %vx%v", c.Mover.Width, c.Mover.Height)
	}
	if c.Mover.MaxSpeed < 0 {
		return fmt.Errorf("mover.maxSpeed must not be negative, got %v", c.Mover.MaxSpeed)
	}
	if c.Server.TickRate <= 0 {
		return fmt.Errorf("server.tickRate must be positive, got %d", c.Server.TickRate)
	}
	return nil
}

// CollisionPolicy returns the configured multi-obstacle policy.
func CollisionPolicy() aabb.Policy {
	p, err := aabb.ParsePolicy(Collision.Policy)
	if err != nil {
		return aabb.PolicyNearest
	}
	return p
}
