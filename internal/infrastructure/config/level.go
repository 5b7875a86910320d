package config

import (
	"errors"
	"fmt"
)

// ErrInvalidLevel is returned when a level file fails validation
var ErrInvalidLevel = errors.New("invalid level")

// LevelConfig is the root config for levels/levelN.yaml
type LevelConfig struct {
	Name        string        `yaml:"name"`
	TimeLimit   float64       `yaml:"time_limit"` // seconds
	Goal        int           `yaml:"goal"`       // pills to collect
	PlayerSpawn PointConfig   `yaml:"player_spawn"`
	Patient     PointConfig   `yaml:"patient"`
	Platforms   []PointConfig `yaml:"platforms"`
	Pills       []PointConfig `yaml:"pills"`
	Labels      []LabelConfig `yaml:"labels"`
}

type PointConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type LabelConfig struct {
	Text string  `yaml:"text"`
	X    float64 `yaml:"x"`
	Y    float64 `yaml:"y"`
}

// Validate checks the level for values the simulation cannot consume
func (c *LevelConfig) Validate() error {
	if c.TimeLimit <= 0 {
		return fmt.Errorf("%w: time_limit must be positive, got %v", ErrInvalidLevel, c.TimeLimit)
	}
	if c.Goal < 0 {
		return fmt.Errorf("%w: goal must not be negative, got %d", ErrInvalidLevel, c.Goal)
	}
	if c.Goal > len(c.Pills) {
		return fmt.Errorf("%w: goal %d exceeds %d pills", ErrInvalidLevel, c.Goal, len(c.Pills))
	}
	for i, l := range c.Labels {
		if l.Text == "" {
			return fmt.Errorf("%w: label %d has no text", ErrInvalidLevel, i)
		}
	}
	return nil
}
