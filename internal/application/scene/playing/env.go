package playing

import (
	"time"

	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/infrastructure/config"
	"github.com/younwookim/expired/internal/infrastructure/progress"
)

// Env holds what every level entry needs
type Env struct {
	Tuning   *config.Tuning
	Levels   *config.LevelSource
	Progress *progress.Store

	// RecordPath enables input recording when not empty
	RecordPath string

	// Seed returns the side-effect seed for a new level entry.
	// Defaults to the current time.
	Seed func() int64

	// Menu builds the main menu scene. Escape is ignored when nil.
	Menu func() scene.Scene
}

func (e *Env) seed() int64 {
	if e.Seed != nil {
		return e.Seed()
	}
	return time.Now().UnixNano()
}

func (e *Env) menu() scene.Scene {
	if e.Menu == nil {
		return nil
	}
	return e.Menu()
}
