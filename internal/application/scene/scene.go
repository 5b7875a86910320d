// Package scene defines the Scene interface for game screens.
//
// Each game screen (menu, playing, result) implements the Scene interface
// to handle its own update logic and rendering.
package scene

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/expired/internal/application/state"
)

// Scene represents a game screen (menu, playing, result)
//
// The game loop delegates Update and Draw calls to the current scene.
// Scene transitions are handled by returning a new Scene from Update.
type Scene interface {
	// Update updates the scene state.
	// dt is the delta time in seconds (typically 1/60).
	// Returns the next scene if a transition is needed, nil to stay on current scene.
	// Returns an error to terminate the game.
	Update(dt float64) (next Scene, err error)

	// Draw renders the scene to the screen.
	Draw(screen *ebiten.Image)

	// OnEnter is called when entering this scene.
	// Use this for initialization that should happen each time the scene is entered.
	OnEnter()

	// OnExit is called when leaving this scene.
	// Use this for cleanup, saving state, or resource release.
	OnExit()
}

// Stater is implemented by scenes that stand for a game state.
// The game loop uses it to check and log transitions.
type Stater interface {
	State() state.GameState
}

// StateOf returns the game state a scene stands for
func StateOf(s Scene) (state.GameState, bool) {
	st, ok := s.(Stater)
	if !ok {
		return 0, false
	}
	return st.State(), true
}
