package state

import "fmt"

// GameState represents the current state of the game
type GameState int

const (
	StateMainMenu GameState = iota
	StateLevel
	StateGameOver
	StateLevelCompleted
)

// String returns the string representation of the game state
func (s GameState) String() string {
	switch s {
	case StateMainMenu:
		return "MainMenu"
	case StateLevel:
		return "Level"
	case StateGameOver:
		return "GameOver"
	case StateLevelCompleted:
		return "LevelCompleted"
	default:
		return "Unknown"
	}
}

// IsTerminal reports whether the state ends a level session
func (s GameState) IsTerminal() bool {
	return s == StateGameOver || s == StateLevelCompleted
}

// Transition is a state change requested by the simulation or a scene.
// The host owns the actual scene swap.
type Transition struct {
	From GameState
	To   GameState
}

// String returns "From -> To"
func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s", t.From, t.To)
}

// Valid reports whether the host accepts the transition.
// A level is left through a terminal state or by quitting to the main menu,
// and terminal states only lead back to a level or the main menu.
func (t Transition) Valid() bool {
	switch t.From {
	case StateMainMenu:
		return t.To == StateLevel
	case StateLevel:
		return t.To.IsTerminal() || t.To == StateMainMenu
	case StateGameOver, StateLevelCompleted:
		return t.To == StateLevel || t.To == StateMainMenu
	default:
		return false
	}
}
