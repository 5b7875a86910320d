// Package game provides the main game loop manager that handles Scene transitions.
package game

import (
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/state"
)

// Game implements ebiten.Game and manages Scene transitions.
type Game struct {
	current scene.Scene
	screenW int
	screenH int
	dt      float64
}

// New creates a new Game with the given initial scene.
// The initial scene's OnEnter is called immediately.
func New(initialScene scene.Scene, screenW, screenH int) *Game {
	g := &Game{
		current: initialScene,
		screenW: screenW,
		screenH: screenH,
		dt:      1.0 / 60.0, // Default to 60 FPS
	}
	g.current.OnEnter()
	return g
}

// Update updates the current scene and handles scene transitions.
// Implements ebiten.Game interface.
func (g *Game) Update() error {
	next, err := g.current.Update(g.dt)
	if err != nil {
		return err
	}

	// Handle scene transition
	if next != nil {
		if err := g.checkTransition(next); err != nil {
			return err
		}
		g.current.OnExit()
		g.current = next
		g.current.OnEnter()
	}

	return nil
}

// checkTransition rejects state changes the state machine does not allow.
// Scenes that do not stand for a game state pass unchecked.
func (g *Game) checkTransition(next scene.Scene) error {
	from, ok := scene.StateOf(g.current)
	if !ok {
		return nil
	}
	to, ok := scene.StateOf(next)
	if !ok {
		return nil
	}

	t := state.Transition{From: from, To: to}
	if !t.Valid() {
		return fmt.Errorf("failed to change scene: invalid transition %s", t)
	}
	log.Printf("Transition %s", t)
	return nil
}

// Draw renders the current scene.
// Implements ebiten.Game interface.
func (g *Game) Draw(screen *ebiten.Image) {
	g.current.Draw(screen)
}

// Layout returns the game's logical screen dimensions.
// Implements ebiten.Game interface.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.screenW, g.screenH
}

// SetDT sets the delta time used for updates.
// Useful for testing or custom frame rates.
func (g *Game) SetDT(dt float64) {
	g.dt = dt
}

// Current returns the active scene
func (g *Game) Current() scene.Scene {
	return g.current
}
