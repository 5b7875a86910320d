// Package menu provides the main menu scene.
package menu

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/scene/playing"
	"github.com/younwookim/expired/internal/application/state"
)

var (
	colorBG    = color.RGBA{26, 26, 46, 255}
	colorTitle = color.RGBA{255, 90, 90, 255}
	colorText  = color.RGBA{220, 220, 220, 255}
)

// Menu is the title screen
type Menu struct {
	env *playing.Env
}

// New creates the main menu
func New(env *playing.Env) *Menu {
	return &Menu{env: env}
}

// State implements scene.Stater
func (m *Menu) State() state.GameState {
	return state.StateMainMenu
}

func (m *Menu) OnEnter() {}
func (m *Menu) OnExit()  {}

// Update starts the level on Enter or Space (implements scene.Scene)
func (m *Menu) Update(_ float64) (scene.Scene, error) {
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		return m.Play(), nil
	}
	return nil, nil
}

// Play returns the level scene for the saved level
func (m *Menu) Play() scene.Scene {
	return playing.New(m.env)
}

// Draw renders the title screen (implements scene.Scene)
func (m *Menu) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)

	w := float64(screen.Bounds().Dx())
	h := float64(screen.Bounds().Dy())
	scene.DrawText(screen, m.env.Tuning.Display.Title, w/2, h/2-60, colorTitle, true)
	scene.DrawText(screen, fmt.Sprintf("Level %d", m.env.Progress.Level()), w/2, h/2-20, colorText, true)
	scene.DrawText(screen, "Press Enter to play", w/2, h/2+10, colorText, true)
	scene.DrawText(screen, "A/D: Move | W: Jump | Esc: Menu", w/2, h/2+50, colorText, true)
}
