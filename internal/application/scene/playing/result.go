package playing

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/session"
	"github.com/younwookim/expired/internal/application/state"
)

var (
	colorGameOver  = color.RGBA{100, 0, 0, 180}
	colorCompleted = color.RGBA{0, 80, 40, 180}
)

// Summary describes how a level session ended
type Summary struct {
	Level     int
	Name      string
	Outcome   session.Outcome
	Cause     session.Cause
	Collected int
	Goal      int
	Remaining float64
}

// Result is the GameOver / LevelCompleted screen
type Result struct {
	env     *Env
	summary Summary
}

// NewResult creates the result screen for a finished level
func NewResult(env *Env, summary Summary) *Result {
	return &Result{env: env, summary: summary}
}

// State implements scene.Stater
func (r *Result) State() state.GameState {
	if r.summary.Outcome == session.OutcomeLevelCompleted {
		return state.StateLevelCompleted
	}
	return state.StateGameOver
}

// Summary returns the finished level summary
func (r *Result) Summary() Summary {
	return r.summary
}

func (r *Result) OnEnter() {}
func (r *Result) OnExit()  {}

// Update waits for the player to continue (implements scene.Scene)
func (r *Result) Update(_ float64) (scene.Scene, error) {
	cont := inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace)
	back := inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return r.choose(cont, back), nil
}

// choose returns the next scene: back to the menu, or into the level again.
// The progress store already points at the next level after a completion.
func (r *Result) choose(cont, back bool) scene.Scene {
	if back {
		if next := r.env.menu(); next != nil {
			return next
		}
	}
	if cont {
		return New(r.env)
	}
	return nil
}

// Message returns the headline and prompt for the outcome
func (r *Result) Message() (string, string) {
	s := r.summary
	if s.Outcome == session.OutcomeLevelCompleted {
		return fmt.Sprintf("PATIENT TREATED\n\n%s with %.1fs to spare", s.Name, s.Remaining),
			"Next level? (Enter)"
	}
	headline := "EXPIRED!"
	if s.Cause == session.CauseOutOfBounds {
		headline = "YOU FELL"
	}
	return fmt.Sprintf("%s\n\nPills %d/%d", headline, s.Collected, s.Goal), "Try again? (Enter)"
}

// Draw renders the result overlay (implements scene.Scene)
func (r *Result) Draw(screen *ebiten.Image) {
	w := screen.Bounds().Dx()
	h := screen.Bounds().Dy()

	screen.Fill(colorBG)
	overlay := colorGameOver
	if r.summary.Outcome == session.OutcomeLevelCompleted {
		overlay = colorCompleted
	}
	ebitenutil.DrawRect(screen, 0, 0, float64(w), float64(h), overlay)

	headline, prompt := r.Message()
	scene.DrawText(screen, headline, float64(w)/2, float64(h)/2-40, colorHUD, true)
	scene.DrawText(screen, prompt, float64(w)/2, float64(h)/2+30, colorHUD, true)
	scene.DrawText(screen, "Esc: menu", float64(w)/2, float64(h)/2+50, colorLabel, true)
}
