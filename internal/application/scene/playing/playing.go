// Package playing provides the level scene and its result screen.
package playing

import (
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/younwookim/expired/internal/application/replay"
	"github.com/younwookim/expired/internal/application/scene"
	"github.com/younwookim/expired/internal/application/session"
	"github.com/younwookim/expired/internal/application/state"
	"github.com/younwookim/expired/internal/application/system"
	"github.com/younwookim/expired/internal/ecs"
)

// Colors for rendering
var (
	colorBG       = color.RGBA{26, 26, 46, 255}
	colorPlatform = color.RGBA{80, 80, 100, 255}
	colorPlayer   = color.RGBA{100, 200, 100, 255}
	colorFacing   = color.RGBA{230, 255, 230, 255}
	colorPatient  = color.RGBA{220, 220, 240, 255}
	colorLabel    = color.RGBA{200, 200, 200, 255}
	colorHUD      = color.RGBA{255, 255, 255, 255}
	colorLowTime  = color.RGBA{255, 90, 90, 255}

	pillColors = map[ecs.SideEffect]color.RGBA{
		ecs.EffectShrink:   {120, 160, 255, 255},
		ecs.EffectSpeed:    {255, 215, 0, 255},
		ecs.EffectSlowness: {200, 100, 200, 255},
	}
)

// Playing runs one level session
type Playing struct {
	env     *Env
	input   *system.InputSystem
	session *session.Session
	screenW int
	screenH int

	// Input recording
	recorder *replay.Recorder

	err error
}

// New creates a new Playing scene. The level is read from the progress
// store when the scene is entered.
func New(env *Env) *Playing {
	return &Playing{
		env:     env,
		input:   system.NewInputSystem(env.Tuning.Debug.PillKey),
		screenW: env.Tuning.Display.ScreenWidth,
		screenH: env.Tuning.Display.ScreenHeight,
	}
}

// State implements scene.Stater
func (p *Playing) State() state.GameState {
	return state.StateLevel
}

// OnEnter loads the current level and starts the session (implements scene.Scene)
func (p *Playing) OnEnter() {
	n, err := p.env.Levels.Resolve(p.env.Progress.Level())
	if err != nil {
		p.err = err
		return
	}
	level, err := p.env.Levels.Level(n)
	if err != nil {
		p.err = err
		return
	}

	seed := p.env.seed()
	p.session = session.New(p.env.Tuning, seed)
	p.session.Enter(n, level)

	if p.env.RecordPath != "" {
		p.recorder = replay.NewRecorder(seed, n)
		log.Printf("Recording enabled: %s (seed: %d)", p.env.RecordPath, seed)
	}
}

// OnExit tears the session down and flushes an unfinished recording (implements scene.Scene)
func (p *Playing) OnExit() {
	if p.session != nil {
		p.session.Exit()
	}
	if p.recorder != nil && p.recorder.IsRecording() {
		p.saveRecording()
	}
}

// Update proceeds the level (implements scene.Scene)
func (p *Playing) Update(dt float64) (scene.Scene, error) {
	if p.err != nil {
		return nil, p.err
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		if next := p.env.menu(); next != nil {
			return next, nil
		}
	}

	// F5: Save recording manually
	if inpututil.IsKeyJustPressed(ebiten.KeyF5) && p.recorder != nil {
		p.saveRecording()
	}

	return p.step(dt, p.input.GetInput())
}

// step advances the session by one frame with the given input and
// returns the result scene once the level ends.
func (p *Playing) step(dt float64, in system.InputState) (scene.Scene, error) {
	if p.recorder != nil {
		p.recorder.RecordFrame(dt, in)
	}

	outcome := p.session.Update(dt, in)
	if outcome == session.OutcomeNone {
		return nil, nil
	}

	if outcome == session.OutcomeLevelCompleted {
		next, err := p.env.Levels.Next(p.session.LevelNumber())
		if err != nil {
			return nil, err
		}
		if err := p.env.Progress.Advance(next); err != nil {
			log.Printf("Failed to save progress: %v", err)
		}
	}

	// Auto-save recording when the level ends
	if p.recorder != nil {
		p.saveRecording()
	}

	return NewResult(p.env, p.summary()), nil
}

func (p *Playing) summary() Summary {
	s := p.session
	return Summary{
		Level:     s.LevelNumber(),
		Name:      s.Level().Name,
		Outcome:   s.Outcome(),
		Cause:     s.Cause(),
		Collected: s.Collected(),
		Goal:      s.Level().Goal,
		Remaining: s.Remaining(),
	}
}

// saveRecording saves the current recording to file and stops recording
func (p *Playing) saveRecording() {
	filename := p.env.RecordPath
	if filename == "" {
		filename = replay.GenerateFilename()
	}

	p.recorder.Stop()
	if err := p.recorder.Save(filename); err != nil {
		log.Printf("Failed to save recording: %v", err)
	} else {
		log.Printf("Recording saved: %s (%d frames)", filename, p.recorder.FrameCount())
	}
}

// Draw renders the level (implements scene.Scene)
func (p *Playing) Draw(screen *ebiten.Image) {
	screen.Fill(colorBG)
	if p.session == nil {
		return
	}

	w := p.session.World()
	for _, id := range w.Entities(ecs.KindPlatform) {
		p.drawBox(screen, w, id, colorPlatform)
	}
	for _, id := range w.Entities(ecs.KindPill) {
		p.drawBox(screen, w, id, pillColors[w.Pill[id].Effect])
	}
	for _, id := range w.Entities(ecs.KindPatient) {
		p.drawBox(screen, w, id, colorPatient)
	}
	if id := p.session.Player(); id != ecs.NoEntity {
		p.drawPlayer(screen, w, id)
	}
	for _, id := range w.Entities(ecs.KindLabel) {
		x, y := p.session.Camera().WorldToScreen(w.Position[id], p.screenW, p.screenH)
		scene.DrawText(screen, w.Label[id].Text, x, y, colorLabel, true)
	}

	p.drawHUD(screen)
}

func (p *Playing) drawBox(screen *ebiten.Image, w *ecs.World, id ecs.EntityID, c color.Color) {
	pos := w.Position[id]
	half := w.Shape[id].HalfSize
	cam := p.session.Camera()
	if !cam.Visible(pos, half, p.screenW, p.screenH) {
		return
	}
	x, y := cam.WorldToScreen(pos, p.screenW, p.screenH)
	ebitenutil.DrawRect(screen, x-half.X, y-half.Y, half.X*2, half.Y*2, c)
}

func (p *Playing) drawPlayer(screen *ebiten.Image, w *ecs.World, id ecs.EntityID) {
	p.drawBox(screen, w, id, colorPlayer)

	// Facing marker on the leading edge
	half := w.Shape[id].HalfSize
	x, y := p.session.Camera().WorldToScreen(w.Position[id], p.screenW, p.screenH)
	mx := x + half.X - 4
	if w.Sprite[id].FlipX {
		mx = x - half.X
	}
	ebitenutil.DrawRect(screen, mx, y-half.Y+6, 4, 6, colorFacing)
}

func (p *Playing) drawHUD(screen *ebiten.Image) {
	s := p.session
	level := s.Level()

	scene.DrawText(screen, fmt.Sprintf("Level %d: %s", s.LevelNumber(), level.Name), 10, 8, colorHUD, false)
	scene.DrawText(screen, fmt.Sprintf("Pills %d/%d", s.Collected(), level.Goal), 10, 24, colorHUD, false)

	timeColor := colorHUD
	if s.Remaining() < 5 {
		timeColor = colorLowTime
	}
	scene.DrawText(screen, fmt.Sprintf("%.1f", s.Remaining()), float64(p.screenW)-60, 8, timeColor, false)

	if p.env.Tuning.Debug.PillKey {
		if id := s.Player(); id != ecs.NoEntity {
			pl := s.World().Player[id]
			sp := s.World().Sprite[id]
			debugText := fmt.Sprintf("%s %s[%d] jump x%.2f speed x%.2f", pl.State, sp.Strip, sp.Index, pl.JumpMultiplier, pl.SpeedMultiplier)
			scene.DrawText(screen, debugText, 10, float64(p.screenH)-20, colorLabel, false)
		}
	}
}
