package system

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/younwookim/expired/internal/ecs"
)

// InputSystem reads discrete player signals from the keyboard
type InputSystem struct {
	debug bool
}

// NewInputSystem creates a new input system.
// debug enables the pill spawn key.
func NewInputSystem(debug bool) *InputSystem {
	return &InputSystem{debug: debug}
}

// InputState holds the input signals for one frame
type InputState struct {
	Left        bool
	Right       bool
	JumpPressed bool // just pressed this frame
	DebugPill   bool // just pressed this frame
}

// GetInput reads the current input state
func (s *InputSystem) GetInput() InputState {
	return InputState{
		Left:        ebiten.IsKeyPressed(ebiten.KeyA) || ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right:       ebiten.IsKeyPressed(ebiten.KeyD) || ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		JumpPressed: inpututil.IsKeyJustPressed(ebiten.KeyW) || inpututil.IsKeyJustPressed(ebiten.KeySpace),
		DebugPill:   s.debug && inpututil.IsKeyJustPressed(ebiten.KeyP),
	}
}

// Move converts the frame input into movement signals for one fixed tick
func (in InputState) Move(jumpPressed bool) ecs.MoveInput {
	return ecs.MoveInput{
		Left:        in.Left,
		Right:       in.Right,
		JumpPressed: jumpPressed,
	}
}
