package config

// Tuning is the root config for tuning.json
type Tuning struct {
	Display  DisplayConfig  `json:"display"`
	Physics  PhysicsConfig  `json:"physics"`
	Movement MovementConfig `json:"movement"`
	Effects  EffectsConfig  `json:"effects"`
	Entities EntitiesConfig `json:"entities"`
	Debug    DebugConfig    `json:"debug"`
}

type DisplayConfig struct {
	ScreenWidth  int    `json:"screenWidth"`
	ScreenHeight int    `json:"screenHeight"`
	Scale        int    `json:"scale"`
	Framerate    int    `json:"framerate"`
	Title        string `json:"title"`
}

type PhysicsConfig struct {
	FixedHz      float64 `json:"fixedHz"`
	GravityScale float64 `json:"gravityScale"`
	// FloorY is the world height below which the player is out of bounds
	FloorY float64 `json:"floorY"`
	// MaxTicksPerFrame caps catch-up after a long frame
	MaxTicksPerFrame int `json:"maxTicksPerFrame"`
}

// FixedDT returns the fixed tick delta in seconds
func (p PhysicsConfig) FixedDT() float64 {
	if p.FixedHz <= 0 {
		return 1.0 / 60.0
	}
	return 1.0 / p.FixedHz
}

type MovementConfig struct {
	Speed     float64 `json:"speed"`
	JumpSpeed float64 `json:"jumpSpeed"`
}

// EffectsConfig holds the side-effect factors
type EffectsConfig struct {
	Shrink     float64 `json:"shrink"`
	ShrinkJump float64 `json:"shrinkJump"`
	Speed      float64 `json:"speed"`
	Slowness   float64 `json:"slowness"`
}

type DebugConfig struct {
	// PillKey enables spawning a pill at the player on a key press
	PillKey bool `json:"pillKey"`
}

// DefaultTuning returns the built-in tuning values
func DefaultTuning() *Tuning {
	return &Tuning{
		Display: DisplayConfig{
			ScreenWidth:  1280,
			ScreenHeight: 720,
			Scale:        1,
			Framerate:    60,
			Title:        "Expired!",
		},
		Physics: PhysicsConfig{
			FixedHz:          60,
			GravityScale:     50,
			FloorY:           -1000,
			MaxTicksPerFrame: 8,
		},
		Movement: MovementConfig{
			Speed:     400,
			JumpSpeed: 1000,
		},
		Effects: EffectsConfig{
			Shrink:     0.73,
			ShrinkJump: 0.85,
			Speed:      1.5,
			Slowness:   0.8,
		},
		Entities: EntitiesConfig{
			SpriteScale: 3,
			Player: PlayerConfig{
				Size:     SizeConfig{Width: 32, Height: 64},
				GravityY: -1,
				FPS:      12,
				Strips: map[string]int{
					"player_idle": 15,
					"player_run":  8,
					"player_jump": 4,
					"player_fall": 4,
				},
			},
			Platform: SizeConfig{Width: 192, Height: 48},
			Pill: AnimatedConfig{
				Size:      SizeConfig{Width: 18, Height: 22},
				Animation: AnimationConfig{Frames: 45, FPS: 44},
			},
			Patient: AnimatedConfig{
				Size:      SizeConfig{Width: 42, Height: 96},
				Animation: AnimationConfig{Frames: 4, FPS: 3},
			},
		},
		Debug: DebugConfig{PillKey: true},
	}
}
