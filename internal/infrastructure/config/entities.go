package config

// EntitiesConfig holds per-kind sizes and animation rates.
// Sizes are full collision extents in world units.
type EntitiesConfig struct {
	SpriteScale float64        `json:"spriteScale"`
	Player      PlayerConfig   `json:"player"`
	Platform    SizeConfig     `json:"platform"`
	Pill        AnimatedConfig `json:"pill"`
	Patient     AnimatedConfig `json:"patient"`
}

type SizeConfig struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

type PlayerConfig struct {
	Size     SizeConfig `json:"size"`
	GravityY float64    `json:"gravityY"`
	FPS      float64    `json:"fps"`
	// Strips maps a strip name to its frame count
	Strips map[string]int `json:"strips"`
}

// StripFrames returns the frame count of a strip, defaulting to 1
func (p PlayerConfig) StripFrames(strip string) int {
	if n, ok := p.Strips[strip]; ok && n > 0 {
		return n
	}
	return 1
}

type AnimatedConfig struct {
	Size      SizeConfig      `json:"size"`
	Animation AnimationConfig `json:"animation"`
}

type AnimationConfig struct {
	Frames int     `json:"frames"`
	FPS    float64 `json:"fps"`
}
