package config

import (
	"image/color"
	"math"
	"time"
)

// DestructionConfig contains the mode controller configuration
type DestructionConfig struct {
	ButtonID     string        // Identifier of the activation trigger
	ButtonLabel  string        // Text shown on the trigger
	HintText     string        // Instructional hint shown on activation
	HintDuration time.Duration // Hint auto-hide delay
}

// CrackConfig contains crack trail generation ranges
type CrackConfig struct {
	MinCount, MaxCount int     // inclusive
	MinLength          float64 // pixels
	MaxLength          float64
	MinAlpha           float64
	MaxAlpha           float64
	MinWidth           float64 // stroke width in pixels
	MaxWidth           float64
	Color              color.RGBA // alpha is replaced per segment
}

// ShardConfig contains falling shard generation ranges
type ShardConfig struct {
	MinCount, MaxCount int // inclusive
	MinSize, MaxSize   float64
	MinAlpha, MaxAlpha float64
	MaxDrift           float64 // horizontal offset in [-MaxDrift, MaxDrift]
	MinAnim, MaxAnim   time.Duration
	Lifetime           time.Duration // unconditional removal delay
	FallDistance       float64       // pixels travelled over the animation
	Color              color.RGBA    // alpha is replaced per shard
}

// AvatarConfig contains the cursor avatar (axe) presentation values
type AvatarConfig struct {
	Width, Height float32
	HandleColor   color.RGBA
	BladeColor    color.RGBA
	SwingAngle    float32 // radians at the peak of a swing
	SwingDuration float32 // seconds
}

// HintConfig contains hint box presentation values
type HintConfig struct {
	BoxPadding float64
	BoxColor   color.RGBA
	TextColor  color.RGBA
	TopMargin  float64
}

// Config holds general window configuration
type Config struct {
	Width  int
	Height int
	Title  string
	TPS    int
}

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	Overlay bool // Draw mode/shard/audio counters
	Mute    bool // Force SFX volume to zero
}

// Global configuration instances
var C *Config
var Destruction DestructionConfig
var Crack CrackConfig
var Shard ShardConfig
var Avatar AvatarConfig
var Hint HintConfig
var Debug DebugConfig

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
	Slate        = color.RGBA{R: 30, G: 41, B: 59, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
)

// TickDuration is the session clock advance per update.
func (c *Config) TickDuration() time.Duration {
	return time.Second / time.Duration(c.TPS)
}

func init() {
	C = &Config{
		Width:  960,
		Height: 600,
		Title:  "glasspane",
		TPS:    60,
	}

	Destruction = DestructionConfig{
		ButtonID:     "activate-destruction-btn",
		ButtonLabel:  "Destruction Mode",
		HintText:     "Click to smash. Press Esc to exit.",
		HintDuration: 3000 * time.Millisecond,
	}

	Crack = CrackConfig{
		MinCount:  10,
		MaxCount:  17,
		MinLength: 50,
		MaxLength: 200,
		MinAlpha:  0.2,
		MaxAlpha:  0.5,
		MinWidth:  0.5,
		MaxWidth:  2.5,
		Color:     color.RGBA{R: 226, G: 232, B: 240, A: 255},
	}

	Shard = ShardConfig{
		MinCount:     15,
		MaxCount:     24,
		MinSize:      5,
		MaxSize:      25,
		MinAlpha:     0.3,
		MaxAlpha:     0.7,
		MaxDrift:     150,
		MinAnim:      1000 * time.Millisecond,
		MaxAnim:      2000 * time.Millisecond,
		Lifetime:     2000 * time.Millisecond,
		FallDistance: 240,
		Color:        color.RGBA{R: 200, G: 210, B: 220, A: 255},
	}

	Avatar = AvatarConfig{
		Width:         28,
		Height:        40,
		HandleColor:   color.RGBA{R: 120, G: 80, B: 40, A: 255},
		BladeColor:    color.RGBA{R: 190, G: 200, B: 210, A: 255},
		SwingAngle:    -math.Pi / 4,
		SwingDuration: 0.2,
	}

	Hint = HintConfig{
		BoxPadding: 8,
		BoxColor:   BlackOverlay,
		TextColor:  White,
		TopMargin:  16,
	}
}
