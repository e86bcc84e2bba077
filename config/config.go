package config

import "image/color"

// PhysicsConfig contains physics-related configuration values.
// Units are world pixels and seconds of simulated time.
type PhysicsConfig struct {
	Gravity  float64 `yaml:"gravity"`  // downward acceleration applied to the player
	Friction float64 `yaml:"friction"` // fraction of velocity removed per unit time
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	BaseRadius     float64 `yaml:"baseRadius"`
	StartingCharge int     `yaml:"startingCharge"`

	// Fling
	FlingForceMin      float64 `yaml:"flingForceMin"`      // squared drag length a fling must exceed
	FlingVelocityScale float64 `yaml:"flingVelocityScale"` // velocity = flingForce * scale

	// Collision reactions
	OrbBounceY     float64 `yaml:"orbBounceY"`     // upward speed multiplier after an orb
	SpikeKnockback float64 `yaml:"spikeKnockback"` // velocity multiplier after a spike

	// Radius multiplier kept free of obstacles at session start
	PersonalSpace float64 `yaml:"personalSpace"`

	// Height = ceil(deathY * HeightScale) + HeightOffset
	HeightScale  float64 `yaml:"heightScale"`
	HeightOffset int     `yaml:"heightOffset"`
}

// ObstacleTypeConfig contains configuration for one obstacle kind
type ObstacleTypeConfig struct {
	BaseRadius float64 `yaml:"baseRadius"`
	ScaleMin   float64 `yaml:"scaleMin"`
	ScaleMax   float64 `yaml:"scaleMax"`
}

// ObstacleConfig contains obstacle population configuration
type ObstacleConfig struct {
	Orb   ObstacleTypeConfig `yaml:"orb"`
	Spike ObstacleTypeConfig `yaml:"spike"`

	// Obstacles further than this below the wave top are recycled
	RecycleMargin float64 `yaml:"recycleMargin"`
}

// SpawnConfig contains session seeding configuration
type SpawnConfig struct {
	OrbCount    int `yaml:"orbCount"`
	SpikeCount  int `yaml:"spikeCount"`
	MaxAttempts int `yaml:"maxAttempts"` // placement retries before the fallback
}

// WaveConfig contains the rising hazard configuration
type WaveConfig struct {
	Speed         float64 `yaml:"speed"`         // upward pixels per unit time
	CatchUpMargin float64 `yaml:"catchUpMargin"` // max distance below the visible bottom
	Size          float64 `yaml:"size"`          // width and height of the hazard rect
	StartOffset   float64 `yaml:"startOffset"`   // initial distance below the player
}

// CameraConfig contains camera behavior configuration
type CameraConfig struct {
	FollowFactor  float64 `yaml:"followFactor"` // easing fraction per tick while following
	AimFactor     float64 `yaml:"aimFactor"`    // easing fraction per tick while aiming
	FollowZoom    float64 `yaml:"followZoom"`
	AimZoom       float64 `yaml:"aimZoom"`
	HorizontalMin float64 `yaml:"horizontalMin"`
	HorizontalMax float64 `yaml:"horizontalMax"`
}

// TimeConfig contains time dilation configuration
type TimeConfig struct {
	EaseFactor   float64 `yaml:"easeFactor"`   // per-tick decay toward the target scale
	AimScale     float64 `yaml:"aimScale"`     // slow motion while aiming
	SnapFraction float64 `yaml:"snapFraction"` // how far the current scale jumps on release
	TickSeconds  float64 `yaml:"tickSeconds"`  // real time per host tick
}

// IndicatorConfig contains aim indicator layout configuration
type IndicatorConfig struct {
	Count           int     `yaml:"count"`  // even number of dots, the count slot is extra
	Spread          float64 `yaml:"spread"` // chain end = flingForce * Spread
	ScaleMin        float64 `yaml:"scaleMin"`
	ScaleMax        float64 `yaml:"scaleMax"`
	ScaleCapDivisor float64 `yaml:"scaleCapDivisor"` // scale <= |flingForce| / divisor
	AlphaMin        float64 `yaml:"alphaMin"`
	AlphaMax        float64 `yaml:"alphaMax"`
	InvalidAlpha    float64 `yaml:"invalidAlpha"` // alpha multiplier for an invalid fling
	DotRadius       float64 `yaml:"dotRadius"`
}

// SquashStretchConfig contains squash/stretch effect configuration
type SquashStretchConfig struct {
	StretchSpeed  float64 `yaml:"stretchSpeed"` // speed at which stretch reaches 1 + MaxStretch
	MaxStretch    float64 `yaml:"maxStretch"`
	PulseScale    float64 `yaml:"pulseScale"`    // scale at the start of a fling/orb pulse
	PulseDuration float32 `yaml:"pulseDuration"` // seconds
}

// MenuConfig contains main menu configuration values
type MenuConfig struct {
	BackgroundColor color.RGBA
	TitleColor      color.RGBA
	TextColor       color.RGBA
	TitleY          float64
	HintY           float64
	BestY           float64
}

// ColorConfig contains the palette used by the renderer
type ColorConfig struct {
	Background color.RGBA
	Player     color.RGBA
	Orb        color.RGBA
	Spike      color.RGBA
	Wave       color.RGBA
	Indicator  color.RGBA
	Invalid    color.RGBA
	HUD        color.RGBA
}

// Config holds general game configuration
type Config struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// Global configuration instances
var C *Config
var Physics PhysicsConfig
var Player PlayerConfig
var Obstacle ObstacleConfig
var Spawn SpawnConfig
var Wave WaveConfig
var Camera CameraConfig
var Time TimeConfig
var Indicator IndicatorConfig
var SquashStretch SquashStretchConfig
var Menu MenuConfig
var Colors ColorConfig
var Debug DebugConfig

// DebugConfig contains debug/testing command-line options
type DebugConfig struct {
	SkipMenu bool // Skip menu and go directly to game
	Seed     uint64
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Orange       = color.RGBA{R: 255, G: 140, B: 0, A: 255}
	BrightOrange = color.RGBA{R: 255, G: 180, B: 50, A: 255}
	LightRed     = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	LightBlue    = color.RGBA{R: 100, G: 180, B: 255, A: 255}
	DarkBlue     = color.RGBA{R: 60, G: 100, B: 160, A: 255}
	Teal         = color.RGBA{R: 40, G: 200, B: 180, A: 255}
)

func init() {
	C = &Config{
		Width:  360,
		Height: 640,
	}

	Physics = PhysicsConfig{
		Gravity:  400,
		Friction: 0.9,
	}

	Player = PlayerConfig{
		BaseRadius:     12,
		StartingCharge: 3,

		FlingForceMin:      3500,
		FlingVelocityScale: 5,

		OrbBounceY:     1.2,
		SpikeKnockback: -0.5,

		PersonalSpace: 10,

		HeightScale:  -0.1,
		HeightOffset: 100,
	}

	Obstacle = ObstacleConfig{
		Orb: ObstacleTypeConfig{
			BaseRadius: 10,
			ScaleMin:   0.8,
			ScaleMax:   1.4,
		},
		Spike: ObstacleTypeConfig{
			BaseRadius: 14,
			ScaleMin:   0.8,
			ScaleMax:   1.6,
		},
		RecycleMargin: 100,
	}

	Spawn = SpawnConfig{
		OrbCount:    7,
		SpikeCount:  5,
		MaxAttempts: 64,
	}

	Wave = WaveConfig{
		Speed:         40,
		CatchUpMargin: 100,
		Size:          100000,
		StartOffset:   250,
	}

	Camera = CameraConfig{
		FollowFactor:  0.1,
		AimFactor:     0.05,
		FollowZoom:    1.0,
		AimZoom:       0.85,
		HorizontalMin: -240,
		HorizontalMax: 240,
	}

	Time = TimeConfig{
		EaseFactor:   0.1,
		AimScale:     0.02,
		SnapFraction: 0.5,
		TickSeconds:  1.0 / 60,
	}

	Indicator = IndicatorConfig{
		Count:           8,
		Spread:          0.7,
		ScaleMin:        0.2,
		ScaleMax:        0.6,
		ScaleCapDivisor: 200,
		AlphaMin:        0.2,
		AlphaMax:        0.9,
		InvalidAlpha:    0.5,
		DotRadius:       10,
	}

	SquashStretch = SquashStretchConfig{
		StretchSpeed:  1500,
		MaxStretch:    0.5,
		PulseScale:    1.4,
		PulseDuration: 0.35,
	}

	Menu = MenuConfig{
		BackgroundColor: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		TitleColor:      Orange,
		TextColor:       White,
		TitleY:          180,
		HintY:           320,
		BestY:           360,
	}

	Colors = ColorConfig{
		Background: color.RGBA{R: 15, G: 25, B: 50, A: 255},
		Player:     White,
		Orb:        LightBlue,
		Spike:      LightRed,
		Wave:       color.RGBA{R: 40, G: 200, B: 180, A: 200},
		Indicator:  BrightOrange,
		Invalid:    LightRed,
		HUD:        White,
	}

	Debug = DebugConfig{
		SkipMenu: false,
	}
}
