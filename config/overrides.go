package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"gopkg.in/yaml.v3"
)

// tuningFile mirrors the tunable globals. Fields point at the live values
// so keys missing from the file keep their current setting.
type tuningFile struct {
	Screen        *Config              `yaml:"screen"`
	Physics       *PhysicsConfig       `yaml:"physics"`
	Player        *PlayerConfig        `yaml:"player"`
	Obstacle      *ObstacleConfig      `yaml:"obstacle"`
	Spawn         *SpawnConfig         `yaml:"spawn"`
	Wave          *WaveConfig          `yaml:"wave"`
	Camera        *CameraConfig        `yaml:"camera"`
	Time          *TimeConfig          `yaml:"time"`
	Indicator     *IndicatorConfig     `yaml:"indicator"`
	SquashStretch *SquashStretchConfig `yaml:"squashStretch"`
}

// LoadOverrides merges the YAML tuning file at path over the current
// configuration. A missing file is not an error. On a parse or validation
// error the configuration is left untouched.
func LoadOverrides(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read tuning %s: %w", path, err)
	}
	return ApplyOverrides(data)
}

// ApplyOverrides merges YAML tuning data over the current configuration.
func ApplyOverrides(data []byte) error {
	screen := *C
	physics := Physics
	player := Player
	obstacle := Obstacle
	spawn := Spawn
	wave := Wave
	camera := Camera
	timeCfg := Time
	indicator := Indicator
	squash := SquashStretch

	f := tuningFile{
		Screen:        &screen,
		Physics:       &physics,
		Player:        &player,
		Obstacle:      &obstacle,
		Spawn:         &spawn,
		Wave:          &wave,
		Camera:        &camera,
		Time:          &timeCfg,
		Indicator:     &indicator,
		SquashStretch: &squash,
	}
	if err := yaml.Unmarshal(data, &f); err != nil {
		return fmt.Errorf("parse tuning: %w", err)
	}
	if err := validate(&f); err != nil {
		return fmt.Errorf("invalid tuning: %w", err)
	}

	*C = screen
	Physics = physics
	Player = player
	Obstacle = obstacle
	Spawn = spawn
	Wave = wave
	Camera = camera
	Time = timeCfg
	Indicator = indicator
	SquashStretch = squash
	return nil
}

func validate(f *tuningFile) error {
	switch {
	case f.Screen.Width <= 0 || f.Screen.Height <= 0:
		return fmt.Errorf("screen size %dx%d must be positive", f.Screen.Width, f.Screen.Height)
	case f.Player.FlingForceMin <= 0:
		return errors.New("player.flingForceMin must be positive")
	case f.Player.StartingCharge < 0:
		return errors.New("player.startingCharge must not be negative")
	case f.Indicator.Count < 0 || f.Indicator.Count%2 != 0:
		return fmt.Errorf("indicator.count %d must be even", f.Indicator.Count)
	case f.Indicator.ScaleCapDivisor <= 0:
		return errors.New("indicator.scaleCapDivisor must be positive")
	case f.Spawn.MaxAttempts < 1:
		return errors.New("spawn.maxAttempts must be at least 1")
	case f.Spawn.OrbCount < 0 || f.Spawn.SpikeCount < 0:
		return errors.New("spawn counts must not be negative")
	case f.Obstacle.Orb.ScaleMin > f.Obstacle.Orb.ScaleMax:
		return errors.New("obstacle.orb scale range is inverted")
	case f.Obstacle.Spike.ScaleMin > f.Obstacle.Spike.ScaleMax:
		return errors.New("obstacle.spike scale range is inverted")
	case f.Camera.HorizontalMin >= f.Camera.HorizontalMax:
		return errors.New("camera horizontal bounds are empty")
	case f.Camera.FollowZoom <= 0 || f.Camera.AimZoom <= 0:
		return errors.New("camera zoom must be positive")
	}
	return nil
}
