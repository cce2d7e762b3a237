package game

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Camera preview overlay (top-right corner, in screen pixels).
const (
	CamPreviewW    = 180
	CamMarginTop   = 10
	CamMarginRight = 20
	FoodGapBelow   = 20 // food spawns at least this far below the preview
)

// Frame pacing.
const TargetFPS = 30

// Snake tuning.
const (
	SnakeSpeed  = 6.5 // px advanced toward the target per frame
	SegSpacing  = 12  // initial segment spacing
	InitialLen  = 7
	HeadRadius  = 12
	SelfHitSkip = 9 // segments nearest the head excluded from self-collision
)

// Food.
const FoodRadius = 12

// Obstacles.
const (
	ObstacleCount   = 6
	ObstacleMinSize = 40
	ObstacleMaxSize = 90
	ObstacleGap     = 60 // minimum separation (inflation during placement)
	ObstacleTopPad  = 120
	ObstacleEdgePad = 30
)

// Visuals.
const (
	NeonLayers      = 5
	ParticleCount   = 18
	ParticleLife    = 0.55
	MaxParticles    = 2048
	MaxSpriteRender = 4096
)

// Wall collision margin: the head dies this close to a screen edge.
const WallMargin = 6

// Config holds runtime settings read from the environment.
type Config struct {
	CameraDevice int    `env:"FINGERSNAKE_CAMERA" envDefault:"0"`
	ModelPath    string `env:"FINGERSNAKE_MODEL" envDefault:"assets/hand_landmark.onnx"`
	AssetsDir    string `env:"FINGERSNAKE_ASSETS" envDefault:"assets"`
	ScoresPath   string `env:"FINGERSNAKE_SCORES" envDefault:"fingersnake.db"`
	TimeLimit    int    `env:"FINGERSNAKE_TIME_LIMIT" envDefault:"60"`
	Seed         uint64 `env:"FINGERSNAKE_SEED" envDefault:"0"`
	Windowed     bool   `env:"FINGERSNAKE_WINDOWED" envDefault:"false"`
	Mute         bool   `env:"FINGERSNAKE_MUTE" envDefault:"false"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	if cfg.TimeLimit <= 0 {
		cfg.TimeLimit = 60
	}
	return cfg, nil
}
