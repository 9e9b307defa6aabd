// Package config handles game configuration loading and management.
package config

import (
	"errors"
	"fmt"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/engine/lighting"
	"github.com/Faultbox/minigolf/internal/engine/terrain"
	"github.com/Faultbox/minigolf/internal/engine/water"
	"github.com/Faultbox/minigolf/internal/game/physics"
	"github.com/Faultbox/minigolf/internal/game/shot"
)

// Config holds all game settings.
type Config struct {
	Graphics GraphicsConfig `yaml:"graphics"`
	Course   CourseConfig   `yaml:"course"`
	Physics  PhysicsConfig  `yaml:"physics"`
	Controls ControlsConfig `yaml:"controls"`
	Logging  LoggingConfig  `yaml:"logging"`
}

// GraphicsConfig holds display and rendering settings.
type GraphicsConfig struct {
	Width         int    `yaml:"width"`
	Height        int    `yaml:"height"`
	Fullscreen    bool   `yaml:"fullscreen"`
	VSync         bool   `yaml:"vsync"`
	FPSLimit      int    `yaml:"fps_limit"`
	Wireframe     bool   `yaml:"wireframe"`
	ShowFPS       bool   `yaml:"show_fps"`
	ScreenshotDir string `yaml:"screenshot_dir"` // F12 captures land here

	SunAzimuth   float32 `yaml:"sun_azimuth"`   // degrees counterclockwise from +x
	SunElevation float32 `yaml:"sun_elevation"` // degrees above the horizon
}

// Sun returns the directional light for the renderer.
func (g GraphicsConfig) Sun() lighting.Sun {
	return lighting.Sun{Azimuth: g.SunAzimuth, Elevation: g.SunElevation}
}

// CourseConfig describes the procedural course.
type CourseConfig struct {
	Seed      int64        `yaml:"seed"`       // noise seed for terrain and water
	NoiseMode string       `yaml:"noise_mode"` // per_bump or once
	Bumps     []BumpConfig `yaml:"bumps"`      // empty uses the built-in hills
	Green     GreenConfig  `yaml:"green"`
	Grid      GridConfig   `yaml:"grid"`
	Water     GridConfig   `yaml:"water"`
	Grass     PropsConfig  `yaml:"grass"`
	PropSeed  uint64       `yaml:"prop_seed"`
}

// BumpConfig is one Gaussian hill.
type BumpConfig struct {
	X         float32 `yaml:"x"`
	Y         float32 `yaml:"y"`
	Amplitude float32 `yaml:"amplitude"`
	Sigma     float32 `yaml:"sigma"`
}

// GreenConfig is the flattened putting green.
type GreenConfig struct {
	X           float32 `yaml:"x"`
	Y           float32 `yaml:"y"`
	InnerRadius float32 `yaml:"inner_radius"`
	OuterRadius float32 `yaml:"outer_radius"`
}

// GridConfig is a square mesh grid.
type GridConfig struct {
	N       int     `yaml:"n"`
	LengthX float32 `yaml:"length_x"`
	LengthY float32 `yaml:"length_y"`
}

// PropsConfig controls random prop scattering.
type PropsConfig struct {
	Attempts int     `yaml:"attempts"`
	AreaX    float32 `yaml:"area_x"`
	AreaY    float32 `yaml:"area_y"`
}

// PhysicsConfig holds ball constants.
type PhysicsConfig struct {
	Gravity        float32 `yaml:"gravity"` // downward acceleration
	BallRadius     float32 `yaml:"ball_radius"`
	Restitution    float32 `yaml:"restitution"`
	GroundFriction float32 `yaml:"ground_friction"`
	GreenFriction  float32 `yaml:"green_friction"`
	AirDrag        float32 `yaml:"air_drag"`
	StopSpeed      float32 `yaml:"stop_speed"`
	HoleSpeed      float32 `yaml:"hole_speed"`
	MaxStep        float32 `yaml:"max_step"` // longest frame time fed to the ball
}

// ControlsConfig holds aiming settings.
type ControlsConfig struct {
	AngleStep float32 `yaml:"angle_step"`
	SpeedStep float32 `yaml:"speed_step"`
	StartClub string  `yaml:"start_club"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level      string `yaml:"level"`
	LogFile    string `yaml:"log_file"`
	MaxSizeMB  int    `yaml:"max_size_mb"`
	MaxBackups int    `yaml:"max_backups"`
	MaxAgeDays int    `yaml:"max_age_days"`
	Compress   bool   `yaml:"compress"`
}

// Default returns a Config with sensible default values.
func Default() *Config {
	green := terrain.DefaultGreen()
	field := terrain.DefaultFieldConfig()
	wat := water.DefaultConfig()
	ball := physics.DefaultParams()
	sun := lighting.DefaultSun()

	return &Config{
		Graphics: GraphicsConfig{
			Width:      1280,
			Height:     720,
			Fullscreen: false,
			VSync:      true,
			FPSLimit:   0,

			ScreenshotDir: "screenshots",
			SunAzimuth:    sun.Azimuth,
			SunElevation:  sun.Elevation,
		},
		Course: CourseConfig{
			Seed:      field.Noise.Seed,
			NoiseMode: field.Mode.String(),
			Green: GreenConfig{
				X:           green.Center.X(),
				Y:           green.Center.Y(),
				InnerRadius: green.InnerRadius,
				OuterRadius: green.OuterRadius,
			},
			Grid:     gridConfig(terrain.DefaultGrid),
			Water:    gridConfig(wat.Grid),
			Grass:    PropsConfig{Attempts: 8000, AreaX: 70, AreaY: 30},
			PropSeed: 1,
		},
		Physics: PhysicsConfig{
			Gravity:        -ball.Gravity.Z(),
			BallRadius:     ball.Radius,
			Restitution:    ball.Restitution,
			GroundFriction: ball.GroundFriction,
			GreenFriction:  ball.GreenFriction,
			AirDrag:        ball.AirDrag,
			StopSpeed:      ball.StopSpeed,
			HoleSpeed:      ball.HoleSpeed,
			MaxStep:        0.05,
		},
		Controls: ControlsConfig{
			AngleStep: shot.DefaultAngleStep,
			SpeedStep: shot.DefaultSpeedStep,
			StartClub: "iron7",
		},
		Logging: LoggingConfig{
			Level:      "info",
			LogFile:    "",
			MaxSizeMB:  50,
			MaxBackups: 3,
			MaxAgeDays: 7,
			Compress:   true,
		},
	}
}

func gridConfig(g terrain.Grid) GridConfig {
	return GridConfig{N: g.N, LengthX: g.LengthX, LengthY: g.LengthY}
}

// Grid converts to a mesh grid.
func (g GridConfig) Grid() terrain.Grid {
	return terrain.Grid{N: g.N, LengthX: g.LengthX, LengthY: g.LengthY}
}

// FieldConfig builds the terrain description.
func (c CourseConfig) FieldConfig() (terrain.FieldConfig, error) {
	mode, err := terrain.ParseNoiseMode(c.NoiseMode)
	if err != nil {
		return terrain.FieldConfig{}, err
	}

	fc := terrain.DefaultFieldConfig()
	fc.Mode = mode
	fc.Noise.Seed = c.Seed
	fc.Green = terrain.GreenMask{
		Center:      mgl32.Vec2{c.Green.X, c.Green.Y},
		InnerRadius: c.Green.InnerRadius,
		OuterRadius: c.Green.OuterRadius,
	}
	if len(c.Bumps) > 0 {
		fc.Bumps = make([]terrain.Bump, len(c.Bumps))
		for i, b := range c.Bumps {
			fc.Bumps[i] = terrain.Bump{
				Center:    mgl32.Vec2{b.X, b.Y},
				Amplitude: b.Amplitude,
				Sigma:     b.Sigma,
			}
		}
	}
	return fc, nil
}

// WaterConfig builds the lake surface description.
func (c CourseConfig) WaterConfig() water.Config {
	wc := water.DefaultConfig()
	wc.Grid = c.Water.Grid()
	wc.Noise.Seed = c.Seed
	return wc
}

// Params builds the ball constants.
func (p PhysicsConfig) Params() physics.Params {
	params := physics.DefaultParams()
	params.Gravity = mgl32.Vec3{0, 0, -p.Gravity}
	params.Radius = p.BallRadius
	params.Restitution = p.Restitution
	params.GroundFriction = p.GroundFriction
	params.GreenFriction = p.GreenFriction
	params.AirDrag = p.AirDrag
	params.StopSpeed = p.StopSpeed
	params.HoleSpeed = p.HoleSpeed
	return params
}

// Club returns the configured starting club.
func (c ControlsConfig) Club() (shot.Club, error) {
	club, ok := shot.ParseClub(c.StartClub)
	if !ok {
		return 0, fmt.Errorf("unknown club %q", c.StartClub)
	}
	return club, nil
}

// ErrHoleOffGreen means the configured green does not contain the hole.
var ErrHoleOffGreen = errors.New("hole is not on the green")

// Validate reports every invalid setting.
func (c *Config) Validate() error {
	var errs []error

	if c.Graphics.Width <= 0 || c.Graphics.Height <= 0 {
		errs = append(errs, fmt.Errorf("graphics: window size %dx%d must be positive", c.Graphics.Width, c.Graphics.Height))
	}

	fc, err := c.Course.FieldConfig()
	if err != nil {
		errs = append(errs, fmt.Errorf("course: %w", err))
	} else if err := fc.Validate(); err != nil {
		errs = append(errs, fmt.Errorf("course: %w", err))
	}
	if c.Course.Grid.N < 2 {
		errs = append(errs, fmt.Errorf("course.grid: n=%d: %w", c.Course.Grid.N, terrain.ErrGridTooSmall))
	}
	if c.Course.Water.N < 2 {
		errs = append(errs, fmt.Errorf("course.water: n=%d: %w", c.Course.Water.N, terrain.ErrGridTooSmall))
	}
	if c.Course.Grass.Attempts < 0 {
		errs = append(errs, fmt.Errorf("course.grass: attempts %d must not be negative", c.Course.Grass.Attempts))
	}

	if !(c.Physics.BallRadius > 0) {
		errs = append(errs, fmt.Errorf("physics: ball radius %g must be positive", c.Physics.BallRadius))
	}
	if !(c.Physics.MaxStep > 0) {
		errs = append(errs, fmt.Errorf("physics: max step %g must be positive", c.Physics.MaxStep))
	}

	// The hole position is fixed, so a moved green must still surround it
	hole := c.Physics.Params().Hole
	green := c.Course.Green
	if d := hole.Sub(mgl32.Vec2{green.X, green.Y}).Len(); !(d < green.InnerRadius) {
		errs = append(errs, fmt.Errorf("course.green: hole (%g, %g) is %.2f from green center: %w",
			hole.X(), hole.Y(), d, ErrHoleOffGreen))
	}

	if _, err := c.Controls.Club(); err != nil {
		errs = append(errs, fmt.Errorf("controls: %w", err))
	}

	return errors.Join(errs...)
}
