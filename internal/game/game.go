// Package game implements the windowed game loop.
package game

import (
	"fmt"
	"time"

	"github.com/veandco/go-sdl2/sdl"
	"go.uber.org/zap"

	"github.com/Faultbox/minigolf/internal/config"
	"github.com/Faultbox/minigolf/internal/engine/camera"
	"github.com/Faultbox/minigolf/internal/engine/debug"
	"github.com/Faultbox/minigolf/internal/engine/input"
	"github.com/Faultbox/minigolf/internal/engine/renderer"
	"github.com/Faultbox/minigolf/internal/engine/window"
	"github.com/Faultbox/minigolf/internal/game/round"
	"github.com/Faultbox/minigolf/internal/game/shot"
	"github.com/Faultbox/minigolf/internal/logger"
)

const title = "Mini Golf"

// Starting camera offset from the ball, against the aim heading.
const (
	followBack float32 = 4
	followUp   float32 = 2
)

// Game is the main game instance.
type Game struct {
	cfg      *config.Config
	log      *zap.Logger
	running  bool
	window   *window.Window
	renderer *renderer.Renderer
	input    *input.Input
	bindings input.Bindings
	camera   *camera.OrbitCamera
	course   *round.Course
	session  *round.Session
	hud      string
	fps      int

	screenshots      *debug.ScreenshotCapture
	screenshotQueued bool
}

// New builds the course, opens the window and uploads the scene.
func New(cfg *config.Config) (*Game, error) {
	log := logger.Named("game")
	log.Info("initializing game",
		zap.Int("width", cfg.Graphics.Width),
		zap.Int("height", cfg.Graphics.Height),
		zap.Int64("seed", cfg.Course.Seed),
		zap.String("noise_mode", cfg.Course.NoiseMode),
	)

	g := &Game{
		cfg:      cfg,
		log:      log,
		input:    input.New(),
		bindings: input.DefaultBindings(),
		camera:   camera.NewOrbitCamera(),

		screenshots: debug.NewScreenshotCapture(cfg.Graphics.ScreenshotDir, "minigolf"),
	}

	// Mesh building and prop sampling happen once, before the loop
	var err error
	g.course, err = round.BuildCourse(cfg.Course, logger.Named("course"))
	if err != nil {
		return nil, err
	}

	club, err := cfg.Controls.Club()
	if err != nil {
		return nil, err
	}
	ctrl := shot.NewController(cfg.Controls.AngleStep, cfg.Controls.SpeedStep)
	aim := ctrl.Params()
	aim.Club = club
	ctrl.SetParams(aim)
	g.session = round.NewSession(g.course.Field, cfg.Physics.Params(), ctrl, logger.Named("session"))

	g.window, err = window.New(window.Config{
		Title:      title,
		Width:      cfg.Graphics.Width,
		Height:     cfg.Graphics.Height,
		Fullscreen: cfg.Graphics.Fullscreen,
		VSync:      cfg.Graphics.VSync,
		Samples:    4,
	}, logger.Named("window"))
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Renderer needs the GL context from the window
	width, height := g.window.Size()
	g.renderer, err = renderer.New(renderer.Config{
		Width:     width,
		Height:    height,
		Wireframe: cfg.Graphics.Wireframe,
		Sun:       cfg.Graphics.Sun(),
	}, logger.Named("renderer"))
	if err != nil {
		g.window.Close()
		return nil, fmt.Errorf("failed to create renderer: %w", err)
	}

	params := cfg.Physics.Params()
	hole := params.Hole
	g.renderer.LoadCourse(renderer.Course{
		Terrain:     g.course.TerrainMesh,
		Water:       g.course.WaterMesh,
		WaterOffset: g.course.Water.Offset(),
		Green:       g.course.Field.Green(),
		Hole:        [3]float32{hole.X(), hole.Y(), g.course.Field.Height(hole.X(), hole.Y())},
		Trees:       g.course.Trees,
		Grass:       g.course.Grass,
		BallRadius:  params.Radius,
	})

	if g.session.FollowBall() {
		g.camera.FrameBehind(g.session.Ball().Position(), ctrl.Params().Phi, followBack, followUp)
	} else {
		g.camera.FitToBounds(g.course.TerrainMesh.Bounds.Min, g.course.TerrainMesh.Bounds.Max)
	}

	log.Info("game initialized successfully")
	return g, nil
}

// Run starts the main game loop.
func (g *Game) Run() error {
	g.running = true

	start := time.Now()
	lastTime := start
	frameCount := 0
	fpsTimer := start
	maxStep := g.cfg.Physics.MaxStep

	var frameBudget time.Duration
	if g.cfg.Graphics.FPSLimit > 0 {
		frameBudget = time.Second / time.Duration(g.cfg.Graphics.FPSLimit)
	}

	g.log.Info("starting game loop")

	for g.running {
		frameStart := time.Now()
		dt := float32(frameStart.Sub(lastTime).Seconds())
		lastTime = frameStart
		// A stalled frame (window drag, breakpoint) must not tunnel the ball
		if dt > maxStep {
			dt = maxStep
		}

		if g.input.Update() {
			g.running = false
			break
		}
		g.handleEvents()
		if !g.running {
			break
		}

		report := g.session.Step(dt, g.bindings.Controls(g.input))
		if report.Holed() {
			g.log.Info("hole complete")
		}
		if g.session.FollowBall() {
			g.camera.Follow(g.session.Ball().Position())
		}

		g.render(float32(frameStart.Sub(start).Seconds()))
		if g.screenshotQueued {
			g.screenshotQueued = false
			g.takeScreenshot()
		}
		g.window.SwapBuffers()
		g.updateHUD()

		frameCount++
		if time.Since(fpsTimer) >= time.Second {
			g.log.Debug("fps", zap.Int("count", frameCount), zap.Float32("dt_ms", dt*1000))
			g.fps = frameCount
			frameCount = 0
			fpsTimer = time.Now()
		}

		if frameBudget > 0 {
			if rest := frameBudget - time.Since(frameStart); rest > 0 {
				time.Sleep(rest)
			}
		}
	}

	return nil
}

func (g *Game) handleEvents() {
	for _, event := range g.input.Events() {
		switch event.Type {
		case input.EventWindowResize:
			width, height := g.window.Size()
			g.renderer.Resize(width, height)
		case input.EventKeyDown:
			switch event.Key {
			case g.bindings.Quit:
				g.running = false
			case sdl.SCANCODE_F1:
				g.renderer.SetWireframe(!g.renderer.Wireframe())
			case sdl.SCANCODE_F12:
				g.screenshotQueued = true
			}
		case input.EventMouseMove:
			if g.input.MouseButtonHeld(sdl.BUTTON_LEFT) || g.input.MouseButtonHeld(sdl.BUTTON_RIGHT) {
				g.camera.HandleDrag(float32(event.DeltaX), float32(event.DeltaY))
			}
		case input.EventMouseWheel:
			g.camera.HandleZoom(float32(event.DeltaY))
		}
	}
}

func (g *Game) render(t float32) {
	ctrl := g.session.Shot()
	g.renderer.Draw(renderer.Frame{
		View:       g.camera.ViewMatrix(),
		Projection: g.camera.ProjectionMatrix(g.renderer.Aspect()),
		CameraPos:  g.camera.Position(),
		CameraYaw:  g.camera.Yaw,
		Ball:       g.session.Ball().Position(),
		ShowAim:    g.session.AimVisible(),
		Aim:        ctrl.AimVector(),
		AimColor:   ctrl.PowerColor(),
		Time:       t,
	})
}

// takeScreenshot reads the back buffer before it is swapped.
func (g *Game) takeScreenshot() {
	pixels, width, height := g.renderer.ReadPixels()
	path, err := g.screenshots.CaptureFromPixels(pixels, width, height)
	if err != nil {
		g.log.Error("screenshot failed", zap.Error(err))
		return
	}
	g.log.Info("screenshot saved", zap.String("path", path))
}

// updateHUD writes the status line into the title bar when it changes.
func (g *Game) updateHUD() {
	hud := title + " | " + g.session.HUD()
	if g.cfg.Graphics.ShowFPS {
		hud += fmt.Sprintf(" | %d fps", g.fps)
	}
	if hud != g.hud {
		g.hud = hud
		g.window.SetTitle(hud)
	}
}

// Close cleans up game resources.
func (g *Game) Close() {
	g.log.Info("closing game")

	if g.renderer != nil {
		g.renderer.Close()
	}
	if g.window != nil {
		g.window.Close()
	}
}
