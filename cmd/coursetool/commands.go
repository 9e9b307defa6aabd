package main

import (
	"fmt"
	"os"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/engine/debug"
	"github.com/Faultbox/minigolf/internal/game/physics"
	"github.com/Faultbox/minigolf/internal/game/round"
	"github.com/Faultbox/minigolf/internal/game/shot"
	"github.com/Faultbox/minigolf/internal/logger"
)

func cmdInfo(args []string) error {
	fs, cfgPath := newFlags("info")
	fs.Parse(args)

	cfg, course, err := loadCourse(*cfgPath)
	if err != nil {
		return err
	}

	field := course.Field
	green := field.Green()
	params := cfg.Physics.Params()
	b := course.TerrainMesh.Bounds

	fmt.Printf("Seed:          %d\n", cfg.Course.Seed)
	fmt.Printf("Noise mode:    %s\n", field.Mode())
	fmt.Printf("Terrain:       %d vertices, %d triangles\n", len(course.TerrainMesh.Vertices), len(course.TerrainMesh.Triangles))
	fmt.Printf("  bounds       (%.2f, %.2f, %.2f) .. (%.2f, %.2f, %.2f)\n", b.Min[0], b.Min[1], b.Min[2], b.Max[0], b.Max[1], b.Max[2])
	fmt.Printf("Water:         %d vertices, level %.2f\n", len(course.WaterMesh.Vertices), course.Water.Level())
	fmt.Printf("Green:         (%.1f, %.1f) r=%.1f..%.1f\n", green.Center.X(), green.Center.Y(), green.InnerRadius, green.OuterRadius)
	fmt.Printf("Hole:          (%.1f, %.1f) height %.3f\n", params.Hole.X(), params.Hole.Y(), field.Height(params.Hole.X(), params.Hole.Y()))
	fmt.Printf("Tee:           (%.1f, %.1f) height %.3f\n", round.Tee.X(), round.Tee.Y(), field.Height(round.Tee.X(), round.Tee.Y()))
	fmt.Printf("Grass:         %d of %d attempts\n", len(course.Grass), cfg.Course.Grass.Attempts)
	fmt.Printf("Trees:         %d\n", len(course.Trees))
	return nil
}

func cmdHeightmap(args []string) error {
	fs, cfgPath := newFlags("heightmap")
	width := fs.Int("w", 800, "Image width in pixels")
	height := fs.Int("h", 0, "Image height in pixels (default: keep course aspect)")
	gray := fs.Bool("gray", false, "Write a 16-bit grayscale heightmap instead of a coloured map")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: coursetool heightmap [options] <out.png>")
	}
	out := fs.Arg(0)

	cfg, course, err := loadCourse(*cfgPath)
	if err != nil {
		return err
	}

	grid := cfg.Course.Grid.Grid()
	if *width <= 0 {
		return fmt.Errorf("invalid width %d", *width)
	}
	if *height <= 0 {
		*height = int(float32(*width) * grid.LengthY / grid.LengthX)
	}

	if *gray {
		b := course.TerrainMesh.Bounds
		err = debug.WritePNG(out, debug.Grayscale(course.Field.Height, grid, *width, *height, b.Min[2], b.Max[2]))
	} else {
		params := cfg.Physics.Params()
		err = debug.WritePNG(out, debug.RenderMap(course.Field.Height, grid, *width, *height, debug.MapStyle{
			WaterLevel: course.Water.Level(),
			Green:      course.Field.Green(),
			Hole:       params.Hole,
			HoleRadius: math32.Max(params.HoleRadius, grid.LengthX/float32(*width)),
		}))
	}
	if err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%dx%d)\n", out, *width, *height)
	return nil
}

func cmdOBJ(args []string) error {
	fs, cfgPath := newFlags("obj")
	lake := fs.Bool("water", false, "Export the water surface instead of the terrain")
	fs.Parse(args)

	if fs.NArg() < 1 {
		return fmt.Errorf("usage: coursetool obj [options] <out.obj>")
	}
	out := fs.Arg(0)

	_, course, err := loadCourse(*cfgPath)
	if err != nil {
		return err
	}

	mesh := course.TerrainMesh
	if *lake {
		mesh = course.WaterMesh
	}

	file, err := os.Create(out)
	if err != nil {
		return fmt.Errorf("creating file: %w", err)
	}
	defer file.Close()
	if err := mesh.WriteOBJ(file); err != nil {
		return err
	}
	if err := file.Close(); err != nil {
		return err
	}

	fmt.Printf("Wrote %s (%d vertices)\n", out, len(mesh.Vertices))
	return nil
}

func cmdSimulate(args []string) error {
	fs, cfgPath := newFlags("simulate")
	clubName := fs.String("club", "iron7", "Club: iron7, wedge or putter")
	elevation := fs.Float64("elevation", 45, "Launch angle above the horizon in degrees")
	heading := fs.Float64("heading", 180, "Heading in degrees, 0 is +x, 90 is +y")
	speed := fs.Float64("speed", 15, "Launch speed")
	rate := fs.Int("rate", 120, "Simulation steps per second")
	maxTime := fs.Float64("max-time", 60, "Give up after this many simulated seconds")
	fs.Parse(args)

	club, ok := shot.ParseClub(*clubName)
	if !ok {
		return fmt.Errorf("unknown club %q", *clubName)
	}
	if *rate <= 0 {
		return fmt.Errorf("invalid rate %d", *rate)
	}

	cfg, course, err := loadCourse(*cfgPath)
	if err != nil {
		return err
	}

	ctrl := shot.NewController(cfg.Controls.AngleStep, cfg.Controls.SpeedStep)
	ctrl.SetParams(shot.Params{
		Theta: mgl32.DegToRad(90 - float32(*elevation)),
		Phi:   mgl32.DegToRad(float32(*heading)),
		Speed: float32(*speed),
		Club:  club,
	})
	session := round.NewSession(course.Field, cfg.Physics.Params(), ctrl, logger.Named("session"))

	dt := 1 / float32(*rate)
	limit := int(*maxTime * float64(*rate))

	// Let the ball settle on the tee before the stroke
	if _, ok := runUntilStopped(session, dt, limit); !ok {
		return fmt.Errorf("ball did not settle on the tee")
	}
	start := session.Ball().Position()

	report := session.Step(dt, shot.Controls{Shoot: true})
	if !report.Shot {
		return fmt.Errorf("shot was not taken")
	}
	p := ctrl.Params()
	fmt.Printf("Shot:     %s, elevation %.1f°, heading %.1f°, speed %.1f\n",
		p.Club, ctrl.Elevation(), mgl32.RadToDeg(p.Phi), p.Speed)

	sum, ok := runUntilStopped(session, dt, limit)
	end := session.Ball().Position()

	fmt.Printf("Start:    (%.2f, %.2f, %.2f)\n", start.X(), start.Y(), start.Z())
	fmt.Printf("Rest:     (%.2f, %.2f, %.2f)\n", end.X(), end.Y(), end.Z())
	fmt.Printf("Carry:    %.2f\n", end.Vec2().Sub(start.Vec2()).Len())
	fmt.Printf("Time:     %.2fs over %d steps\n", float32(sum.steps)*dt, sum.steps)
	fmt.Printf("Bounces:  %d\n", sum.bounces)
	if sum.outOfBounds > 0 {
		fmt.Printf("Out of bounds %d time(s)\n", sum.outOfBounds)
	}
	if sum.holed {
		fmt.Println("Holed!")
	}
	if !ok {
		fmt.Println("Ball still moving at time limit")
	}
	return nil
}

type flight struct {
	steps       int
	bounces     int
	outOfBounds int
	holed       bool
}

// runUntilStopped steps the session until the ball rests or limit runs out.
func runUntilStopped(s *round.Session, dt float32, limit int) (flight, bool) {
	var f flight
	inAir := !s.Ball().Stopped()
	for f.steps < limit {
		if s.Ball().Stopped() {
			return f, true
		}
		r := s.Step(dt, shot.Controls{})
		f.steps++
		contact := r.Event.Has(physics.EventContact)
		if contact && inAir {
			f.bounces++
		}
		inAir = !contact
		if r.Event.Has(physics.EventOutOfBounds) {
			f.outOfBounds++
		}
		if r.Holed() {
			f.holed = true
		}
	}
	return f, s.Ball().Stopped()
}
