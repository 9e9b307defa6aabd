// Package renderer draws the course with OpenGL.
package renderer

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/minigolf/internal/engine/lighting"
	"github.com/Faultbox/minigolf/internal/engine/renderer/shaders"
	"github.com/Faultbox/minigolf/internal/engine/shader"
	"github.com/Faultbox/minigolf/internal/engine/terrain"
)

// Config holds renderer configuration.
type Config struct {
	Width     int
	Height    int
	Wireframe bool
	Sun       lighting.Sun
}

// Course is the static geometry uploaded once at load.
type Course struct {
	Terrain     *terrain.Mesh
	Water       *terrain.Mesh
	WaterOffset [3]float32
	Green       terrain.GreenMask
	Hole        mgl32.Vec3
	Trees       []mgl32.Vec3
	Grass       []mgl32.Vec3
	BallRadius  float32
}

// Frame is the per-frame view and dynamic state.
type Frame struct {
	View       mgl32.Mat4
	Projection mgl32.Mat4
	CameraPos  mgl32.Vec3
	CameraYaw  float32

	Ball     mgl32.Vec3
	ShowAim  bool
	Aim      mgl32.Vec3 // launch velocity
	AimColor mgl32.Vec3

	Time float32
}

var (
	skyColor   = mgl32.Vec3{0.55, 0.75, 0.95}
	ambient    = mgl32.Vec3{0.4, 0.4, 0.4}
	diffuse    = mgl32.Vec3{0.7, 0.7, 0.65}
	waterColor = mgl32.Vec3{0.15, 0.35, 0.60}

	ballColor    = mgl32.Vec3{0.95, 0.95, 0.95}
	trunkColor   = mgl32.Vec3{0.40, 0.26, 0.13}
	foliageColor = mgl32.Vec3{0.13, 0.35, 0.12}
	grassColor   = mgl32.Vec3{0.25, 0.50, 0.18}
	poleColor    = mgl32.Vec3{0.90, 0.90, 0.85}
	flagColor    = mgl32.Vec3{0.85, 0.10, 0.10}
	holeColor    = mgl32.Vec3{0.05, 0.05, 0.05}
)

// Renderer handles all OpenGL rendering.
type Renderer struct {
	config   Config
	log      *zap.Logger
	lightDir mgl32.Vec3

	terrainProg *shader.Program
	waterProg   *shader.Program
	litProg     *shader.Program

	terrain *GPUMesh
	water   *GPUMesh
	sphere  *GPUMesh
	tube    *GPUMesh
	cone    *GPUMesh
	quad    *GPUMesh

	course Course
}

// New creates a new renderer.
// It must be called after the OpenGL context exists.
func New(cfg Config, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	r := &Renderer{config: cfg, log: log, lightDir: cfg.Sun.LightDir()}

	if err := gl.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	log.Info("OpenGL initialized",
		zap.String("version", gl.GoStr(gl.GetString(gl.VERSION))),
		zap.String("renderer", gl.GoStr(gl.GetString(gl.RENDERER))),
	)

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.ClearColor(skyColor[0], skyColor[1], skyColor[2], 1.0)
	gl.Viewport(0, 0, int32(cfg.Width), int32(cfg.Height))

	var err error
	if r.terrainProg, err = shader.NewProgram("terrain", shaders.TerrainVertexShader, shaders.TerrainFragmentShader); err != nil {
		return nil, err
	}
	if r.waterProg, err = shader.NewProgram("water", shaders.WaterVertexShader, shaders.WaterFragmentShader); err != nil {
		r.Close()
		return nil, err
	}
	if r.litProg, err = shader.NewProgram("lit", shaders.LitVertexShader, shaders.LitFragmentShader); err != nil {
		r.Close()
		return nil, err
	}

	r.sphere = Upload(Sphere(1, 16, 24))
	r.tube = Upload(Cylinder(1, 1, 12))
	r.cone = Upload(Cone(1, 1, 16))
	r.quad = Upload(Quad(1, 1))
	return r, nil
}

// LoadCourse uploads the static course geometry, replacing any previous course.
func (r *Renderer) LoadCourse(c Course) {
	if r.terrain != nil {
		r.terrain.Delete()
	}
	if r.water != nil {
		r.water.Delete()
	}
	r.course = c
	r.terrain = Upload(c.Terrain)
	r.water = Upload(c.Water)
	r.log.Debug("course uploaded",
		zap.Int("terrain_triangles", len(c.Terrain.Triangles)),
		zap.Int("water_triangles", len(c.Water.Triangles)),
		zap.Int("trees", len(c.Trees)),
		zap.Int("grass", len(c.Grass)),
	)
}

// Close cleans up renderer resources.
func (r *Renderer) Close() {
	r.log.Info("closing renderer")
	for _, m := range []*GPUMesh{r.terrain, r.water, r.sphere, r.tube, r.cone, r.quad} {
		if m != nil {
			m.Delete()
		}
	}
	for _, p := range []*shader.Program{r.terrainProg, r.waterProg, r.litProg} {
		if p != nil {
			p.Delete()
		}
	}
}

// Resize handles window resize.
func (r *Renderer) Resize(width, height int) {
	r.config.Width = width
	r.config.Height = height
	gl.Viewport(0, 0, int32(width), int32(height))
	r.log.Debug("renderer resized", zap.Int("width", width), zap.Int("height", height))
}

// Aspect returns the viewport aspect ratio.
func (r *Renderer) Aspect() float32 {
	if r.config.Height == 0 {
		return 1
	}
	return float32(r.config.Width) / float32(r.config.Height)
}

// SetWireframe toggles polygon line mode.
func (r *Renderer) SetWireframe(on bool) {
	r.config.Wireframe = on
}

// Wireframe reports whether line mode is on.
func (r *Renderer) Wireframe() bool {
	return r.config.Wireframe
}

// ReadPixels returns the RGBA contents of the back buffer, bottom row first.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	w, h := r.config.Width, r.config.Height
	pixels := make([]byte, w*h*4)
	gl.PixelStorei(gl.PACK_ALIGNMENT, 1)
	gl.ReadPixels(0, 0, int32(w), int32(h), gl.RGBA, gl.UNSIGNED_BYTE, gl.Ptr(pixels))
	return pixels, w, h
}

// Draw renders one frame.
func (r *Renderer) Draw(f Frame) {
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	if r.config.Wireframe {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.LINE)
	} else {
		gl.PolygonMode(gl.FRONT_AND_BACK, gl.FILL)
	}

	viewProj := f.Projection.Mul4(f.View)
	r.drawTerrain(viewProj, f)
	r.drawObjects(viewProj, f)
	// Water last so the lake bed shows through
	r.drawWater(viewProj, f)
}

func (r *Renderer) drawTerrain(viewProj mgl32.Mat4, f Frame) {
	if r.terrain == nil {
		return
	}
	p := r.terrainProg
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uLightDir", r.lightDir)
	p.SetVec3("uAmbient", ambient)
	p.SetVec3("uDiffuse", diffuse)
	p.SetVec3("uCameraPos", f.CameraPos)
	p.SetVec3("uFogColor", skyColor)
	p.SetFloat("uFogNear", 60)
	p.SetFloat("uFogFar", 160)
	g := r.course.Green
	gl.Uniform2f(p.Uniform("uGreenCenter"), g.Center.X(), g.Center.Y())
	p.SetFloat("uGreenRadius", g.InnerRadius)
	r.terrain.Draw()
}

func (r *Renderer) drawWater(viewProj mgl32.Mat4, f Frame) {
	if r.water == nil {
		return
	}
	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	defer gl.Disable(gl.BLEND)

	p := r.waterProg
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uOffset", r.course.WaterOffset)
	p.SetFloat("uTime", f.Time)
	p.SetVec3("uLightDir", r.lightDir)
	p.SetVec3("uWaterColor", waterColor)
	p.SetVec3("uCameraPos", f.CameraPos)
	r.water.Draw()
}

func (r *Renderer) drawObjects(viewProj mgl32.Mat4, f Frame) {
	p := r.litProg
	p.Use()
	p.SetMat4("uViewProj", viewProj)
	p.SetVec3("uLightDir", r.lightDir)
	p.SetVec3("uAmbient", ambient)
	p.SetVec3("uDiffuse", diffuse)
	p.SetBool("uUnlit", false)

	c := r.course
	radius := c.BallRadius
	r.solid(r.sphere, ballColor, translate(f.Ball).Mul4(mgl32.Scale3D(radius, radius, radius)))

	// Hole cup, flag pole and flag
	r.solid(r.sphere, holeColor, translate(c.Hole).Mul4(mgl32.Scale3D(0.1, 0.1, 0.005)))
	r.solid(r.tube, poleColor, translate(c.Hole).Mul4(mgl32.Scale3D(0.02, 0.02, 1.5)))
	flagAt := c.Hole.Add(mgl32.Vec3{0.25, 0, 1.2})
	r.solid(r.quad, flagColor, translate(flagAt).Mul4(mgl32.Scale3D(0.5, 1, 0.3)))

	// Trees sink slightly so no trunk floats on a slope
	sink := mgl32.Vec3{0, 0, 0.05}
	for _, t := range c.Trees {
		base := t.Sub(sink)
		r.solid(r.tube, trunkColor, translate(base).Mul4(mgl32.Scale3D(0.12, 0.12, 1.0)))
		r.solid(r.cone, foliageColor, translate(base.Add(mgl32.Vec3{0, 0, 0.8})).Mul4(mgl32.Scale3D(0.7, 0.7, 1.8)))
	}

	// Grass tufts face the camera
	face := mgl32.HomogRotate3DZ(f.CameraYaw + math32.Pi/2)
	grassSink := mgl32.Vec3{0, 0, 0.02}
	for _, g := range c.Grass {
		r.solid(r.quad, grassColor, translate(g.Sub(grassSink)).Mul4(face).Mul4(mgl32.Scale3D(0.2, 1, 0.25)))
	}

	if f.ShowAim && f.Aim.Len() > 0 {
		p.SetBool("uUnlit", true)
		r.drawArrow(f.Ball.Add(mgl32.Vec3{0, 0, radius}), f.Aim, f.AimColor)
		p.SetBool("uUnlit", false)
	}
}

// drawArrow draws a shaft and tip pointing along dir, longer for faster shots.
func (r *Renderer) drawArrow(base, dir, color mgl32.Vec3) {
	length := arrowLength(dir.Len())
	orient := mgl32.QuatBetweenVectors(mgl32.Vec3{0, 0, 1}, dir.Normalize()).Mat4()
	at := translate(base).Mul4(orient)
	r.solid(r.tube, color, at.Mul4(mgl32.Scale3D(0.015, 0.015, length)))
	tip := at.Mul4(mgl32.Translate3D(0, 0, length)).Mul4(mgl32.Scale3D(0.05, 0.05, 0.12))
	r.solid(r.cone, color, tip)
}

// arrowLength maps shot speed to the aim arrow shaft length.
func arrowLength(speed float32) float32 {
	return 0.3 + 0.05*speed
}

func (r *Renderer) solid(m *GPUMesh, color mgl32.Vec3, model mgl32.Mat4) {
	r.litProg.SetVec3("uColor", color)
	r.litProg.SetMat4("uModel", model)
	m.Draw()
}

func translate(v mgl32.Vec3) mgl32.Mat4 {
	return mgl32.Translate3D(v[0], v[1], v[2])
}
