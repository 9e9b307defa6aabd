package round

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
	"go.uber.org/zap"

	"github.com/Faultbox/minigolf/internal/config"
	"github.com/Faultbox/minigolf/internal/engine/terrain"
	"github.com/Faultbox/minigolf/internal/engine/water"
)

// Course is everything built once before the first frame.
type Course struct {
	Field       *terrain.Field
	TerrainMesh *terrain.Mesh
	Water       *water.Surface
	WaterMesh   *terrain.Mesh
	Grass       []mgl32.Vec3
	Trees       []mgl32.Vec3
}

// BuildCourse generates the terrain, the lake and the props.
func BuildCourse(cfg config.CourseConfig, log *zap.Logger) (*Course, error) {
	if log == nil {
		log = zap.NewNop()
	}

	fc, err := cfg.FieldConfig()
	if err != nil {
		return nil, fmt.Errorf("course config: %w", err)
	}
	field, err := terrain.NewField(fc)
	if err != nil {
		return nil, fmt.Errorf("failed to create terrain field: %w", err)
	}

	mesh, err := terrain.BuildTerrain(field, cfg.Grid.Grid())
	if err != nil {
		return nil, fmt.Errorf("failed to build terrain mesh: %w", err)
	}

	lake, err := water.New(cfg.WaterConfig())
	if err != nil {
		return nil, fmt.Errorf("failed to create water surface: %w", err)
	}
	lakeMesh, err := lake.BuildMesh()
	if err != nil {
		return nil, fmt.Errorf("failed to build water mesh: %w", err)
	}

	sampler := terrain.NewSeededSampler(field.Height, cfg.PropSeed)
	grass := sampler.Sample(cfg.Grass.Attempts, cfg.Grass.AreaX, cfg.Grass.AreaY)
	trees := terrain.Anchor(field.Height, terrain.DefaultTrees())

	log.Info("course built",
		zap.Stringer("noise_mode", field.Mode()),
		zap.Int("terrain_vertices", len(mesh.Vertices)),
		zap.Int("water_vertices", len(lakeMesh.Vertices)),
		zap.Int("grass", len(grass)),
		zap.Int("trees", len(trees)),
	)

	return &Course{
		Field:       field,
		TerrainMesh: mesh,
		Water:       lake,
		WaterMesh:   lakeMesh,
		Grass:       grass,
		Trees:       trees,
	}, nil
}
