package debug

import (
	"image"
	"image/color"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"

	"github.com/Faultbox/minigolf/internal/engine/terrain"
)

// MapStyle sets the colour bands of a course map.
type MapStyle struct {
	WaterLevel float32
	Green      terrain.GreenMask
	Hole       mgl32.Vec2
	HoleRadius float32
}

var (
	deepWater    = mgl32.Vec3{0, 50, 115}
	shallowWater = mgl32.Vec3{0, 75, 130}
	sand         = mgl32.Vec3{194, 178, 128}
	fairway      = mgl32.Vec3{90, 160, 45}
	rough        = mgl32.Vec3{50, 110, 35}
	puttingGreen = mgl32.Vec3{110, 200, 80}
)

// RenderMap rasterises a height field over grid g into a width×height
// colour map. Image rows run from +y at the top to -y at the bottom.
func RenderMap(h terrain.HeightFunc, g terrain.Grid, width, height int, style MapStyle) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		v := 1 - (float32(py)+0.5)/float32(height)
		y := (v - 0.5) * g.LengthY
		for px := 0; px < width; px++ {
			u := (float32(px) + 0.5) / float32(width)
			x := (u - 0.5) * g.LengthX
			img.SetRGBA(px, py, style.colorAt(x, y, h(x, y)))
		}
	}
	return img
}

func (s MapStyle) colorAt(x, y, z float32) color.RGBA {
	p := mgl32.Vec2{x, y}
	if s.HoleRadius > 0 && p.Sub(s.Hole).Len() < s.HoleRadius {
		return color.RGBA{A: 255}
	}

	var c mgl32.Vec3
	switch {
	case z < s.WaterLevel-0.5:
		c = deepWater
	case z < s.WaterLevel:
		c = lerp(deepWater, shallowWater, z-(s.WaterLevel-0.5))
	case z < s.WaterLevel+0.3:
		c = sand
	case p.Sub(s.Green.Center).Len() < s.Green.InnerRadius:
		c = puttingGreen
	default:
		c = lerp(fairway, rough, (z-0.8)/0.8)
	}
	return color.RGBA{R: uint8(c[0]), G: uint8(c[1]), B: uint8(c[2]), A: 255}
}

func lerp(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	t = math32.Max(0, math32.Min(1, t))
	return a.Mul(1 - t).Add(b.Mul(t))
}

// Grayscale renders heights linearly between min and max as 16-bit grey.
func Grayscale(h terrain.HeightFunc, g terrain.Grid, width, height int, min, max float32) *image.Gray16 {
	img := image.NewGray16(image.Rect(0, 0, width, height))
	span := max - min
	if !(span > 0) {
		span = 1
	}
	for py := 0; py < height; py++ {
		y := (0.5 - (float32(py)+0.5)/float32(height)) * g.LengthY
		for px := 0; px < width; px++ {
			x := ((float32(px)+0.5)/float32(width) - 0.5) * g.LengthX
			t := math32.Max(0, math32.Min(1, (h(x, y)-min)/span))
			img.SetGray16(px, py, color.Gray16{Y: uint16(t * 65535)})
		}
	}
	return img
}
