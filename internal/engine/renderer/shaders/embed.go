// Package shaders provides embedded GLSL shader sources.
package shaders

import _ "embed"

// TerrainVertexShader is the vertex shader for the course surface.
//
//go:embed terrain.vert
var TerrainVertexShader string

// TerrainFragmentShader shades the course by height and green distance.
//
//go:embed terrain.frag
var TerrainFragmentShader string

// WaterVertexShader is the vertex shader for the lake.
//
//go:embed water.vert
var WaterVertexShader string

// WaterFragmentShader is the fragment shader for the lake.
//
//go:embed water.frag
var WaterFragmentShader string

// LitVertexShader transforms solid-colour objects.
//
//go:embed lit.vert
var LitVertexShader string

// LitFragmentShader applies one directional light to a flat colour.
//
//go:embed lit.frag
var LitFragmentShader string
