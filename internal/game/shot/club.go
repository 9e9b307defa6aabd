// Package shot implements club selection and shot aiming.
package shot

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Club identifies a golf club. The zero value selects nothing.
type Club uint8

const (
	Iron7 Club = iota + 1
	Wedge
	Putter
)

// ClubSpec is the aim envelope of a club. Theta is measured from the vertical axis.
type ClubSpec struct {
	Name     string
	ThetaMin float32
	ThetaMax float32
	SpeedMin float32
	SpeedMax float32
}

// Clubs is the single source of club ranges, read by the clamp and by the HUD.
var Clubs = map[Club]ClubSpec{
	Iron7: {
		Name:     "Iron 7",
		ThetaMin: mgl32.DegToRad(30),
		ThetaMax: mgl32.DegToRad(60),
		SpeedMin: 10,
		SpeedMax: 30,
	},
	Wedge: {
		Name:     "Wedge",
		ThetaMin: mgl32.DegToRad(10),
		ThetaMax: mgl32.DegToRad(30),
		SpeedMin: 5,
		SpeedMax: 20,
	},
	Putter: {
		Name:     "Putter",
		ThetaMin: math32.Pi / 2,
		ThetaMax: math32.Pi / 2,
		SpeedMin: 1,
		SpeedMax: 10,
	},
}

// Valid reports whether c names a known club.
func (c Club) Valid() bool {
	_, ok := Clubs[c]
	return ok
}

// String returns the display name of the club.
func (c Club) String() string {
	if spec, ok := Clubs[c]; ok {
		return spec.Name
	}
	return "none"
}

// ParseClub maps a config name to a club.
func ParseClub(s string) (Club, bool) {
	switch s {
	case "iron7", "Iron 7":
		return Iron7, true
	case "wedge", "Wedge":
		return Wedge, true
	case "putter", "Putter":
		return Putter, true
	}
	return 0, false
}
