package aero

import (
	"math"

	"github.com/san-kum/shotsim/internal/dynamo"
)

const (
	// WindReferenceHeight is where the nominal wind speed applies (10 ft).
	WindReferenceHeight = 10 * FeetToM
	// SurfaceRoughness is the aerodynamic roughness length of mown turf.
	SurfaceRoughness = 0.01
)

// Wind is a horizontal wind with a logarithmic height profile.
// Direction is where the wind comes from, clockwise from the target line:
// 0 is a headwind, 90 blows from the right, 180 is a tailwind.
type Wind struct {
	Speed     float64 // m/s at the reference height
	Direction float64 // degrees
}

func Calm() Wind {
	return Wind{}
}

// NewWind converts a reported wind. Zero or negative speed is calm.
func NewWind(speedMph, directionDeg float64) Wind {
	if speedMph <= 0 {
		return Calm()
	}
	return Wind{Speed: speedMph * MphToMs, Direction: directionDeg}
}

// ProfileFactor scales the nominal speed at height h (m): 0 at the ground,
// 1 at and above the reference height.
func ProfileFactor(h float64) float64 {
	if h <= SurfaceRoughness {
		return 0
	}
	if h >= WindReferenceHeight {
		return 1
	}
	return math.Log(h/SurfaceRoughness) / math.Log(WindReferenceHeight/SurfaceRoughness)
}

// At returns the air velocity vector at height h.
func (w Wind) At(h float64) dynamo.Vec3 {
	if w.Speed == 0 {
		return dynamo.Vec3{}
	}
	s := w.Speed * ProfileFactor(h)
	sin, cos := math.Sincos(w.Direction * DegToRad)
	return dynamo.Vec3{X: -s * cos, Z: -s * sin}
}
