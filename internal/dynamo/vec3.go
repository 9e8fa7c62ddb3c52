package dynamo

import "math"

// Vec3 is a value-type vector. Coordinates: X downrange, Y height, Z lateral
// (positive right of the target line).
type Vec3 struct {
	X, Y, Z float64
}

func V3(x, y, z float64) Vec3 { return Vec3{X: x, Y: y, Z: z} }

func (a Vec3) Add(b Vec3) Vec3 { return Vec3{a.X + b.X, a.Y + b.Y, a.Z + b.Z} }

func (a Vec3) Sub(b Vec3) Vec3 { return Vec3{a.X - b.X, a.Y - b.Y, a.Z - b.Z} }

func (a Vec3) Scale(s float64) Vec3 { return Vec3{a.X * s, a.Y * s, a.Z * s} }

func (a Vec3) Dot(b Vec3) float64 { return a.X*b.X + a.Y*b.Y + a.Z*b.Z }

func (a Vec3) Cross(b Vec3) Vec3 {
	return Vec3{
		X: a.Y*b.Z - a.Z*b.Y,
		Y: a.Z*b.X - a.X*b.Z,
		Z: a.X*b.Y - a.Y*b.X,
	}
}

func (a Vec3) Mag() float64 { return math.Sqrt(a.Dot(a)) }

// Horizontal drops the vertical component.
func (a Vec3) Horizontal() Vec3 { return Vec3{X: a.X, Z: a.Z} }

// Normalize returns the unit vector along a. The zero vector (and anything
// too small to divide safely) normalizes to zero rather than NaN.
func (a Vec3) Normalize() Vec3 {
	m := a.Mag()
	if m < 1e-12 {
		return Vec3{}
	}
	return a.Scale(1 / m)
}

func (a Vec3) IsValid() bool {
	return State{a.X, a.Y, a.Z}.IsValid()
}
