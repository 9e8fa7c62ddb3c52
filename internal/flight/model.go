package flight

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/shot"
)

// Model is the aerodynamic force model for one set of conditions.
type Model struct {
	AirDensity float64
	Wind       aero.Wind
}

func NewModel(c shot.Conditions) Model {
	return Model{
		AirDensity: c.AirDensity(),
		Wind:       c.Wind(),
	}
}

func (m Model) StateDim() int { return 6 }

func (m Model) Derive(x dynamo.State, u dynamo.Control, t float64) dynamo.State {
	pos := dynamo.V3(x[0], x[1], x[2])
	vel := dynamo.V3(x[3], x[4], x[5])

	var back, side float64
	if len(u) >= 2 {
		back, side = u[0], u[1]
	}

	a := m.Acceleration(pos, vel, back, side)
	return dynamo.State{vel.X, vel.Y, vel.Z, a.X, a.Y, a.Z}
}

// Acceleration is (gravity + drag + Magnus lift) / mass.
func (m Model) Acceleration(pos, vel dynamo.Vec3, backSpin, sideSpin float64) dynamo.Vec3 {
	rel := vel.Sub(m.Wind.At(pos.Y))
	speed := rel.Mag()

	accel := dynamo.V3(0, -aero.Gravity, 0)
	if speed < 1e-9 {
		return accel
	}

	spin := math.Hypot(backSpin, sideSpin)
	s := aero.SpinFactor(spin, speed)
	q := 0.5 * m.AirDensity * aero.BallArea * speed * speed

	drag := rel.Scale(-q * aero.DragCoefficient(aero.Reynolds(speed), s) / speed)
	lift := MagnusDirection(rel, backSpin, sideSpin).Scale(q * aero.LiftCoefficient(s))

	return accel.Add(drag.Add(lift).Scale(1 / aero.BallMass))
}

// MagnusDirection is the unit vector of spin axis x velocity. Backspin spins
// about +Z and lifts; positive sidespin spins about -Y and pushes toward +Z.
func MagnusDirection(vel dynamo.Vec3, backSpin, sideSpin float64) dynamo.Vec3 {
	axis := dynamo.V3(0, -sideSpin, backSpin)
	return axis.Cross(vel).Normalize()
}
