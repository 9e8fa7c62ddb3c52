package integrators

import "github.com/san-kum/shotsim/internal/dynamo"

// Verlet and Leapfrog assume a second-order system laid out as positions
// followed by velocities, so the first half of the derivative is ignored and
// the second half is the acceleration.

// Verlet is velocity Verlet. The second acceleration is taken at the new
// position with the old velocity, which is only approximate when forces
// depend on velocity as drag does.
type Verlet struct{}

func NewVerlet() Verlet {
	return Verlet{}
}

func (Verlet) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	result := make(dynamo.State, n)
	dx := dyn.Derive(x, u, t)
	dt2 := dt * dt

	for i := 0; i < half; i++ {
		result[i] = x[i] + x[half+i]*dt + 0.5*dx[half+i]*dt2
	}

	scratch := x.Clone()
	copy(scratch[:half], result[:half])
	dxNew := dyn.Derive(scratch, u, t+dt)

	halfDt := 0.5 * dt
	for i := 0; i < half; i++ {
		result[half+i] = x[half+i] + (dx[half+i]+dxNew[half+i])*halfDt
	}
	return result
}

// Leapfrog is kick-drift-kick: half-step velocity, full-step position, then
// the closing half kick evaluated at the new position and half-step velocity.
type Leapfrog struct{}

func NewLeapfrog() Leapfrog {
	return Leapfrog{}
}

func (Leapfrog) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	half := n / 2

	scratch := make(dynamo.State, n)
	result := make(dynamo.State, n)
	dx := dyn.Derive(x, u, t)
	halfDt := dt * 0.5

	for i := 0; i < half; i++ {
		scratch[half+i] = x[half+i] + dx[half+i]*halfDt
	}
	for i := 0; i < half; i++ {
		result[i] = x[i] + scratch[half+i]*dt
		scratch[i] = result[i]
	}

	dxNew := dyn.Derive(scratch, u, t+dt)
	for i := 0; i < half; i++ {
		result[half+i] = scratch[half+i] + dxNew[half+i]*halfDt
	}
	return result
}
