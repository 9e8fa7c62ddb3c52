package integrators

import "github.com/san-kum/shotsim/internal/dynamo"

// Dormand-Prince tableau, fifth-order weights.
var (
	dpA = [6][5]float64{
		{},
		{1.0 / 5.0},
		{3.0 / 40.0, 9.0 / 40.0},
		{44.0 / 45.0, -56.0 / 15.0, 32.0 / 9.0},
		{19372.0 / 6561.0, -25360.0 / 2187.0, 64448.0 / 6561.0, -212.0 / 729.0},
		{9017.0 / 3168.0, -355.0 / 33.0, 46732.0 / 5247.0, 49.0 / 176.0, -5103.0 / 18656.0},
	}
	dpC = [6]float64{0, 1.0 / 5.0, 3.0 / 10.0, 4.0 / 5.0, 8.0 / 9.0, 1.0}
	dpB = [6]float64{35.0 / 384.0, 0, 500.0 / 1113.0, 125.0 / 192.0, -2187.0 / 6784.0, 11.0 / 84.0}
)

// RK45 is the Dormand-Prince pair run at a fixed step. It returns the
// fifth-order solution and does no step-size control.
type RK45 struct{}

func NewRK45() RK45 {
	return RK45{}
}

func (RK45) Step(dyn dynamo.System, x dynamo.State, u dynamo.Control, t, dt float64) dynamo.State {
	n := len(x)
	var k [6]dynamo.State
	stage := make(dynamo.State, n)

	k[0] = dyn.Derive(x, u, t)
	for s := 1; s < 6; s++ {
		for i := 0; i < n; i++ {
			sum := 0.0
			for j := 0; j < s; j++ {
				sum += dpA[s][j] * k[j][i]
			}
			stage[i] = x[i] + dt*sum
		}
		k[s] = dyn.Derive(stage, u, t+dpC[s]*dt)
	}

	result := make(dynamo.State, n)
	for i := 0; i < n; i++ {
		sum := 0.0
		for s := 0; s < 6; s++ {
			sum += dpB[s] * k[s][i]
		}
		result[i] = x[i] + dt*sum
	}
	return result
}
