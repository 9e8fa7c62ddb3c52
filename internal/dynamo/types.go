package dynamo

import (
	"math"
)

type State []float64

func (s State) Clone() State {
	c := make(State, len(s))
	copy(c, s)
	return c
}

func (s State) IsValid() bool {
	for _, v := range s {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// Control carries per-step inputs held constant across one integrator step.
// The flight model uses it for the spin components.
type Control []float64

type System interface {
	Derive(x State, u Control, t float64) State
	StateDim() int
}

type Stepper interface {
	Step(dyn System, x State, u Control, t, dt float64) State
}
