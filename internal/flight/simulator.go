package flight

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/integrators"
	"github.com/san-kum/shotsim/internal/shot"
)

const (
	DefaultDt            = 0.01
	DefaultMaxTime       = 30.0
	DefaultMaxSteps      = 5000
	DefaultSpinDecayRate = 0.05 // 1/s
	DefaultSampleEvery   = 2
)

type Params struct {
	Dt            float64
	MaxTime       float64 // absolute run time, not per arc
	MaxSteps      int     // per arc
	SpinDecayRate float64
	SampleEvery   int // record every Nth step
}

func DefaultParams() Params {
	return Params{
		Dt:            DefaultDt,
		MaxTime:       DefaultMaxTime,
		MaxSteps:      DefaultMaxSteps,
		SpinDecayRate: DefaultSpinDecayRate,
		SampleEvery:   DefaultSampleEvery,
	}
}

// Segment is one airborne arc. Points exclude the starting state and always
// end with the landing sample. Landed is false when the arc was cut short by
// the time or step bound, or by a non-finite state.
type Segment struct {
	Points  []shot.TrajectoryPoint
	Landing shot.SimulationState
	Landed  bool
}

// Simulator is immutable after construction and safe for concurrent use.
type Simulator struct {
	model     Model
	stepper   dynamo.Stepper
	params    Params
	spinDecay float64
}

func NewSimulator(model Model, stepper dynamo.Stepper, p Params) *Simulator {
	if stepper == nil {
		stepper = integrators.NewRK4()
	}
	if p.SampleEvery < 1 {
		p.SampleEvery = 1
	}
	return &Simulator{
		model:     model,
		stepper:   stepper,
		params:    p,
		spinDecay: math.Exp(-p.SpinDecayRate * p.Dt),
	}
}

func (s *Simulator) Model() Model   { return s.model }
func (s *Simulator) Params() Params { return s.params }

// InitialVelocity decomposes ball speed (mph) and launch angles (deg) into
// forward, vertical and lateral components in m/s.
func InitialVelocity(ballSpeedMph, vlaDeg, hlaDeg float64) dynamo.Vec3 {
	speed := ballSpeedMph * aero.MphToMs
	sinV, cosV := math.Sincos(vlaDeg * aero.DegToRad)
	sinH, cosH := math.Sincos(hlaDeg * aero.DegToRad)
	return dynamo.Vec3{
		X: speed * cosV * cosH,
		Y: speed * sinV,
		Z: speed * cosV * sinH,
	}
}

// LaunchState is the state at impact, at the origin.
func LaunchState(ld shot.LaunchData) shot.SimulationState {
	return shot.SimulationState{
		Vel:      InitialVelocity(ld.BallSpeed, ld.VLA, ld.HLA),
		BackSpin: ld.BackSpin,
		SideSpin: ld.SideSpin,
		Phase:    shot.PhaseFlight,
	}
}

// Step advances the state by dt with one integrator step and decays spin.
func (s *Simulator) Step(st shot.SimulationState, dt float64) shot.SimulationState {
	x := dynamo.State{st.Pos.X, st.Pos.Y, st.Pos.Z, st.Vel.X, st.Vel.Y, st.Vel.Z}
	u := dynamo.Control{st.BackSpin, st.SideSpin}

	next := s.stepper.Step(s.model, x, u, st.T, dt)

	decay := s.spinDecay
	if dt != s.params.Dt {
		decay = math.Exp(-s.params.SpinDecayRate * dt)
	}

	return shot.SimulationState{
		Pos:      dynamo.V3(next[0], next[1], next[2]),
		Vel:      dynamo.V3(next[3], next[4], next[5]),
		BackSpin: st.BackSpin * decay,
		SideSpin: st.SideSpin * decay,
		T:        st.T + dt,
		Phase:    shot.PhaseFlight,
	}
}

// Fly integrates from start until the ball is back at ground level, the run
// clock reaches MaxTime, or MaxSteps is exceeded. No root finding is done at
// the crossing; the landing state is the first with y <= 0, pinned to y = 0.
// A step that goes non-finite or diverges ends the arc unlanded at the last
// good state.
func (s *Simulator) Fly(start shot.SimulationState) Segment {
	p := s.params
	seg := Segment{Points: make([]shot.TrajectoryPoint, 0, 256)}

	st := start
	st.Phase = shot.PhaseFlight
	for i := 1; i <= p.MaxSteps; i++ {
		next := s.Step(st, p.Dt)
		if !next.IsValid() || s.diverged(st, next, p.Dt) {
			break
		}
		st = next

		if st.Pos.Y <= 0 {
			st.Pos.Y = 0
			seg.Landed = true
			break
		}
		if st.T >= p.MaxTime {
			break
		}
		if i%p.SampleEvery == 0 {
			seg.Points = append(seg.Points, st.Point())
		}
	}

	seg.Landing = st
	seg.Points = append(seg.Points, st.Point())
	return seg
}

// diverged reports a step that gained more speed than gravity and wind can
// supply. Drag only slows the ball relative to the air and lift does no work
// in that frame, so a faster ball means the integrator has blown up.
func (s *Simulator) diverged(prev, next shot.SimulationState, dt float64) bool {
	limit := 1.1*(prev.Speed()+2*s.model.Wind.Speed) + 2*aero.Gravity*dt
	return next.Speed() > limit
}

// Simulate flies a fresh launch to its first landing. The returned points
// start with the launch sample. Zero or negative ball speed yields a single
// STOPPED point at the origin without integrating.
func (s *Simulator) Simulate(ld shot.LaunchData) Segment {
	if ld.BallSpeed <= 0 {
		stopped := shot.SimulationState{Phase: shot.PhaseStopped}
		return Segment{
			Points:  []shot.TrajectoryPoint{stopped.Point()},
			Landing: stopped,
			Landed:  true,
		}
	}

	start := LaunchState(ld)
	seg := s.Fly(start)
	seg.Points = append([]shot.TrajectoryPoint{start.Point()}, seg.Points...)
	return seg
}
