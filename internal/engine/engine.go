package engine

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/flight"
	"github.com/san-kum/shotsim/internal/ground"
	"github.com/san-kum/shotsim/internal/integrators"
	"github.com/san-kum/shotsim/internal/shot"
)

// Engine simulates shots for one set of conditions on one surface. It is
// immutable; WithConditions and WithSurface return new engines, so a running
// Simulate never sees a configuration change.
type Engine struct {
	conditions shot.Conditions
	surface    ground.Surface
	cfg        Config
	flight     *flight.Simulator
}

func New(conditions shot.Conditions, surfaceName string, cfg Config) (*Engine, error) {
	surface, err := ground.Lookup(surfaceName)
	if err != nil {
		return nil, err
	}
	return build(conditions, surface, cfg)
}

func build(conditions shot.Conditions, surface ground.Surface, cfg Config) (*Engine, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	stepper, err := integrators.Get(cfg.Integrator)
	if err != nil {
		return nil, err
	}

	params := flight.Params{
		Dt:            cfg.Dt,
		MaxTime:       cfg.MaxTime,
		MaxSteps:      cfg.MaxIterations,
		SpinDecayRate: cfg.SpinDecayRate,
		SampleEvery:   cfg.FlightSampleEvery,
	}

	return &Engine{
		conditions: conditions,
		surface:    surface,
		cfg:        cfg,
		flight:     flight.NewSimulator(flight.NewModel(conditions), stepper, params),
	}, nil
}

func (e *Engine) Conditions() shot.Conditions { return e.conditions }
func (e *Engine) Surface() ground.Surface     { return e.surface }
func (e *Engine) Config() Config              { return e.cfg }

// WithConditions returns a copy of e using c.
func (e *Engine) WithConditions(c shot.Conditions) *Engine {
	next, _ := build(c, e.surface, e.cfg)
	return next
}

// WithSurface returns a copy of e on the named surface.
func (e *Engine) WithSurface(name string) (*Engine, error) {
	surface, err := ground.Lookup(name)
	if err != nil {
		return nil, err
	}
	return build(e.conditions, surface, e.cfg)
}

// Simulate runs one shot from impact to rest. It never fails: degenerate
// launches give a zero result and every loop is bounded by the config caps.
func (e *Engine) Simulate(ld shot.LaunchData) shot.ShotResult {
	result := shot.ShotResult{
		LaunchData: ld,
		Conditions: e.conditions,
		Surface:    e.surface.Name,
	}

	if ld.BallSpeed <= 0 {
		result.Trajectory = []shot.TrajectoryPoint{{Phase: shot.PhaseStopped}}
		return result
	}

	traj := newTrajectory(e.cfg.MaxTrajectoryPoints)

	arc := e.flight.Simulate(ld)
	traj.add(arc.Points...)

	carry := arc.Landing
	st := arc.Landing
	if !arc.Landed {
		st = stopAt(st)
	}

	bounces := 0
	rollEvery := e.cfg.rollSampleEvery()
	rollSteps := 0

	for iter := 0; iter < e.cfg.MaxIterations && st.Phase != shot.PhaseStopped; iter++ {
		switch st.Phase {
		case shot.PhaseFlight:
			if bounces >= e.cfg.MaxBounces {
				st = ground.Roll(st)
				continue
			}

			st = e.surface.Bounce(st)
			bounces++
			traj.add(st.Point())

			if !ground.ShouldContinueBouncing(st) {
				st = ground.Roll(st)
				continue
			}

			arc := e.flight.Fly(st)
			traj.add(arc.Points...)
			st = arc.Landing
			if !arc.Landed {
				st = stopAt(st)
			}

		case shot.PhaseRolling:
			st = e.surface.RollStep(st, e.cfg.Dt)
			if st.Phase == shot.PhaseStopped {
				break
			}
			if st.T >= e.cfg.MaxTime {
				st = stopAt(st)
				break
			}
			rollSteps++
			if rollSteps%rollEvery == 0 {
				traj.add(st.Point())
			}

		default:
			st = stopAt(st)
		}
	}

	if st.Phase != shot.PhaseStopped {
		st = stopAt(st)
	}
	traj.finish(st.Point())

	result.Trajectory = traj.points
	result.Summary = summarize(traj.points, carry, arc.Landed, bounces)
	return result
}

// stopAt brings the ball to rest at its current ground position.
func stopAt(st shot.SimulationState) shot.SimulationState {
	st.Pos.Y = 0
	st.Vel.X, st.Vel.Y, st.Vel.Z = 0, 0, 0
	st.BackSpin, st.SideSpin = 0, 0
	st.Phase = shot.PhaseStopped
	return st
}

// summarize reduces a run to its summary. Landing speed and descent angle
// describe the first touchdown and stay zero when the first arc never landed.
// Non-finite values are reported as zero.
func summarize(points []shot.TrajectoryPoint, carry shot.SimulationState, landed bool, bounces int) shot.ShotSummary {
	first := carry.Point()

	s := shot.ShotSummary{
		CarryDistance:   math.Max(0, first.X),
		OfflineDistance: first.Z,
		FlightTime:      carry.T,
		BounceCount:     bounces,
	}

	for _, p := range points {
		if p.X > s.TotalDistance {
			s.TotalDistance = p.X
		}
		if p.Y > s.MaxHeight {
			s.MaxHeight = p.Y
			s.MaxHeightTime = p.T
		}
	}
	if s.TotalDistance < s.CarryDistance {
		s.TotalDistance = s.CarryDistance
	}
	s.RollDistance = s.TotalDistance - s.CarryDistance
	if n := len(points); n > 0 {
		s.TotalTime = points[n-1].T
	}

	if speed := carry.Vel.Mag(); landed && speed > 0 {
		s.LandingSpeed = finite(speed / aero.MphToMs)
		s.DescentAngle = finite(math.Atan2(-carry.Vel.Y, carry.Vel.Horizontal().Mag()) * aero.RadToDeg)
	}

	for _, f := range []*float64{
		&s.CarryDistance, &s.TotalDistance, &s.RollDistance, &s.OfflineDistance,
		&s.MaxHeight, &s.MaxHeightTime, &s.FlightTime, &s.TotalTime,
	} {
		*f = finite(*f)
	}
	return s
}

func finite(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}
