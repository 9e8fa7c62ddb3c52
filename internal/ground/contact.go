package ground

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/dynamo"
	"github.com/san-kum/shotsim/internal/shot"
)

const (
	MinBounceVelocity = 0.5   // m/s
	StoppedThreshold  = 0.1   // m/s
	MinRollDecel      = 0.5   // m/s^2
	BounceHeight      = 0.001 // m
	TangentialFactor  = 0.3
	BounceSpinRetain  = 0.7
	RollSpinDecay     = 0.1 // fraction per second
)

// Bounce reflects the normal velocity scaled by COR, slows the tangential
// velocity by friction, and keeps 70% of the spin. The ball is lifted to
// BounceHeight so the next flight step does not register a landing at once.
func (s Surface) Bounce(st shot.SimulationState) shot.SimulationState {
	tangential := 1 - s.Friction*TangentialFactor

	next := st
	next.Vel = dynamo.Vec3{
		X: st.Vel.X * tangential,
		Y: -st.Vel.Y * s.COR,
		Z: st.Vel.Z * tangential,
	}
	next.Pos.Y = BounceHeight
	next.BackSpin = st.BackSpin * BounceSpinRetain
	next.SideSpin = st.SideSpin * BounceSpinRetain
	next.Phase = shot.PhaseBounce
	return next
}

// ShouldContinueBouncing reports whether the post-bounce vertical speed is
// enough for another airborne arc.
func ShouldContinueBouncing(st shot.SimulationState) bool {
	return math.Abs(st.Vel.Y) >= MinBounceVelocity
}

// RollDecel is the constant deceleration applied while rolling.
func (s Surface) RollDecel() float64 {
	return math.Max(s.RollingResistance*aero.Gravity, MinRollDecel)
}

// Roll starts the rolling phase from a state on the ground: vertical motion is
// discarded and the ball is pinned to y = 0.
func Roll(st shot.SimulationState) shot.SimulationState {
	next := st
	next.Pos.Y = 0
	next.Vel.Y = 0
	next.Phase = shot.PhaseRolling
	return next
}

// RollStep advances a rolling ball by dt. Speed drops linearly; the position
// moves along the unchanged heading by the mean of old and new speed. Once the
// speed falls below StoppedThreshold the ball is STOPPED with zero velocity
// and spin.
func (s Surface) RollStep(st shot.SimulationState, dt float64) shot.SimulationState {
	horiz := st.Vel.Horizontal()
	speed := horiz.Mag()
	newSpeed := speed - s.RollDecel()*dt

	next := st
	next.T = st.T + dt
	next.Pos.Y = 0

	if newSpeed <= 0 || newSpeed < StoppedThreshold {
		next.Vel = dynamo.Vec3{}
		next.BackSpin = 0
		next.SideSpin = 0
		next.Phase = shot.PhaseStopped
		return next
	}

	dir := horiz.Normalize()
	avg := (speed + newSpeed) / 2
	next.Pos = st.Pos.Add(dir.Scale(avg * dt))
	next.Pos.Y = 0
	next.Vel = dir.Scale(newSpeed)

	decay := math.Max(0, 1-RollSpinDecay*dt)
	next.BackSpin = st.BackSpin * decay
	next.SideSpin = st.SideSpin * decay
	next.Phase = shot.PhaseRolling
	return next
}
