package shot

import (
	"math"

	"github.com/san-kum/shotsim/internal/aero"
	"github.com/san-kum/shotsim/internal/dynamo"
)

// LaunchData is what a launch monitor reports at impact.
type LaunchData struct {
	BallSpeed float64 `json:"ball_speed" yaml:"ball_speed_mph"` // mph
	VLA       float64 `json:"vla" yaml:"vla_deg"`               // vertical launch angle, deg
	HLA       float64 `json:"hla" yaml:"hla_deg"`               // horizontal launch angle, deg, + = right
	BackSpin  float64 `json:"backspin" yaml:"backspin_rpm"`     // rpm
	SideSpin  float64 `json:"sidespin" yaml:"sidespin_rpm"`     // rpm, + = fade/slice
}

// Conditions are the weather inputs for one run.
type Conditions struct {
	TempF        float64 `json:"temp_f" yaml:"temp_f"`
	ElevationFt  float64 `json:"elevation_ft" yaml:"elevation_ft"`
	HumidityPct  float64 `json:"humidity_pct" yaml:"humidity_pct"`
	WindSpeedMph float64 `json:"wind_speed_mph" yaml:"wind_speed_mph"`
	WindDirDeg   float64 `json:"wind_dir_deg" yaml:"wind_dir_deg"`
}

// StandardConditions is 70F at sea level, 50% humidity, no wind.
func StandardConditions() Conditions {
	return Conditions{TempF: 70, HumidityPct: 50}
}

func (c Conditions) AirDensity() float64 {
	return aero.AirDensity(c.TempF, c.ElevationFt, c.HumidityPct)
}

func (c Conditions) Wind() aero.Wind {
	return aero.NewWind(c.WindSpeedMph, c.WindDirDeg)
}

// SimulationState is one immutable step of a run. Step functions return a
// new value; nothing holds a pointer to a state.
type SimulationState struct {
	Pos      dynamo.Vec3 // m
	Vel      dynamo.Vec3 // m/s
	BackSpin float64     // rpm
	SideSpin float64     // rpm
	T        float64     // s
	Phase    Phase
}

func (s SimulationState) Speed() float64 { return s.Vel.Mag() }

func (s SimulationState) IsValid() bool {
	return s.Pos.IsValid() && s.Vel.IsValid() &&
		!math.IsNaN(s.BackSpin) && !math.IsNaN(s.SideSpin)
}

// Point converts the state to an output trajectory sample.
func (s SimulationState) Point() TrajectoryPoint {
	return TrajectoryPoint{
		T:     s.T,
		X:     s.Pos.X * aero.MToYards,
		Y:     s.Pos.Y * aero.MToFeet,
		Z:     s.Pos.Z * aero.MToYards,
		Phase: s.Phase,
	}
}

// TrajectoryPoint is a rendered sample: yards downrange (X) and lateral (Z),
// feet of height (Y).
type TrajectoryPoint struct {
	T     float64 `json:"t"`
	X     float64 `json:"x"`
	Y     float64 `json:"y"`
	Z     float64 `json:"z"`
	Phase Phase   `json:"phase"`
}

type ShotSummary struct {
	CarryDistance   float64 `json:"carry_distance"`   // yd
	TotalDistance   float64 `json:"total_distance"`   // yd
	RollDistance    float64 `json:"roll_distance"`    // yd
	OfflineDistance float64 `json:"offline_distance"` // yd, + = right
	MaxHeight       float64 `json:"max_height"`       // ft
	MaxHeightTime   float64 `json:"max_height_time"`  // s
	FlightTime      float64 `json:"flight_time"`      // s
	TotalTime       float64 `json:"total_time"`       // s
	BounceCount     int     `json:"bounce_count"`
	DescentAngle    float64 `json:"descent_angle_deg"` // deg below horizontal at first landing
	LandingSpeed    float64 `json:"landing_speed_mph"` // mph at first landing
}

// ShotResult is the complete output of one simulation. Consumers must treat
// the trajectory as read-only.
type ShotResult struct {
	Trajectory []TrajectoryPoint `json:"trajectory"`
	Summary    ShotSummary       `json:"summary"`
	LaunchData LaunchData        `json:"launch_data"`
	Conditions Conditions        `json:"conditions"`
	Surface    string            `json:"surface"`
}

// Final returns the last trajectory point, or a zero STOPPED point.
func (r ShotResult) Final() TrajectoryPoint {
	if len(r.Trajectory) == 0 {
		return TrajectoryPoint{Phase: PhaseStopped}
	}
	return r.Trajectory[len(r.Trajectory)-1]
}
