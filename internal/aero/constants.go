package aero

import "math"

// Ball properties (USGA limits), SI units.
const (
	BallMass     = 0.04593 // kg
	BallDiameter = 0.04267 // m
	BallRadius   = BallDiameter / 2
	BallArea     = math.Pi * BallRadius * BallRadius // m^2

	Gravity = 9.81 // m/s^2

	// KinematicViscosity of air near 20C. Held constant; see Reynolds.
	KinematicViscosity = 1.5e-5 // m^2/s
)

// Drag crisis model. Reynolds thresholds are in units of 1e5.
const (
	CdLow  = 0.500
	CdHigh = 0.212
	CdSpin = 0.15
	ReLow  = 0.5
	ReHigh = 1.0

	// MaxSpinFactor bounds S in the drag spin term. Real shots stay below 1.5.
	MaxSpinFactor = 2.0
)

// Lift model.
const (
	ClLinear        = 1.990
	ClQuadratic     = -3.250
	ClSpinThreshold = 0.30
	ClMax           = 0.305
)

// Standard atmosphere.
const (
	StandardPressureInHg = 29.92
	PascalsPerInHg       = 3386.39
	DryAirGasConstant    = 287.058   // J/(kg K)
	VaporGasConstant     = 461.495   // J/(kg K)
	PressureLapse        = 0.0001185 // 1/m
)

// Unit conversions.
const (
	MphToMs   = 0.44704
	FeetToM   = 0.3048
	MToYards  = 1.0936133
	MToFeet   = 3.2808399
	RpmToRadS = 2 * math.Pi / 60
	DegToRad  = math.Pi / 180
	RadToDeg  = 180 / math.Pi
)
