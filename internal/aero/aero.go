package aero

import "math"

// Reynolds returns v*D/nu for a ball moving at speed m/s, or 0 when the
// ball is not moving. Kinematic viscosity is held constant, so air density
// does not enter; the calibrated drag thresholds depend on this.
func Reynolds(speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return speed * BallDiameter / KinematicViscosity
}

// SpinFactor returns the dimensionless spin ratio S = omega*r/v for a total
// spin rate in rpm. The sign of the spin is ignored.
func SpinFactor(spinRPM, speed float64) float64 {
	if speed <= 0 {
		return 0
	}
	return math.Abs(spinRPM) * RpmToRadS * BallRadius / speed
}

// DragCoefficient applies the piecewise-linear drag crisis in Re/1e5 plus an
// additive spin term. The spin factor is clamped to MaxSpinFactor.
func DragCoefficient(re, spinFactor float64) float64 {
	r := re / 1e5

	var cd float64
	switch {
	case r <= ReLow:
		cd = CdLow
	case r >= ReHigh:
		cd = CdHigh
	default:
		frac := (r - ReLow) / (ReHigh - ReLow)
		cd = CdLow + frac*(CdHigh-CdLow)
	}

	return cd + CdSpin*math.Min(spinFactor, MaxSpinFactor)
}

// LiftCoefficient is quadratic in S below the spin threshold and saturates
// at ClMax above it. The result always lies in [0, ClMax].
func LiftCoefficient(spinFactor float64) float64 {
	if spinFactor <= 0 {
		return 0
	}
	if spinFactor >= ClSpinThreshold {
		return ClMax
	}
	cl := ClLinear*spinFactor + ClQuadratic*spinFactor*spinFactor
	return math.Max(0, math.Min(cl, ClMax))
}

// AirDensity returns moist-air density in kg/m^3 at standard sea-level
// pressure corrected for elevation.
func AirDensity(tempF, elevationFt, humidityPct float64) float64 {
	return AirDensityWithPressure(tempF, elevationFt, humidityPct, StandardPressureInHg)
}

// AirDensityWithPressure is AirDensity with an explicit sea-level pressure.
// Pressure drops exponentially with elevation; water vapour partial pressure
// comes from the Magnus saturation formula.
func AirDensityWithPressure(tempF, elevationFt, humidityPct, pressureInHg float64) float64 {
	tempC := (tempF - 32) * 5 / 9
	tempK := tempC + 273.15
	if tempK < 1 {
		tempK = 1
	}

	elevationM := elevationFt * FeetToM
	pressure := pressureInHg * PascalsPerInHg * math.Exp(-PressureLapse*elevationM)

	humidity := math.Max(0, math.Min(humidityPct, 100)) / 100
	vapor := humidity * SaturationVaporPressure(tempC)
	if vapor > pressure {
		vapor = pressure
	}
	dry := pressure - vapor

	return dry/(DryAirGasConstant*tempK) + vapor/(VaporGasConstant*tempK)
}

// SaturationVaporPressure returns the Magnus-formula saturation pressure of
// water vapour in Pa. It is negligible far below freezing and the formula
// has a pole at -237.3C, so very cold inputs return 0.
func SaturationVaporPressure(tempC float64) float64 {
	if tempC <= -100 {
		return 0
	}
	return 610.78 * math.Pow(10, 7.5*tempC/(tempC+237.3))
}
