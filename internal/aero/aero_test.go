package aero

import (
	"math"
	"testing"
)

func TestReynolds(t *testing.T) {
	if got := Reynolds(0); got != 0 {
		t.Errorf("Reynolds(0) = %v, want 0", got)
	}
	if got := Reynolds(-5); got != 0 {
		t.Errorf("Reynolds(-5) = %v, want 0", got)
	}

	prev := 0.0
	for v := 0.5; v < 90; v += 0.5 {
		re := Reynolds(v)
		if re <= prev {
			t.Fatalf("Reynolds not strictly increasing at v=%.1f: %v <= %v", v, re, prev)
		}
		prev = re
	}

	// 70 m/s is a typical driver ball speed, well past the drag crisis.
	if re := Reynolds(70); re < 1.9e5 || re > 2.1e5 {
		t.Errorf("Reynolds(70) = %.0f, want ~2e5", re)
	}
}

func TestDragCoefficient(t *testing.T) {
	tests := []struct {
		name string
		re   float64
		s    float64
		want float64
	}{
		{"subcritical", 0.3e5, 0, CdLow},
		{"at low threshold", 0.5e5, 0, CdLow},
		{"midpoint", 0.75e5, 0, (CdLow + CdHigh) / 2},
		{"at high threshold", 1.0e5, 0, CdHigh},
		{"supercritical", 2.0e5, 0, CdHigh},
		{"spin term", 2.0e5, 0.2, CdHigh + CdSpin*0.2},
		{"negative spin term", 2.0e5, -0.2, CdHigh - CdSpin*0.2},
		{"spin in transition", 0.75e5, 0.1, (CdLow+CdHigh)/2 + CdSpin*0.1},
		{"spin term clamped", 2.0e5, 5e4, CdHigh + CdSpin*MaxSpinFactor},
		{"at spin clamp", 2.0e5, MaxSpinFactor, CdHigh + CdSpin*MaxSpinFactor},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := DragCoefficient(tt.re, tt.s); math.Abs(got-tt.want) > 1e-12 {
				t.Errorf("DragCoefficient(%v, %v) = %v, want %v", tt.re, tt.s, got, tt.want)
			}
		})
	}
}

func TestDragCoefficientLinearInTransition(t *testing.T) {
	a := DragCoefficient(0.6e5, 0)
	b := DragCoefficient(0.7e5, 0)
	c := DragCoefficient(0.8e5, 0)
	if math.Abs((b-a)-(c-b)) > 1e-12 {
		t.Errorf("transition not linear: %v %v %v", a, b, c)
	}
}

func TestLiftCoefficient(t *testing.T) {
	for _, s := range []float64{-1, -0.1, 0} {
		if got := LiftCoefficient(s); got != 0 {
			t.Errorf("LiftCoefficient(%v) = %v, want 0", s, got)
		}
	}

	prev := 0.0
	for s := 0.01; s < ClSpinThreshold; s += 0.01 {
		cl := LiftCoefficient(s)
		if cl <= prev {
			t.Fatalf("LiftCoefficient not increasing at S=%.2f: %v <= %v", s, cl, prev)
		}
		if cl < 0 || cl > ClMax {
			t.Fatalf("LiftCoefficient(%v) = %v outside [0, %v]", s, cl, ClMax)
		}
		prev = cl
	}

	for _, s := range []float64{0.30, 0.31, 0.5, 2, 100} {
		if got := LiftCoefficient(s); got != ClMax {
			t.Errorf("LiftCoefficient(%v) = %v, want %v", s, got, ClMax)
		}
	}

	want := ClLinear*0.1 + ClQuadratic*0.01
	if got := LiftCoefficient(0.1); math.Abs(got-want) > 1e-12 {
		t.Errorf("LiftCoefficient(0.1) = %v, want %v", got, want)
	}
}

func TestSpinFactor(t *testing.T) {
	if got := SpinFactor(3000, 0); got != 0 {
		t.Errorf("SpinFactor at rest = %v, want 0", got)
	}
	if a, b := SpinFactor(3000, 50), SpinFactor(-3000, 50); a != b {
		t.Errorf("SpinFactor sign-dependent: %v vs %v", a, b)
	}
	want := 3000 * RpmToRadS * BallRadius / 50
	if got := SpinFactor(3000, 50); math.Abs(got-want) > 1e-12 {
		t.Errorf("SpinFactor(3000, 50) = %v, want %v", got, want)
	}
}

func TestAirDensityStandardConditions(t *testing.T) {
	rho := AirDensity(70, 0, 50)
	if math.Abs(rho-1.194)/1.194 > 0.01 {
		t.Errorf("AirDensity(70, 0, 50) = %.4f, want 1.194 +/- 1%%", rho)
	}
}

func TestAirDensityMonotonic(t *testing.T) {
	prev := math.Inf(1)
	for temp := 0.0; temp <= 110; temp += 10 {
		rho := AirDensity(temp, 0, 50)
		if rho >= prev {
			t.Errorf("density not decreasing with temperature at %vF: %v >= %v", temp, rho, prev)
		}
		prev = rho
	}

	prev = math.Inf(1)
	for elev := 0.0; elev <= 10000; elev += 1000 {
		rho := AirDensity(70, elev, 50)
		if rho >= prev {
			t.Errorf("density not decreasing with elevation at %vft: %v >= %v", elev, rho, prev)
		}
		prev = rho
	}
}

func TestAirDensityHumidAirIsLighter(t *testing.T) {
	if dry, humid := AirDensity(80, 0, 0), AirDensity(80, 0, 100); humid >= dry {
		t.Errorf("humid air %v should be lighter than dry air %v", humid, dry)
	}
}

func TestAirDensityTotal(t *testing.T) {
	inputs := [][3]float64{
		{-500, 0, 50},
		{70, -2000, 50},
		{70, 0, -20},
		{70, 0, 250},
		{212, 30000, 100},
	}
	for _, in := range inputs {
		rho := AirDensity(in[0], in[1], in[2])
		if math.IsNaN(rho) || math.IsInf(rho, 0) || rho < 0 {
			t.Errorf("AirDensity(%v) = %v", in, rho)
		}
	}
}

func TestAirDensityPressure(t *testing.T) {
	if lo, hi := AirDensityWithPressure(70, 0, 50, 29.0), AirDensityWithPressure(70, 0, 50, 30.5); lo >= hi {
		t.Errorf("density should rise with pressure: %v >= %v", lo, hi)
	}
}
