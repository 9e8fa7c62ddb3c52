// Package dynamo provides the numeric primitives shared by the shot simulator.
//
// The package defines:
//
//   - [Vec3]: value-type 3D vector (x downrange, y up, z right of target)
//   - [State]: flat vector integrated by a [Stepper]
//   - [System]: interface for ODE systems (dX/dt = f(X, u, t))
//   - [Stepper]: fixed-step numerical integrator interface
//
// # Thread Safety
//
// Every type here is either an immutable value or documented as owned by a
// single goroutine. Steppers keep no state between calls, so one instance may
// be shared freely.
package dynamo
