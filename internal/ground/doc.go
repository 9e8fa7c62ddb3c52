// Package ground holds the bounce and roll transitions applied once the ball
// is back on the turf. Every function takes a shot.SimulationState by value
// and returns a new one; the only configuration is the Surface.
package ground
