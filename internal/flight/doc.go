// Package flight integrates one airborne arc of a golf ball, from launch or
// from a bounce, until it returns to ground level.
//
// The point-mass [Model] implements [dynamo.System] over the state
// [px, py, pz, vx, vy, vz]; spin enters as the control vector
// [backspin, sidespin] and is held constant within a step, then decayed
// exponentially between steps.
package flight
