// Package shot defines the data model exchanged with the simulator: launch
// monitor input, weather conditions, the per-step simulation state and the
// trajectory/summary output.
//
// Internal state is SI (m, m/s). Output trajectories use yards for the
// horizontal axes and feet for height.
package shot
