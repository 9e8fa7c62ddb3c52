// Package viz renders shot results in the terminal.
//
//   - [RenderSummary]: lipgloss panel with carry, total, apex and timings
//   - [SideProfile], [TopProfile]: asciigraph plots of a trajectory
//   - [Canvas]: Braille-based pixel canvas used for the tuner's flight views
//   - [RunTuner]: Bubble Tea what-if tuner that re-simulates on every change
//
// # Tuner Key Bindings
//
//	j/k   - Select parameter
//	h/l   - Decrease/increase (shift for 10x)
//	s     - Cycle surface
//	v     - Cycle view (side, top, 3d)
//	t     - Cycle color theme
//	a/d   - Orbit the 3d camera
//	w/x   - Pitch the 3d camera
//	+/-   - Zoom the 3d camera
//	r     - Reset to the starting shot
//	q     - Quit
package viz
