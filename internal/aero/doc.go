// Package aero holds the golf-ball aerodynamic model: Reynolds number,
// drag-crisis drag coefficient, quadratic lift coefficient, moist-air
// density and a logarithmic near-ground wind profile.
//
// Every function is pure and total. Out-of-range inputs are clamped,
// never rejected.
package aero
