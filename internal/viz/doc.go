// Package viz provides terminal-based visualization for kinematic
// trajectories: asciigraph component plots and an interactive Bubble Tea
// viewer that pages through the six quantities.
//
// # Key Bindings
//
//	Left/H  - previous quantity
//	Right/L - next quantity
//	R       - reset the trajectory to its construction-time samples
//	Q       - quit
package viz
