// Package trajectory holds time-stamped kinematic sample sequences and
// derives missing quantities by numerical differentiation on demand.
//
// A [Trajectory] carries six parallel series over one timestamp vector:
// position, velocity, acceleration, orientation (roll/pitch/yaw),
// angular velocity and angular acceleration. Reading an unset quantity
// walks the differentiation cascade, a fixed two-chain graph:
//
//	position    -> velocity         -> acceleration
//	orientation -> angular velocity -> angular acceleration
//
// Derived series are memoized on the object, so getters mutate internal
// state. Angular velocity additionally converts the raw Euler-angle rates
// into the body frame at each sample. A Trajectory is not safe for
// concurrent use.
package trajectory
