// Package mathx provides the numeric primitives consumed by the trajectory
// container:
//
//   - [Differentiate]: same-length finite-difference derivative of a vector
//     series against a timestamp vector
//   - [EulerRatesToBodyRates]: Euler-angle-rate to body-frame angular
//     velocity conversion
//   - [TransformRight], [TransformLeft]: per-sample rigid transforms of a
//     pose series by a 4x4 homogeneous matrix
//
// All angles follow the active roll-pitch-yaw convention: roll about x is
// applied first, then pitch about y, then yaw about z, so the rotation
// matrix is Rz(yaw)*Ry(pitch)*Rx(roll).
package mathx
