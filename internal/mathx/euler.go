package mathx

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// EulerRatesToBodyRates converts raw Euler-angle rates into angular
// velocity expressed in the body (IMU) frame at the given attitude. Only
// roll and pitch enter the mapping; yaw cancels out.
func EulerRatesToBodyRates(euler, rates Vec3) Vec3 {
	sr, cr := math.Sincos(euler[0])
	sp, cp := math.Sincos(euler[1])
	return Vec3{
		rates[0] - sp*rates[2],
		cr*rates[1] + sr*cp*rates[2],
		-sr*rates[1] + cr*cp*rates[2],
	}
}

// RotationFromEuler builds the 3x3 rotation matrix for the given
// roll/pitch/yaw angles.
func RotationFromEuler(e Vec3) *mat.Dense {
	sr, cr := math.Sincos(e[0])
	sp, cp := math.Sincos(e[1])
	sy, cy := math.Sincos(e[2])
	return mat.NewDense(3, 3, []float64{
		cy * cp, cy*sp*sr - sy*cr, cy*sp*cr + sy*sr,
		sy * cp, sy*sp*sr + cy*cr, sy*sp*cr - cy*sr,
		-sp, cp * sr, cp * cr,
	})
}

// EulerFromRotation recovers roll/pitch/yaw from a rotation matrix. At the
// pitch singularity roll is fixed to zero and the remaining rotation is
// folded into yaw.
func EulerFromRotation(r mat.Matrix) Vec3 {
	r20 := r.At(2, 0)
	if r20 > 1 {
		r20 = 1
	} else if r20 < -1 {
		r20 = -1
	}
	pitch := math.Asin(-r20)
	if math.Abs(r20) > 1-1e-9 {
		return Vec3{0, pitch, math.Atan2(-r.At(0, 1), r.At(1, 1))}
	}
	roll := math.Atan2(r.At(2, 1), r.At(2, 2))
	yaw := math.Atan2(r.At(1, 0), r.At(0, 0))
	return Vec3{roll, pitch, yaw}
}
