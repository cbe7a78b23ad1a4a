package mathx

import (
	"errors"

	"gonum.org/v1/gonum/mat"
)

var (
	// ErrBadTransform indicates a transform that is not a 4x4 matrix.
	ErrBadTransform = errors.New("mathx: transform must be a 4x4 homogeneous matrix")

	// ErrPoseMismatch indicates position and orientation series of different lengths.
	ErrPoseMismatch = errors.New("mathx: position and orientation series differ in length")
)

// Identity4 returns the 4x4 identity transform.
func Identity4() *mat.Dense {
	m := mat.NewDense(4, 4, nil)
	for i := 0; i < 4; i++ {
		m.Set(i, i, 1)
	}
	return m
}

// Pose assembles the homogeneous pose matrix for a position and a
// roll/pitch/yaw orientation.
func Pose(p, e Vec3) *mat.Dense {
	m := Identity4()
	r := RotationFromEuler(e)
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			m.Set(i, j, r.At(i, j))
		}
		m.Set(i, 3, p[i])
	}
	return m
}

// TransformRight post-multiplies every sample pose by T and returns the
// transformed position and orientation series.
func TransformRight(pos, orient Series, T *mat.Dense) (Series, Series, error) {
	return transformSeries(pos, orient, T, false)
}

// TransformLeft pre-multiplies every sample pose by T.
func TransformLeft(pos, orient Series, T *mat.Dense) (Series, Series, error) {
	return transformSeries(pos, orient, T, true)
}

func transformSeries(pos, orient Series, T *mat.Dense, left bool) (Series, Series, error) {
	if len(pos) != len(orient) {
		return nil, nil, ErrPoseMismatch
	}
	if r, c := T.Dims(); r != 4 || c != 4 {
		return nil, nil, ErrBadTransform
	}

	outP := make(Series, len(pos))
	outR := make(Series, len(orient))
	var m mat.Dense
	for i := range pos {
		pose := Pose(pos[i], orient[i])
		if left {
			m.Mul(T, pose)
		} else {
			m.Mul(pose, T)
		}
		outP[i] = Vec3{m.At(0, 3), m.At(1, 3), m.At(2, 3)}
		outR[i] = EulerFromRotation(m.Slice(0, 3, 0, 3))
	}
	return outP, outR, nil
}
