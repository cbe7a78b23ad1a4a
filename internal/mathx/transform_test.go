package mathx

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"
)

func translation(x, y, z float64) *mat.Dense {
	T := Identity4()
	T.Set(0, 3, x)
	T.Set(1, 3, y)
	T.Set(2, 3, z)
	return T
}

func TestTransformIdentity(t *testing.T) {
	pos := Series{{1, 2, 3}, {4, 5, 6}}
	orient := Series{{0.1, 0.2, 0.3}, {-0.4, 0.5, -0.6}}

	for _, left := range []bool{false, true} {
		var p, r Series
		var err error
		if left {
			p, r, err = TransformLeft(pos, orient, Identity4())
		} else {
			p, r, err = TransformRight(pos, orient, Identity4())
		}
		require.NoError(t, err)
		for i := range pos {
			for k := 0; k < 3; k++ {
				assert.InDelta(t, pos[i][k], p[i][k], 1e-12)
				assert.InDelta(t, orient[i][k], r[i][k], 1e-9)
			}
		}
	}
}

func TestTransformRightVsLeft(t *testing.T) {
	// With the body yawed 90 degrees, a +x translation lands on +y when
	// composed on the right (body frame) but stays on +x on the left
	// (world frame).
	pos := Series{{1, 0, 0}}
	orient := Series{{0, 0, math.Pi / 2}}
	T := translation(1, 0, 0)

	p, _, err := TransformRight(pos, orient, T)
	require.NoError(t, err)
	assert.InDelta(t, 1, p[0][0], 1e-12)
	assert.InDelta(t, 1, p[0][1], 1e-12)

	p, _, err = TransformLeft(pos, orient, T)
	require.NoError(t, err)
	assert.InDelta(t, 2, p[0][0], 1e-12)
	assert.InDelta(t, 0, p[0][1], 1e-12)
}

func TestTransformErrors(t *testing.T) {
	_, _, err := TransformRight(Series{{0, 0, 0}}, Series{}, Identity4())
	assert.ErrorIs(t, err, ErrPoseMismatch)

	bad := mat.NewDense(3, 3, nil)
	_, _, err = TransformRight(Series{{0, 0, 0}}, Series{{0, 0, 0}}, bad)
	assert.ErrorIs(t, err, ErrBadTransform)
}

func TestPose(t *testing.T) {
	m := Pose(Vec3{1, 2, 3}, Vec3{})
	assert.Equal(t, 1.0, m.At(0, 3))
	assert.Equal(t, 2.0, m.At(1, 3))
	assert.Equal(t, 3.0, m.At(2, 3))
	assert.Equal(t, 1.0, m.At(3, 3))
	assert.Equal(t, 1.0, m.At(0, 0))
}
