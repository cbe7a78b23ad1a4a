package mathx

// Vec3 is a single 3-vector sample.
type Vec3 [3]float64

// Series is an ordered sequence of 3-vector samples.
type Series []Vec3

func (s Series) Clone() Series {
	c := make(Series, len(s))
	copy(c, s)
	return c
}
