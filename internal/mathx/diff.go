package mathx

import "errors"

var (
	// ErrLengthMismatch indicates a series whose length differs from its timestamps.
	ErrLengthMismatch = errors.New("mathx: series and timestamps differ in length")

	// ErrTooFewSamples indicates a series too short to differentiate.
	ErrTooFewSamples = errors.New("mathx: need at least two samples to differentiate")
)

// Differentiate computes the numerical derivative of series with respect to
// timestamps. The result has the same length and alignment as the input:
// a forward difference at the first sample, central differences over the
// interior and a backward difference at the last sample. Timestamps are
// assumed strictly increasing; this is not enforced.
func Differentiate(series Series, timestamps []float64) (Series, error) {
	n := len(series)
	if n != len(timestamps) {
		return nil, ErrLengthMismatch
	}
	if n < 2 {
		return nil, ErrTooFewSamples
	}

	out := make(Series, n)
	dt0 := timestamps[1] - timestamps[0]
	dtN := timestamps[n-1] - timestamps[n-2]
	for k := 0; k < 3; k++ {
		out[0][k] = (series[1][k] - series[0][k]) / dt0
		out[n-1][k] = (series[n-1][k] - series[n-2][k]) / dtN
	}
	for i := 1; i < n-1; i++ {
		dt := timestamps[i+1] - timestamps[i-1]
		for k := 0; k < 3; k++ {
			out[i][k] = (series[i+1][k] - series[i-1][k]) / dt
		}
	}
	return out, nil
}
