package trajectory

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/san-kum/kintraj/internal/mathx"
)

// Vec3 and Series are the sample types shared with the numeric layer.
type (
	Vec3   = mathx.Vec3
	Series = mathx.Series
)

// Samples carries the optional quantity sequences handed to New. A nil
// sequence means the quantity is unset. Presence is tracked explicitly, so
// an all-zero sequence still counts as data.
type Samples struct {
	Position            Series
	Velocity            Series
	Acceleration        Series
	Orientation         Series
	AngularVelocity     Series
	AngularAcceleration Series
}

// cell is a memoizing slot for one quantity: the samples plus an explicit
// has-value flag.
type cell struct {
	data Series
	ok   bool
}

func newCell(s Series) cell {
	if s == nil {
		return cell{}
	}
	return cell{data: s, ok: true}
}

func (c cell) clone() cell {
	if !c.ok {
		return cell{}
	}
	return cell{data: c.data.Clone(), ok: true}
}

// Trajectory holds time-stamped kinematic samples and derives missing
// higher-order quantities on demand. See the package documentation for the
// cascade semantics.
type Trajectory struct {
	times        []float64
	diffOnDemand bool
	fields       [numQuantities]cell
	initial      [numQuantities]cell
}

// New builds a trajectory over the given timestamps. The supplied samples
// are snapshotted so Reset can restore them later. When diffOnDemand is
// true, reading an unset quantity derives it from the quantity one order
// below, recursively.
func New(timestamps []float64, s Samples, diffOnDemand bool) *Trajectory {
	tr := &Trajectory{times: timestamps, diffOnDemand: diffOnDemand}
	tr.fields[Position] = newCell(s.Position)
	tr.fields[Velocity] = newCell(s.Velocity)
	tr.fields[Acceleration] = newCell(s.Acceleration)
	tr.fields[Orientation] = newCell(s.Orientation)
	tr.fields[AngularVelocity] = newCell(s.AngularVelocity)
	tr.fields[AngularAcceleration] = newCell(s.AngularAcceleration)
	for q := range tr.fields {
		tr.initial[q] = tr.fields[q].clone()
	}
	return tr
}

// Timestamps returns the shared timestamp vector in seconds.
func (tr *Trajectory) Timestamps() []float64 { return tr.times }

// Len returns the number of timestamps.
func (tr *Trajectory) Len() int { return len(tr.times) }

// DifferentiateOnDemand reports whether reads may trigger the cascade.
func (tr *Trajectory) DifferentiateOnDemand() bool { return tr.diffOnDemand }

// Has reports whether q currently holds samples, supplied or derived.
func (tr *Trajectory) Has(q Quantity) bool {
	if q < 0 || q >= numQuantities {
		return false
	}
	return tr.fields[q].ok
}

// Get returns the samples for q. If q is unset and differentiation on
// demand is enabled, the predecessor is fetched (possibly deriving it in
// turn), differentiated against the timestamps and memoized before
// returning. Angular velocity is converted from Euler-angle rates into the
// body frame using the orientation sample at the same index. With no
// stored value and no cascade path the call fails with a
// *MissingDataError naming q.
func (tr *Trajectory) Get(q Quantity) (Series, error) {
	if q < 0 || q >= numQuantities {
		return nil, fmt.Errorf("trajectory: unknown quantity %d", int(q))
	}
	f := &tr.fields[q]
	if f.ok {
		return f.data, nil
	}
	pred, ok := q.predecessor()
	if !tr.diffOnDemand || !ok {
		return nil, &MissingDataError{Quantity: q}
	}

	lower, err := tr.Get(pred)
	if err != nil {
		return nil, err
	}
	d, err := mathx.Differentiate(lower, tr.times)
	if err != nil {
		return nil, err
	}
	if q == AngularVelocity {
		// lower is the orientation series here: the raw derivative is in
		// Euler-rate space, not the body frame.
		for i := range d {
			d[i] = mathx.EulerRatesToBodyRates(lower[i], d[i])
		}
	}
	f.data = d
	f.ok = true
	return d, nil
}

// Set unconditionally overwrites the stored samples for q. A nil series
// marks the quantity unset again. No shape validation is performed against
// the other fields.
func (tr *Trajectory) Set(q Quantity, s Series) {
	if q < 0 || q >= numQuantities {
		return
	}
	tr.fields[q] = newCell(s)
}

func (tr *Trajectory) Position() (Series, error)     { return tr.Get(Position) }
func (tr *Trajectory) Velocity() (Series, error)     { return tr.Get(Velocity) }
func (tr *Trajectory) Acceleration() (Series, error) { return tr.Get(Acceleration) }
func (tr *Trajectory) Orientation() (Series, error)  { return tr.Get(Orientation) }
func (tr *Trajectory) AngularVelocity() (Series, error) {
	return tr.Get(AngularVelocity)
}
func (tr *Trajectory) AngularAcceleration() (Series, error) {
	return tr.Get(AngularAcceleration)
}

func (tr *Trajectory) SetPosition(s Series)        { tr.Set(Position, s) }
func (tr *Trajectory) SetVelocity(s Series)        { tr.Set(Velocity, s) }
func (tr *Trajectory) SetAcceleration(s Series)    { tr.Set(Acceleration, s) }
func (tr *Trajectory) SetOrientation(s Series)     { tr.Set(Orientation, s) }
func (tr *Trajectory) SetAngularVelocity(s Series) { tr.Set(AngularVelocity, s) }
func (tr *Trajectory) SetAngularAcceleration(s Series) {
	tr.Set(AngularAcceleration, s)
}

// Reset restores the six quantities to their construction-time values,
// discarding cached derivations and later overrides. Timestamps and the
// on-demand flag are untouched.
func (tr *Trajectory) Reset() {
	for q := range tr.fields {
		tr.fields[q] = tr.initial[q].clone()
	}
}

// Transform applies the rigid transform T to position and orientation and
// returns a new trajectory over the same timestamps. A nil T means
// identity. Side selects post- (Right) or pre- (Left) multiplication of
// each sample pose. The result always differentiates on demand: rates for
// the transformed trajectory are never carried over from the receiver.
func (tr *Trajectory) Transform(T *mat.Dense, side Side) (*Trajectory, error) {
	pos, err := tr.Get(Position)
	if err != nil {
		return nil, err
	}
	orient, err := tr.Get(Orientation)
	if err != nil {
		return nil, err
	}
	if T == nil {
		T = mathx.Identity4()
	}

	var p, r Series
	switch side {
	case Right:
		p, r, err = mathx.TransformRight(pos, orient, T)
	case Left:
		p, r, err = mathx.TransformLeft(pos, orient, T)
	default:
		return nil, fmt.Errorf("trajectory: invalid transform side %d", int(side))
	}
	if err != nil {
		return nil, err
	}
	return New(tr.times, Samples{Position: p, Orientation: r}, true), nil
}

// Slice realizes all six quantities, then truncates each in place to the
// half-open range [start, end), clamped per field to the available
// samples. Inverted or out-of-range bounds yield empty or partial
// sequences, never an error. All six are realized even if the caller only
// needs one, since truncation overwrites the memoized values. Timestamps
// are left untouched.
func (tr *Trajectory) Slice(start, end int) error {
	// Realize everything before touching any field: truncating position
	// first would make later derivations differentiate a shortened series
	// against the full timestamp vector.
	var realized [numQuantities]Series
	for _, q := range Quantities() {
		data, err := tr.Get(q)
		if err != nil {
			return err
		}
		realized[q] = data
	}
	for _, q := range Quantities() {
		data := realized[q]
		s, e := clampRange(start, end, len(data))
		tr.fields[q] = cell{data: data[s:e], ok: true}
	}
	return nil
}

func clampRange(start, end, n int) (int, int) {
	if start < 0 {
		start = 0
	}
	if start > n {
		start = n
	}
	if end > n {
		end = n
	}
	if end < start {
		end = start
	}
	return start, end
}
