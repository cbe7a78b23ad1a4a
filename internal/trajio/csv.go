// Package trajio reads and writes trajectory sample files. CSV follows a
// fixed column naming scheme (time, px/py/pz, vx/vy/vz, ax/ay/az,
// roll/pitch/yaw, wx/wy/wz, alx/aly/alz); a quantity whose columns are
// absent loads as unset. JSON mirrors the same layout as one document.
package trajio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/san-kum/kintraj/internal/trajectory"
)

var csvColumns = map[trajectory.Quantity][3]string{
	trajectory.Position:            {"px", "py", "pz"},
	trajectory.Velocity:            {"vx", "vy", "vz"},
	trajectory.Acceleration:        {"ax", "ay", "az"},
	trajectory.Orientation:         {"roll", "pitch", "yaw"},
	trajectory.AngularVelocity:     {"wx", "wy", "wz"},
	trajectory.AngularAcceleration: {"alx", "aly", "alz"},
}

// WriteCSV writes the timestamps and every currently present quantity of
// tr to path. Fields shorter than the timestamp vector (after a slice) are
// padded with zeros.
func WriteCSV(path string, tr *trajectory.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeCSV(file, tr)
}

// EncodeCSV writes tr to w in the CSV column layout.
func EncodeCSV(out io.Writer, tr *trajectory.Trajectory) error {
	w := csv.NewWriter(out)
	defer w.Flush()

	present := make([]trajectory.Quantity, 0, 6)
	series := make(map[trajectory.Quantity]trajectory.Series)
	header := []string{"time"}
	for _, q := range trajectory.Quantities() {
		if !tr.Has(q) {
			continue
		}
		data, err := tr.Get(q)
		if err != nil {
			return err
		}
		present = append(present, q)
		series[q] = data
		cols := csvColumns[q]
		header = append(header, cols[0], cols[1], cols[2])
	}
	if err := w.Write(header); err != nil {
		return err
	}

	times := tr.Timestamps()
	for i := range times {
		row := []string{strconv.FormatFloat(times[i], 'f', 6, 64)}
		for _, q := range present {
			data := series[q]
			var v trajectory.Vec3
			if i < len(data) {
				v = data[i]
			}
			for k := 0; k < 3; k++ {
				row = append(row, strconv.FormatFloat(v[k], 'f', 6, 64))
			}
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	return nil
}

// ReadCSV loads a trajectory from path. The header decides which
// quantities are present: a quantity needs all three of its columns.
func ReadCSV(path string, diffOnDemand bool) (*trajectory.Trajectory, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, fmt.Errorf("trajio: %s: empty file", path)
	}

	index := make(map[string]int, len(records[0]))
	for i, name := range records[0] {
		index[name] = i
	}
	timeCol, ok := index["time"]
	if !ok {
		return nil, fmt.Errorf("trajio: %s: missing time column", path)
	}

	type group struct {
		q    trajectory.Quantity
		cols [3]int
	}
	groups := make([]group, 0, 6)
	for _, q := range trajectory.Quantities() {
		names := csvColumns[q]
		g := group{q: q}
		found := true
		for k, name := range names {
			col, ok := index[name]
			if !ok {
				found = false
				break
			}
			g.cols[k] = col
		}
		if found {
			groups = append(groups, g)
		}
	}

	times := make([]float64, 0, len(records)-1)
	data := make(map[trajectory.Quantity]trajectory.Series, len(groups))
	for _, g := range groups {
		data[g.q] = make(trajectory.Series, 0, len(records)-1)
	}
	for _, record := range records[1:] {
		if len(record) <= timeCol {
			continue
		}
		t, err := strconv.ParseFloat(record[timeCol], 64)
		if err != nil {
			continue
		}
		times = append(times, t)
		for _, g := range groups {
			var v trajectory.Vec3
			for k, col := range g.cols {
				if col < len(record) {
					v[k], _ = strconv.ParseFloat(record[col], 64)
				}
			}
			data[g.q] = append(data[g.q], v)
		}
	}

	var samples trajectory.Samples
	for q, s := range data {
		assign(&samples, q, s)
	}
	return trajectory.New(times, samples, diffOnDemand), nil
}

func assign(s *trajectory.Samples, q trajectory.Quantity, data trajectory.Series) {
	switch q {
	case trajectory.Position:
		s.Position = data
	case trajectory.Velocity:
		s.Velocity = data
	case trajectory.Acceleration:
		s.Acceleration = data
	case trajectory.Orientation:
		s.Orientation = data
	case trajectory.AngularVelocity:
		s.AngularVelocity = data
	case trajectory.AngularAcceleration:
		s.AngularAcceleration = data
	}
}
