package trajio

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/kintraj/internal/trajectory"
)

// Document is the JSON file layout for a trajectory. Absent quantities are
// omitted entirely rather than written as empty arrays.
type Document struct {
	Times               []float64         `json:"times"`
	Position            trajectory.Series `json:"position,omitempty"`
	Velocity            trajectory.Series `json:"velocity,omitempty"`
	Acceleration        trajectory.Series `json:"acceleration,omitempty"`
	Orientation         trajectory.Series `json:"orientation,omitempty"`
	AngularVelocity     trajectory.Series `json:"angular_velocity,omitempty"`
	AngularAcceleration trajectory.Series `json:"angular_acceleration,omitempty"`
}

// NewDocument captures the timestamps and every present quantity of tr.
func NewDocument(tr *trajectory.Trajectory) (*Document, error) {
	doc := &Document{Times: tr.Timestamps()}
	for _, q := range trajectory.Quantities() {
		if !tr.Has(q) {
			continue
		}
		data, err := tr.Get(q)
		if err != nil {
			return nil, err
		}
		switch q {
		case trajectory.Position:
			doc.Position = data
		case trajectory.Velocity:
			doc.Velocity = data
		case trajectory.Acceleration:
			doc.Acceleration = data
		case trajectory.Orientation:
			doc.Orientation = data
		case trajectory.AngularVelocity:
			doc.AngularVelocity = data
		case trajectory.AngularAcceleration:
			doc.AngularAcceleration = data
		}
	}
	return doc, nil
}

// Trajectory rebuilds the container from the document.
func (d *Document) Trajectory(diffOnDemand bool) *trajectory.Trajectory {
	return trajectory.New(d.Times, trajectory.Samples{
		Position:            d.Position,
		Velocity:            d.Velocity,
		Acceleration:        d.Acceleration,
		Orientation:         d.Orientation,
		AngularVelocity:     d.AngularVelocity,
		AngularAcceleration: d.AngularAcceleration,
	}, diffOnDemand)
}

// WriteJSON writes tr to path as an indented document.
func WriteJSON(path string, tr *trajectory.Trajectory) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()
	return EncodeJSON(file, tr)
}

// EncodeJSON writes tr to w as an indented document.
func EncodeJSON(w io.Writer, tr *trajectory.Trajectory) error {
	doc, err := NewDocument(tr)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ReadJSON loads a trajectory document from path.
func ReadJSON(path string, diffOnDemand bool) (*trajectory.Trajectory, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, err
	}
	return doc.Trajectory(diffOnDemand), nil
}
