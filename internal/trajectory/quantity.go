package trajectory

import "fmt"

// Quantity identifies one of the six kinematic sample sequences held by a
// Trajectory.
type Quantity int

const (
	Position Quantity = iota
	Velocity
	Acceleration
	Orientation
	AngularVelocity
	AngularAcceleration

	numQuantities
)

var quantityNames = [numQuantities]string{
	"position",
	"velocity",
	"acceleration",
	"orientation",
	"angular velocity",
	"angular acceleration",
}

func (q Quantity) String() string {
	if q < 0 || q >= numQuantities {
		return fmt.Sprintf("quantity(%d)", int(q))
	}
	return quantityNames[q]
}

// predecessor returns the quantity one derivative order below q. Position
// and orientation are chain roots and have none.
func (q Quantity) predecessor() (Quantity, bool) {
	switch q {
	case Velocity:
		return Position, true
	case Acceleration:
		return Velocity, true
	case AngularVelocity:
		return Orientation, true
	case AngularAcceleration:
		return AngularVelocity, true
	}
	return 0, false
}

// Quantities lists all six quantities in cascade order.
func Quantities() []Quantity {
	return []Quantity{
		Position, Velocity, Acceleration,
		Orientation, AngularVelocity, AngularAcceleration,
	}
}

// ParseQuantity maps a CLI/config name to a Quantity.
func ParseQuantity(name string) (Quantity, error) {
	switch name {
	case "position", "p":
		return Position, nil
	case "velocity", "v":
		return Velocity, nil
	case "acceleration", "a":
		return Acceleration, nil
	case "orientation", "r":
		return Orientation, nil
	case "angular-velocity", "w":
		return AngularVelocity, nil
	case "angular-acceleration", "alpha":
		return AngularAcceleration, nil
	}
	return 0, fmt.Errorf("trajectory: unknown quantity %q", name)
}

// Side selects the composition order used by Transform. There are exactly
// two variants; Transform rejects anything else.
type Side int

const (
	Right Side = iota
	Left
)

func (s Side) String() string {
	switch s {
	case Right:
		return "right"
	case Left:
		return "left"
	}
	return fmt.Sprintf("side(%d)", int(s))
}

// ParseSide maps a CLI/config name to a Side.
func ParseSide(name string) (Side, error) {
	switch name {
	case "right":
		return Right, nil
	case "left":
		return Left, nil
	}
	return 0, fmt.Errorf("trajectory: unknown transform side %q (want \"right\" or \"left\")", name)
}
