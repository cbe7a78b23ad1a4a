package trajectory

import "fmt"

// MissingDataError reports a read of a kinematic quantity that has no
// stored samples and no cascade path to derive them.
type MissingDataError struct {
	Quantity Quantity
}

func (e *MissingDataError) Error() string {
	return fmt.Sprintf("trajectory: no %s data available", e.Quantity)
}
