package trade

import "fmt"

// ErrInvalidNeighbour represents validation errors for neighbour reference data
type ErrInvalidNeighbour struct {
	Name   string
	Reason string
}

func (e *ErrInvalidNeighbour) Error() string {
	return fmt.Sprintf("invalid neighbour %q: %s", e.Name, e.Reason)
}
