package dice

import "fmt"

// InvalidDieCodeError indicates a die code that is not on the ladder
type InvalidDieCodeError struct {
	Code string
}

func (e *InvalidDieCodeError) Error() string {
	return fmt.Sprintf("invalid die code: %q", e.Code)
}

func NewInvalidDieCodeError(code string) *InvalidDieCodeError {
	return &InvalidDieCodeError{Code: code}
}
