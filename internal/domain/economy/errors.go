package economy

import "fmt"

// ErrInvalidState represents validation errors for an economy state
type ErrInvalidState struct {
	Field  string
	Reason string
}

func (e *ErrInvalidState) Error() string {
	return fmt.Sprintf("invalid economy state: %s - %s", e.Field, e.Reason)
}

// ErrInvalidLoyaltyTier indicates a loyalty tier outside the allowed range
type ErrInvalidLoyaltyTier struct {
	Value int
}

func (e *ErrInvalidLoyaltyTier) Error() string {
	return fmt.Sprintf("loyalty tier must be between %d and %d, got %d", MinLoyaltyTier, MaxLoyaltyTier, e.Value)
}
