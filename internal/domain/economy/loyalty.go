package economy

// Loyalty tier bounds. Tier 0 is an indifferent populace, tier 5 a devoted one.
const (
	MinLoyaltyTier = 0
	MaxLoyaltyTier = 5
)

// LoyaltyTier is a value object representing how loyal the populace is to the
// realm's ruler. Higher tiers scale profit growth. Constructed-valid: a
// LoyaltyTier outside [0,5] cannot be obtained through NewLoyaltyTier.
type LoyaltyTier int

// NewLoyaltyTier creates a loyalty tier with range validation
func NewLoyaltyTier(value int) (LoyaltyTier, error) {
	if value < MinLoyaltyTier || value > MaxLoyaltyTier {
		return 0, &ErrInvalidLoyaltyTier{Value: value}
	}
	return LoyaltyTier(value), nil
}

// Int returns the tier as a plain integer
func (t LoyaltyTier) Int() int {
	return int(t)
}
