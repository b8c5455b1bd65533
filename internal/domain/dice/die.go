package dice

import (
	"github.com/andrescamacho/realm-economy/internal/domain/shared"
)

// Die is a value object representing one tier on the production die ladder.
// A Die is always a member of the ladder: the only way to obtain one is
// ParseDie or a step from another Die, so invalid codes are unrepresentable.
type Die struct {
	code string
	size int
}

// Ladder returns the ordered production capacity tiers, smallest first.
func Ladder() []Die {
	return []Die{
		{code: "d0", size: 0},
		{code: "d2", size: 2},
		{code: "d4", size: 4},
		{code: "d6", size: 6},
		{code: "d8", size: 8},
		{code: "d10", size: 10},
		{code: "d12", size: 12},
	}
}

// ParseDie creates a Die from its code (e.g. "d6").
// Codes not on the ladder are rejected.
func ParseDie(code string) (Die, error) {
	for _, d := range Ladder() {
		if d.code == code {
			return d, nil
		}
	}
	return Die{}, NewInvalidDieCodeError(code)
}

// MustParseDie is ParseDie for known-good codes, panicking on failure.
// Intended for fixed literals in defaults and tests.
func MustParseDie(code string) Die {
	d, err := ParseDie(code)
	if err != nil {
		panic(err)
	}
	return d
}

// Code returns the die code, e.g. "d8"
func (d Die) Code() string {
	return d.code
}

// Size returns the numeric capacity of the tier. The size doubles as the
// roll upper bound and as a linear capacity multiplier.
func (d Die) Size() int {
	return d.size
}

// IsZero reports whether the Die is the uninitialized zero value,
// which is not a ladder member.
func (d Die) IsZero() bool {
	return d.code == ""
}

// StepUp returns the next tier up the ladder, saturating at the top.
func (d Die) StepUp() Die {
	return d.step(1)
}

// StepDown returns the next tier down the ladder, saturating at the bottom.
func (d Die) StepDown() Die {
	return d.step(-1)
}

func (d Die) step(direction int) Die {
	ladder := Ladder()
	idx := 0
	for i, entry := range ladder {
		if entry.code == d.code {
			idx = i
			break
		}
	}
	idx += direction
	if idx < 0 {
		idx = 0
	}
	if idx > len(ladder)-1 {
		idx = len(ladder) - 1
	}
	return ladder[idx]
}

// Roll produces a uniformly distributed integer in [1, Size].
// A size-zero die has nothing to roll and yields 0.
func (d Die) Roll(src shared.RandomSource) int {
	if d.size == 0 {
		return 0
	}
	return 1 + src.IntN(d.size)
}

func (d Die) String() string {
	return d.code
}
