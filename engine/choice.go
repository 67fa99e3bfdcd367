package engine

import "math/bits"

// MaxChoiceWidth is the number of positions a CardChoice can address.
const MaxChoiceWidth = 32

// CardChoice is a bitmask over positions in a card sequence. It carries no
// reference to a collection; bit i selects position i of whichever
// collection it is applied to at that moment.
type CardChoice uint32

const (
	ChoiceNone CardChoice = 0
	ChoiceAll  CardChoice = ^CardChoice(0)
)

// NewCardChoice selects exactly the given positions. Positions outside
// [0, 32) are ignored.
func NewCardChoice(indices ...int) CardChoice {
	var c CardChoice
	for _, i := range indices {
		c = c.With(i)
	}
	return c
}

// Check reports whether position idx is selected.
func (c CardChoice) Check(idx int) bool {
	if idx < 0 || idx >= MaxChoiceWidth {
		return false
	}
	return c&(1<<uint(idx)) != 0
}

// With returns a copy of the choice that also selects idx.
func (c CardChoice) With(idx int) CardChoice {
	if idx < 0 || idx >= MaxChoiceWidth {
		return c
	}
	return c | 1<<uint(idx)
}

// Without returns a copy of the choice with idx deselected.
func (c CardChoice) Without(idx int) CardChoice {
	if idx < 0 || idx >= MaxChoiceWidth {
		return c
	}
	return c &^ (1 << uint(idx))
}

// Count returns the number of selected positions.
func (c CardChoice) Count() int { return bits.OnesCount32(uint32(c)) }

// Indices returns the selected positions in ascending order.
func (c CardChoice) Indices() []int {
	out := make([]int, 0, c.Count())
	for m := uint32(c); m != 0; m &= m - 1 {
		out = append(out, bits.TrailingZeros32(m))
	}
	return out
}
