package engine

const (
	MinPlayers = 2
	MaxPlayers = 4

	// NumRounds is the number of auction/reinvestment rounds in a game.
	NumRounds = 6
	// MaxStackSize is the largest number of cards dealt into one stack.
	MaxStackSize = 4
)

// stackSizes returns the per-round stack sizes for the given player count.
// Both tables deal the whole 18-card deck over six rounds.
func stackSizes(numPlayers uint8) [NumRounds]int {
	if numPlayers == 3 {
		return [NumRounds]int{3, 3, 3, 3, 3, 3}
	}
	return [NumRounds]int{4, 3, 3, 3, 3, 2}
}

// HouseRules holds configurable scoring settings.
type HouseRules struct {
	MajorityBonus        bool  // award gem-colour majorities at scoring time
	SharedMajorityPoints int32 // per tied majority holder
	OwnedMajorityPoints  int32 // for a sole majority holder
}

// DefaultHouseRules returns the standard rules: one point per unflipped
// gem and no majority bonus.
func DefaultHouseRules() HouseRules {
	return HouseRules{
		MajorityBonus:        false,
		SharedMajorityPoints: 2,
		OwnedMajorityPoints:  3,
	}
}
