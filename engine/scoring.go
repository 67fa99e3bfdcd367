package engine

import "fmt"

// GameScores holds a score per seat; seats beyond the player count stay 0.
type GameScores [MaxPlayers]int32

// Winners returns every seat among the first n holding the top score.
func (s GameScores) Winners(n uint8) []uint8 {
	var best int32 = -1
	var winners []uint8
	for p := uint8(0); p < n; p++ {
		switch {
		case s[p] > best:
			best = s[p]
			winners = []uint8{p}
		case s[p] == best:
			winners = append(winners, p)
		}
	}
	return winners
}

func (s GameScores) String() string {
	return fmt.Sprint([MaxPlayers]int32(s))
}

// gemCounts returns, per player, the number of unflipped gems of each colour.
func (g *GameInfo) gemCounts() [MaxPlayers][NumGemTypes]int32 {
	var counts [MaxPlayers][NumGemTypes]int32
	for p := uint8(0); p < g.numPlayers; p++ {
		for card := range NonLeveraged(Gems(g.inventories[p].Iter())) {
			a := card.Archetype()
			first, second := a.Gems()
			counts[p][first]++
			if a.NumGems() == 2 {
				counts[p][second]++
			}
		}
	}
	return counts
}

// computeScores awards one point per gem on every non-leveraged gem card,
// plus majority bonuses when the house rules enable them.
func (g *GameInfo) computeScores() GameScores {
	var scores GameScores
	counts := g.gemCounts()
	for p := uint8(0); p < g.numPlayers; p++ {
		for _, n := range counts[p] {
			scores[p] += n
		}
	}
	if !g.rules.MajorityBonus {
		return scores
	}

	for gem := 0; gem < NumGemTypes; gem++ {
		var most int32
		holders := 0
		for p := uint8(0); p < g.numPlayers; p++ {
			switch n := counts[p][gem]; {
			case n > most:
				most, holders = n, 1
			case n == most && n > 0:
				holders++
			}
		}
		if most == 0 {
			continue
		}
		bonus := g.rules.OwnedMajorityPoints
		if holders > 1 {
			bonus = g.rules.SharedMajorityPoints
		}
		for p := uint8(0); p < g.numPlayers; p++ {
			if counts[p][gem] == most {
				scores[p] += bonus
			}
		}
	}
	return scores
}

// Scores calculates the current scores from the inventories.
func (g *GameInfo) Scores() GameScores { return g.computeScores() }
