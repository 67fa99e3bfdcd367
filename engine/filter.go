package engine

import "iter"

// Filter yields the cards of seq matching pred. Like every combinator in
// this file it is lazy and may be ranged over any number of times.
func Filter(seq iter.Seq[Card], pred func(Card) bool) iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for card := range seq {
			if pred(card) && !yield(card) {
				return
			}
		}
	}
}

// NonNull yields the non-null cards of seq.
func NonNull(seq iter.Seq[Card]) iter.Seq[Card] {
	return Filter(seq, func(c Card) bool { return !c.IsNull() })
}

// Leveraged yields the leveraged cards of seq.
func Leveraged(seq iter.Seq[Card]) iter.Seq[Card] {
	return Filter(seq, Card.IsLeveraged)
}

// NonLeveraged yields the cards of seq that are not leveraged.
func NonLeveraged(seq iter.Seq[Card]) iter.Seq[Card] {
	return Filter(seq, func(c Card) bool { return !c.IsLeveraged() })
}

// Coins yields the coin cards of seq.
func Coins(seq iter.Seq[Card]) iter.Seq[Card] {
	return Filter(seq, Card.IsCoin)
}

// Gems yields the gem cards of seq.
func Gems(seq iter.Seq[Card]) iter.Seq[Card] {
	return Filter(seq, Card.IsGem)
}

// Count returns the number of cards in seq.
func Count(seq iter.Seq[Card]) int {
	n := 0
	for range seq {
		n++
	}
	return n
}

// Sum folds fn over seq.
func Sum(seq iter.Seq[Card], fn func(Card) int) int {
	total := 0
	for card := range seq {
		total += fn(card)
	}
	return total
}

// Capital sums the spendable value of seq. Leveraged cards count as zero.
func Capital(seq iter.Seq[Card]) int8 {
	return int8(Sum(seq, func(c Card) int {
		v, _ := c.SpendableValue()
		return int(v)
	}))
}

// FaceValue sums the face value of seq, leveraged or not.
func FaceValue(seq iter.Seq[Card]) int {
	return Sum(seq, func(c Card) int { return int(c.Value()) })
}
