package engine

import (
	"fmt"
	"iter"
	"sort"
)

// MaxCollectionSize is the largest capacity a CardCollection can have.
// It matches the size of a fully stocked player inventory.
const MaxCollectionSize = 21

// CardCollection is a fixed-capacity, order-preserving sequence of cards.
// Live cards occupy the prefix [0, Len()); every later slot holds NullCard.
// It is a flat value type: assigning a collection copies its cards.
type CardCollection struct {
	cards    [MaxCollectionSize]Card
	len      uint8
	capacity uint8
}

// NewCardCollection returns a collection of the given capacity holding
// the given cards. Null cards are moved behind the live cards, keeping the
// relative order of both groups.
func NewCardCollection(capacity int, cards ...Card) CardCollection {
	if capacity < 0 || capacity > MaxCollectionSize {
		panic(fmt.Sprintf("engine: collection capacity %d out of range", capacity))
	}
	if len(cards) > capacity {
		panic(fmt.Sprintf("engine: %d cards exceed collection capacity %d", len(cards), capacity))
	}
	var c CardCollection
	c.capacity = uint8(capacity)
	for i := range c.cards {
		c.cards[i] = NullCard
	}
	copy(c.cards[:], cards)
	sort.SliceStable(c.cards[:capacity], func(i, j int) bool {
		return !c.cards[i].IsNull() && c.cards[j].IsNull()
	})
	c.len = uint8(c.findLast())
	return c
}

// findLast binary-searches the first null slot of the partitioned prefix.
func (c *CardCollection) findLast() int {
	return sort.Search(int(c.capacity), func(i int) bool { return c.cards[i].IsNull() })
}

// Len returns the number of live cards.
func (c CardCollection) Len() int { return int(c.len) }

// Cap returns the capacity of the collection.
func (c CardCollection) Cap() int { return int(c.capacity) }

// IsEmpty reports whether the collection holds no live cards.
func (c CardCollection) IsEmpty() bool { return c.len == 0 }

// At returns the card at position idx, which must be below Cap.
func (c CardCollection) At(idx int) Card {
	if idx < 0 || idx >= int(c.capacity) {
		panic(fmt.Sprintf("engine: collection index %d out of range [0, %d)", idx, c.capacity))
	}
	return c.cards[idx]
}

// Cards returns a copy of the live cards.
func (c CardCollection) Cards() []Card {
	out := make([]Card, c.len)
	copy(out, c.cards[:c.len])
	return out
}

// Push inserts card at idx, shifting the tail right.
func (c *CardCollection) Push(card Card, idx int) {
	if c.len >= c.capacity {
		panic("engine: push into full collection")
	}
	if idx < 0 || idx > int(c.len) {
		panic(fmt.Sprintf("engine: push index %d out of range [0, %d]", idx, c.len))
	}
	copy(c.cards[idx+1:c.len+1], c.cards[idx:c.len])
	c.cards[idx] = card
	c.len++
}

// PushBack appends card after the last live card.
func (c *CardCollection) PushBack(card Card) {
	c.Push(card, int(c.len))
}

// Pop removes and returns the card at idx, closing the gap by shifting the
// tail left.
func (c *CardCollection) Pop(idx int) Card {
	if idx < 0 || idx >= int(c.len) {
		panic(fmt.Sprintf("engine: pop index %d out of range [0, %d)", idx, c.len))
	}
	card := c.cards[idx]
	copy(c.cards[idx:c.len-1], c.cards[idx+1:c.len])
	c.len--
	c.cards[c.len] = NullCard
	return card
}

// CopyFrom copies src positions [srcStart, srcEnd) into this collection
// starting at destStart. Overlap and range validity are the caller's
// responsibility. The live length grows to cover the written range.
func (c *CardCollection) CopyFrom(src *CardCollection, srcStart, srcEnd, destStart int) {
	n := copy(c.cards[destStart:c.capacity], src.cards[srcStart:srcEnd])
	if end := uint8(destStart + n); end > c.len {
		c.len = end
	}
}

// Shuffle randomises the order of the live cards in place.
func (c *CardCollection) Shuffle(rng Intner) {
	for i := int(c.len) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		c.cards[i], c.cards[j] = c.cards[j], c.cards[i]
	}
}

// All iterates the live cards with their positions.
func (c CardCollection) All() iter.Seq2[int, Card] {
	return func(yield func(int, Card) bool) {
		for i := 0; i < int(c.len); i++ {
			if !yield(i, c.cards[i]) {
				return
			}
		}
	}
}

// Iter iterates the live cards.
func (c CardCollection) Iter() iter.Seq[Card] {
	return c.Choose(ChoiceAll)
}

// Choose iterates the live cards selected by choice, in order.
func (c CardCollection) Choose(choice CardChoice) iter.Seq[Card] {
	return func(yield func(Card) bool) {
		for i, card := range c.All() {
			if choice.Check(i) && !yield(card) {
				return
			}
		}
	}
}

// Update replaces every live card selected by choice with fn(card).
func (c *CardCollection) Update(choice CardChoice, fn func(Card) Card) {
	for i := 0; i < int(c.len); i++ {
		if choice.Check(i) {
			c.cards[i] = fn(c.cards[i])
		}
	}
}

// UpdateWhere replaces every live card matching pred with fn(card).
func (c *CardCollection) UpdateWhere(pred func(Card) bool, fn func(Card) Card) {
	for i := 0; i < int(c.len); i++ {
		if pred(c.cards[i]) {
			c.cards[i] = fn(c.cards[i])
		}
	}
}

// Where returns the choice selecting every live card matching pred.
func (c CardCollection) Where(pred func(Card) bool) CardChoice {
	var choice CardChoice
	for i, card := range c.All() {
		if pred(card) {
			choice = choice.With(i)
		}
	}
	return choice
}

// Capital returns the spendable value of the whole collection.
func (c CardCollection) Capital() int8 { return Capital(c.Iter()) }

func (c CardCollection) String() string {
	return fmt.Sprint(c.Cards())
}

// PlayerInventory is the 21-slot collection owned by every seat.
type PlayerInventory struct {
	CardCollection
}

// InventorySize is the capacity of a PlayerInventory: three coins plus the
// whole gem deck.
const InventorySize = 21

// NewPlayerInventory returns an inventory seeded with coins 1, 2 and 3.
func NewPlayerInventory() PlayerInventory {
	return PlayerInventory{NewCardCollection(InventorySize, NewCoin(1), NewCoin(2), NewCoin(3))}
}
