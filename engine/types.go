package engine

import "fmt"

// GemType is one of the six gem colours.
type GemType uint8

const (
	GemAmethyst GemType = iota // 0
	GemDiamond                 // 1
	GemEmerald                 // 2
	GemRuby                    // 3
	GemSapphire                // 4
	GemTopaz                   // 5

	NumGemTypes = 6
)

var gemTypeNames = [NumGemTypes]string{"amethyst", "diamond", "emerald", "ruby", "sapphire", "topaz"}

func (t GemType) String() string {
	if int(t) < NumGemTypes {
		return gemTypeNames[t]
	}
	return fmt.Sprintf("GemType(%d)", uint8(t))
}

// GemArchetype is the index of one of the 16 fixed gem card kinds.
// Each archetype is a pair of gem slots; the diamond archetype has both
// slots set to GemDiamond but carries a single gem.
type GemArchetype uint8

// NumArchetypes is the number of distinct gem archetypes.
const NumArchetypes = 16

// archetypeGems holds the two gem slots for every archetype index.
var archetypeGems = [NumArchetypes][2]GemType{
	/* 0 */ {GemDiamond, GemDiamond},
	/* 1 */ {GemAmethyst, GemAmethyst},
	/* 2 */ {GemAmethyst, GemEmerald},
	/* 3 */ {GemAmethyst, GemSapphire},
	/* 4 */ {GemEmerald, GemEmerald},
	/* 5 */ {GemEmerald, GemRuby},
	/* 6 */ {GemEmerald, GemTopaz},
	/* 7 */ {GemRuby, GemAmethyst},
	/* 8 */ {GemRuby, GemRuby},
	/* 9 */ {GemRuby, GemTopaz},
	/* 10 */ {GemSapphire, GemEmerald},
	/* 11 */ {GemSapphire, GemRuby},
	/* 12 */ {GemSapphire, GemSapphire},
	/* 13 */ {GemTopaz, GemAmethyst},
	/* 14 */ {GemTopaz, GemSapphire},
	/* 15 */ {GemTopaz, GemTopaz},
}

// archetypeCodes are the short notation codes, indexed like archetypeGems.
var archetypeCodes = [NumArchetypes]string{
	"D", "AA", "AE", "AS", "EE", "ER", "ET", "RA", "RR", "RT", "SE", "SR", "SS", "TA", "TS", "TT",
}

// ArchetypeFromIndex returns the archetype with index idx in [0, 16).
// Indices outside that range panic.
func ArchetypeFromIndex(idx uint8) GemArchetype {
	_ = archetypeGems[idx]
	return GemArchetype(idx)
}

// Index returns the archetype index in [0, 16).
func (a GemArchetype) Index() uint8 { return uint8(a) }

// Gems returns both gem slots of the archetype.
func (a GemArchetype) Gems() (GemType, GemType) {
	g := archetypeGems[a]
	return g[0], g[1]
}

// NumGems returns 1 for the diamond archetype and 2 otherwise.
func (a GemArchetype) NumGems() uint8 {
	if _, second := a.Gems(); second == GemDiamond {
		return 1
	}
	return 2
}

// Value returns the bid value of the archetype:
//   - diamond → 2
//   - two distinct gems → 3
//   - two of the same gem → 4
func (a GemArchetype) Value() int8 {
	first, second := a.Gems()
	switch {
	case first == GemDiamond:
		return 2
	case first != second:
		return 3
	default:
		return 4
	}
}

// Code returns the notation code of the archetype, e.g. "AE".
func (a GemArchetype) Code() string { return archetypeCodes[a] }

func (a GemArchetype) String() string { return a.Code() }

// Card is a packed uint8: XX'Y'Z'WWWW.
//   - XX   face value minus one (values 1 to 4)
//   - Y    coin flag
//   - Z    leveraged flag
//   - WWWW archetype index, meaningful only for gem cards
//
// A coin card with face value 4 is reserved as the null card.
type Card uint8

const (
	cardValueShift = 6
	cardCoinBit    = 0x20
	cardLevBit     = 0x10
	cardTypeMask   = 0x0F
	cardNullMask   = 0xE0
)

// NullCard represents the absence of a card.
const NullCard Card = 0xF0

// NewCoin constructs a non-leveraged coin card. Coin values are 1 to 3.
func NewCoin(value int8) Card {
	return NullCard.WithValue(value).WithLeverage(false)
}

// NewGem constructs a non-leveraged gem card whose face value is the
// archetype's bid value. Gems enter play leveraged; see GemDeck.
func NewGem(a GemArchetype) Card {
	return NullCard.WithArchetype(a).WithValue(a.Value()).WithLeverage(false)
}

// Value returns the face value of the card, regardless of leverage.
func (c Card) Value() int8 { return int8(uint8(c)>>cardValueShift) + 1 }

// SpendableValue returns the face value and true for a non-leveraged card.
// A leveraged card contributes nothing and returns false.
func (c Card) SpendableValue() (int8, bool) {
	if c.IsLeveraged() {
		return 0, false
	}
	return c.Value(), true
}

// WithValue returns a copy of the card with face value v in [1, 4].
func (c Card) WithValue(v int8) Card {
	return Card(uint8(c)&^(3<<cardValueShift) | uint8(v-1)<<cardValueShift)
}

// IsLeveraged reports whether the card has been pledged.
func (c Card) IsLeveraged() bool { return uint8(c)&cardLevBit != 0 }

// WithLeverage returns a copy of the card with the leveraged flag set to l.
func (c Card) WithLeverage(l bool) Card {
	if l {
		return c | cardLevBit
	}
	return c &^ cardLevBit
}

// IsCoin reports whether the card is a coin card.
func (c Card) IsCoin() bool { return uint8(c)&cardCoinBit != 0 }

// IsGem reports whether the card is a non-null gem card.
func (c Card) IsGem() bool { return !c.IsCoin() && !c.IsNull() }

// Archetype returns the gem archetype. Only meaningful for gem cards.
func (c Card) Archetype() GemArchetype { return GemArchetype(uint8(c) & cardTypeMask) }

// WithArchetype returns a copy of the card turned into a gem of archetype a.
func (c Card) WithArchetype(a GemArchetype) Card {
	return Card(uint8(c)&^(cardCoinBit|cardTypeMask) | a.Index())
}

// AsCoin returns a copy of the card turned into a coin card.
func (c Card) AsCoin() Card {
	return Card(uint8(c)&^cardTypeMask | cardCoinBit)
}

// IsNull reports whether the card is the null sentinel.
func (c Card) IsNull() bool { return uint8(c)&cardNullMask == cardNullMask }

// String renders the card in notation form, prefixed with '!' when leveraged.
func (c Card) String() string {
	if c.IsNull() {
		return "null"
	}
	s := c.Code()
	if c.IsLeveraged() {
		return "!" + s
	}
	return s
}

// Code returns the notation code of the card: the face value for coins,
// the archetype code for gems.
func (c Card) Code() string {
	if c.IsCoin() {
		return fmt.Sprintf("%d", c.Value())
	}
	return c.Archetype().Code()
}

// DeckSize is the number of gem cards in a game.
const DeckSize = 18

// GemDeck returns the unshuffled 18-card gem deck: three diamonds followed
// by one card of every other archetype. Every card is leveraged; a bought
// gem only scores once its owner restores it during reinvestment.
func GemDeck() CardCollection {
	deck := NewCardCollection(DeckSize)
	for i := -2; i < NumArchetypes; i++ {
		deck.PushBack(NewGem(ArchetypeFromIndex(uint8(max(i, 0)))).WithLeverage(true))
	}
	return deck
}
