// Package notation renders game states in a compact, human-readable form:
//
//	<bid>/<stack>/<inventory>;<inventory>...
//
// The bid is '-' while no bid stands. A card list is the non-leveraged cards
// followed by '!' and the leveraged cards; the '!' is dropped when nothing
// is leveraged. Coins render as their value and gems as their archetype
// code. Each inventory may be prefixed with 'c' (current player), 'f'
// (starting player) and 'h' (highest bidder, only while a bid stands).
//
// For example "3/!AESED/fh123;c123;123" is a three-player auction in which
// the first player bid 3 and the second player is to act. Stack cards are
// leveraged, and a bought gem stays after the '!' until it is restored:
// "-//c1AE!23;f3D!12;SE!123".
package notation

import (
	"strconv"
	"strings"

	"github.com/jason-s-yu/gemstone/engine"
)

// Format renders info.
func Format(info engine.GameInfo) string {
	var sb strings.Builder
	sb.WriteString(FormatBid(info.HighestBid()))
	sb.WriteByte('/')
	stack := info.Stack()
	sb.WriteString(FormatCards(stack.Cards()))
	sb.WriteByte('/')
	for p, inv := range info.Inventories() {
		if p > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(seatPrefix(&info, uint8(p)))
		sb.WriteString(FormatCards(inv.Cards()))
	}
	return sb.String()
}

// FormatBid renders a highest bid, '-' when negative.
func FormatBid(bid int8) string {
	if bid < 0 {
		return "-"
	}
	return strconv.Itoa(int(bid))
}

// FormatCards renders non-leveraged cards, then '!' and the leveraged ones.
// Null cards are skipped.
func FormatCards(cards []engine.Card) string {
	var lhs, rhs strings.Builder
	for _, c := range cards {
		switch {
		case c.IsNull():
		case c.IsLeveraged():
			rhs.WriteString(c.Code())
		default:
			lhs.WriteString(c.Code())
		}
	}
	if rhs.Len() == 0 {
		return lhs.String()
	}
	return lhs.String() + "!" + rhs.String()
}

func seatPrefix(info *engine.GameInfo, p uint8) string {
	var prefix []byte
	if info.IsGameOver() {
		return ""
	}
	if info.CurrentPlayer() == p {
		prefix = append(prefix, 'c')
	}
	if info.StartingPlayer() == p {
		prefix = append(prefix, 'f')
	}
	if info.HighestBid() >= 0 && info.HighestBidder() == p {
		prefix = append(prefix, 'h')
	}
	return string(prefix)
}
