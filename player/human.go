package player

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jason-s-yu/gemstone/engine"
	"github.com/jason-s-yu/gemstone/notation"
)

// Human is a console seat. It prints the notation of every state it is
// asked about and reads comma-separated answers, one per line. Once the
// input is exhausted it passes: bid 0, first stack card paid largest coin
// first, no flips.
type Human struct {
	HumanName string
	in        *bufio.Scanner
	out       io.Writer
}

// NewHuman returns a console seat reading from r and prompting on w.
func NewHuman(name string, r io.Reader, w io.Writer) *Human {
	return &Human{HumanName: name, in: bufio.NewScanner(r), out: w}
}

func (h *Human) Name() string { return h.HumanName }

func (h *Human) Bid(info engine.GameInfo) int8 {
	h.show(info)
	maxBid := info.MaxBid(info.CurrentPlayer())
	for {
		line, ok := h.prompt(fmt.Sprintf("bid [0-%d]: ", maxBid))
		if !ok {
			return 0
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n > int(maxBid) {
			fmt.Fprintf(h.out, "enter a number between 0 and %d\n", maxBid)
			continue
		}
		return int8(n)
	}
}

func (h *Human) PickCard(info engine.GameInfo) (int, engine.CardChoice) {
	h.show(info)
	stack := info.Stack()
	card := 0
	for {
		line, ok := h.prompt(fmt.Sprintf("card [0-%d]: ", stack.Len()-1))
		if !ok {
			return 0, defaultPayment(info)
		}
		n, err := strconv.Atoi(line)
		if err != nil || n < 0 || n >= stack.Len() {
			fmt.Fprintln(h.out, "enter a stack position")
			continue
		}
		card = n
		break
	}
	line, ok := h.prompt(fmt.Sprintf("pay %d with inventory positions: ", info.HighestBid()))
	if !ok {
		return card, defaultPayment(info)
	}
	return card, h.parseChoice(line)
}

// defaultPayment covers the highest bid with the buyer's largest cards.
func defaultPayment(info engine.GameInfo) engine.CardChoice {
	inv := info.CurrentInventory()
	payment, _ := inv.SelectCapital(int(info.HighestBid()), engine.ChoiceNone)
	return payment
}

func (h *Human) Reinvest(info engine.GameInfo) engine.CardChoice {
	h.show(info)
	line, _ := h.prompt("flip inventory positions (empty for none): ")
	return h.parseChoice(line)
}

func (h *Human) show(info engine.GameInfo) {
	fmt.Fprintf(h.out, "round %d, %s: %s\n", info.RoundIndex()+1, info.Phase(), notation.Format(info))
	inv := info.CurrentInventory()
	for i, c := range inv.All() {
		fmt.Fprintf(h.out, "  %2d %s\n", i, c)
	}
}

func (h *Human) prompt(msg string) (string, bool) {
	fmt.Fprint(h.out, msg)
	if !h.in.Scan() {
		fmt.Fprintln(h.out)
		return "", false
	}
	return strings.TrimSpace(h.in.Text()), true
}

// parseChoice reads comma- or space-separated positions, ignoring anything
// that is not a number.
func (h *Human) parseChoice(line string) engine.CardChoice {
	var idx []int
	for _, f := range strings.FieldsFunc(line, func(r rune) bool { return r == ',' || r == ' ' }) {
		n, err := strconv.Atoi(f)
		if err != nil {
			fmt.Fprintf(h.out, "ignoring %q\n", f)
			continue
		}
		idx = append(idx, n)
	}
	return engine.NewCardChoice(idx...)
}
