package engine

// Intner is the randomness a shuffle needs. Both the engine's xorshift
// source and golang.org/x/exp/rand.Rand satisfy it.
type Intner interface {
	Intn(n int) int
}

// XorShift is an inline xorshift64 source; the zero seed is corrected to 1.
type XorShift uint64

// NewXorShift returns a source seeded with seed.
func NewXorShift(seed uint64) *XorShift {
	if seed == 0 {
		seed = 1 // xorshift can't start at 0
	}
	x := XorShift(seed)
	return &x
}

// Next advances the source and returns the new state.
func (x *XorShift) Next() uint64 {
	v := uint64(*x)
	v ^= v << 13
	v ^= v >> 7
	v ^= v << 17
	*x = XorShift(v)
	return v
}

// Intn returns a number in [0, n).
func (x *XorShift) Intn(n int) int {
	return int(x.Next() % uint64(n))
}
