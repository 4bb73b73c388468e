package core

import "math/bits"

// Bitset is a fixed-size set of cell indices packed into 64-bit words.
type Bitset []uint64

// NewBitset returns a bitset able to hold n bits.
func NewBitset(n int) Bitset {
	return make(Bitset, (n+63)>>6)
}

// Set turns bit i on.
func (b Bitset) Set(i int) {
	b[i>>6] |= 1 << (uint(i) & 63)
}

// Has reports whether bit i is on.
func (b Bitset) Has(i int) bool {
	return b[i>>6]&(1<<(uint(i)&63)) != 0
}

// Count returns the number of bits set.
func (b Bitset) Count() int {
	n := 0
	for _, w := range b {
		n += bits.OnesCount64(w)
	}
	return n
}

// Covers reports whether every bit of goal is also set in b.
func (b Bitset) Covers(goal Bitset) bool {
	for i, w := range goal {
		if b[i]&w != w {
			return false
		}
	}
	return true
}

// Equal reports whether both bitsets hold the same bits.
func (b Bitset) Equal(other Bitset) bool {
	if len(b) != len(other) {
		return false
	}
	for i := range b {
		if b[i] != other[i] {
			return false
		}
	}
	return true
}

// Clone returns an independent copy.
func (b Bitset) Clone() Bitset {
	out := make(Bitset, len(b))
	copy(out, b)
	return out
}
