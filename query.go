package bitset

import (
	"iter"

	"github.com/hupe1980/bitset/internal/kernel"
)

// Cardinality returns the number of members, or Infinity for a cofinite set.
func (b *BitSet) Cardinality() uint {
	if b.tail != 0 {
		return Infinity
	}
	return uint(kernel.PopcountWords(b.words))
}

// MSB returns the index of the most significant set bit. It returns
// Infinity for a cofinite set and 0 for the empty set.
func (b *BitSet) MSB() uint {
	if b.tail != 0 {
		return Infinity
	}
	for i := len(b.words) - 1; i >= 0; i-- {
		if w := b.words[i]; w != 0 {
			return uint(i)*wordBits + wordBits - 1 - uint(kernel.NLZ(w))
		}
	}
	return 0
}

// LSB returns the index of the least significant set bit. If no stored
// word has a set bit it returns Len() for a cofinite set and 0 for the
// empty set.
func (b *BitSet) LSB() uint {
	for i, w := range b.words {
		if w != 0 {
			return uint(i)*wordBits + uint(kernel.Popcount(kernel.LowestBit(w)-1))
		}
	}
	if b.tail != 0 {
		return b.Len()
	}
	return 0
}

// NTZ returns the number of trailing zero bits, which is Infinity for the
// empty set.
func (b *BitSet) NTZ() uint {
	for i, w := range b.words {
		if w != 0 {
			return uint(i)*wordBits + uint(kernel.NTZ(w))
		}
	}
	if b.tail != 0 {
		return b.Len()
	}
	return Infinity
}

// ToArray returns the members in ascending order.
//
// For a cofinite set the result holds the members below the start r of
// the final unbounded run, then r, then Infinity, so that
// New(Indices(b.ToArray())) reproduces b.
func (b *BitSet) ToArray() []uint {
	limit := b.Len()
	if b.tail != 0 {
		limit = b.runStart()
	}

	out := make([]uint, 0, b.countBelow(limit)+2)
	for i, w := range b.words {
		base := uint(i) * wordBits
		for w != 0 {
			j := base + uint(kernel.NTZ(w))
			if j >= limit {
				break
			}
			out = append(out, j)
			w &= w - 1
		}
	}

	if b.tail != 0 {
		out = append(out, limit, Infinity)
	}
	return out
}

// runStart returns the smallest index from which every bit of a cofinite
// set is set.
func (b *BitSet) runStart() uint {
	for i := len(b.words) - 1; i >= 0; i-- {
		if inv := ^b.words[i]; inv != 0 {
			return uint(i)*wordBits + wordBits - uint(kernel.NLZ(inv))
		}
	}
	return 0
}

// countBelow counts members with index < limit among the stored words.
func (b *BitSet) countBelow(limit uint) int {
	full := min(limit/wordBits, uint(len(b.words)))
	n := kernel.PopcountWords(b.words[:full])
	if r := limit % wordBits; r != 0 && full < uint(len(b.words)) {
		n += kernel.Popcount(b.words[full] & (1<<r - 1))
	}
	return n
}

// NextSet returns the first member >= i. ok is false when there is none.
func (b *BitSet) NextSet(i uint) (next uint, ok bool) {
	w := i / wordBits
	if w >= uint(len(b.words)) {
		return i, b.tail != 0
	}

	if v := b.words[w] & (allOnes << (i % wordBits)); v != 0 {
		return w*wordBits + uint(kernel.NTZ(v)), true
	}
	for w++; w < uint(len(b.words)); w++ {
		if v := b.words[w]; v != 0 {
			return w*wordBits + uint(kernel.NTZ(v)), true
		}
	}
	if b.tail != 0 {
		return b.Len(), true
	}
	return 0, false
}

// All returns an iterator over the members in ascending order. For a
// cofinite set the sequence does not end on its own.
func (b *BitSet) All() iter.Seq[uint] {
	return func(yield func(uint) bool) {
		for i := uint(0); ; i++ {
			next, ok := b.NextSet(i)
			if !ok || !yield(next) || next == Infinity {
				return
			}
			i = next
		}
	}
}

// IsEmpty reports whether b has no members.
func (b *BitSet) IsEmpty() bool {
	if b.tail != 0 {
		return false
	}
	for _, w := range b.words {
		if w != 0 {
			return false
		}
	}
	return true
}

// Equal reports whether b and other represent the same set, regardless of
// how many words each stores. A nil other is the empty set.
func (b *BitSet) Equal(other *BitSet) bool {
	if other == nil {
		other = &BitSet{}
	}
	if b.tail != other.tail {
		return false
	}
	n := max(len(b.words), len(other.words))
	for i := range uint(n) {
		if b.wordAt(i) != other.wordAt(i) {
			return false
		}
	}
	return true
}

// SubsetOf reports whether every member of b is a member of other.
// A nil other is the empty set.
func (b *BitSet) SubsetOf(other *BitSet) bool {
	if other == nil {
		other = &BitSet{}
	}
	if b.tail&^other.tail != 0 {
		return false
	}
	n := max(len(b.words), len(other.words))
	for i := range uint(n) {
		if b.wordAt(i)&^other.wordAt(i) != 0 {
			return false
		}
	}
	return true
}
