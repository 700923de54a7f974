package bitset

import (
	"context"
	"fmt"

	"github.com/hupe1980/bitset/internal/conv"
)

// Get returns bit i (0 or 1). Indices past the stored words read the
// extension word.
func (b *BitSet) Get(i uint) uint {
	return uint(b.wordAt(i/wordBits)>>(i%wordBits)) & 1
}

// Test reports whether i is a member of b.
func (b *BitSet) Test(i uint) bool {
	return b.Get(i) == 1
}

// Set adds i to b, growing the store as needed, and returns b.
func (b *BitSet) Set(i uint) *BitSet {
	b.scale(i)
	b.words[i/wordBits] |= 1 << (i % wordBits)
	return b
}

// SetTo sets bit i to v&1 and returns b. The extension word is not changed.
func (b *BitSet) SetTo(i uint, v uint) *BitSet {
	if v&1 == 1 {
		return b.Set(i)
	}
	return b.ClearBit(i)
}

// ClearBit removes i from b and returns b.
func (b *BitSet) ClearBit(i uint) *BitSet {
	if i/wordBits >= uint(len(b.words)) && b.tail == 0 {
		return b
	}
	b.scale(i)
	b.words[i/wordBits] &^= 1 << (i % wordBits)
	return b
}

// FlipBit toggles bit i and returns b.
func (b *BitSet) FlipBit(i uint) *BitSet {
	b.scale(i)
	b.words[i/wordBits] ^= 1 << (i % wordBits)
	return b
}

// Clear resets b to the empty set and returns b.
func (b *BitSet) Clear() *BitSet {
	b.words = b.words[:0]
	b.tail = 0
	return b
}

// Flip complements every bit of b, including the extension word. It is the
// same as Not.
func (b *BitSet) Flip() *BitSet {
	return b.Not()
}

type rangeOp uint8

const (
	rangeSet rangeOp = iota
	rangeClear
	rangeFlip
)

func (op rangeOp) String() string {
	switch op {
	case rangeSet:
		return "set_range"
	case rangeClear:
		return "clear_range"
	default:
		return "flip_range"
	}
}

// SetRange sets every bit in [from, to] to v&1.
func (b *BitSet) SetRange(from, to uint, v uint) error {
	if v&1 == 1 {
		return b.transformRange(from, to, rangeSet)
	}
	return b.transformRange(from, to, rangeClear)
}

// ClearRange clears every bit in [from, to].
func (b *BitSet) ClearRange(from, to uint) error {
	return b.transformRange(from, to, rangeClear)
}

// FlipRange toggles every bit in [from, to].
func (b *BitSet) FlipRange(from, to uint) error {
	return b.transformRange(from, to, rangeFlip)
}

// SetRangeBits assigns the binary digit string bits to [from, to]. The last
// character of bits lands on from, the first on to, so len(bits) must be
// to-from+1.
func (b *BitSet) SetRangeBits(from, to uint, bits string) error {
	err := checkRange(from, to)
	if err == nil && uint(len(bits)) != to-from+1 {
		err = &RangeError{
			From:   from,
			To:     to,
			Reason: fmt.Sprintf("bit string has %d digits, window has %d", len(bits), to-from+1),
		}
	}
	if err != nil {
		b.log.LogRange(context.Background(), "set_range_bits", from, to, err)
		return err
	}

	for i := 0; i < len(bits); i++ {
		if c := bits[i]; c != '0' && c != '1' {
			err := &ParseError{Input: bits, Offset: i}
			b.log.LogParse(context.Background(), "string", err)
			return err
		}
	}

	b.scale(to)
	for k := 0; k < len(bits); k++ {
		i := from + uint(k)
		mask := uint32(1) << (i % wordBits)
		if bits[len(bits)-1-k] == '1' {
			b.words[i/wordBits] |= mask
		} else {
			b.words[i/wordBits] &^= mask
		}
	}
	return nil
}

// transformRange applies op to [from, to] one word at a time.
func (b *BitSet) transformRange(from, to uint, op rangeOp) error {
	if err := checkRange(from, to); err != nil {
		b.log.LogRange(context.Background(), op.String(), from, to, err)
		return err
	}

	// Clearing a finite set or setting a cofinite one leaves the bits past
	// the stored words as they are.
	if (op == rangeClear && b.tail == 0) || (op == rangeSet && b.tail == allOnes) {
		if from/wordBits >= uint(len(b.words)) {
			return nil
		}
		to = min(to, b.Len()-1)
	}
	b.scale(to)

	first, last := from/wordBits, to/wordBits
	for w := first; w <= last; w++ {
		mask := allOnes
		if w == first {
			mask &= allOnes << (from % wordBits)
		}
		if w == last {
			mask &= allOnes >> (wordBits - 1 - to%wordBits)
		}

		switch op {
		case rangeSet:
			b.words[w] |= mask
		case rangeClear:
			b.words[w] &^= mask
		case rangeFlip:
			b.words[w] ^= mask
		}
	}
	return nil
}

// SliceFrom returns a new set whose bit k is bit from+k of b, for every k.
// The extension word is inherited.
func (b *BitSet) SliceFrom(from uint) *BitSet {
	n := 0
	if ws := from / wordBits; ws < uint(len(b.words)) {
		n = len(b.words) - int(ws)
	}
	return &BitSet{
		words: b.shifted(from, n),
		tail:  b.tail,
		log:   b.log,
	}
}

// Slice returns a new finite set whose bit k is bit from+k of b for
// k in [0, to-from]; all other bits are clear.
func (b *BitSet) Slice(from, to uint) (*BitSet, error) {
	if err := checkRange(from, to); err != nil {
		b.log.LogRange(context.Background(), "slice", from, to, err)
		return nil, err
	}

	n, err := conv.UintToInt((to-from)/wordBits + 1)
	if err != nil {
		return nil, &RangeError{From: from, To: to, Reason: err.Error()}
	}
	words := b.shifted(from, n)
	if r := (to - from + 1) % wordBits; r != 0 {
		words[n-1] &= 1<<r - 1
	}
	return &BitSet{words: words, log: b.log}, nil
}

// shifted returns n words of b starting at bit offset from.
func (b *BitSet) shifted(from uint, n int) []uint32 {
	out := make([]uint32, n)
	ws, bs := from/wordBits, from%wordBits
	for i := range out {
		lo := b.wordAt(ws + uint(i))
		if bs == 0 {
			out[i] = lo
			continue
		}
		hi := b.wordAt(ws + uint(i) + 1)
		out[i] = lo>>bs | hi<<(wordBits-bs)
	}
	return out
}
