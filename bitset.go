package bitset

import (
	"context"
	"math"
	"slices"

	"github.com/hupe1980/bitset/internal/conv"
	"github.com/hupe1980/bitset/internal/kernel"
)

const (
	// wordBits is the width of a storage word.
	wordBits = kernel.WordBits

	// allOnes is the extension word of a cofinite set.
	allOnes = kernel.AllOnes
)

// Infinity is the "unbounded" sentinel. Cardinality, MSB and NTZ return it
// for results that have no finite value, ToArray terminates the member list
// of a cofinite set with it, and Indices accepts it as a marker.
const Infinity uint = math.MaxUint

// BitSet is a set of non-negative integers over an unbounded index domain.
//
// Bits are stored in 32-bit words, least significant word first. Every
// index past the stored words reads as the extension word tail, which is
// either 0 (a finite set) or all ones (a cofinite set: every index from
// Len() on is a member).
//
// The zero value is an empty set ready to use. A BitSet is not safe for
// concurrent mutation.
type BitSet struct {
	words []uint32
	tail  uint32
	log   *Logger
}

// New creates a BitSet from in. A nil Input yields the empty set.
//
// On error no BitSet is returned; errors.Is(err, ErrInvalidInput) holds.
func New(in Input, opts ...Option) (*BitSet, error) {
	o := applyOptions(opts)

	p, err := parse(in)
	if err != nil {
		o.logger.LogParse(context.Background(), inputKind(in), err)
		return nil, err
	}

	b := &p
	b.log = o.logger
	if b.log == nil {
		if src, ok := in.(*BitSet); ok && src != nil {
			b.log = src.log
		}
	}
	if o.capacity > 0 {
		b.reserve(o.capacity)
	}
	return b, nil
}

// MustNew is like New but panics if in cannot be parsed.
// It simplifies safe initialization of literals.
func MustNew(in Input, opts ...Option) *BitSet {
	b, err := New(in, opts...)
	if err != nil {
		panic(err)
	}
	return b
}

// FromBinaryString parses a string of binary digits (without "0b" prefix).
func FromBinaryString(s string, opts ...Option) (*BitSet, error) {
	return New(String("0b"+s), opts...)
}

// FromHexString parses a string of hex digits (without "0x" prefix).
func FromHexString(s string, opts ...Option) (*BitSet, error) {
	return New(String("0x"+s), opts...)
}

// Clone returns a deep copy of b.
func (b *BitSet) Clone() *BitSet {
	return &BitSet{
		words: slices.Clone(b.words),
		tail:  b.tail,
		log:   b.log,
	}
}

// Assign replaces the contents of b with in. On error b is unchanged.
func (b *BitSet) Assign(in Input) error {
	if src, ok := in.(*BitSet); ok && src == b {
		return nil
	}
	p, err := parse(in)
	if err != nil {
		b.log.LogParse(context.Background(), inputKind(in), err)
		return err
	}
	b.words, b.tail = p.words, p.tail
	return nil
}

// Len returns the number of word-addressable bits (stored words * 32).
// Bits at Len() and above read as the extension word.
func (b *BitSet) Len() uint {
	return uint(len(b.words)) * wordBits
}

// IsFinite reports whether b has finitely many members.
func (b *BitSet) IsFinite() bool {
	return b.tail == 0
}

// wordAt returns the logical word i, resolving to tail past the stored words.
func (b *BitSet) wordAt(i uint) uint32 {
	if i < uint(len(b.words)) {
		return b.words[i]
	}
	return b.tail
}

// scale ensures bit index i is addressable. New words take the value of
// tail, so growing never changes the represented set.
func (b *BitSet) scale(i uint) {
	if i/wordBits < uint(len(b.words)) {
		return
	}
	n, err := conv.WordsFor(i)
	if err != nil {
		panic("bitset: " + err.Error())
	}
	b.grow(n)
}

// grow extends the store to n words, filling with tail.
func (b *BitSet) grow(n int) {
	old := len(b.words)
	if n <= old {
		return
	}
	b.words = slices.Grow(b.words, n-old)[:n]
	kernel.Fill(b.words[old:], b.tail)
	b.log.LogGrow(context.Background(), old, n, b.tail)
}

// reserve preallocates capacity for bits [0, bits) without changing length.
func (b *BitSet) reserve(bits uint) {
	n, err := conv.UintToInt((bits + wordBits - 1) / wordBits)
	if err != nil || n <= cap(b.words) {
		return
	}
	b.words = slices.Grow(b.words, n-len(b.words))
}
