package bitset

import (
	"errors"
	"slices"
	"strings"

	"github.com/hupe1980/bitset/internal/radix"
)

// parse decodes in into a fresh value. The result never aliases the input.
func parse(in Input) (BitSet, error) {
	var p BitSet

	switch v := in.(type) {
	case nil:
	case Uint:
		p.words = []uint32{uint32(v)}
	case String:
		words, err := parseString(string(v))
		if err != nil {
			return BitSet{}, err
		}
		p.words = words
	case Indices:
		p.setIndices(v)
	case Bytes:
		p.setBytes(v)
	case *BitSet:
		if v != nil {
			p.words = slices.Clone(v.words)
			p.tail = v.tail
		}
	default:
		return BitSet{}, &ParseError{Input: inputKind(in)}
	}

	return p, nil
}

// operand returns in as a read-only *BitSet, parsing only when needed.
func operand(in Input) (*BitSet, error) {
	if b, ok := in.(*BitSet); ok && b != nil {
		return b, nil
	}
	p, err := parse(in)
	if err != nil {
		return nil, err
	}
	return &p, nil
}

func parseString(s string) ([]uint32, error) {
	digits, base, prefix := s, 2, 0
	switch {
	case hasPrefixFold(s, "0x"):
		digits, base, prefix = s[2:], 16, 2
	case hasPrefixFold(s, "0b"):
		digits, prefix = s[2:], 2
	}

	words, err := radix.ParseWords(digits, base)
	if err != nil {
		pe := &ParseError{Input: s, Offset: prefix, cause: err}
		var se *radix.SyntaxError
		if errors.As(err, &se) {
			pe.Offset += se.Offset
		}
		return nil, pe
	}
	return words, nil
}

func hasPrefixFold(s, prefix string) bool {
	return len(s) >= len(prefix) && strings.EqualFold(s[:len(prefix)], prefix)
}

func (b *BitSet) setIndices(indices Indices) {
	var (
		top      uint
		finite   bool
		infinite bool
	)

	for _, i := range indices {
		if i == Infinity {
			infinite = true
			continue
		}
		b.scale(i)
		b.words[i/wordBits] |= 1 << (i % wordBits)
		if !finite || i > top {
			top, finite = i, true
		}
	}

	if !infinite {
		return
	}

	// Every index after the largest listed one becomes a member.
	start := uint(0)
	if finite {
		start = top + 1
	}
	if w := start / wordBits; w < uint(len(b.words)) {
		b.words[w] |= allOnes << (start % wordBits)
		for j := w + 1; j < uint(len(b.words)); j++ {
			b.words[j] = allOnes
		}
	}
	b.tail = allOnes
}

func (b *BitSet) setBytes(data Bytes) {
	b.words = make([]uint32, (len(data)+3)/4)
	for i, c := range data {
		b.words[i/4] |= uint32(c) << (8 * (i % 4))
	}
}
