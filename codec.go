package bitset

import (
	"fmt"

	"github.com/hupe1980/bitset/internal/radix"
)

// Text renders b in the given base (2 to 36), most significant digit first.
//
// Finite sets render as the number whose bit i is bit i of b, without
// leading zeros ("0" for the empty set). In power-of-two bases a cofinite
// set renders with its leading sign digits collapsed into "..." followed
// by four sign digits, e.g. "...11110101" or "...ffff". Other bases cannot
// express a cofinite set and return ErrUnbounded.
func (b *BitSet) Text(base int) (string, error) {
	if base < 2 || base > len(radix.Digits) {
		return "", &BaseError{Base: base}
	}
	if radix.IsPow2(base) {
		return radix.FormatPow2(b.words, b.tail, base), nil
	}
	if b.tail != 0 {
		return "", fmt.Errorf("%w: cofinite set in base %d", ErrUnbounded, base)
	}
	return radix.FormatDivide(b.words, base), nil
}

// String returns the binary rendering of b.
func (b *BitSet) String() string {
	return radix.FormatPow2(b.words, b.tail, 2)
}
