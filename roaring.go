package bitset

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"

	"github.com/hupe1980/bitset/internal/conv"
	"github.com/hupe1980/bitset/internal/kernel"
)

// FromRoaring returns a finite set holding the members of rb.
// A nil bitmap yields the empty set.
func FromRoaring(rb *roaring.Bitmap, opts ...Option) *BitSet {
	o := applyOptions(opts)
	b := &BitSet{log: o.logger}
	if rb == nil || rb.IsEmpty() {
		return b
	}

	b.scale(uint(rb.Maximum()))
	it := rb.Iterator()
	for it.HasNext() {
		i := it.Next()
		b.words[i/wordBits] |= 1 << (i % wordBits)
	}
	return b
}

// ToRoaring converts a finite set to a roaring bitmap.
//
// It returns ErrUnbounded for a cofinite set, and an error if a member
// does not fit in 32 bits.
func (b *BitSet) ToRoaring() (*roaring.Bitmap, error) {
	if b.tail != 0 {
		return nil, fmt.Errorf("%w: cofinite set has no roaring form", ErrUnbounded)
	}

	vals := make([]uint32, 0, kernel.PopcountWords(b.words))
	for i, w := range b.words {
		base := uint(i) * wordBits
		for w != 0 {
			v, err := conv.UintToUint32(base + uint(kernel.NTZ(w)))
			if err != nil {
				return nil, err
			}
			vals = append(vals, v)
			w &= w - 1
		}
	}

	rb := roaring.New()
	rb.AddMany(vals)
	return rb, nil
}
