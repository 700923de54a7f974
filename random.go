package bitset

// Random returns a finite set whose lowest n bits are independently and
// uniformly random. Use WithRand for a reproducible source.
func Random(n uint, opts ...Option) *BitSet {
	o := applyOptions(opts)
	b := &BitSet{log: o.logger}
	if n == 0 {
		return b
	}

	b.scale(n - 1)
	for i := range b.words {
		b.words[i] = o.uint32()
	}
	if r := n % wordBits; r != 0 {
		b.words[len(b.words)-1] &= 1<<r - 1
	}
	return b
}
