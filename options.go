package bitset

import "math/rand"

type options struct {
	logger   *Logger
	capacity uint
	rand     *rand.Rand
}

// Option configures BitSet constructors.
type Option func(*options)

// WithLogger attaches a structured logger to the created set.
//
// The logger is inherited by clones and by the results of the
// allocating operators (Intersection, Union, ...). If nil is passed,
// logging stays disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// WithCapacity preallocates room for bits [0, bits) so that setting them
// does not reallocate. It does not change the represented set.
func WithCapacity(bits uint) Option {
	return func(o *options) {
		o.capacity = bits
	}
}

// WithRand sets the source used by Random.
//
// If nil is passed, the math/rand top-level generator is used.
func WithRand(r *rand.Rand) Option {
	return func(o *options) {
		o.rand = r
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}
	return o
}

func (o *options) uint32() uint32 {
	if o.rand != nil {
		return o.rand.Uint32()
	}
	return rand.Uint32()
}
