// Package bitset provides an arbitrary-size bit vector for Go.
//
// A BitSet is a set of non-negative integers. Bits are kept in 32-bit words,
// and every index past the stored words reads as an extension word that is
// either all zeros (a finite set) or all ones (a cofinite set). Complement is
// therefore exact: Not of the empty set holds every index.
//
// # Construction
//
// Sets are created from an Input variant:
//
//	a, _ := bitset.New(bitset.String("0b1011"))       // {0, 1, 3}
//	b, _ := bitset.New(bitset.String("0xff"))         // {0..7}
//	c, _ := bitset.New(bitset.Indices{2, 5})           // {2, 5}
//	d, _ := bitset.New(bitset.Indices{3, bitset.Infinity}) // {3, 4, 5, ...}
//	e, _ := bitset.New(bitset.Bytes{0x01, 0x80})       // {0, 15}
//	f, _ := bitset.New(bitset.Uint(10))                // {1, 3}
//
// # Algebra
//
// The methods And, Or, Xor, AndNot, Nand, Nor and Not mutate the receiver.
// The package functions Intersection, Union, SymmetricDifference,
// Difference and Complement allocate a new result and leave their operands
// untouched:
//
//	u, _ := bitset.Union(a, c)
//	_ = a.And(bitset.String("0b11")) // a is now {0, 1}
//
// # Unbounded results
//
// Queries that have no finite answer on a cofinite set report Infinity:
//
//	n := bitset.MustNew(nil).Not().Cardinality() // Infinity
//
// Renderings in power-of-two bases mark the infinite run of ones with a
// "..." prefix. Renderings in other bases, and conversion to a roaring
// bitmap, return ErrUnbounded instead.
//
// # Logging
//
// Attach a Logger with WithLogger to trace store growth and rejected
// inputs at debug level:
//
//	l := bitset.NewJSONLogger(slog.LevelDebug)
//	s, _ := bitset.New(nil, bitset.WithLogger(l))
//
// A BitSet is not safe for concurrent mutation; concurrent readers are fine.
package bitset
