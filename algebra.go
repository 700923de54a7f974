package bitset

import (
	"context"

	"github.com/hupe1980/bitset/internal/kernel"
)

// combine sets b = op(b, other) word by word. Positions past the shorter
// operand are combined against that operand's extension word, and the
// result's extension word is op applied to both extension words.
//
// other may alias b.
func (b *BitSet) combine(op kernel.Op, other *BitSet) {
	b.grow(max(len(b.words), len(other.words)))

	m := len(other.words)
	kernel.Apply(op, b.words[:m], other.words)
	kernel.ApplyConst(op, b.words[m:], other.tail)
	b.tail = op.Word(b.tail, other.tail)
}

// apply parses in and combines it into b. On error b is unchanged.
func (b *BitSet) apply(op kernel.Op, in Input) error {
	other, err := operand(in)
	if err != nil {
		b.log.LogParse(context.Background(), inputKind(in), err)
		return err
	}
	b.combine(op, other)
	return nil
}

// And sets b to the intersection b ∧ in.
func (b *BitSet) And(in Input) error {
	return b.apply(kernel.And, in)
}

// Or sets b to the union b ∨ in.
func (b *BitSet) Or(in Input) error {
	return b.apply(kernel.Or, in)
}

// Xor sets b to the symmetric difference b ⊕ in.
func (b *BitSet) Xor(in Input) error {
	return b.apply(kernel.Xor, in)
}

// AndNot sets b to the difference b ∧ ¬in. The complement of in is never
// materialized.
func (b *BitSet) AndNot(in Input) error {
	return b.apply(kernel.AndNot, in)
}

// Nand sets b to ¬(b ∧ in).
func (b *BitSet) Nand(in Input) error {
	return b.apply(kernel.Nand, in)
}

// Nor sets b to ¬(b ∨ in).
func (b *BitSet) Nor(in Input) error {
	return b.apply(kernel.Nor, in)
}

// Not complements b in place, including its extension word, and returns b.
// The complement of a finite set is cofinite and vice versa.
func (b *BitSet) Not() *BitSet {
	kernel.NotWords(b.words)
	b.tail = ^b.tail
	return b
}

// binary is the allocating entry point: a copy of a combined with b.
func binary(op kernel.Op, a, b Input) (*BitSet, error) {
	res, err := New(a)
	if err != nil {
		return nil, err
	}
	if err := res.apply(op, b); err != nil {
		return nil, err
	}
	return res, nil
}

// Intersection returns a new set a ∧ b. Neither operand is modified.
func Intersection(a, b Input) (*BitSet, error) {
	return binary(kernel.And, a, b)
}

// Union returns a new set a ∨ b. Neither operand is modified.
func Union(a, b Input) (*BitSet, error) {
	return binary(kernel.Or, a, b)
}

// SymmetricDifference returns a new set a ⊕ b. Neither operand is modified.
func SymmetricDifference(a, b Input) (*BitSet, error) {
	return binary(kernel.Xor, a, b)
}

// Difference returns a new set a ∧ ¬b. Neither operand is modified.
func Difference(a, b Input) (*BitSet, error) {
	return binary(kernel.AndNot, a, b)
}

// Complement returns a new set ¬a. The operand is not modified.
func Complement(a Input) (*BitSet, error) {
	res, err := New(a)
	if err != nil {
		return nil, err
	}
	return res.Not(), nil
}
