package bitset

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCardinality(t *testing.T) {
	assert.Equal(t, uint(9), words(15<<3, 31<<2).Cardinality())
	assert.Equal(t, uint(0), MustNew(nil).Cardinality())
	assert.Equal(t, Infinity, MustNew(Indices{Infinity}).Cardinality())
}

func TestMSB(t *testing.T) {
	assert.Equal(t, uint(38), words(15<<3, 31<<2).MSB())
	assert.Equal(t, uint(333), MustNew(Indices{332, 333}).MSB())
	assert.Equal(t, uint(0), MustNew(nil).MSB())
	assert.Equal(t, uint(0), words(0, 0).MSB())
	assert.Equal(t, Infinity, MustNew(nil).Not().MSB())
}

func TestLSB(t *testing.T) {
	assert.Equal(t, uint(25), MustNew(String("10000000000000000000000000")).LSB())
	assert.Equal(t, uint(0), MustNew(String("00000000000000000000000000")).LSB())
	assert.Equal(t, uint(67), MustNew(Indices{67, 90}).LSB())

	// No stored bit set: the first member is where the extension starts.
	c := words(0, 0)
	c.tail = allOnes
	assert.Equal(t, uint(64), c.LSB())
	assert.Equal(t, uint(0), MustNew(nil).Not().LSB())
}

func TestNTZ(t *testing.T) {
	assert.Equal(t, uint(25), MustNew(String("10000000000000000000000000")).NTZ())
	assert.Equal(t, uint(0), MustNew(Uint(1)).NTZ())
	assert.Equal(t, uint(32), words(0, 1).NTZ())
	assert.Equal(t, Infinity, MustNew(nil).NTZ())
	assert.Equal(t, Infinity, words(0, 0).NTZ())

	c := words(0)
	c.tail = allOnes
	assert.Equal(t, uint(32), c.NTZ())
}

func TestToArray(t *testing.T) {
	assert.Empty(t, MustNew(nil).ToArray())
	assert.Equal(t, []uint{0, 31, 32, 95}, MustNew(Indices{95, 0, 32, 31, 0}).ToArray())
	assert.Equal(t, []uint{0, Infinity}, MustNew(nil).Not().ToArray())

	// The run start may sit inside a word.
	b := MustNew(Indices{1, 12, Infinity}).ClearBit(13)
	assert.Equal(t, []uint{1, 12, 14, Infinity}, b.ToArray())
	assert.Equal(t, []uint{1, 10, Infinity}, MustNew(Indices{1, 10, Infinity}).ToArray())

	// Members that continue into the run merge with it.
	c := MustNew(nil).Not().ClearBit(3)
	assert.Equal(t, []uint{0, 1, 2, 4, Infinity}, c.ToArray())
}

func TestNextSetAndAll(t *testing.T) {
	b := MustNew(Indices{2, 33, 200})

	i, ok := b.NextSet(0)
	assert.True(t, ok)
	assert.Equal(t, uint(2), i)

	i, ok = b.NextSet(34)
	assert.True(t, ok)
	assert.Equal(t, uint(200), i)

	_, ok = b.NextSet(201)
	assert.False(t, ok)
	_, ok = b.NextSet(1 << 50)
	assert.False(t, ok)

	assert.Equal(t, []uint{2, 33, 200}, slices.Collect(b.All()))

	c := MustNew(Indices{5, 6, Infinity})
	i, ok = c.NextSet(1000)
	assert.True(t, ok)
	assert.Equal(t, uint(1000), i)

	var got []uint
	for v := range c.All() {
		if len(got) == 4 {
			break
		}
		got = append(got, v)
	}
	assert.Equal(t, []uint{5, 6, 7, 8}, got)
}

func TestIsEmpty(t *testing.T) {
	assert.True(t, MustNew(nil).IsEmpty())
	assert.True(t, words(0, 0, 0).IsEmpty())
	assert.False(t, words(0, 666).IsEmpty())
	assert.False(t, MustNew(nil).Not().IsEmpty())
}

func TestEqual(t *testing.T) {
	a := words(0, 63)
	b := words(0, 63, 0, 0)
	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))

	x := MustNew(Indices{15})
	y := MustNew(Indices{15}).Set(127).ClearBit(127)
	assert.True(t, x.Equal(y))
	assert.True(t, y.Equal(x))

	assert.True(t, MustNew(nil).Equal(nil))
	assert.False(t, MustNew(nil).Not().Equal(MustNew(nil)))

	full := MustNew(nil).Not()
	grown := MustNew(nil).Not().Set(200)
	assert.True(t, full.Equal(grown))
	assert.False(t, full.Equal(grown.ClearBit(5)))
}

func TestSubsetOf(t *testing.T) {
	a := MustNew(nil)
	b := MustNew(nil)
	assert.True(t, a.SubsetOf(b))
	assert.True(t, b.SubsetOf(a))

	x := MustNew(Indices{1, 2, 5, 6})
	y := MustNew(Indices{1, 2})
	assert.True(t, y.SubsetOf(x))
	assert.False(t, x.SubsetOf(y))
	assert.True(t, x.SubsetOf(x))

	full := MustNew(nil).Not()
	assert.True(t, x.SubsetOf(full))
	assert.False(t, full.SubsetOf(x))
	assert.True(t, MustNew(Indices{9, Infinity}).SubsetOf(MustNew(Indices{3, Infinity})))
	assert.False(t, MustNew(Indices{3, Infinity}).SubsetOf(MustNew(Indices{9, Infinity})))
	assert.True(t, MustNew(nil).SubsetOf(nil))
	assert.False(t, x.SubsetOf(nil))
}
