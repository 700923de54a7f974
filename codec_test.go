package bitset

import (
	"errors"
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/bitset/testutil"
)

func TestText(t *testing.T) {
	tests := []struct {
		name string
		b    *BitSet
		base int
		want string
	}{
		{"EmptyBinary", MustNew(nil), 2, "0"},
		{"EmptyHex", MustNew(nil), 16, "0"},
		{"EmptyDecimal", MustNew(nil), 10, "0"},
		{"ZeroWords", words(0, 0), 2, "0"},
		{"Binary", words(0x400011, 0x2), 2, "1000000000010000000000000000010001"},
		{"Hex", MustNew(String("0x00ff05")), 16, "ff05"},
		{"OctalAcrossWords", words(0, 1), 8, "40000000000"},
		{"Base32", words(allOnes), 32, "3vvvvvv"},
		{"Base4", MustNew(Uint(27)), 4, "123"},
		{"Decimal", words(0, 1), 10, "4294967296"},
		{"Base36", MustNew(Uint(35)), 36, "z"},
		{"Base3", MustNew(Uint(10)), 3, "101"},
		{"CofiniteBinary", MustNew(String("0b1010")).Not(), 2, "...11110101"},
		{"CofiniteHex", MustNew(nil).Not(), 16, "...ffff"},
		{"CofiniteOctal", MustNew(String("0b1010")).Not(), 8, "...777765"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.b.Text(tt.base)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTextErrors(t *testing.T) {
	b := MustNew(Uint(5))
	for _, base := range []int{-1, 0, 1, 37} {
		_, err := b.Text(base)
		assert.ErrorIs(t, err, ErrInvalidBase)

		var be *BaseError
		require.True(t, errors.As(err, &be))
		assert.Equal(t, base, be.Base)
	}

	_, err := MustNew(nil).Not().Text(10)
	assert.ErrorIs(t, err, ErrUnbounded)
}

func TestStringer(t *testing.T) {
	assert.Equal(t, "1001", MustNew(String("1001")).String())
	assert.Equal(t, "...1111", MustNew(nil).Not().String())
}

func TestTextMatchesBig(t *testing.T) {
	rng := testutil.NewRNG(7)
	for range 50 {
		b := words(rng.Words(1 + rng.Intn(6))...)
		n := new(big.Int)
		for i := len(b.words) - 1; i >= 0; i-- {
			n.Lsh(n, 32)
			n.Or(n, big.NewInt(int64(b.words[i])))
		}
		for base := 2; base <= 36; base++ {
			got, err := b.Text(base)
			require.NoError(t, err)
			assert.Equal(t, n.Text(base), got, "base %d", base)
		}
	}
}

func TestStringRoundTrip(t *testing.T) {
	rng := testutil.NewRNG(11)
	for _, n := range []int{0, 1, 31, 32, 33, 64, 100, 257} {
		s := rng.BinaryString(n)
		b, err := FromBinaryString(s)
		require.NoError(t, err)
		assert.Equal(t, s, b.String())

		h := rng.HexString(n)
		b, err = FromHexString(h)
		require.NoError(t, err)
		got, err := b.Text(16)
		require.NoError(t, err)
		assert.Equal(t, h, got)
	}
}
