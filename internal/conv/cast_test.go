//go:build amd64 || arm64

package conv

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUintToUint32(t *testing.T) {
	t.Run("valid zero", func(t *testing.T) {
		got, err := UintToUint32(0)
		assert.NoError(t, err)
		assert.Equal(t, uint32(0), got)
	})

	t.Run("valid max uint32", func(t *testing.T) {
		got, err := UintToUint32(math.MaxUint32)
		assert.NoError(t, err)
		assert.Equal(t, uint32(math.MaxUint32), got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintToUint32(math.MaxUint32 + 1)
		assert.Error(t, err)
	})
}

func TestUintToInt(t *testing.T) {
	t.Run("valid positive", func(t *testing.T) {
		got, err := UintToInt(123)
		assert.NoError(t, err)
		assert.Equal(t, 123, got)
	})

	t.Run("valid max int", func(t *testing.T) {
		got, err := UintToInt(uint(math.MaxInt))
		assert.NoError(t, err)
		assert.Equal(t, math.MaxInt, got)
	})

	t.Run("invalid too large", func(t *testing.T) {
		_, err := UintToInt(uint(math.MaxInt) + 1)
		assert.Error(t, err)
	})
}

func TestWordsFor(t *testing.T) {
	tests := []struct {
		index uint
		want  int
	}{
		{0, 1},
		{31, 1},
		{32, 2},
		{512, 17},
	}

	for _, tt := range tests {
		got, err := WordsFor(tt.index)
		assert.NoError(t, err)
		assert.Equal(t, tt.want, got, "index %d", tt.index)
	}
}
