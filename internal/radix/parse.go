package radix

import (
	"errors"
	"fmt"
	"math/bits"
	"strconv"
)

// ErrEmpty is returned when there are no digits to parse.
var ErrEmpty = errors.New("empty digit string")

// SyntaxError reports an invalid digit.
type SyntaxError struct {
	Offset int
	Char   byte
	Base   int
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid base-%d digit %q at offset %d", e.Base, e.Char, e.Offset)
}

// ChunkDigits returns how many digits of base fill one 32-bit word,
// or 0 if base digits do not pack evenly into a word.
func ChunkDigits(base int) int {
	if !IsPow2(base) {
		return 0
	}
	shift := bits.TrailingZeros(uint(base))
	if 32%shift != 0 {
		return 0
	}
	return 32 / shift
}

// ParseWords decodes digits (most significant first) into little-endian words.
// Only bases whose digits pack evenly into 32 bits (2, 4, 16) are supported.
func ParseWords(digits string, base int) ([]uint32, error) {
	chunk := ChunkDigits(base)
	if chunk == 0 {
		return nil, fmt.Errorf("radix: unsupported parse base %d", base)
	}
	if len(digits) == 0 {
		return nil, ErrEmpty
	}
	for i := 0; i < len(digits); i++ {
		if DigitValue(digits[i]) >= base {
			return nil, &SyntaxError{Offset: i, Char: digits[i], Base: base}
		}
	}

	words := make([]uint32, 0, (len(digits)+chunk-1)/chunk)
	for end := len(digits); end > 0; end -= chunk {
		start := max(end-chunk, 0)
		v, err := strconv.ParseUint(digits[start:end], base, 32)
		if err != nil {
			return nil, err
		}
		words = append(words, uint32(v))
	}
	return words, nil
}

// DigitValue returns the numeric value of an alphanumeric digit
// (case-insensitive), or 36 for anything else.
func DigitValue(c byte) int {
	switch {
	case '0' <= c && c <= '9':
		return int(c - '0')
	case 'a' <= c && c <= 'z':
		return int(c-'a') + 10
	case 'A' <= c && c <= 'Z':
		return int(c-'A') + 10
	default:
		return 36
	}
}
