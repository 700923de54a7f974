package conv

import (
	"fmt"
	"math"
)

// UintToUint32 converts a bit index to uint32 safely.
func UintToUint32(v uint) (uint32, error) {
	// On 64-bit systems, uint can exceed uint32 max; on 32-bit, this is always false
	if uint64(v) > math.MaxUint32 {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to uint32 (too large)", v)
	}
	return uint32(v), nil
}

// UintToInt converts uint to int safely.
func UintToInt(v uint) (int, error) {
	if v > uint(math.MaxInt) {
		return 0, fmt.Errorf("integer overflow: %d cannot be converted to int (too large)", v)
	}
	return int(v), nil
}

// WordsFor returns how many 32-bit words are needed to address bit index i.
func WordsFor(i uint) (int, error) {
	return UintToInt(i/32 + 1)
}
