package kernel

import "math/bits"

// WordBits is the number of bits per word.
const WordBits = 32

// AllOnes is a word with every bit set.
const AllOnes = ^uint32(0)

// kernelPopcount is replaced during init when a hardware kernel is available.
var kernelPopcount = popcountGeneric

// Popcount returns the number of set bits in x.
func Popcount(x uint32) int {
	return kernelPopcount(x)
}

// PopcountWords counts all set bits across words.
func PopcountWords(words []uint32) int {
	n := 0
	i := 0
	for ; i+4 <= len(words); i += 4 {
		n += kernelPopcount(words[i])
		n += kernelPopcount(words[i+1])
		n += kernelPopcount(words[i+2])
		n += kernelPopcount(words[i+3])
	}
	for ; i < len(words); i++ {
		n += kernelPopcount(words[i])
	}
	return n
}

// popcountGeneric is Warren's SWAR population count: 2-bit, 4-bit and
// 8-bit field sums, then a multiply to fold the bytes into the top byte.
func popcountGeneric(x uint32) int {
	x -= (x >> 1) & 0x55555555
	x = (x & 0x33333333) + ((x >> 2) & 0x33333333)
	x = (x + (x >> 4)) & 0x0F0F0F0F
	return int((x * 0x01010101) >> 24)
}

func popcountHardware(x uint32) int {
	return bits.OnesCount32(x)
}

// NLZ returns the number of leading zero bits in x (32 for x == 0).
func NLZ(x uint32) int {
	x |= x >> 1
	x |= x >> 2
	x |= x >> 4
	x |= x >> 8
	x |= x >> 16
	return WordBits - kernelPopcount(x)
}

// NTZ returns the number of trailing zero bits in x (32 for x == 0).
func NTZ(x uint32) int {
	if x == 0 {
		return WordBits
	}
	return kernelPopcount((x ^ (x - 1)) >> 1)
}

// LowestBit isolates the lowest set bit of x.
func LowestBit(x uint32) uint32 {
	return x & -x
}
