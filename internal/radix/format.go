package radix

import (
	"math/bits"
	"strings"
)

// Digits is the digit alphabet for bases up to 36.
const Digits = "0123456789abcdefghijklmnopqrstuvwxyz"

// signRun is the number of sign digits kept after the "..." marker.
const signRun = 4

// IsPow2 reports whether base is a power of two greater than one.
func IsPow2(base int) bool {
	return base > 1 && base&(base-1) == 0
}

// FormatPow2 renders words (least significant first) extended by tail in a
// power-of-two base. Each digit is a group of log2(base) bits; groups may
// straddle word boundaries, and bits past the last word read as tail.
//
// With tail == 0 leading zeros are dropped ("0" for no bits). With a
// non-zero tail leading sign digits are dropped and "..." followed by a
// short run of sign digits is prepended.
func FormatPow2(words []uint32, tail uint32, base int) string {
	shift := bits.TrailingZeros(uint(base))
	mask := uint64(base - 1)
	at := func(i int) uint64 {
		if i < len(words) {
			return uint64(words[i])
		}
		return uint64(tail)
	}

	nbits := len(words) * 32
	ndigits := (nbits + shift - 1) / shift
	buf := make([]byte, ndigits)
	for j := 0; j < ndigits; j++ {
		pos := j * shift
		wi, off := pos/32, uint(pos%32)
		v := at(wi) | at(wi+1)<<32
		buf[ndigits-1-j] = Digits[(v>>off)&mask]
	}

	if tail == 0 {
		s := strings.TrimLeft(string(buf), "0")
		if s == "" {
			return "0"
		}
		return s
	}

	sign := Digits[base-1 : base]
	return "..." + strings.Repeat(sign, signRun) + strings.TrimLeft(string(buf), sign)
}

// FormatDivide renders finite words (least significant first) in any base in
// [2, 36] by repeated division of the whole value by base.
func FormatDivide(words []uint32, base int) string {
	n := trim(append([]uint32(nil), words...))
	if len(n) == 0 {
		return "0"
	}

	b := uint64(base)
	out := make([]byte, 0, len(n)*32)
	for len(n) > 0 {
		var r uint64
		for i := len(n) - 1; i >= 0; i-- {
			cur := r<<32 | uint64(n[i])
			n[i] = uint32(cur / b)
			r = cur % b
		}
		out = append(out, Digits[r])
		n = trim(n)
	}

	for i, j := 0, len(out)-1; i < j; i, j = i+1, j-1 {
		out[i], out[j] = out[j], out[i]
	}
	return string(out)
}

// trim drops high zero words.
func trim(n []uint32) []uint32 {
	for len(n) > 0 && n[len(n)-1] == 0 {
		n = n[:len(n)-1]
	}
	return n
}
