package kernel

// Op is a binary boolean operator applied word by word.
type Op uint8

const (
	// And is x & y.
	And Op = iota
	// Or is x | y.
	Or
	// Xor is x ^ y.
	Xor
	// AndNot is x &^ y.
	AndNot
	// Nand is ^(x & y).
	Nand
	// Nor is ^(x | y).
	Nor
)

// String returns the operator name.
func (op Op) String() string {
	switch op {
	case And:
		return "and"
	case Or:
		return "or"
	case Xor:
		return "xor"
	case AndNot:
		return "andnot"
	case Nand:
		return "nand"
	case Nor:
		return "nor"
	default:
		return "unknown"
	}
}

// Word applies op to a single pair of words.
func (op Op) Word(x, y uint32) uint32 {
	switch op {
	case And:
		return x & y
	case Or:
		return x | y
	case Xor:
		return x ^ y
	case AndNot:
		return x &^ y
	case Nand:
		return ^(x & y)
	case Nor:
		return ^(x | y)
	default:
		panic("kernel: unknown op")
	}
}

// Apply performs dst[i] = op(dst[i], src[i]) for every i < len(dst).
// src must be at least as long as dst.
func Apply(op Op, dst, src []uint32) {
	src = src[:len(dst)]
	switch op {
	case And:
		andWords(dst, src)
	case Or:
		orWords(dst, src)
	case Xor:
		xorWords(dst, src)
	case AndNot:
		andNotWords(dst, src)
	case Nand:
		andWords(dst, src)
		NotWords(dst)
	case Nor:
		orWords(dst, src)
		NotWords(dst)
	default:
		panic("kernel: unknown op")
	}
}

// ApplyConst performs dst[i] = op(dst[i], c) for every i.
// Constants 0 and AllOnes (the only extension words) take a fill or
// negate fast path.
func ApplyConst(op Op, dst []uint32, c uint32) {
	if c != 0 && c != AllOnes {
		for i := range dst {
			dst[i] = op.Word(dst[i], c)
		}
		return
	}

	switch op {
	case And:
		if c == 0 {
			Fill(dst, 0)
		}
	case Or:
		if c == AllOnes {
			Fill(dst, AllOnes)
		}
	case Xor:
		if c == AllOnes {
			NotWords(dst)
		}
	case AndNot:
		if c == AllOnes {
			Fill(dst, 0)
		}
	case Nand:
		if c == 0 {
			Fill(dst, AllOnes)
		} else {
			NotWords(dst)
		}
	case Nor:
		if c == AllOnes {
			Fill(dst, 0)
		} else {
			NotWords(dst)
		}
	default:
		panic("kernel: unknown op")
	}
}

// NotWords performs dst[i] = ^dst[i].
func NotWords(dst []uint32) {
	for i := range dst {
		dst[i] = ^dst[i]
	}
}

// Fill sets every word of dst to v.
func Fill(dst []uint32, v uint32) {
	for i := range dst {
		dst[i] = v
	}
}

func andWords(dst, src []uint32) {
	// Process 4 words at a time (unrolled)
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &= src[i]
		dst[i+1] &= src[i+1]
		dst[i+2] &= src[i+2]
		dst[i+3] &= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &= src[i]
	}
}

func andNotWords(dst, src []uint32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] &^= src[i]
		dst[i+1] &^= src[i+1]
		dst[i+2] &^= src[i+2]
		dst[i+3] &^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] &^= src[i]
	}
}

func orWords(dst, src []uint32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] |= src[i]
		dst[i+1] |= src[i+1]
		dst[i+2] |= src[i+2]
		dst[i+3] |= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] |= src[i]
	}
}

func xorWords(dst, src []uint32) {
	i := 0
	for ; i+4 <= len(dst); i += 4 {
		dst[i] ^= src[i]
		dst[i+1] ^= src[i+1]
		dst[i+2] ^= src[i+2]
		dst[i+3] ^= src[i+3]
	}
	for ; i < len(dst); i++ {
		dst[i] ^= src[i]
	}
}
