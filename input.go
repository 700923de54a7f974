package bitset

// Input is a constructor or operand value. It is a closed set of variants:
//
//   - nil: the empty set
//   - Uint: the low 32 bits of an integer
//   - String: a binary ("0b" optional) or hex ("0x" required) digit string
//   - Indices: the listed members, optionally with the Infinity marker
//   - Bytes: a little-endian packed bit vector
//   - *BitSet: a copy of another set
type Input interface {
	input()
}

// Uint is an integer whose low 32 bits form the set.
type Uint uint64

// String is a binary or hexadecimal digit string, most significant digit
// first. Binary strings match (0b)?[01]+, hex strings match 0x[0-9a-f]+
// (case-insensitive).
type String string

// Indices lists members of the set. If Infinity appears anywhere in the
// list, every index greater than the largest listed index is a member as
// well (every index at all when no finite index is listed).
type Indices []uint

// Bytes is a bit vector packed 8 bits per byte: byte i holds bits
// 8i..8i+7, least significant bit first.
type Bytes []byte

func (Uint) input()    {}
func (String) input()  {}
func (Indices) input() {}
func (Bytes) input()   {}
func (*BitSet) input() {}

func inputKind(in Input) string {
	switch in.(type) {
	case nil:
		return "nil"
	case Uint:
		return "uint"
	case String:
		return "string"
	case Indices:
		return "indices"
	case Bytes:
		return "bytes"
	case *BitSet:
		return "bitset"
	default:
		return "unknown"
	}
}
