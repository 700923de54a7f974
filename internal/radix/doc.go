// Package radix converts between digit strings and little-endian []uint32
// word vectors with an optional infinite extension word.
//
// Parsing splits the digit string from its least significant end into
// word-sized chunks (32 binary digits, 16 base-4 digits or 8 hex digits)
// and decodes each chunk independently.
//
// Rendering has two paths:
//
//   - Power-of-two bases: grouped bit extraction straight from the words.
//     Works for infinite (all-ones) extensions, which render as "..." plus
//     a short run of the sign digit.
//   - Other bases: schoolbook long division of the whole vector by the base,
//     collecting remainders. Finite vectors only.
package radix
