// Package kernel provides the word-level primitives behind the bitset
// package: per-word boolean operators over []uint32, population count,
// leading and trailing zero counts.
//
// # Kernels
//
// Population count has two implementations:
//
//   - Generic: branchless SWAR reduction (pairwise bit-field additions)
//   - Hardware: math/bits.OnesCount32, lowered to POPCNT/CNT by the compiler
//
// The kernel is selected once at init from the CPU features reported by
// golang.org/x/sys/cpu. Set BITSET_KERNEL=generic to force the SWAR kernel.
// Both kernels return identical results.
//
// Leading and trailing zero counts are derived from the population count
// (bit smearing for nlz, the x^(x-1) mask for ntz), so they inherit the
// selected kernel.
package kernel
