// Package conv provides safe integer type conversion utilities.
//
// These functions perform bounds checking at the boundaries where a bit
// index (uint) has to become a slice length (int) or a roaring member
// (uint32).
//
// For conversions that are provably safe by domain constraints (e.g., loop
// indices, word offsets), use direct type casts instead to avoid overhead.
package conv
