package testutil

import (
	"math/rand"
	"sync"
)

// RNG struct encapsulates the random number generator and seed.
// It is thread-safe.
type RNG struct {
	rand *rand.Rand
	seed int64
	mu   sync.Mutex
}

// NewRNG creates a new RNG instance with the specified seed.
func NewRNG(seed int64) *RNG {
	return &RNG{
		rand: rand.New(rand.NewSource(seed)),
		seed: seed,
	}
}

// Reset resets the RNG to its initial seed.
func (r *RNG) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.rand.Seed(r.seed)
}

// Seed returns the initial seed.
func (r *RNG) Seed() int64 {
	return r.seed
}

// Rand returns a new *rand.Rand seeded from this RNG. The returned
// generator is not shared and must not be used concurrently.
func (r *RNG) Rand() *rand.Rand {
	r.mu.Lock()
	defer r.mu.Unlock()
	return rand.New(rand.NewSource(r.rand.Int63()))
}

// Intn returns a non-negative pseudo-random number in [0,n).
func (r *RNG) Intn(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(n)
}

// Uint32 returns a pseudo-random uint32.
func (r *RNG) Uint32() uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Uint32()
}

// Bool returns a pseudo-random boolean.
func (r *RNG) Bool() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.rand.Intn(2) == 1
}

// BinaryString returns n random binary digits. The leading digit is always
// '1' so the string is in canonical form (no leading zeros); n == 0 yields "0".
func (r *RNG) BinaryString(n int) string {
	return r.digits(n, 2)
}

// HexString returns n random lowercase hex digits in canonical form.
func (r *RNG) HexString(n int) string {
	return r.digits(n, 16)
}

func (r *RNG) digits(n, base int) string {
	const alphabet = "0123456789abcdef"
	if n <= 0 {
		return "0"
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, n)
	buf[0] = alphabet[1+r.rand.Intn(base-1)]
	for i := 1; i < n; i++ {
		buf[i] = alphabet[r.rand.Intn(base)]
	}
	return string(buf)
}

// Indices returns count random indices in [0, limit). Duplicates are possible.
func (r *RNG) Indices(count int, limit int) []uint {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint, count)
	for i := range out {
		out[i] = uint(r.rand.Intn(limit))
	}
	return out
}

// Bytes returns n random bytes.
func (r *RNG) Bytes(n int) []byte {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]byte, n)
	for i := range out {
		out[i] = byte(r.rand.Intn(256))
	}
	return out
}

// Words returns n random 32-bit words.
func (r *RNG) Words(n int) []uint32 {
	r.mu.Lock()
	defer r.mu.Unlock()

	out := make([]uint32, n)
	for i := range out {
		out[i] = r.rand.Uint32()
	}
	return out
}
