package kernel

import (
	"math/bits"
	"math/rand"
	"testing"
)

var edgeWords = []uint32{
	0, 1, 2, 3, 0x80000000, 0x7FFFFFFF, 0xFFFFFFFF, 0x55555555, 0xAAAAAAAA,
	0x0F0F0F0F, 0xF0F0F0F0, 0x00010000, 0x0000FFFF, 0xFFFF0000, 0x12345678,
}

func TestPopcountKernels(t *testing.T) {
	rng := rand.New(rand.NewSource(42))
	words := append([]uint32{}, edgeWords...)
	for i := 0; i < 1000; i++ {
		words = append(words, rng.Uint32())
	}

	for _, w := range words {
		want := bits.OnesCount32(w)
		if got := popcountGeneric(w); got != want {
			t.Errorf("popcountGeneric(%#x) = %d, want %d", w, got, want)
		}
		if got := popcountHardware(w); got != want {
			t.Errorf("popcountHardware(%#x) = %d, want %d", w, got, want)
		}
		if got := Popcount(w); got != want {
			t.Errorf("Popcount(%#x) = %d, want %d", w, got, want)
		}
	}
}

func TestPopcountWords(t *testing.T) {
	tests := []struct {
		name  string
		words []uint32
		want  int
	}{
		{"Empty", nil, 0},
		{"Single word", []uint32{0xFF}, 8},
		{"4 words (unroll boundary)", []uint32{1, 3, 7, 15}, 10},
		{"5 words (unroll + tail)", []uint32{1, 3, 7, 15, 0xFFFFFFFF}, 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PopcountWords(tt.words); got != tt.want {
				t.Errorf("PopcountWords() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestNLZ(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	words := append([]uint32{}, edgeWords...)
	for i := 0; i < 500; i++ {
		words = append(words, rng.Uint32()>>uint(rng.Intn(32)))
	}

	for _, w := range words {
		if got, want := NLZ(w), bits.LeadingZeros32(w); got != want {
			t.Errorf("NLZ(%#x) = %d, want %d", w, got, want)
		}
	}
}

func TestNTZ(t *testing.T) {
	rng := rand.New(rand.NewSource(9))
	words := append([]uint32{}, edgeWords...)
	for i := 0; i < 500; i++ {
		words = append(words, rng.Uint32()<<uint(rng.Intn(32)))
	}

	for _, w := range words {
		if got, want := NTZ(w), bits.TrailingZeros32(w); got != want {
			t.Errorf("NTZ(%#x) = %d, want %d", w, got, want)
		}
	}
}

func TestLowestBit(t *testing.T) {
	tests := []struct {
		x, want uint32
	}{
		{0, 0},
		{1, 1},
		{0b1100, 0b100},
		{0x80000000, 0x80000000},
		{0xFFFFFFFF, 1},
	}

	for _, tt := range tests {
		if got := LowestBit(tt.x); got != tt.want {
			t.Errorf("LowestBit(%#x) = %#x, want %#x", tt.x, got, tt.want)
		}
	}
}

func TestParseKind(t *testing.T) {
	tests := []struct {
		in   string
		want Kind
		ok   bool
	}{
		{"generic", Generic, true},
		{" SWAR ", Generic, true},
		{"hardware", Hardware, true},
		{"popcnt", Hardware, true},
		{"avx512", Generic, false},
	}

	for _, tt := range tests {
		got, ok := ParseKind(tt.in)
		if got != tt.want || ok != tt.ok {
			t.Errorf("ParseKind(%q) = (%v, %v), want (%v, %v)", tt.in, got, ok, tt.want, tt.ok)
		}
	}
}

func TestActiveKindAvailable(t *testing.T) {
	if !isAvailable(Active()) {
		t.Fatalf("active kernel %v is not available", Active())
	}
	if Active() == Hardware && !HasPopcnt() {
		t.Fatal("hardware kernel selected without popcount support")
	}
}
