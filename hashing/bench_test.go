package hashing_test

import (
	"testing"

	"github.com/hasbyte1/argonia/hashing"
)

// The derivation dominates every benchmark here; BenchmarkInfo measures the
// PHC codec on its own.

func BenchmarkHash_Default(b *testing.B) {
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Hash("bench-password")
	}
}

func BenchmarkVerify_Default(b *testing.B) {
	hash, _ := hashing.Hash("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Verify(hash, "bench-password")
	}
}

func BenchmarkHash_Fast(b *testing.B) {
	h, _ := hashing.NewHasher(fastParams())
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = h.Hash("bench-password")
	}
}

func BenchmarkInfo(b *testing.B) {
	hash, _ := hashing.Hash("bench-password")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _ = hashing.Info(hash)
	}
}
