package rope_test

import (
	"testing"

	"github.com/katalvlaran/ropesim/motion"
	"github.com/katalvlaran/ropesim/rope"
)

// BenchmarkApplyAll_TenKnots runs a 2000-command random walk on a 10-knot chain.
// Complexity: O(total steps · N).
func BenchmarkApplyAll_TenKnots(b *testing.B) {
	walk := motion.RandomWalk(2024, 2000, 20)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		sim, err := rope.New(10)
		if err != nil {
			b.Fatalf("New: %v", err)
		}
		if err := sim.ApplyAll(walk); err != nil {
			b.Fatalf("ApplyAll: %v", err)
		}
	}
}
