package grid_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/gridpath/grid"
)

// BenchmarkConnectedComponents measures ConnectedComponents on a random
// 1000×1000 board with roughly 30% obstacles.
// Complexity: O(R×C×4)
func BenchmarkConnectedComponents(b *testing.B) {
	const n = 1000
	r := rand.New(rand.NewSource(42))
	values := make([][]int, n)
	for i := range values {
		row := make([]int, n)
		for j := range row {
			row[j] = r.Intn(10)
		}
		values[i] = row
	}
	g, err := grid.FromFunc(values, func(v int) bool { return v < 3 })
	if err != nil {
		b.Fatalf("setup FromFunc failed: %v", err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = g.ConnectedComponents()
	}
}
