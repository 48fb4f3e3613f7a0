package pqueue_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/eqpaths/pqueue"
)

func BenchmarkInsertExtract(b *testing.B) {
	const n = 1 << 12
	rng := rand.New(rand.NewSource(1))
	prio := make([]float64, n)
	for i := range prio {
		prio[i] = rng.Float64()
	}
	q := pqueue.New(n)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		q.Reset()
		for v := 0; v < n; v++ {
			q.Insert(v, prio[v])
		}
		for !q.IsEmpty() {
			q.ExtractMin()
		}
	}
}
