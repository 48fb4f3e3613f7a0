// Package core_test verifies that a built Graph can be read concurrently.
package core_test

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

// TestConcurrentReads runs many readers against one sealed graph; with -race
// this would flag any hidden mutation on the read path.
func TestConcurrentReads(t *testing.T) {
	g := buildSquare(t)
	const readers = 32
	var wg sync.WaitGroup
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func(id int) {
			defer wg.Done()
			u := id % g.NodeCount()
			total := 0
			for _, e := range g.Neighbors(u) {
				require.True(t, g.HasEdge(e.From, e.To))
				total++
			}
			require.Equal(t, g.Degree(u), total)
		}(i)
	}
	wg.Wait()
}
