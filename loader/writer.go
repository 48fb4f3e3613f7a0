// SPDX-License-Identifier: MIT
// Package: eqpaths/loader
//
// writer.go - Write, the inverse of Parse.

package loader

import (
	"bufio"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/eqpaths/core"
)

// Write renders g in the format Parse reads, edges in insertion order.
func Write(w io.Writer, g *core.Graph) error {
	if g == nil {
		return fmt.Errorf("loader: nil graph")
	}
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "%d # number of nodes\n", g.NodeCount())
	fmt.Fprintf(bw, "%d # number of edges\n", g.EdgeCount())
	for _, e := range g.Edges() {
		fmt.Fprintf(bw, "(%c%d %c%d) %s\n",
			nodePrefix, e.From, nodePrefix, e.To,
			strconv.FormatFloat(e.Weight, 'g', -1, 64))
	}

	return bw.Flush()
}
