package cli

import (
	"context"
	"fmt"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/loader"
)

// load reads a graph file and logs its size.
func (c *CLI) load(ctx context.Context, path string, strict bool) (*core.Graph, error) {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	var opts []loader.Option
	if strict {
		opts = append(opts, loader.WithStrictCount())
	}
	g, err := loader.LoadFile(path, opts...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Loaded %d nodes, %d edges", g.NodeCount(), g.EdgeCount()))

	return g, nil
}
