package cli

import (
	"context"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/dijkstra"
	"github.com/katalvlaran/eqpaths/distinct"
	"github.com/katalvlaran/eqpaths/report"
)

type queryOpts struct {
	exclude []string // edges "a-b" no path may use
	strict  bool
	bound   bool // also compute the exact number of disjoint shortest paths
}

func (c *CLI) queryCommand() *cobra.Command {
	var opts queryOpts

	cmd := &cobra.Command{
		Use:   "query <graph-file> <source> <destination>",
		Short: "Report distinct paths between two nodes",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQuery(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "edge a-b to avoid (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject files whose edge lines differ from the declared count")
	cmd.Flags().BoolVar(&opts.bound, "bound", false, "log how many edge-disjoint shortest paths exist under the same exclusions")

	return cmd
}

func (c *CLI) runQuery(ctx context.Context, args []string, opts queryOpts) error {
	src, dst, err := parsePair(args[1], args[2])
	if err != nil {
		return err
	}
	blocked, err := parseExclusions(opts.exclude)
	if err != nil {
		return err
	}

	g, err := c.load(ctx, args[0], opts.strict)
	if err != nil {
		return err
	}
	paths, err := c.find(ctx, g, src, dst, blocked)
	if err != nil {
		return err
	}
	if opts.bound {
		// Count under the same restrictions the paths were found with.
		searchOpts := append(c.cfg.SearchOptions(), dijkstra.WithExcluded(blocked))
		k, err := distinct.MaxDisjoint(ctx, g, src, dst, searchOpts...)
		if err != nil {
			return fmt.Errorf("query: %w", err)
		}
		loggerFromContext(ctx).Info("disjoint shortest paths", "found", len(paths), "exist", k)
	}

	return c.emitter().Emit(report.Result{Source: src, Destination: dst, Paths: paths})
}

// find runs one distinct-path query with the configured options.
func (c *CLI) find(ctx context.Context, g *core.Graph, src, dst core.NodeID, blocked core.EdgeSet) ([]core.Path, error) {
	logger := loggerFromContext(ctx)

	opts := c.cfg.FinderOptions()
	if blocked.Len() > 0 {
		opts = append(opts, distinct.WithExcludedEdges(blocked))
		logger.Debug("excluding edges", "edges", blocked.Keys())
	}
	paths, err := distinct.FindDistinctPaths(g, src, dst, opts...)
	if err != nil {
		return nil, fmt.Errorf("query: %w", err)
	}
	logger.Debug("query done", "source", src, "destination", dst, "paths", len(paths))

	return paths, nil
}

func parsePair(a, b string) (core.NodeID, core.NodeID, error) {
	src, err := parseNode(a)
	if err != nil {
		return 0, 0, err
	}
	dst, err := parseNode(b)
	if err != nil {
		return 0, 0, err
	}
	return src, dst, nil
}

// parseNode accepts "3" and "N3".
func parseNode(s string) (core.NodeID, error) {
	trimmed := s
	if len(trimmed) > 1 && (trimmed[0] == 'N' || trimmed[0] == 'n') {
		trimmed = trimmed[1:]
	}
	v, err := strconv.Atoi(trimmed)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("invalid node %q: want a non-negative integer", s)
	}
	return v, nil
}

func parseExclusions(specs []string) (core.EdgeSet, error) {
	set := core.NewEdgeSet()
	for _, s := range specs {
		k, err := core.ParseEdgeKey(s)
		if err != nil {
			return nil, fmt.Errorf("--exclude: %w", err)
		}
		set.Add(k)
	}
	return set, nil
}
