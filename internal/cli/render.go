package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqpaths/core"
	"github.com/katalvlaran/eqpaths/render"
)

type renderOpts struct {
	output      string   // .svg or .dot
	layout      string   // graphviz engine
	hideWeights bool     // omit edge labels
	exclude     []string // edges "a-b" no path may use
	strict      bool
}

func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{layout: render.DefaultOptions().Layout}

	cmd := &cobra.Command{
		Use:   "render <graph-file> <source> <destination>",
		Short: "Draw the graph with the distinct paths of one query highlighted",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.output == "" {
				return fmt.Errorf("render: --output is required")
			}
			return c.runRender(cmd.Context(), args, opts)
		},
	}
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (.svg or .dot)")
	cmd.Flags().StringVar(&opts.layout, "layout", opts.layout, "graphviz layout engine: neato, dot, circo, fdp")
	cmd.Flags().BoolVar(&opts.hideWeights, "hide-weights", false, "do not label edges with weights")
	cmd.Flags().StringSliceVar(&opts.exclude, "exclude", nil, "edge a-b to avoid (repeatable or comma-separated)")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "reject files whose edge lines differ from the declared count")

	return cmd
}

func (c *CLI) runRender(ctx context.Context, args []string, opts renderOpts) error {
	ext := strings.ToLower(filepath.Ext(opts.output))
	if ext != ".svg" && ext != ".dot" {
		return fmt.Errorf("render: unsupported output extension %q (want .svg or .dot)", ext)
	}
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

	data, err := c.draw(ctx, g, paths, []core.NodeID{src, dst}, ext, opts)
	if err != nil {
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return fmt.Errorf("render: %w", err)
	}
	printSuccess(c.stderr, "Wrote "+opts.output, fmt.Sprintf("%d paths", len(paths)))

	return nil
}

func (c *CLI) draw(ctx context.Context, g *core.Graph, paths []core.Path, endpoints []core.NodeID, ext string, opts renderOpts) ([]byte, error) {
	dot, err := render.ToDOT(g, paths, render.Options{
		Layout:      opts.layout,
		HideWeights: opts.hideWeights,
		Endpoints:   endpoints,
	})
	if err != nil {
		return nil, err
	}
	if ext == ".dot" {
		return []byte(dot), nil
	}

	prog := newProgress(loggerFromContext(ctx))
	svg, err := render.RenderSVG(ctx, dot)
	if err != nil {
		return nil, err
	}
	prog.done("Rendered SVG")

	return svg, nil
}
