package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqpaths/batch"
	"github.com/katalvlaran/eqpaths/config"
	"github.com/katalvlaran/eqpaths/report"
)

func (c *CLI) allCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "all <graph-file>",
		Short: "Report distinct paths for every ordered pair of nodes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runAll(cmd.Context(), args[0], strict)
		},
	}
	cmd.Flags().BoolVar(&strict, "strict", false, "reject files whose edge lines differ from the declared count")

	return cmd
}

func (c *CLI) runAll(ctx context.Context, path string, strict bool) error {
	logger := loggerFromContext(ctx)

	g, err := c.load(ctx, path, strict)
	if err != nil {
		return err
	}

	stats, err := batch.Run(ctx, g, c.emitter(),
		batch.WithWorkers(c.cfg.Workers),
		batch.WithFinderOptions(c.cfg.FinderOptions()...),
		batch.WithLogger(logger),
	)
	if err != nil {
		return fmt.Errorf("all: %w", err)
	}
	if c.cfg.Format == config.FormatText {
		return report.Summary(c.stdout, stats.Elapsed)
	}

	return nil
}
