// Package cli implements the eqpaths command-line interface.
//
// # Commands
//
//   - all:      distinct paths for every ordered pair of a graph file
//   - query:    distinct paths for one pair, optionally avoiding edges
//   - render:   DOT or SVG drawing of one query
//   - generate: write a synthetic graph file
//
// # Configuration
//
// Settings come from config.Default, then the optional --config TOML file,
// then any global flag given explicitly on the command line.
//
// # Logging
//
// Logs go to stderr through charmbracelet/log. --verbose (-v) selects debug
// level; otherwise log_level from the configuration applies. The logger is
// carried in the command context.
package cli

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/eqpaths/config"
	"github.com/katalvlaran/eqpaths/report"
)

const appName = "eqpaths"

// Version is reported by --version.
var Version = "dev"

// CLI holds the state shared by all commands.
type CLI struct {
	Logger *log.Logger

	stdout io.Writer
	stderr io.Writer
	cfg    config.Config
	flags  globalFlags
}

// globalFlags mirror the configuration keys that can be set per invocation.
type globalFlags struct {
	configPath string
	verbose    bool
	format     string
	maxPaths   int
	workers    int
	tolerance  float64
	color      bool
}

// New creates a CLI writing results to stdout and logs to stderr.
func New(stdout, stderr io.Writer) *CLI {
	return &CLI{
		Logger: newLogger(stderr, log.InfoLevel),
		stdout: stdout,
		stderr: stderr,
		cfg:    config.Default(),
	}
}

// RootCommand creates the root command with every subcommand registered.
func (c *CLI) RootCommand() *cobra.Command {
	def := config.Default()
	root := &cobra.Command{
		Use:          appName,
		Short:        "eqpaths finds edge-disjoint shortest paths of equal cost",
		Long:         `eqpaths loads an undirected weighted graph and reports, for a pair of nodes, up to K shortest paths that share no edge and all have the minimum cost.`,
		Version:      Version,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := c.resolveConfig(cmd); err != nil {
				return err
			}
			cmd.SetContext(withLogger(cmd.Context(), c.Logger))
			return nil
		},
	}
	root.SetOut(c.stdout)
	root.SetErr(c.stderr)

	pf := root.PersistentFlags()
	pf.StringVar(&c.flags.configPath, "config", "", "TOML configuration file")
	pf.BoolVarP(&c.flags.verbose, "verbose", "v", false, "enable verbose logging")
	pf.StringVar(&c.flags.format, "format", def.Format, "output format: text, json")
	pf.IntVar(&c.flags.maxPaths, "max-paths", def.MaxPaths, "maximum number of paths per pair")
	pf.IntVar(&c.flags.workers, "workers", def.Workers, "sources processed in parallel (all)")
	pf.Float64Var(&c.flags.tolerance, "tolerance", def.Tolerance, "largest cost difference still treated as equal")
	pf.BoolVar(&c.flags.color, "color", def.Color, "style text output for terminals")

	root.AddCommand(c.allCommand())
	root.AddCommand(c.queryCommand())
	root.AddCommand(c.renderCommand())
	root.AddCommand(c.generateCommand())

	return root
}

// resolveConfig layers defaults, the config file and explicit flags, then
// sets the log level.
func (c *CLI) resolveConfig(cmd *cobra.Command) error {
	cfg := config.Default()
	if c.flags.configPath != "" {
		loaded, err := config.Load(c.flags.configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("format") {
		cfg.Format = c.flags.format
	}
	if flags.Changed("max-paths") {
		cfg.MaxPaths = c.flags.maxPaths
	}
	if flags.Changed("workers") {
		cfg.Workers = c.flags.workers
	}
	if flags.Changed("tolerance") {
		cfg.Tolerance = c.flags.tolerance
	}
	if flags.Changed("color") {
		cfg.Color = c.flags.color
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	c.cfg = cfg

	level := log.DebugLevel
	if !c.flags.verbose {
		parsed, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return fmt.Errorf("%w: log_level=%q", config.ErrInvalid, cfg.LogLevel)
		}
		level = parsed
	}
	c.Logger.SetLevel(level)
	c.Logger.Debug("configuration resolved", "max_paths", cfg.MaxPaths, "tolerance", cfg.Tolerance,
		"workers", cfg.Workers, "format", cfg.Format)

	return nil
}

// emitter returns the result writer selected by the configuration.
func (c *CLI) emitter() report.Emitter {
	if c.cfg.Format == config.FormatJSON {
		return report.NewJSON(c.stdout)
	}
	return report.NewText(c.stdout, report.WithStyle(c.cfg.Color))
}
