package cli

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/pq"
	"github.com/katalvlaran/bestfirst/problem"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose  bool
	Format   string // "text" | "json"
	Queue    string // "pairing" | "binary"
	Priority string // empty keeps the problem file's mode
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// ValidQueues defines the allowed frontier implementations.
var ValidQueues = []string{"pairing", "binary"}

// NewRootCommand creates the root command for the bestfirst CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "bestfirst",
		Short: "Best-first search over graph problems",
		Long:  "Answer reachability and path queries over YAML graph problems with a best-first search engine.",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return WrapExitError(ExitCommandError, "flags", fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats))
			}
			if !slices.Contains(ValidQueues, opts.Queue) {
				return WrapExitError(ExitCommandError, "flags", fmt.Errorf("invalid queue %q: must be one of %v", opts.Queue, ValidQueues))
			}
			if opts.Priority != "" {
				if _, err := problem.ParsePriority(opts.Priority); err != nil {
					return WrapExitError(ExitCommandError, "flags", err)
				}
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	// Parse failures (unknown flag, malformed value) are bad input too.
	cmd.SetFlagErrorFunc(func(_ *cobra.Command, err error) error {
		return WrapExitError(ExitCommandError, "flags", err)
	})

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "debug logging to stderr")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (text|json)")
	cmd.PersistentFlags().StringVar(&opts.Queue, "queue", "pairing", "frontier implementation (pairing|binary)")
	cmd.PersistentFlags().StringVar(&opts.Priority, "priority", "", "override the file's priority mode (heuristic|distance|depth)")

	cmd.AddCommand(NewExistsCommand(opts))
	cmd.AddCommand(NewPathCommand(opts))
	cmd.AddCommand(NewValidateCommand(opts))

	return cmd
}

// logger returns a debug text logger on stderr when verbose, else a discarding one.
func (o *RootOptions) logger(cmd *cobra.Command) *slog.Logger {
	if !o.Verbose {
		return slog.New(slog.DiscardHandler)
	}

	return slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: slog.LevelDebug}))
}

// queueFactory maps the --queue flag to a frontier factory.
func (o *RootOptions) queueFactory() pq.Factory[string, float64] {
	if o.Queue == "binary" {
		return pq.BinaryFactory[string, float64]()
	}

	return pq.PairingFactory[string, float64]()
}

// loadProblem reads path and applies the --priority override.
func (o *RootOptions) loadProblem(path string) (*problem.Problem, error) {
	p, err := problem.LoadFile(path)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "load problem", err)
	}
	if o.Priority != "" {
		pr, err := problem.ParsePriority(o.Priority)
		if err != nil {
			return nil, WrapExitError(ExitCommandError, "priority", err)
		}
		p.Priority = pr
	}

	return p, nil
}
