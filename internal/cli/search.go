package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/bestfirst/search"
)

// NewExistsCommand creates the exists command.
func NewExistsCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "exists <problem.yaml>",
		Short: "Report whether a goal is reachable from the start",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd, search.ModeExistence)
		},
	}
}

// NewPathCommand creates the path command.
func NewPathCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "path <problem.yaml>",
		Short: "Print a path from the start to a goal",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSearch(rootOpts, args[0], cmd, search.ModePath)
		},
	}
}

func runSearch(opts *RootOptions, file string, cmd *cobra.Command, mode search.Mode) error {
	p, err := opts.loadProblem(file)
	if err != nil {
		return err
	}
	eng, err := p.Engine(
		search.WithContext[string](cmd.Context()),
		search.WithQueue(opts.queueFactory()),
		search.WithLogger[string](opts.logger(cmd)),
	)
	if err != nil {
		return WrapExitError(ExitCommandError, "build engine", err)
	}

	report := Report{Problem: p.Name, Priority: string(p.Priority), Queue: opts.Queue}
	out := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout()}

	if mode == search.ModeExistence {
		found, err := eng.ExistsContext(cmd.Context())
		if err != nil {
			return WrapExitError(ExitFailure, "search", err)
		}
		report.Reachable = found
		fill(&report, eng.LastStats())

		return out.Exists(report)
	}

	path, err := eng.PathContext(cmd.Context())
	if err != nil {
		return WrapExitError(ExitFailure, "search", err)
	}
	report.Reachable = len(path) > 0
	report.Path = path
	if len(path) > 0 {
		report.Hops = len(path) - 1
		report.Weight = eng.PathWeight(path)
	}
	fill(&report, eng.LastStats())

	return out.Path(report)
}

func fill(r *Report, st search.Stats) {
	r.Expanded = st.Expanded
	r.Stale = st.Stale
	r.Inserted = st.Inserted
}
