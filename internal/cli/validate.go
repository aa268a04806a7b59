package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// ValidationResult is the JSON shape of the validate command.
type ValidationResult struct {
	Valid bool   `json:"valid"`
	Name  string `json:"name"`
	Nodes int    `json:"nodes"`
	Edges int    `json:"edges"`
}

// NewValidateCommand creates the validate command.
func NewValidateCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <problem.yaml>",
		Short: "Check a problem file without searching",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := rootOpts.loadProblem(args[0])
			if err != nil {
				return err
			}
			res := ValidationResult{Valid: true, Name: p.Name, Nodes: len(p.Nodes), Edges: len(p.Edges)}
			out := &OutputFormatter{Format: rootOpts.Format, Writer: cmd.OutOrStdout()}
			if rootOpts.Format == "json" {
				return out.JSON(res)
			}
			_, err = fmt.Fprintf(out.Writer, "ok: %s (%d nodes, %d edges)\n", res.Name, res.Nodes, res.Edges)
			return err
		},
	}
}
