// Command bestfirst answers reachability and path queries over YAML graph
// problems.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/katalvlaran/bestfirst/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.NewRootCommand().ExecuteContext(ctx)
	stop()
	os.Exit(cli.GetExitCode(err))
}
