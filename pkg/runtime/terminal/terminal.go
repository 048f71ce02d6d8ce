package terminal

import (
	"context"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/ethereumfollowprotocol/team-mcp/pkg/runtime/terminal/commands"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/runtime/terminal/export"
	"github.com/ethereumfollowprotocol/team-mcp/pkg/services/reports"
)

// CLI represents the command-line interface
type CLI struct {
	controller reports.Controller
	reporter   *export.Reporter
	rootCmd    *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Controller reports.Controller
	Output     io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		controller: opts.Controller,
		reporter:   export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

// ExecuteContext runs the CLI with a caller-supplied context, so the
// configured logger reaches the extraction pipeline.
func (cli *CLI) ExecuteContext(ctx context.Context) error {
	return cli.rootCmd.ExecuteContext(ctx)
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "reports",
		Short: "Quarterly report extraction tool",
	}

	cmd.AddCommand(commands.NewListCmd(cli.controller, cli.reporter))
	cmd.AddCommand(commands.NewProcessCmd(cli.controller, cli.reporter))

	return cmd
}
