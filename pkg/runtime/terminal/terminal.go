package terminal

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/fleet-tools/fleet-atlas/pkg/runtime/terminal/commands"
	"github.com/fleet-tools/fleet-atlas/pkg/runtime/terminal/export"
	"github.com/fleet-tools/fleet-atlas/pkg/services/report"
)

// CLI represents the command-line interface
type CLI struct {
	reports  report.Service
	reporter *export.Reporter
	rootCmd  *cobra.Command
}

// Options contain configuration for the CLI
type Options struct {
	Reports report.Service
	Output  io.Writer
}

// NewCLI creates a new CLI instance
func NewCLI(opts Options) *CLI {
	if opts.Output == nil {
		opts.Output = os.Stdout
	}

	cli := &CLI{
		reports:  opts.Reports,
		reporter: export.NewReporter(opts.Output),
	}

	cli.rootCmd = cli.newRootCmd()
	return cli
}

func (cli *CLI) Execute() error {
	return cli.rootCmd.Execute()
}

func (cli *CLI) newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "fleet-report",
		Short: "Fleet reporting tool",
	}

	cmd.AddCommand(commands.NewTemplatesCmd(cli.reports, cli.rootOutput()))
	cmd.AddCommand(commands.NewGenerateCmd(cli.reports, cli.reporter))

	return cmd
}

func (cli *CLI) rootOutput() io.Writer {
	return cli.reporter.Writer()
}
