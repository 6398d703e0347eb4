package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romconv/internal/domain"
)

type rootOptions struct {
	debug   bool
	logFile string
}

func Execute() {
	os.Exit(execute(newRootCmd()))
}

// ExecuteStandalone runs a single stock conversion with its historical file
// names and no arguments.
func ExecuteStandalone(kind domain.Kind) {
	os.Exit(execute(newStandaloneCmd(kind)))
}

func execute(cmd *cobra.Command) int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.ExecuteContext(ctx); err != nil {
		return 1
	}
	return 0
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}

	cmd := &cobra.Command{
		Use:          "romconv",
		Short:        "romconv — audio sample to ROM init file converter",
		SilenceUsage: true,
	}

	addPersistentFlags(cmd, opts)

	cmd.AddCommand(
		bin2hexCmd(opts),
		hex2binCmd(opts),
		runCmd(opts),
		initCmd(),
		versionCmd(),
	)
	return cmd
}

func newStandaloneCmd(kind domain.Kind) *cobra.Command {
	opts := &rootOptions{}

	var cmd *cobra.Command
	switch kind {
	case domain.KindHexToBin:
		cmd = hex2binCmd(opts)
		cmd.Use = "hextobin"
	default:
		cmd = bin2hexCmd(opts)
		cmd.Use = "bintohex"
	}
	cmd.SilenceUsage = true

	addPersistentFlags(cmd, opts)
	return cmd
}

func addPersistentFlags(cmd *cobra.Command, opts *rootOptions) {
	cmd.PersistentFlags().BoolVar(&opts.debug, "debug", false, "enable verbose logging (needs a log file)")
	cmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write JSON logs to this file")
}
