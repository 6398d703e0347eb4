package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/infra/logger"
	"github.com/aalvaropc/romconv/internal/infra/romfile"
	"github.com/aalvaropc/romconv/internal/infra/runstore"
	"github.com/aalvaropc/romconv/internal/usecase"
)

// executeJobs runs jobs and prints one line per job. Conversion failures are
// reported, never returned: the process exits 0 either way.
func executeJobs(cmd *cobra.Command, opts *rootOptions, source string, cfg domain.Config, jobs []domain.Job) error {
	out := cmd.OutOrStdout()
	errOut := cmd.ErrOrStderr()

	logPath := strings.TrimSpace(opts.logFile)
	if logPath == "" {
		logPath = cfg.LogFile
	}
	cleanup, lerr := logger.Setup(logger.Config{Path: logPath, Debug: opts.debug})
	if lerr != nil {
		fmt.Fprintln(errOut, newTheme(errOut).warning(fmt.Sprintf("warning: logging disabled: %v", lerr)))
	}
	if cleanup != nil {
		defer func() { _ = cleanup() }()
	}

	convert := usecase.NewConvert(
		romfile.NewByteToHex(),
		romfile.NewHexToBin(),
		usecase.WithLogger(logger.L()),
	)

	var runOpts []usecase.RunOption
	if cfg.Reports.Enabled {
		runOpts = append(runOpts, usecase.WithReportStore(runstore.NewJSONStore(cfg.Reports, runstore.WithIndex(true))))
	}

	report, err := usecase.NewRunJobs(convert, runOpts...).Execute(cmd.Context(), source, jobs)

	th := newTheme(out)
	for _, r := range report.Results {
		if r.Failed() {
			fmt.Fprintln(out, th.failure(r.Message()))
			continue
		}
		fmt.Fprintln(out, th.success(r.Message()))
	}

	if err != nil {
		if errors.Is(err, context.Canceled) {
			fmt.Fprintln(out, th.failure("Error: interrupted"))
			return nil
		}
		fmt.Fprintln(errOut, newTheme(errOut).warning(fmt.Sprintf("warning: %v", err)))
	}
	return nil
}
