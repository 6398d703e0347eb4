package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/infra/manifest"
)

func runCmd(opts *rootOptions) *cobra.Command {
	var manifestPath string

	c := &cobra.Command{
		Use:   "run",
		Short: "Run the jobs of romconv.yaml (or both stock conversions when there is none)",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			path, found, err := resolveManifest(manifestPath)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), newTheme(cmd.OutOrStdout()).failure(fmt.Sprintf("Error: %v", err)))
				return nil
			}

			if !found {
				return executeJobs(cmd, opts, "", domain.DefaultConfig(), domain.DefaultJobs())
			}

			m, err := manifest.NewLoader().LoadManifest(path)
			if err != nil {
				fmt.Fprintln(cmd.OutOrStdout(), newTheme(cmd.OutOrStdout()).failure(fmt.Sprintf("Error: %v", err)))
				return nil
			}
			return executeJobs(cmd, opts, m.Path, m.Config, m.Jobs)
		},
	}

	c.Flags().StringVarP(&manifestPath, "manifest", "m", "", "manifest file or directory (optional; autodetected if omitted)")
	return c
}
