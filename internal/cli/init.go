package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aalvaropc/romconv/internal/infra/fsworkspace"
	"github.com/aalvaropc/romconv/internal/usecase"
)

func initCmd() *cobra.Command {
	var path string
	var force bool

	c := &cobra.Command{
		Use:   "init",
		Short: "Write a starter romconv.yaml",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			root, err := resolveWorkspaceRoot(path)
			if err != nil {
				return err
			}

			uc := usecase.NewInitWorkspace(fsworkspace.NewInitializer())
			if err := uc.Execute(root, force); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Workspace ready at %s\n", root)
			return nil
		},
	}

	c.Flags().StringVarP(&path, "path", "p", ".", "directory to initialize")
	c.Flags().BoolVar(&force, "force", false, "overwrite an existing romconv.yaml")
	return c
}
