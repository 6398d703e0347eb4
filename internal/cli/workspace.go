package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/infra/workspacefinder"
)

// resolveManifest returns the manifest to use. An explicit flag must point at
// something that exists; without one, a missing manifest is not an error.
func resolveManifest(manifestFlag string) (string, bool, error) {
	m := strings.TrimSpace(manifestFlag)
	if m != "" {
		abs, err := filepath.Abs(m)
		if err != nil {
			return "", false, fmt.Errorf("invalid manifest path: %w", err)
		}
		if !fileExists(abs) {
			return "", false, &domain.OpError{
				Op:   "cli.manifest",
				Kind: domain.KindNotFound,
				Path: abs,
				Err:  domain.ErrNotFound,
			}
		}
		return abs, true, nil
	}

	wd, err := os.Getwd()
	if err != nil {
		return "", false, fmt.Errorf("get working directory: %w", err)
	}

	finder := workspacefinder.NewFinder()
	root, err := finder.FindRoot(wd)
	if err != nil {
		if domain.IsKind(err, domain.KindNotFound) {
			return "", false, nil
		}
		return "", false, err
	}
	return finder.ManifestPath(root), true, nil
}

func resolveWorkspaceRoot(pathFlag string) (string, error) {
	p := strings.TrimSpace(pathFlag)
	if p == "" {
		p = "."
	}
	abs, err := filepath.Abs(p)
	if err != nil {
		return "", fmt.Errorf("invalid workspace path: %w", err)
	}
	return abs, nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
