package ports

import "github.com/aalvaropc/romconv/internal/domain"

// ManifestLoader loads a job list and its settings from a source (e.g., romconv.yaml).
type ManifestLoader interface {
	LoadManifest(path string) (domain.Manifest, error)
}
