package manifest

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
	"gopkg.in/yaml.v3"
)

// FileName is the manifest name looked up in a workspace root.
const FileName = "romconv.yaml"

type Loader struct{}

func NewLoader() *Loader {
	return &Loader{}
}

var _ ports.ManifestLoader = (*Loader)(nil)

// LoadManifest accepts either a manifest file or a directory containing romconv.yaml.
func (l *Loader) LoadManifest(path string) (domain.Manifest, error) {
	p := filepath.Clean(path)
	if info, err := os.Stat(p); err == nil && info.IsDir() {
		p = filepath.Join(p, FileName)
	}

	b, err := os.ReadFile(p)
	if err != nil {
		kind := domain.KindIO
		if errors.Is(err, fs.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Manifest{}, &domain.OpError{
			Op:   "manifest.load",
			Kind: kind,
			Path: p,
			Err:  err,
		}
	}

	var dto YAMLManifest
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.Manifest{}, &domain.OpError{
			Op:   "manifest.load",
			Kind: domain.KindInvalidConfig,
			Path: p,
			Err:  err,
		}
	}

	return MapManifest(p, dto)
}
