package manifest

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aalvaropc/romconv/internal/app/template"
	"github.com/aalvaropc/romconv/internal/domain"
)

// MapManifest converts the YAML DTO into a domain.Manifest. Relative paths
// resolve against the directory holding the manifest.
func MapManifest(path string, ym YAMLManifest) (domain.Manifest, error) {
	base := filepath.Dir(path)

	cfg := domain.DefaultConfig()
	if ym.Romconv.Reports.Enabled != nil {
		cfg.Reports.Enabled = *ym.Romconv.Reports.Enabled
	}
	if d := strings.TrimSpace(ym.Romconv.Reports.Dir); d != "" {
		cfg.Reports.Dir = d
	}
	cfg.Reports.Dir = resolve(base, cfg.Reports.Dir)
	if lf := strings.TrimSpace(ym.Romconv.LogFile); lf != "" {
		cfg.LogFile = resolve(base, lf)
	}

	if len(ym.Jobs) == 0 {
		return domain.Manifest{}, invalidField(path, "jobs", "at least one job is required")
	}

	m := domain.Manifest{
		Path:   path,
		Config: cfg,
		Jobs:   make([]domain.Job, 0, len(ym.Jobs)),
	}

	seen := map[string]bool{}
	for i, j := range ym.Jobs {
		field := fmt.Sprintf("jobs[%d]", i)

		kind, err := domain.ParseKind(j.Kind)
		if err != nil {
			return domain.Manifest{}, invalidField(path, field+".kind", fmt.Sprintf("unknown kind %q (want bin2hex or hex2bin)", j.Kind))
		}

		vars := jobVars(ym.Vars, kind)
		name := strings.TrimSpace(j.Name)
		if name != "" {
			vars["name"] = name
		}

		input, err := template.RenderString(j.Input, vars)
		if err != nil {
			return domain.Manifest{}, invalidField(path, field+".input", err.Error())
		}

		if name == "" {
			name = strings.TrimSuffix(filepath.Base(input), filepath.Ext(input))
			vars["name"] = name
		}
		if seen[name] {
			return domain.Manifest{}, invalidField(path, field+".name", fmt.Sprintf("duplicate job name %q", name))
		}
		seen[name] = true

		output, err := template.RenderString(j.Output, vars)
		if err != nil {
			return domain.Manifest{}, invalidField(path, field+".output", err.Error())
		}

		job := domain.Job{
			Name:   name,
			Kind:   kind,
			Input:  resolveOptional(base, input),
			Output: resolveOptional(base, output),
		}
		if err := job.Validate(); err != nil {
			return domain.Manifest{}, &domain.OpError{
				Op:   "manifest.map",
				Kind: domain.KindInvalidConfig,
				Path: path,
				Err:  fmt.Errorf("field %s: %w", field, err),
			}
		}

		m.Jobs = append(m.Jobs, job)
	}

	return m, nil
}

// jobVars seeds per-job placeholders: manifest vars plus the job kind.
func jobVars(global map[string]string, kind domain.Kind) map[string]string {
	out := make(map[string]string, len(global)+2)
	for k, v := range global {
		out[k] = v
	}
	out["kind"] = string(kind)
	return out
}

func resolve(base, p string) string {
	if filepath.IsAbs(p) {
		return filepath.Clean(p)
	}
	return filepath.Join(base, p)
}

func resolveOptional(base, p string) string {
	if strings.TrimSpace(p) == "" {
		return ""
	}
	return resolve(base, p)
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "manifest.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
