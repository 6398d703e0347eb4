package runstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

const defaultReportsDir = ".romconv/reports"

// JSONStore writes one JSON document per run report.
type JSONStore struct {
	dir        string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables a simple JSONL index: <dir>/index.jsonl
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(cfg domain.ReportsConfig, opts ...Option) *JSONStore {
	dir := cfg.Dir
	if strings.TrimSpace(dir) == "" {
		dir = defaultReportsDir
	}

	s := &JSONStore{
		dir:        dir,
		writeIndex: false,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.ReportStore = (*JSONStore)(nil)

type reportDoc struct {
	Source    string      `json:"source,omitempty"`
	StartedAt time.Time   `json:"started_at"`
	Failures  int         `json:"failures"`
	Jobs      []resultDoc `json:"jobs"`
}

type resultDoc struct {
	Name       string `json:"name"`
	Kind       string `json:"kind"`
	Input      string `json:"input"`
	Output     string `json:"output"`
	Lines      int    `json:"lines"`
	Skipped    int    `json:"skipped"`
	DurationMS int64  `json:"duration_ms"`
	Error      string `json:"error,omitempty"`
	ErrorKind  string `json:"error_kind,omitempty"`
}

func (s *JSONStore) SaveReport(report domain.Report) (string, error) {
	if err := os.MkdirAll(s.dir, 0o755); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.mkdir",
			Kind: domain.KindIO,
			Path: s.dir,
			Err:  err,
		}
	}

	ts := report.StartedAt
	if ts.IsZero() {
		ts = s.now()
	}
	ts = ts.UTC()

	namePart := "defaults"
	if strings.TrimSpace(report.Source) != "" {
		namePart = filepath.Base(filepath.Dir(report.Source))
	}
	slug := slugify(namePart)
	if slug == "" {
		slug = "run"
	}

	// Reports saved within the same millisecond get a -2, -3, ... suffix.
	base := fmt.Sprintf("%s_%s", ts.Format("20060102T150405.000Z"), slug)
	id := base
	for n := 2; fileExists(filepath.Join(s.dir, id+".json")); n++ {
		id = fmt.Sprintf("%s-%d", base, n)
	}
	filename := id + ".json"
	path := filepath.Join(s.dir, filename)

	doc := toDoc(report, ts)

	b, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return "", &domain.OpError{
			Op:   "runstore.marshal",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	// Atomic-ish write: tmp then rename.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return "", &domain.OpError{
			Op:   "runstore.write",
			Kind: domain.KindIO,
			Path: tmp,
			Err:  err,
		}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return "", &domain.OpError{
			Op:   "runstore.rename",
			Kind: domain.KindIO,
			Path: path,
			Err:  err,
		}
	}

	if s.writeIndex {
		_ = s.appendIndex(id, filename, doc)
	}

	return id, nil
}

func toDoc(report domain.Report, ts time.Time) reportDoc {
	doc := reportDoc{
		Source:    report.Source,
		StartedAt: ts,
		Failures:  report.Failures(),
		Jobs:      make([]resultDoc, 0, len(report.Results)),
	}

	for _, r := range report.Results {
		rd := resultDoc{
			Name:       r.Job.Name,
			Kind:       string(r.Job.Kind),
			Input:      r.Job.Input,
			Output:     r.Job.Output,
			Lines:      r.Units,
			Skipped:    r.Skipped,
			DurationMS: r.Duration.Milliseconds(),
		}
		if r.Err != nil {
			rd.Error = r.Err.Error()
			rd.ErrorKind = errorKind(r.Err)
		}
		doc.Jobs = append(doc.Jobs, rd)
	}
	return doc
}

func errorKind(err error) string {
	for _, k := range []domain.ErrorKind{domain.KindNotFound, domain.KindFormat, domain.KindIO, domain.KindInvalidConfig} {
		if domain.IsKind(err, k) {
			return string(k)
		}
	}
	return "unknown"
}

func (s *JSONStore) appendIndex(id, filename string, doc reportDoc) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Source    string    `json:"source,omitempty"`
		Jobs      int       `json:"jobs"`
		Failures  int       `json:"failures"`
		StartedAt time.Time `json:"started_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      filename,
		Source:    doc.Source,
		Jobs:      len(doc.Jobs),
		Failures:  doc.Failures,
		StartedAt: doc.StartedAt,
	})
	if err != nil {
		return err
	}

	indexPath := filepath.Join(s.dir, "index.jsonl")
	f, err := os.OpenFile(indexPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return err
	}
	defer f.Close()

	_, _ = f.Write(append(line, '\n'))
	return nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ""
	}

	var b strings.Builder
	b.Grow(len(s))

	lastDash := false
	for _, r := range s {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}

	return strings.Trim(b.String(), "-")
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
