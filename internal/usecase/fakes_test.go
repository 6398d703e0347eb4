package usecase

import (
	"context"
	"time"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

// stubConverter returns a fixed stats/error pair and records its calls.
type stubConverter struct {
	stats ports.Stats
	err   error
	calls []string
}

func (s *stubConverter) Convert(_ context.Context, input, output string) (ports.Stats, error) {
	s.calls = append(s.calls, input+"->"+output)
	return s.stats, s.err
}

type fakeStore struct {
	saved bool
	last  domain.Report
	err   error
}

func (s *fakeStore) SaveReport(r domain.Report) (string, error) {
	s.saved = true
	s.last = r
	return "report-123", s.err
}

type fakeInitializer struct {
	spec  domain.WorkspaceSpec
	force bool
}

func (f *fakeInitializer) Init(spec domain.WorkspaceSpec, force bool) error {
	f.spec = spec
	f.force = force
	return nil
}

// tickingClock advances by step on every call.
func tickingClock(start time.Time, step time.Duration) func() time.Time {
	cur := start
	return func() time.Time {
		t := cur
		cur = cur.Add(step)
		return t
	}
}
