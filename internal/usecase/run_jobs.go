package usecase

import (
	"context"
	"fmt"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

// RunJobs runs jobs one after another. A failing job does not stop the next.
type RunJobs struct {
	convert *Convert
	store   ports.ReportStore
}

type RunOption func(*RunJobs)

// WithReportStore persists the final report.
func WithReportStore(s ports.ReportStore) RunOption {
	return func(uc *RunJobs) { uc.store = s }
}

func NewRunJobs(convert *Convert, opts ...RunOption) *RunJobs {
	uc := &RunJobs{convert: convert}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute returns the report even when it also returns an error; the error
// is either a cancellation (remaining jobs skipped) or a report store failure.
func (uc *RunJobs) Execute(ctx context.Context, source string, jobs []domain.Job) (domain.Report, error) {
	report := domain.Report{
		Source:    source,
		StartedAt: uc.convert.now(),
		Results:   make([]domain.Result, 0, len(jobs)),
	}

	for _, job := range jobs {
		if err := ctx.Err(); err != nil {
			return report, err
		}
		report.Results = append(report.Results, uc.convert.Execute(ctx, job))
	}

	if uc.store != nil {
		id, err := uc.store.SaveReport(report)
		if err != nil {
			uc.convert.log.Error("report.save_failed", "error", err)
			return report, fmt.Errorf("save report: %w", err)
		}
		uc.convert.log.Info("report.saved", "id", id)
	}

	return report, nil
}
