package usecase

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

// Convert runs a single job through the converter registered for its kind.
type Convert struct {
	converters map[domain.Kind]ports.Converter
	log        *slog.Logger
	now        func() time.Time
}

type ConvertOption func(*Convert)

func WithLogger(l *slog.Logger) ConvertOption {
	return func(uc *Convert) {
		if l != nil {
			uc.log = l
		}
	}
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) ConvertOption {
	return func(uc *Convert) { uc.now = now }
}

func NewConvert(binToHex, hexToBin ports.Converter, opts ...ConvertOption) *Convert {
	uc := &Convert{
		converters: map[domain.Kind]ports.Converter{
			domain.KindBinToHex: binToHex,
			domain.KindHexToBin: hexToBin,
		},
		log: slog.New(slog.NewJSONHandler(io.Discard, nil)),
		now: time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Execute never returns the conversion error itself: it lands in Result.Err
// so the caller can report it and carry on.
func (uc *Convert) Execute(ctx context.Context, job domain.Job) domain.Result {
	res := domain.Result{Job: job, StartedAt: uc.now()}

	if err := job.Validate(); err != nil {
		res.Err = err
		uc.log.Warn("convert.invalid", "job", job.Name, "error", err)
		return res
	}

	conv, ok := uc.converters[job.Kind]
	if !ok || conv == nil {
		res.Err = fmt.Errorf("%w: no converter for %s", domain.ErrInvalidConfig, job.Kind)
		return res
	}

	uc.log.Debug("convert.start", "job", job.Name, "kind", job.Kind, "input", job.Input, "output", job.Output)

	st, err := conv.Convert(ctx, job.Input, job.Output)
	res.Units = st.Units
	res.Skipped = st.Skipped
	res.Duration = uc.now().Sub(res.StartedAt)
	res.Err = err

	if err != nil {
		uc.log.Error("convert.failed",
			"job", job.Name,
			"kind", job.Kind,
			"input", job.Input,
			"lines_written", st.Units,
			"error", err,
		)
		return res
	}

	uc.log.Info("convert.done",
		"job", job.Name,
		"kind", job.Kind,
		"lines", st.Units,
		"skipped", st.Skipped,
		"duration_ms", res.Duration.Milliseconds(),
	)
	return res
}
