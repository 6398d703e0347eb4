package domain

import (
	"fmt"
	"time"
)

// Result is the outcome of running a single Job.
type Result struct {
	Job       Job
	Units     int // output lines written
	Skipped   int // blank input lines dropped
	StartedAt time.Time
	Duration  time.Duration
	Err       error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Message is the one line shown to the operator for this result.
func (r Result) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("Error: %v", r.Err)
	}

	switch r.Job.Kind {
	case KindHexToBin:
		return fmt.Sprintf("Converted %s → %s (hex → 16-bit binary).", r.Job.Input, r.Job.Output)
	default:
		return fmt.Sprintf("Converted %s → %s (8-bit samples).", r.Job.Input, r.Job.Output)
	}
}

// Report collects the results of one invocation, in job order.
type Report struct {
	Source    string // manifest path, or "" for built-in jobs
	StartedAt time.Time
	Results   []Result
}

func (r Report) Failures() int {
	n := 0
	for _, res := range r.Results {
		if res.Failed() {
			n++
		}
	}
	return n
}
