package domain

import (
	"fmt"
	"strings"
)

// Kind selects the conversion a job performs.
type Kind string

const (
	KindBinToHex Kind = "bin2hex"
	KindHexToBin Kind = "hex2bin"
)

// Default file names of the two stock conversions.
const (
	DefaultRawInput  = "snare8.raw"
	DefaultHexOutput = "snare8.hex"
	DefaultHexInput  = "cymbal.hex"
	DefaultBinOutput = "testCymbal.bin"
)

// Job is one file-to-file conversion.
type Job struct {
	Name   string
	Kind   Kind
	Input  string
	Output string
}

// ParseKind accepts the canonical kind names, case-insensitively.
func ParseKind(s string) (Kind, error) {
	switch Kind(strings.ToLower(strings.TrimSpace(s))) {
	case KindBinToHex:
		return KindBinToHex, nil
	case KindHexToBin:
		return KindHexToBin, nil
	}
	return "", fmt.Errorf("%w: unknown conversion kind %q (want bin2hex or hex2bin)", ErrInvalidConfig, s)
}

func (j Job) Validate() error {
	if _, err := ParseKind(string(j.Kind)); err != nil {
		return err
	}
	if strings.TrimSpace(j.Input) == "" {
		return fmt.Errorf("%w: job %q has no input", ErrInvalidConfig, j.Name)
	}
	if strings.TrimSpace(j.Output) == "" {
		return fmt.Errorf("%w: job %q has no output", ErrInvalidConfig, j.Name)
	}
	return nil
}

// DefaultJobs returns the two stock conversions in their historical order.
func DefaultJobs() []Job {
	return []Job{
		{Name: "snare", Kind: KindBinToHex, Input: DefaultRawInput, Output: DefaultHexOutput},
		{Name: "cymbal", Kind: KindHexToBin, Input: DefaultHexInput, Output: DefaultBinOutput},
	}
}
