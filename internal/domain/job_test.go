package domain

import (
	"errors"
	"testing"
)

func TestParseKind(t *testing.T) {
	cases := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"bin2hex", KindBinToHex, false},
		{"BIN2HEX", KindBinToHex, false},
		{" hex2bin ", KindHexToBin, false},
		{"hex2raw", "", true},
		{"", "", true},
	}
	for _, c := range cases {
		got, err := ParseKind(c.in)
		if c.wantErr {
			if err == nil || !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("ParseKind(%q): expected ErrInvalidConfig, got %v", c.in, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseKind(%q) error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("ParseKind(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestJobValidate(t *testing.T) {
	cases := []struct {
		name    string
		job     Job
		wantErr bool
	}{
		{"ok", Job{Name: "a", Kind: KindBinToHex, Input: "a.raw", Output: "a.hex"}, false},
		{"bad kind", Job{Name: "a", Kind: "wav", Input: "a.raw", Output: "a.hex"}, true},
		{"no input", Job{Name: "a", Kind: KindHexToBin, Output: "a.bin"}, true},
		{"no output", Job{Name: "a", Kind: KindHexToBin, Input: "a.hex"}, true},
		{"in place", Job{Name: "a", Kind: KindHexToBin, Input: "./a.hex", Output: "a.hex"}, false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			err := c.job.Validate()
			if c.wantErr && !errors.Is(err, ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
			if !c.wantErr && err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
		})
	}
}

func TestDefaultJobs(t *testing.T) {
	jobs := DefaultJobs()
	if len(jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(jobs))
	}
	if jobs[0].Kind != KindBinToHex || jobs[0].Input != "snare8.raw" || jobs[0].Output != "snare8.hex" {
		t.Fatalf("unexpected first job: %+v", jobs[0])
	}
	if jobs[1].Kind != KindHexToBin || jobs[1].Input != "cymbal.hex" || jobs[1].Output != "testCymbal.bin" {
		t.Fatalf("unexpected second job: %+v", jobs[1])
	}
	for _, j := range jobs {
		if err := j.Validate(); err != nil {
			t.Fatalf("default job %q invalid: %v", j.Name, err)
		}
	}
}
