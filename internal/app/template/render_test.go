package template

import (
	"errors"
	"testing"

	"github.com/aalvaropc/romconv/internal/domain"
)

func TestRenderStringSingleVar(t *testing.T) {
	out, err := RenderString("rom/{{name}}.hex", map[string]string{"name": "snare8"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "rom/snare8.hex" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringMultipleVars(t *testing.T) {
	out, err := RenderString("{{ dir }}/{{name}}_{{kind}}.txt", map[string]string{
		"dir":  "build",
		"name": "cymbal",
		"kind": "hex2bin",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "build/cymbal_hex2bin.txt" {
		t.Fatalf("expected replaced string, got %q", out)
	}
}

func TestRenderStringNoPlaceholders(t *testing.T) {
	out, err := RenderString("cymbal.hex", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "cymbal.hex" {
		t.Fatalf("expected input unchanged, got %q", out)
	}
}

func TestRenderStringErrors(t *testing.T) {
	cases := map[string]string{
		"missing var": "{{name}}.hex",
		"unclosed":    "{{name.hex",
		"empty":       "{{ }}.hex",
	}
	for name, in := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := RenderString(in, map[string]string{})
			if err == nil {
				t.Fatalf("expected error")
			}
			if !errors.Is(err, domain.ErrInvalidConfig) {
				t.Fatalf("expected ErrInvalidConfig, got %v", err)
			}
		})
	}
}
