package ports

import "context"

// Stats reports what a converter wrote.
type Stats struct {
	Units   int
	Skipped int
}

// Converter turns one input file into one output file.
type Converter interface {
	Convert(ctx context.Context, input, output string) (Stats, error)
}
