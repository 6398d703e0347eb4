package romfile

import (
	"bufio"
	"context"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

const opBinToHex = "romfile.bin2hex"

// ByteToHex writes one two-digit lowercase hex line per input byte.
type ByteToHex struct{}

func NewByteToHex() *ByteToHex {
	return &ByteToHex{}
}

var _ ports.Converter = (*ByteToHex)(nil)

func (c *ByteToHex) Convert(ctx context.Context, input, output string) (ports.Stats, error) {
	raw, err := readInput(opBinToHex, input)
	if err != nil {
		return ports.Stats{}, err
	}
	if err := ctx.Err(); err != nil {
		return ports.Stats{}, err
	}

	var st ports.Stats
	err = writeOutput(opBinToHex, output, func(w *bufio.Writer) error {
		line := make([]byte, 0, 3)
		for i, b := range raw {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			line = domain.AppendHex8(line[:0], b)
			line = append(line, '\n')
			if _, err := w.Write(line); err != nil {
				return writeErr(opBinToHex, output, err)
			}
			st.Units++
		}
		return nil
	})
	return st, err
}
