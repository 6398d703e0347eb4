package romfile

import (
	"bufio"
	"context"
	"fmt"
	"unicode/utf8"

	"github.com/aalvaropc/romconv/internal/domain"
	"github.com/aalvaropc/romconv/internal/ports"
)

const opHexToBin = "romfile.hex2bin"

// HexToBin writes one zero-padded binary line per non-blank hex input line.
type HexToBin struct{}

func NewHexToBin() *HexToBin {
	return &HexToBin{}
}

var _ ports.Converter = (*HexToBin)(nil)

func (c *HexToBin) Convert(ctx context.Context, input, output string) (ports.Stats, error) {
	b, err := readInput(opHexToBin, input)
	if err != nil {
		return ports.Stats{}, err
	}
	if !utf8.Valid(b) {
		return ports.Stats{}, &domain.OpError{
			Op:   opHexToBin + ".decode",
			Kind: domain.KindFormat,
			Path: input,
			Err:  fmt.Errorf("%w: input is not UTF-8 text", domain.ErrFormat),
		}
	}

	lines := splitLines(string(b))
	if err := ctx.Err(); err != nil {
		return ports.Stats{}, err
	}

	var st ports.Stats
	err = writeOutput(opHexToBin, output, func(w *bufio.Writer) error {
		for i, line := range lines {
			if i%checkEvery == 0 {
				if err := ctx.Err(); err != nil {
					return err
				}
			}

			if domain.IsBlank(line) {
				st.Skipped++
				continue
			}

			v, err := domain.ParseHexToken(line)
			if err != nil {
				return &domain.OpError{
					Op:   opHexToBin + ".parse",
					Kind: domain.KindFormat,
					Path: input,
					Line: i + 1,
					Err:  err,
				}
			}

			if _, err := w.WriteString(domain.EncodeBin16(v)); err != nil {
				return writeErr(opHexToBin, output, err)
			}
			if err := w.WriteByte('\n'); err != nil {
				return writeErr(opHexToBin, output, err)
			}
			st.Units++
		}
		return nil
	})
	return st, err
}

// splitLines breaks s at every line boundary Python's str.splitlines knows:
// \n, \r, \r\n, \v, \f, \x1c-\x1e, U+0085, U+2028 and U+2029. A final line
// terminator does not start another line.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := utf8.DecodeRuneInString(s[i:])
		if !isLineBreak(r) {
			i += size
			continue
		}
		lines = append(lines, s[start:i])
		i += size
		if r == '\r' && i < len(s) && s[i] == '\n' {
			i++
		}
		start = i
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}
