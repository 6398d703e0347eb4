package domain

import (
	"encoding/hex"
	"fmt"
	"math/big"
	"strings"
)

// BinWidth is the minimum width of an encoded binary line.
const BinWidth = 16

// EncodeHex8 returns the two-digit lowercase hex form of b.
func EncodeHex8(b byte) string {
	return string(AppendHex8(nil, b))
}

// AppendHex8 appends the two-digit lowercase hex form of b to dst.
func AppendHex8(dst []byte, b byte) []byte {
	var buf [2]byte
	hex.Encode(buf[:], []byte{b})
	return append(dst, buf[0], buf[1])
}

// IsBlank reports whether line is empty after trimming surrounding whitespace.
func IsBlank(line string) bool {
	return strings.TrimSpace(line) == ""
}

// ParseHexToken parses an unsigned hex token of any length.
// Surrounding whitespace is ignored; signs, 0x prefixes and separators are not
// accepted.
func ParseHexToken(s string) (*big.Int, error) {
	tok := strings.TrimSpace(s)
	if tok == "" {
		return nil, fmt.Errorf("%w: empty hex token", ErrFormat)
	}
	for i := 0; i < len(tok); i++ {
		if !isHexDigit(tok[i]) {
			return nil, fmt.Errorf("%w: %q is not a hex token", ErrFormat, tok)
		}
	}

	v, ok := new(big.Int).SetString(tok, 16)
	if !ok {
		return nil, fmt.Errorf("%w: %q is not a hex token", ErrFormat, tok)
	}
	return v, nil
}

// EncodeBin16 returns the MSB-first binary expansion of v, zero-padded to
// BinWidth. Values wider than BinWidth bits are never truncated.
func EncodeBin16(v *big.Int) string {
	s := v.Text(2)
	if len(s) >= BinWidth {
		return s
	}
	return strings.Repeat("0", BinWidth-len(s)) + s
}

func isHexDigit(c byte) bool {
	switch {
	case '0' <= c && c <= '9':
		return true
	case 'a' <= c && c <= 'f':
		return true
	case 'A' <= c && c <= 'F':
		return true
	}
	return false
}
