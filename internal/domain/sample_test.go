package domain

import (
	"errors"
	"math/big"
	"strings"
	"testing"
)

func TestEncodeHex8(t *testing.T) {
	cases := []struct {
		in   byte
		want string
	}{
		{0x00, "00"},
		{0x01, "01"},
		{0x0a, "0a"},
		{0x7f, "7f"},
		{0x80, "80"},
		{0xff, "ff"},
	}
	for _, c := range cases {
		if got := EncodeHex8(c.in); got != c.want {
			t.Errorf("EncodeHex8(%#x) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeHex8_AllBytesTwoLowercaseDigits(t *testing.T) {
	for i := 0; i < 256; i++ {
		got := EncodeHex8(byte(i))
		if len(got) != 2 {
			t.Fatalf("byte %d: expected 2 digits, got %q", i, got)
		}
		if strings.ToLower(got) != got {
			t.Fatalf("byte %d: expected lowercase, got %q", i, got)
		}
		v, err := ParseHexToken(got)
		if err != nil {
			t.Fatalf("byte %d: re-parse failed: %v", i, err)
		}
		if v.Int64() != int64(i) {
			t.Fatalf("byte %d: re-parsed as %d", i, v.Int64())
		}
	}
}

func TestAppendHex8(t *testing.T) {
	dst := []byte("x")
	dst = AppendHex8(dst, 0xab)
	dst = AppendHex8(dst, 0x05)
	if string(dst) != "xab05" {
		t.Fatalf("got %q", dst)
	}
}

func TestParseHexToken(t *testing.T) {
	cases := []struct {
		in   string
		want int64
	}{
		{"0", 0},
		{"00", 0},
		{"ff", 255},
		{"FF", 255},
		{"3fa2", 0x3fa2},
		{"3FA2", 0x3fa2},
		{"  3fa2\t", 0x3fa2},
		{"0003fa2", 0x3fa2},
		{"ffff", 0xffff},
		{"10000", 0x10000},
	}
	for _, c := range cases {
		v, err := ParseHexToken(c.in)
		if err != nil {
			t.Errorf("ParseHexToken(%q) error: %v", c.in, err)
			continue
		}
		if v.Int64() != c.want {
			t.Errorf("ParseHexToken(%q) = %d, want %d", c.in, v.Int64(), c.want)
		}
	}
}

func TestParseHexToken_Rejects(t *testing.T) {
	for _, in := range []string{"", "   ", "3fg2", "0x3fa2", "-1", "+1", "3f a2", "3f_a2", "zz"} {
		_, err := ParseHexToken(in)
		if err == nil {
			t.Errorf("ParseHexToken(%q): expected error", in)
			continue
		}
		if !errors.Is(err, ErrFormat) {
			t.Errorf("ParseHexToken(%q): expected ErrFormat, got %v", in, err)
		}
	}
}

func TestEncodeBin16(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"0", "0000000000000000"},
		{"1", "0000000000000001"},
		{"3fa2", "0011111110100010"},
		{"8000", "1000000000000000"},
		{"ffff", "1111111111111111"},
		{"10000", "10000000000000000"},
		{"1ffff", "11111111111111111"},
	}
	for _, c := range cases {
		v, err := ParseHexToken(c.in)
		if err != nil {
			t.Fatalf("parse %q: %v", c.in, err)
		}
		if got := EncodeBin16(v); got != c.want {
			t.Errorf("EncodeBin16(%s) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestEncodeBin16_WidensBeyond64Bits(t *testing.T) {
	v, err := ParseHexToken("1" + strings.Repeat("0", 20)) // 2^80
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	got := EncodeBin16(v)
	if len(got) != 81 {
		t.Fatalf("expected 81 bits, got %d", len(got))
	}
	if got != "1"+strings.Repeat("0", 80) {
		t.Fatalf("unexpected expansion %q", got)
	}
}

func TestEncodeBin16_MinimalBitLength(t *testing.T) {
	for _, v := range []int64{0x10000, 0x12345, 0xfffff, 0x7fffffff} {
		b := big.NewInt(v)
		got := EncodeBin16(b)
		if len(got) != b.BitLen() {
			t.Errorf("value %#x: len %d, want %d", v, len(got), b.BitLen())
		}
	}
}

func TestIsBlank(t *testing.T) {
	cases := map[string]bool{
		"":       true,
		"   ":    true,
		"\t\r":   true,
		"0":      false,
		" 3fa2 ": false,
	}
	for in, want := range cases {
		if got := IsBlank(in); got != want {
			t.Errorf("IsBlank(%q) = %v, want %v", in, got, want)
		}
	}
}
