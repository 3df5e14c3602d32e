package crock32

import (
	"fmt"
	"io"
)

// Alphabet is Crockford's Base32 symbol set (excludes I, L, O, U).
const Alphabet = "0123456789ABCDEFGHJKMNPQRSTVWXYZ"

// Base is the radix of the encoding.
const Base = 32

// maxDecodeLen caps DecodeInt input: 12 symbols carry 60 bits, the widest
// value that cannot overflow int64.
const maxDecodeLen = 12

// decodeTable maps ASCII bytes to symbol values; -1 marks invalid input.
// Confusable characters are remapped per Crockford: I and L read as 1,
// O reads as 0, U reads as V.
var decodeTable = buildDecodeTable()

func buildDecodeTable() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		c := Alphabet[i]
		t[c] = int8(i)
		if c >= 'A' && c <= 'Z' {
			t[c+'a'-'A'] = int8(i)
		}
	}
	for _, c := range []byte{'I', 'i', 'L', 'l'} {
		t[c] = 1
	}
	t['O'], t['o'] = 0, 0
	t['U'], t['u'] = t['V'], t['V']
	return t
}

// EncodeInt encodes a non-negative integer into exactly width symbols,
// most significant first. It returns ErrRange if v is negative or does
// not fit width symbols.
func EncodeInt(v int64, width int) (string, error) {
	buf, err := AppendInt(make([]byte, 0, width), v, width)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

// AppendInt appends the width-symbol encoding of v to dst and returns the
// extended slice. It is the allocation-lean form of EncodeInt for callers
// assembling larger identifiers.
func AppendInt(dst []byte, v int64, width int) ([]byte, error) {
	if v < 0 {
		return dst, fmt.Errorf("%w: negative value %d", ErrRange, v)
	}
	if width < maxDecodeLen+1 && v >= int64(1)<<(5*width) {
		return dst, fmt.Errorf("%w: %d does not fit %d symbols", ErrRange, v, width)
	}
	start := len(dst)
	dst = append(dst, make([]byte, width)...)
	for i := width - 1; i >= 0; i-- {
		dst[start+i] = Alphabet[v%Base]
		v /= Base
	}
	return dst, nil
}

// EncodeRandom draws width bytes from r and maps each byte modulo 32 to a
// symbol. The reader should be a cryptographically secure source such as
// crypto/rand; a short or failed read is returned as an error rather than
// papered over with weaker entropy.
func EncodeRandom(r io.Reader, width int) (string, error) {
	buf := make([]byte, width)
	if _, err := io.ReadFull(r, buf); err != nil {
		return "", fmt.Errorf("crock32: read entropy: %w", err)
	}
	for i, b := range buf {
		buf[i] = Alphabet[int(b)%Base]
	}
	return string(buf), nil
}

// DecodeChar returns the symbol value of c, case-insensitively and with
// confusable remapping (I/L->1, O->0, U->V).
func DecodeChar(c byte) (int, error) {
	v := decodeTable[c]
	if v < 0 {
		return 0, fmt.Errorf("%w: %q", ErrInvalidChar, c)
	}
	return int(v), nil
}

// DecodeInt decodes s as a big-endian base-32 integer. Inputs longer than
// twelve symbols are rejected with ErrRange before any arithmetic can
// overflow.
func DecodeInt(s string) (int64, error) {
	if len(s) > maxDecodeLen {
		return 0, fmt.Errorf("%w: %d symbols overflow int64", ErrRange, len(s))
	}
	var v int64
	for i := 0; i < len(s); i++ {
		d, err := DecodeChar(s[i])
		if err != nil {
			return 0, err
		}
		v = v*Base + int64(d)
	}
	return v, nil
}
