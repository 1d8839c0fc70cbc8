package sparql

import (
	"fmt"
	"strings"
)

// Unicode surrogate range. Code points in this range are not scalar values
// and cannot appear in decoded literals.
const (
	unicodeSurrogateStart = 0xD800
	unicodeSurrogateEnd   = 0xDFFF
	unicodeMaxCodePoint   = 0x10FFFF
)

// unquote decodes the quoted literal at the start of s, which must begin
// with '"'. It consumes characters until an unescaped closing quote,
// applying escape substitutions, and returns the decoded value together
// with the remaining text after the closing quote.
func unquote(s string) (value, rest string, err error) {
	var builder strings.Builder
	pos := 1
	for pos < len(s) {
		ch := s[pos]
		if ch == '"' {
			return builder.String(), s[pos+1:], nil
		}
		if ch != '\\' {
			builder.WriteByte(ch)
			pos++
			continue
		}
		if pos+1 >= len(s) {
			return "", "", ErrUnterminatedLiteral
		}
		var advance int
		switch next := s[pos+1]; next {
		case 'n':
			builder.WriteByte('\n')
			advance = 2
		case 'r':
			builder.WriteByte('\r')
			advance = 2
		case 't':
			builder.WriteByte('\t')
			advance = 2
		case '"':
			builder.WriteByte('"')
			advance = 2
		case '\'':
			builder.WriteByte('\'')
			advance = 2
		case '\\':
			builder.WriteByte('\\')
			advance = 2
		case 'u':
			advance, err = unescapeCodePoint(&builder, s, pos, 4)
		case 'U':
			advance, err = unescapeCodePoint(&builder, s, pos, 8)
		default:
			return "", "", fmt.Errorf("%w %q", ErrUnknownEscape, s[pos:pos+2])
		}
		if err != nil {
			return "", "", err
		}
		pos += advance
	}
	return "", "", ErrUnterminatedLiteral
}

// unescapeCodePoint decodes a \uXXXX or \UXXXXXXXX sequence at pos.
func unescapeCodePoint(builder *strings.Builder, s string, pos, digits int) (int, error) {
	end := pos + 2 + digits
	if end > len(s) {
		return 0, fmt.Errorf("%w: incomplete sequence %q", ErrInvalidEscape, s[pos:])
	}
	codePoint := decodeHex(s[pos+2 : end])
	if codePoint < 0 {
		return 0, fmt.Errorf("%w %q", ErrInvalidEscape, s[pos:end])
	}
	if !isScalarValue(codePoint) {
		return 0, fmt.Errorf("%w %q: not a Unicode scalar value", ErrInvalidEscape, s[pos:end])
	}
	builder.WriteRune(codePoint)
	return 2 + digits, nil
}

func decodeHex(hexStr string) rune {
	var codePoint int64
	for i := 0; i < len(hexStr); i++ {
		digit, ok := parseHexDigit(hexStr[i])
		if !ok {
			return -1
		}
		codePoint = codePoint*16 + int64(digit)
	}
	if codePoint > unicodeMaxCodePoint {
		return -1
	}
	return rune(codePoint)
}

// parseHexDigit converts a single hex digit byte to its integer value.
// Returns the digit value and true if valid, or 0 and false if invalid.
func parseHexDigit(hex byte) (int, bool) {
	switch {
	case hex >= '0' && hex <= '9':
		return int(hex - '0'), true
	case hex >= 'a' && hex <= 'f':
		return int(hex-'a') + 10, true
	case hex >= 'A' && hex <= 'F':
		return int(hex-'A') + 10, true
	default:
		return 0, false
	}
}

func isScalarValue(codePoint rune) bool {
	if codePoint < 0 || codePoint > unicodeMaxCodePoint {
		return false
	}
	if codePoint >= unicodeSurrogateStart && codePoint <= unicodeSurrogateEnd {
		return false
	}
	return true
}
