package parser

import (
	"strconv"
	"strings"
	"unicode"
	"unicode/utf16"
	"unicode/utf8"
)

// Scanners take the unconsumed input and return what is left after the
// match. None of them skip leading whitespace unless the name says so.

func isIdentRune(r rune) bool {
	return unicode.IsLetter(r) || unicode.IsNumber(r) || r == '_'
}

// ScanIdentifier consumes the longest leading run of letters, digits and
// underscores.
func ScanIdentifier(in string) (string, Identifier, error) {
	end := strings.IndexFunc(in, func(r rune) bool { return !isIdentRune(r) })
	if end < 0 {
		end = len(in)
	}
	if end == 0 {
		return in, "", fail("identifier", in, ErrEmptyIdentifier)
	}
	return in[end:], Identifier(in[:end]), nil
}

// ScanStringLiteral consumes a double-quoted literal and returns its
// decoded text. Supported escapes: \\ \" \' \r \n \t and \uXXXX, where
// XXXX is a single UTF-16 code unit. A lone surrogate decodes to U+FFFD.
func ScanStringLiteral(in string) (string, string, error) {
	if !strings.HasPrefix(in, `"`) {
		return in, "", mismatch("string literal", in)
	}

	var b strings.Builder
	i := 1
	for i < len(in) {
		r, size := utf8.DecodeRuneInString(in[i:])
		switch r {
		case '"':
			return in[i+1:], b.String(), nil
		case '\\':
			n, err := decodeEscape(&b, in[i:])
			if err != nil {
				return in, "", err
			}
			i += n
		default:
			b.WriteRune(r)
			i += size
		}
	}
	return in, "", fail("string literal", in, ErrUnterminatedString)
}

// decodeEscape decodes the escape at the start of s (s[0] == '\\') and
// returns the number of bytes consumed.
func decodeEscape(b *strings.Builder, s string) (int, error) {
	if len(s) < 2 {
		return 0, fail("string literal", s, ErrUnterminatedString)
	}
	switch s[1] {
	case '\\':
		b.WriteByte('\\')
	case '"':
		b.WriteByte('"')
	case '\'':
		b.WriteByte('\'')
	case 'r':
		b.WriteByte('\r')
	case 'n':
		b.WriteByte('\n')
	case 't':
		b.WriteByte('\t')
	case 'u':
		if len(s) < 6 || !isHex4(s[2:6]) {
			return 0, fail("unicode escape", s, ErrInvalidUnicodeEscape)
		}
		unit, _ := strconv.ParseUint(s[2:6], 16, 16)
		b.WriteRune(utf16.Decode([]uint16{uint16(unit)})[0])
		return 6, nil
	default:
		return 0, fail("escape sequence", s, ErrInvalidEscape)
	}
	return 2, nil
}

func isHex4(s string) bool {
	for i := 0; i < 4; i++ {
		c := s[i]
		if !('0' <= c && c <= '9' || 'a' <= c && c <= 'f' || 'A' <= c && c <= 'F') {
			return false
		}
	}
	return true
}

// ----- whitespace & keywords -----

func isMultispace(r rune) bool { return r == ' ' || r == '\t' || r == '\r' || r == '\n' }

func isSpace(r rune) bool { return r == ' ' || r == '\t' }

// multispace0 skips spaces, tabs and line breaks.
func multispace0(in string) string {
	return strings.TrimLeftFunc(in, isMultispace)
}

// multispace1 is multispace0 but requires at least one character.
func multispace1(in, rule string) (string, error) {
	rest := multispace0(in)
	if len(rest) == len(in) {
		return in, mismatch(rule, in)
	}
	return rest, nil
}

// space0 skips spaces and tabs only.
func space0(in string) string {
	return strings.TrimLeftFunc(in, isSpace)
}

// keyword matches kw case-insensitively at the start of in.
func keyword(in, kw string) (string, error) {
	if len(in) < len(kw) || !strings.EqualFold(in[:len(kw)], kw) {
		return in, mismatch(kw, in)
	}
	return in[len(kw):], nil
}

// literal matches tok exactly at the start of in.
func literal(in, tok string) (string, error) {
	if !strings.HasPrefix(in, tok) {
		return in, mismatch(strconv.Quote(tok), in)
	}
	return in[len(tok):], nil
}
