package unparse

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"
)

// infLiteral overflows to infinity when parsed, so it stands in for the
// non-finite floats that have no literal syntax.
const infLiteral = "1e309"

// formatFloat renders f the way the language's repr does: the shortest
// digits that round-trip, in positional notation unless the decimal exponent
// is below -4 or above 16. With addDot, integral values keep a ".0" suffix.
func formatFloat(f float64, addDot bool) string {
	switch {
	case math.IsInf(f, 1):
		return "inf"
	case math.IsInf(f, -1):
		return "-inf"
	case math.IsNaN(f):
		return "nan"
	}

	sci := strconv.FormatFloat(f, 'e', -1, 64)
	sign := ""
	if sci[0] == '-' {
		sign, sci = "-", sci[1:]
	}
	mant, expPart, _ := strings.Cut(sci, "e")
	digits := strings.Replace(mant, ".", "", 1)
	exp, _ := strconv.Atoi(expPart)
	decpt := exp + 1

	var b strings.Builder
	b.WriteString(sign)
	switch {
	case decpt <= -4 || decpt > 16:
		b.WriteByte(digits[0])
		if len(digits) > 1 {
			b.WriteByte('.')
			b.WriteString(digits[1:])
		}
		e := decpt - 1
		b.WriteByte('e')
		if e < 0 {
			b.WriteByte('-')
			e = -e
		} else {
			b.WriteByte('+')
		}
		fmt.Fprintf(&b, "%02d", e)
	case decpt <= 0:
		b.WriteString("0.")
		b.WriteString(strings.Repeat("0", -decpt))
		b.WriteString(digits)
	case decpt >= len(digits):
		b.WriteString(digits)
		b.WriteString(strings.Repeat("0", decpt-len(digits)))
		if addDot {
			b.WriteString(".0")
		}
	default:
		b.WriteString(digits[:decpt])
		b.WriteByte('.')
		b.WriteString(digits[decpt:])
	}
	return b.String()
}

// floatLiteral renders a float constant, substituting overflowing literals
// for infinities and an infinity difference for NaN.
func floatLiteral(f float64) string {
	return replaceNonFinite(formatFloat(f, true))
}

// complexLiteral renders re+imj. A positive-zero real part is omitted, any
// other real part forces the parenthesised (re±imj) form.
func complexLiteral(re, im float64) string {
	if re == 0 && !isNegZero(re) {
		return replaceNonFinite(formatFloat(im, false) + "j")
	}
	imag := formatFloat(im, false)
	if !strings.HasPrefix(imag, "-") {
		imag = "+" + imag
	}
	return replaceNonFinite("(" + formatFloat(re, false) + imag + "j)")
}

func replaceNonFinite(s string) string {
	s = strings.ReplaceAll(s, "inf", infLiteral)
	return strings.ReplaceAll(s, "nan", "("+infLiteral+"-"+infLiteral+")")
}

func isNegZero(f float64) bool {
	return f == 0 && math.Signbit(f)
}

// pickQuote prefers single quotes unless only double quotes are absent.
func pickQuote(hasSingle, hasDouble bool) byte {
	if hasSingle && !hasDouble {
		return '"'
	}
	return '\''
}

// rawQuote reports whether text can be written as a raw literal and with
// which quote. Raw form is only chosen when text holds a backslash and
// nothing that would need an escape.
func rawQuote(text string, printable func(rune) bool) (byte, bool) {
	if !strings.Contains(text, `\`) || strings.HasSuffix(text, `\`) {
		return 0, false
	}
	for _, r := range text {
		if !printable(r) {
			return 0, false
		}
	}
	hasSingle := strings.Contains(text, "'")
	hasDouble := strings.Contains(text, `"`)
	switch {
	case !hasSingle:
		return '\'', true
	case !hasDouble:
		return '"', true
	}
	return 0, false
}

// strLiteral quotes a text string. Invalid UTF-8 is reported through ok.
func strLiteral(s string, raw bool) (lit string, ok bool) {
	if !utf8.ValidString(s) {
		return "", false
	}
	if raw {
		if q, ok := rawQuote(s, printableRune); ok {
			return "r" + string(q) + s + string(q), true
		}
	}

	q := pickQuote(strings.Contains(s, "'"), strings.Contains(s, `"`))
	var b strings.Builder
	b.Grow(len(s) + 2)
	b.WriteByte(q)
	for _, r := range s {
		switch {
		case r == '\\':
			b.WriteString(`\\`)
		case r == rune(q):
			b.WriteByte('\\')
			b.WriteByte(q)
		case r == '\t':
			b.WriteString(`\t`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case printableRune(r):
			b.WriteRune(r)
		case r <= 0xff:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r <= 0xffff:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteByte(q)
	return b.String(), true
}

// bytesLiteral quotes a byte string. Every byte is representable because
// anything outside printable ASCII is written as a \x escape.
func bytesLiteral(v []byte, raw bool) string {
	s := string(v)
	if raw {
		if q, ok := rawQuote(s, printableASCII); ok && isASCII(v) {
			return "br" + string(q) + s + string(q)
		}
	}

	q := pickQuote(strings.Contains(s, "'"), strings.Contains(s, `"`))
	var b strings.Builder
	b.Grow(len(v) + 3)
	b.WriteByte('b')
	b.WriteByte(q)
	for _, c := range v {
		switch {
		case c == '\\':
			b.WriteString(`\\`)
		case c == q:
			b.WriteByte('\\')
			b.WriteByte(q)
		case c == '\t':
			b.WriteString(`\t`)
		case c == '\n':
			b.WriteString(`\n`)
		case c == '\r':
			b.WriteString(`\r`)
		case c < ' ' || c >= 0x7f:
			fmt.Fprintf(&b, `\x%02x`, c)
		default:
			b.WriteByte(c)
		}
	}
	b.WriteByte(q)
	return b.String()
}

// printableRune mirrors the language's notion of a printable character:
// letters, marks, numbers, punctuation, symbols and the ASCII space.
func printableRune(r rune) bool {
	return unicode.IsPrint(r)
}

func printableASCII(r rune) bool {
	return r >= ' ' && r < 0x7f
}

func isASCII(v []byte) bool {
	for _, c := range v {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
