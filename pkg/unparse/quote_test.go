package unparse

import (
	"math"
	"testing"

	"github.com/matzehuels/pyunparse/pkg/ast"
)

func TestFormatFloat(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{1, "1.0"},
		{1.5, "1.5"},
		{-2.25, "-2.25"},
		{0.1, "0.1"},
		{0.0001, "0.0001"},
		{0.00001, "1e-05"},
		{1.5e-7, "1.5e-07"},
		{123456789.0, "123456789.0"},
		{1e15, "1000000000000000.0"},
		{1e16, "1e+16"},
		{1.25e16, "1.25e+16"},
		{1e100, "1e+100"},
		{math.Inf(1), "inf"},
		{math.NaN(), "nan"},
	}

	for _, tt := range tests {
		if got := formatFloat(tt.in, true); got != tt.want {
			t.Errorf("formatFloat(%v) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestConstantLiterals(t *testing.T) {
	tests := []struct {
		name  string
		value ast.Value
		kind  string
		want  string
	}{
		{"none", ast.None{}, "", "None"},
		{"true", ast.Bool(true), "", "True"},
		{"false", ast.Bool(false), "", "False"},
		{"ellipsis", ast.Ellipsis{}, "", "..."},
		{"int", ast.NewInt(42), "", "42"},
		{"negative int", ast.NewInt(-7), "", "-7"},
		{"float", ast.Float(2.5), "", "2.5"},
		{"integral float", ast.Float(3), "", "3.0"},
		{"inf", ast.Float(math.Inf(1)), "", "1e309"},
		{"negative inf", ast.Float(math.Inf(-1)), "", "-1e309"},
		{"nan", ast.Float(math.NaN()), "", "(1e309-1e309)"},
		{"imaginary", ast.Complex{Imag: 3}, "", "3j"},
		{"imaginary fraction", ast.Complex{Imag: 1.5}, "", "1.5j"},
		{"imaginary inf", ast.Complex{Imag: math.Inf(1)}, "", "1e309j"},
		{"complex", ast.Complex{Real: 1, Imag: 3}, "", "(1+3j)"},
		{"complex negative imag", ast.Complex{Real: 1, Imag: -3}, "", "(1-3j)"},
		{"complex negative zero real", ast.Complex{Real: math.Copysign(0, -1), Imag: 2}, "", "(-0+2j)"},
		{"tuple", ast.ConstTuple{ast.NewInt(1), ast.Str("a")}, "", "(1, 'a')"},
		{"single tuple", ast.ConstTuple{ast.NewInt(1)}, "", "(1,)"},
		{"empty tuple", ast.ConstTuple{}, "", "()"},
		{"nested tuple", ast.ConstTuple{ast.ConstTuple{}, ast.None{}}, "", "((), None)"},
		{"string", ast.Str("abc"), "", "'abc'"},
		{"unicode prefix", ast.Str("abc"), "u", "u'abc'"},
		{"bytes", ast.Bytes("abc"), "", "b'abc'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Unparse(&ast.Constant{Value: tt.value, Kind: tt.kind})
			if err != nil {
				t.Fatalf("Unparse() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Unparse() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBigInt(t *testing.T) {
	got, err := Unparse(bigInt("123456789012345678901234567890"))
	if err != nil {
		t.Fatalf("Unparse() error = %v", err)
	}
	if want := "123456789012345678901234567890"; got != want {
		t.Errorf("Unparse() = %q, want %q", got, want)
	}
}

func TestStrLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   string
		raw  bool
		want string
	}{
		{"plain", "hello", true, `'hello'`},
		{"empty", "", true, `''`},
		{"single quote", "it's", true, `"it's"`},
		{"double quote", `say "hi"`, true, `'say "hi"'`},
		{"both quotes", `a"b'c`, true, `'a"b\'c'`},
		{"newline", "a\nb", true, `'a\nb'`},
		{"tab and cr", "a\tb\r", true, `'a\tb\r'`},
		{"nul", "a\x00", true, `'a\x00'`},
		{"delete", "\x7f", true, `'\x7f'`},
		{"nbsp", "a\u00a0b", true, `'a\xa0b'`},
		{"zero width space", "\u200b", true, `'\u200b'`},
		{"private use plane", "\U000F0000", true, `'\U000f0000'`},
		{"accented", "café", true, `'café'`},
		{"cjk", "漢字", true, `'漢字'`},
		{"emoji", "🙂", true, `'🙂'`},
		{"raw backslash", `a\d+`, true, `r'a\d+'`},
		{"raw with single quote", `it's\n`, true, `r"it's\n"`},
		{"raw disabled", `a\d+`, false, `'a\\d+'`},
		{"trailing backslash", `a\`, true, `'a\\'`},
		{"backslash and newline", "a\\\n", true, `'a\\\n'`},
		{"backslash and both quotes", `\'"`, true, `'\\\'"'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := strLiteral(tt.in, tt.raw)
			if !ok {
				t.Fatalf("strLiteral(%q) not ok", tt.in)
			}
			if got != tt.want {
				t.Errorf("strLiteral(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}

	if _, ok := strLiteral("\xff", true); ok {
		t.Error("strLiteral accepted invalid UTF-8")
	}
}

func TestBytesLiteral(t *testing.T) {
	tests := []struct {
		name string
		in   []byte
		raw  bool
		want string
	}{
		{"plain", []byte("abc"), true, `b'abc'`},
		{"empty", nil, true, `b''`},
		{"quote", []byte("it's"), true, `b"it's"`},
		{"control", []byte{'a', 0, '\n'}, true, `b'a\x00\n'`},
		{"high bytes", []byte{0xff, 0x80}, true, `b'\xff\x80'`},
		{"utf8 is escaped", []byte("é"), true, `b'\xc3\xa9'`},
		{"raw", []byte(`\d`), true, `br'\d'`},
		{"raw disabled", []byte(`\d`), false, `b'\\d'`},
		{"raw needs escape", []byte{'\\', 0xff}, true, `b'\\\xff'`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := bytesLiteral(tt.in, tt.raw); got != tt.want {
				t.Errorf("bytesLiteral(%q) = %s, want %s", tt.in, got, tt.want)
			}
		})
	}
}

func TestUnicodePrefixDisablesRaw(t *testing.T) {
	got, err := Unparse(&ast.Constant{Value: ast.Str(`a\b`), Kind: "u"})
	if err != nil {
		t.Fatalf("Unparse() error = %v", err)
	}
	if want := `u'a\\b'`; got != want {
		t.Errorf("Unparse() = %s, want %s", got, want)
	}
}
