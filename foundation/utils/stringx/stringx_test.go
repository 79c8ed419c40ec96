// File: stringx_test.go
// Title: String Shaping Tests
// Description: Tests for substrings, comparison modes, affixes, line
//              endings, base64 encodings, enum lookup and FormatWith.
// Author: msto63
// Version: v0.2.1
// Created: 2025-01-24
// Modified: 2026-10-14
//
// Change History:
// - 2025-01-24 v0.1.0: Initial test implementation
// - 2026-10-13 v0.2.0: Rewritten for the reworked API
// - 2026-10-14 v0.2.1: Empty newline, hex widths and invalid UTF-8 cases

package stringx

import (
	stderrors "errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/language"

	mdwerror "github.com/msto63/quickx/foundation/core/error"
	"github.com/msto63/quickx/foundation/core/i18n"
)

// ===============================
// Substring Tests
// ===============================

func TestLeftRight(t *testing.T) {
	testCases := []struct {
		input string
		n     int
		left  string
		right string
	}{
		{"this my source", 7, "this my", " source"},
		{"abcdef", 3, "abc", "def"},
		{"abcdef", 6, "abcdef", "abcdef"},
		{"abc", 10, "abc", "abc"},
		{"", 0, "", ""},
		{"abc", -1, "", ""},
		{"Hello, 世界!", 8, "Hello, 世", "o, 世界!"},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			if got := Left(tc.input, tc.n); got != tc.left {
				t.Errorf("Left(%q, %d) = %q, want %q", tc.input, tc.n, got, tc.left)
			}
			if got := Right(tc.input, tc.n); got != tc.right {
				t.Errorf("Right(%q, %d) = %q, want %q", tc.input, tc.n, got, tc.right)
			}
		})
	}
}

func TestLeftRightOrError(t *testing.T) {
	testCases := []struct {
		input   string
		n       int
		left    string
		right   string
		wantErr bool
	}{
		{"abcdef", 3, "abc", "def", false},
		{"abcdef", 6, "abcdef", "abcdef", false},
		{"", 0, "", "", false},
		{"abc", 10, "", "", true},
		{"this my source", 777, "", "", true},
		{"abc", -1, "", "", true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			left, lerr := LeftOrError(tc.input, tc.n)
			right, rerr := RightOrError(tc.input, tc.n)
			for _, err := range []error{lerr, rerr} {
				if (err != nil) != tc.wantErr {
					t.Fatalf("error = %v, wantErr %v", err, tc.wantErr)
				}
				if err != nil && !mdwerror.HasCode(err, mdwerror.CodeInvalidLength) {
					t.Errorf("code = %v, want %v", mdwerror.GetCode(err), mdwerror.CodeInvalidLength)
				}
				if err != nil && !stderrors.Is(err, mdwerror.ErrInvalidArgument) {
					t.Errorf("error %v does not match ErrInvalidArgument", err)
				}
			}
			if left != tc.left || right != tc.right {
				t.Errorf("OrError(%q, %d) = %q/%q, want %q/%q", tc.input, tc.n, left, right, tc.left, tc.right)
			}
		})
	}
}

func TestBetween(t *testing.T) {
	testCases := []struct {
		name       string
		input      string
		start, end string
		want       string
		wantErr    bool
	}{
		{"found", "this begin my source end", "begin", "end", " my source ", false},
		{"start missing", "this begin my source end", "i am not found", "end", "", true},
		{"end missing", "this begin my source end", "begin", "i am not found", "", true},
		{"end before start", "end then begin", "begin", "end", "", true},
		{"adjacent", "[]", "[", "]", "", false},
		{"first end after start", "a<x>b<y>", "<", ">", "x", false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Between(tc.input, tc.start, tc.end); got != tc.want {
				t.Errorf("Between(%q, %q, %q) = %q, want %q", tc.input, tc.start, tc.end, got, tc.want)
			}
			got, err := BetweenOrError(tc.input, tc.start, tc.end)
			if (err != nil) != tc.wantErr {
				t.Fatalf("BetweenOrError() error = %v, wantErr %v", err, tc.wantErr)
			}
			if err != nil {
				if !stderrors.Is(err, mdwerror.ErrNotFound) || stderrors.Is(err, mdwerror.ErrInvalidArgument) {
					t.Errorf("BetweenOrError() error = %v, want only ErrNotFound", err)
				}
				return
			}
			if got != tc.want {
				t.Errorf("BetweenOrError() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestShaping(t *testing.T) {
	if !IsEmpty("") || IsEmpty(" ") {
		t.Errorf("IsEmpty misreports")
	}
	if !IsBlank(" \t\n") || IsBlank(" x ") || !IsBlank("") {
		t.Errorf("IsBlank misreports")
	}
	if got := Truncate("Hello, 世界! This is long", 10, "..."); got != "Hello, ..." {
		t.Errorf("Truncate() = %q, want %q", got, "Hello, ...")
	}
	if got := Truncate("short", 10, "..."); got != "short" {
		t.Errorf("Truncate(short) = %q", got)
	}
	if got := Truncate("abcdef", 2, "..."); got != "ab" {
		t.Errorf("Truncate(abcdef, 2) = %q, want %q", got, "ab")
	}
	if got := Reverse("Hello, 世界"); got != "界世 ,olleH" {
		t.Errorf("Reverse() = %q", got)
	}
	if got := PadLeft("42", 5, '0'); got != "00042" {
		t.Errorf("PadLeft() = %q", got)
	}
	if got := PadRight("世", 3, '*'); got != "世**" {
		t.Errorf("PadRight() = %q", got)
	}
}

// ===============================
// Comparison Tests
// ===============================

func TestEqualsIgnoreCase(t *testing.T) {
	turkish := language.Turkish

	testCases := []struct {
		name string
		a, b string
		tag  language.Tag
		want bool
	}{
		{"ascii", "Hello", "hELLO", language.English, true},
		{"different", "Hello", "World", language.English, false},
		{"greek", "ΣΊΣΥΦΟΣ", "σίσυφος", language.English, true},
		{"turkish dotted capital", "İstanbul", "istanbul", turkish, true},
		{"turkish dotless", "ISTANBUL", "istanbul", turkish, false},
		{"english I", "ISTANBUL", "istanbul", language.English, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := EqualsIgnoreCaseIn(tc.tag, tc.a, tc.b); got != tc.want {
				t.Errorf("EqualsIgnoreCaseIn(%v, %q, %q) = %v, want %v", tc.tag, tc.a, tc.b, got, tc.want)
			}
		})
	}

	prev := i18n.SetCurrent(turkish)
	defer i18n.SetCurrent(prev)

	if EqualsIgnoreCase("I", "i") {
		t.Errorf("EqualsIgnoreCase(I, i) under tr = true, want false")
	}
	if !EqualsIgnoreCaseInvariant("I", "i") || !EqualsIgnoreCaseOrdinal("I", "i") {
		t.Errorf("invariant and ordinal comparisons must ignore the culture")
	}
	if !CurrentCultureIgnoreCase.Equal("İ", "i") {
		t.Errorf("CurrentCultureIgnoreCase.Equal(İ, i) under tr = false, want true")
	}
}

func TestAffixes(t *testing.T) {
	testCases := []struct {
		name  string
		fn    func(string, string, ...Comparison) string
		input string
		affix string
		cmp   []Comparison
		want  string
	}{
		{"ensure prefix added", EnsureStartsWith, "example.com", "https://", nil, "https://example.com"},
		{"ensure prefix present", EnsureStartsWith, "https://example.com", "https://", nil, "https://example.com"},
		{"ensure prefix case", EnsureStartsWith, "HTTPS://x", "https://", []Comparison{OrdinalIgnoreCase}, "HTTPS://x"},
		{"ensure prefix ordinal case", EnsureStartsWith, "HTTPS://x", "https://", nil, "https://HTTPS://x"},
		{"ensure suffix added", EnsureEndsWith, "path", "/", nil, "path/"},
		{"ensure suffix present", EnsureEndsWith, "path/", "/", nil, "path/"},
		{"remove prefix once", RemovePrefix, "aaab", "a", nil, "aab"},
		{"remove prefix absent", RemovePrefix, "bbb", "a", nil, "bbb"},
		{"remove prefix invariant", RemovePrefix, "ÄBC", "äb", []Comparison{InvariantIgnoreCase}, "C"},
		{"remove suffix case", RemoveSuffix, "Report.PDF", ".pdf", []Comparison{OrdinalIgnoreCase}, "Report"},
		{"remove suffix ordinal", RemoveSuffix, "Report.PDF", ".pdf", nil, "Report.PDF"},
		{"remove suffix once", RemoveSuffix, "xx", "x", nil, "x"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.fn(tc.input, tc.affix, tc.cmp...); got != tc.want {
				t.Errorf("%s(%q, %q) = %q, want %q", tc.name, tc.input, tc.affix, got, tc.want)
			}
		})
	}
}

// ===============================
// Line Ending Tests
// ===============================

func TestLineEndings(t *testing.T) {
	const mixed = "a\r\nb\rc\nd"

	if got := NormalizeLineEndings(mixed, "\n"); got != "a\nb\nc\nd" {
		t.Errorf("NormalizeLineEndings(LF) = %q", got)
	}
	if got := NormalizeLineEndings(mixed, "\r\n"); got != "a\r\nb\r\nc\r\nd" {
		t.Errorf("NormalizeLineEndings(CRLF) = %q", got)
	}
	if got := NormalizeLineEndings("a\r\nb\nc", ""); got != "abc" {
		t.Errorf("NormalizeLineEndings(empty) = %q, want %q", got, "abc")
	}
	if got := NormalizeLineEndings("x\ny"); got != "x"+DefaultNewline+"y" {
		t.Errorf("NormalizeLineEndings(default) = %q", got)
	}

	testCases := []struct {
		input string
		want  []string
	}{
		{mixed, []string{"a", "b", "c", "d"}},
		{"", []string{""}},
		{"one\n", []string{"one", ""}},
		{"\r\n\r\n", []string{"", "", ""}},
	}
	for _, tc := range testCases {
		if diff := cmp.Diff(tc.want, SplitLines(tc.input)); diff != "" {
			t.Errorf("SplitLines(%q) mismatch (-want +got):\n%s", tc.input, diff)
		}
	}
}

// ===============================
// Encoding Tests
// ===============================

func TestBase64(t *testing.T) {
	utf16le := unicode.UTF16(unicode.LittleEndian, unicode.IgnoreBOM)

	testCases := []struct {
		name  string
		input string
		enc   []encoding.Encoding
		want  string
	}{
		{"utf8 default", "Hello, 世界!", nil, "SGVsbG8sIOS4lueVjCE="},
		{"ascii", "abc", nil, "YWJj"},
		{"empty", "", nil, ""},
		{"utf16le", "Hi", []encoding.Encoding{utf16le}, "SABpAA=="},
		{"latin1", "é", []encoding.Encoding{charmap.ISO8859_1}, "6Q=="},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ToBase64(tc.input, tc.enc...)
			if err != nil {
				t.Fatalf("ToBase64(%q) error = %v", tc.input, err)
			}
			if got != tc.want {
				t.Errorf("ToBase64(%q) = %q, want %q", tc.input, got, tc.want)
			}
			back, err := FromBase64(got, tc.enc...)
			if err != nil || back != tc.input {
				t.Errorf("FromBase64(%q) = %q, %v, want %q", got, back, err, tc.input)
			}
		})
	}

	t.Run("invalid base64", func(t *testing.T) {
		_, err := FromBase64("not base64!")
		if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
			t.Errorf("FromBase64() error = %v, want %v", err, mdwerror.CodeInvalidFormat)
		}
	})

	t.Run("invalid utf-8", func(t *testing.T) {
		for _, b64 := range []string{"/w==", "Yf9i"} {
			got, err := FromBase64(b64)
			if err != nil || !utf8.ValidString(got) || !strings.ContainsRune(got, utf8.RuneError) {
				t.Errorf("FromBase64(%q) = %q, %v, want valid text with U+FFFD", b64, got, err)
			}
		}
		if got, _ := FromBase64("Yf9i"); got != "a\uFFFDb" {
			t.Errorf("FromBase64(%q) = %q, want %q", "Yf9i", got, "a\uFFFDb")
		}
	})

	t.Run("unrepresentable", func(t *testing.T) {
		_, err := ToBase64("世界", charmap.ISO8859_1)
		if !stderrors.Is(err, mdwerror.ErrInvalidArgument) {
			t.Errorf("ToBase64(latin1) error = %v, want ErrInvalidArgument", err)
		}
	})

	t.Run("lookup", func(t *testing.T) {
		e, err := LookupEncoding("UTF-16LE")
		if err != nil {
			t.Fatalf("LookupEncoding() error = %v", err)
		}
		if got := EncodingName(e); got != "utf-16le" {
			t.Errorf("EncodingName() = %q, want utf-16le", got)
		}
		if _, err := LookupEncoding("klingon-8"); !stderrors.Is(err, mdwerror.ErrInvalidArgument) {
			t.Errorf("LookupEncoding(klingon-8) error = %v, want ErrInvalidArgument", err)
		}
	})
}

// ===============================
// Enum Tests
// ===============================

type color int

const (
	red color = iota
	green
)

func (c color) String() string {
	return [...]string{"Red", "Green"}[c]
}

func TestToEnum(t *testing.T) {
	values := []color{red, green}

	testCases := []struct {
		input      string
		want       color
		ok         bool
		ignoreCase bool
	}{
		{"Green", green, true, false},
		{"  Red ", red, true, false},
		{"green", 0, false, false},
		{"green", green, true, true},
		{"", 0, false, true},
		{"Not Equals", 0, false, true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			fn := ToEnum[color]
			if tc.ignoreCase {
				fn = ToEnumIgnoreCase[color]
			}
			got, ok := fn(tc.input, values)
			if got != tc.want || ok != tc.ok {
				t.Errorf("ToEnum(%q) = %v, %v, want %v, %v", tc.input, got, ok, tc.want, tc.ok)
			}
		})
	}
}

// ===============================
// FormatWith Tests
// ===============================

func TestFormatWithLocale(t *testing.T) {
	testCases := []struct {
		name     string
		tag      language.Tag
		template string
		args     []interface{}
		want     string
	}{
		{"plain", language.English, "Hello {0}", []interface{}{"world"}, "Hello world"},
		{"reorder", language.English, "{1}-{0}-{1}", []interface{}{"a", "b"}, "b-a-b"},
		{"escapes", language.English, "{{{0}}}", []interface{}{"x"}, "{x}"},
		{"grouping en", language.English, "{0:N2}", []interface{}{1234.5}, "1,234.50"},
		{"grouping de", language.German, "{0:N2}", []interface{}{1234.5}, "1.234,50"},
		{"fixed de", language.German, "{0:F1}", []interface{}{1234.5}, "1234,5"},
		{"decimal padded", language.English, "{0:D5}", []interface{}{42}, "00042"},
		{"decimal negative", language.English, "{0:D3}", []interface{}{-7}, "-007"},
		{"hex", language.English, "{0:X4}|{0:x}", []interface{}{255}, "00FF|ff"},
		{"hex negative width", language.English, "{0:X}|{1:X2}|{2:x}", []interface{}{int8(-1), int16(-2), int32(-1)}, "FF|FFFE|ffffffff"},
		{"hex negative int64", language.English, "{0:X}", []interface{}{int64(-1)}, "FFFFFFFFFFFFFFFF"},
		{"right aligned", language.English, "[{0,5}]", []interface{}{"ab"}, "[   ab]"},
		{"left aligned", language.English, "[{0,-5}]", []interface{}{"ab"}, "[ab   ]"},
		{"nil arg", language.English, "[{0}]", []interface{}{nil}, "[]"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := FormatWithLocale(tc.tag, tc.template, tc.args...)
			if err != nil {
				t.Fatalf("FormatWithLocale(%q) error = %v", tc.template, err)
			}
			if got != tc.want {
				t.Errorf("FormatWithLocale(%v, %q) = %q, want %q", tc.tag, tc.template, got, tc.want)
			}
		})
	}

	t.Run("percent", func(t *testing.T) {
		got, err := FormatWithLocale(language.English, "{0:P0}", 0.5)
		if err != nil {
			t.Fatalf("FormatWithLocale() error = %v", err)
		}
		if !strings.HasPrefix(got, "50") || !strings.HasSuffix(got, "%") {
			t.Errorf("FormatWithLocale(P0, 0.5) = %q, want 50%%", got)
		}
	})

	invalid := []struct {
		template string
		args     []interface{}
	}{
		{"{1}", []interface{}{"only one"}},
		{"{0", []interface{}{"x"}},
		{"oops}", nil},
		{"{x}", []interface{}{"x"}},
		{"{0,wide}", []interface{}{"x"}},
		{"{0:Q}", []interface{}{1}},
		{"{0:D2}", []interface{}{1.5}},
	}
	for _, tc := range invalid {
		t.Run("invalid "+tc.template, func(t *testing.T) {
			_, err := FormatWithLocale(language.English, tc.template, tc.args...)
			if !mdwerror.HasCode(err, mdwerror.CodeInvalidFormat) {
				t.Errorf("FormatWithLocale(%q) error = %v, want %v", tc.template, err, mdwerror.CodeInvalidFormat)
			}
		})
	}
}

func TestFormatWithCurrentCulture(t *testing.T) {
	prev := i18n.SetCurrent(language.German)
	defer i18n.SetCurrent(prev)

	got, err := FormatWith("{0:N1} / {1}", 0.25, "x")
	if err != nil {
		t.Fatalf("FormatWith() error = %v", err)
	}
	if got != "0,3 / x" && got != "0,2 / x" {
		t.Errorf("FormatWith() = %q, want German decimal comma", got)
	}
}
