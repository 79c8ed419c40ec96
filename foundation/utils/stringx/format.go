// File: format.go
// Title: Positional Template Formatting
// Description: FormatWith substitutes {index[,alignment][:format]}
//              placeholders using locale-aware number formatting.
// Author: msto63
// Version: v0.1.1
// Created: 2026-10-13
// Modified: 2026-10-14
//
// Change History:
// - 2026-10-13 v0.1.0: Initial implementation
// - 2026-10-14 v0.1.1: Hex of negative integers follows the argument width

package stringx

import (
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"github.com/msto63/quickx/foundation/core/errors"
	"github.com/msto63/quickx/foundation/core/i18n"
)

const placeholderSyntax = "{index[,alignment][:format]}"

// FormatWith replaces placeholders in template with args, formatted for
// the current culture. "{{" and "}}" produce literal braces.
//
// Supported numeric formats, each with an optional precision:
//
//	N  grouped decimal, 2 fraction digits by default   {0:N2} -> 1,234.50
//	F  decimal without grouping                        {0:F1} -> 1234.5
//	D  integer zero-padded to the precision            {0:D5} -> 00042
//	X  hexadecimal, x for lower case                   {0:X4} -> 00FF
//	P  percent, 2 fraction digits by default           {0:P0} -> 50%
//
// A time.Time argument takes a Go layout as its format. A negative
// alignment left-aligns within the width.
func FormatWith(template string, args ...interface{}) (string, error) {
	return FormatWithLocale(i18n.Current(), template, args...)
}

// FormatWithLocale is FormatWith for an explicit culture
func FormatWithLocale(tag language.Tag, template string, args ...interface{}) (string, error) {
	p := i18n.Printer(tag)
	var b strings.Builder
	b.Grow(len(template))

	for i := 0; i < len(template); i++ {
		c := template[i]
		switch {
		case c == '{' && i+1 < len(template) && template[i+1] == '{':
			b.WriteByte('{')
			i++
		case c == '}' && i+1 < len(template) && template[i+1] == '}':
			b.WriteByte('}')
			i++
		case c == '}':
			return "", formatError(template, "unescaped '}'")
		case c == '{':
			end := strings.IndexByte(template[i:], '}')
			if end < 0 {
				return "", formatError(template, "unterminated placeholder")
			}
			ph, err := parsePlaceholder(template[i+1 : i+end])
			if err != nil {
				return "", formatError(template, err.Error())
			}
			if ph.index >= len(args) {
				return "", formatError(template, fmt.Sprintf("index %d out of range for %d arguments", ph.index, len(args)))
			}
			text, err := formatValue(p, args[ph.index], ph.format)
			if err != nil {
				return "", formatError(template, err.Error())
			}
			b.WriteString(align(text, ph.alignment))
			i += end
		default:
			b.WriteByte(c)
		}
	}
	return b.String(), nil
}

func formatError(template, reason string) error {
	return errors.StringxInvalidFormat("FormatWith", template, placeholderSyntax+": "+reason, nil)
}

type placeholder struct {
	index     int
	alignment int
	format    string
}

func parsePlaceholder(body string) (placeholder, error) {
	var ph placeholder
	head := body
	if k := strings.IndexByte(body, ':'); k >= 0 {
		head, ph.format = body[:k], body[k+1:]
	}
	indexPart := head
	if k := strings.IndexByte(head, ','); k >= 0 {
		a, err := strconv.Atoi(strings.TrimSpace(head[k+1:]))
		if err != nil {
			return ph, fmt.Errorf("invalid alignment %q", head[k+1:])
		}
		indexPart, ph.alignment = head[:k], a
	}
	idx, err := strconv.Atoi(strings.TrimSpace(indexPart))
	if err != nil || idx < 0 {
		return ph, fmt.Errorf("invalid index %q", indexPart)
	}
	ph.index = idx
	return ph, nil
}

func align(s string, width int) string {
	if width < 0 {
		return PadRight(s, -width, ' ')
	}
	return PadLeft(s, width, ' ')
}

// formatValue renders v with the format specifier for p's language
func formatValue(p *message.Printer, v interface{}, format string) (string, error) {
	if t, ok := v.(time.Time); ok {
		if format == "" {
			return t.String(), nil
		}
		return t.Format(format), nil
	}

	if v == nil {
		return "", nil
	}

	// non-numeric values ignore the format
	kind := numberKind(v)
	if kind == notNumber || format == "" {
		return p.Sprint(v), nil
	}

	verb, precision, err := splitFormat(format)
	if err != nil {
		return "", err
	}

	switch verb {
	case 'N', 'n':
		digits := precisionOr(precision, 2)
		return p.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits))), nil
	case 'F', 'f':
		digits := precisionOr(precision, 2)
		return p.Sprint(number.Decimal(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits), number.NoSeparator())), nil
	case 'P', 'p':
		digits := precisionOr(precision, 2)
		return p.Sprint(number.Percent(v, number.MinFractionDigits(digits), number.MaxFractionDigits(digits))), nil
	case 'D', 'd', 'X', 'x':
		if kind == floatNumber {
			return "", fmt.Errorf("format %q requires an integer", format)
		}
		base := 10
		if verb == 'X' || verb == 'x' {
			base = 16
		}
		digits, negative := integerDigits(v, kind, base)
		if verb == 'X' {
			digits = strings.ToUpper(digits)
		}
		digits = PadLeft(digits, precisionOr(precision, 0), '0')
		if negative {
			digits = "-" + digits
		}
		return digits, nil
	}
	return "", fmt.Errorf("unknown format %q", format)
}

// integerDigits returns the digits of v in base and whether a minus sign is
// needed. Negative values in base 16 are rendered as two's complement of the
// argument's own bit width.
func integerDigits(v interface{}, kind numKind, base int) (string, bool) {
	if kind == unsignedNumber {
		return strconv.FormatUint(reflect.ValueOf(v).Uint(), base), false
	}
	rv := reflect.ValueOf(v)
	n := rv.Int()
	if base == 16 {
		u := uint64(n)
		if bits := rv.Type().Bits(); bits < 64 {
			u &= 1<<uint(bits) - 1
		}
		return strconv.FormatUint(u, 16), false
	}
	if n < 0 {
		return strconv.FormatUint(uint64(-(n + 1))+1, 10), true
	}
	return strconv.FormatInt(n, 10), false
}

func splitFormat(format string) (byte, int, error) {
	verb := format[0]
	if len(format) == 1 {
		return verb, -1, nil
	}
	digits := format[1:]
	for _, r := range digits {
		if !unicode.IsDigit(r) {
			return 0, 0, fmt.Errorf("unknown format %q", format)
		}
	}
	precision, err := strconv.Atoi(digits)
	if err != nil || precision > 99 {
		return 0, 0, fmt.Errorf("invalid precision in %q", format)
	}
	return verb, precision, nil
}

func precisionOr(precision, def int) int {
	if precision < 0 {
		return def
	}
	return precision
}

type numKind int

const (
	notNumber numKind = iota
	integerNumber
	unsignedNumber
	floatNumber
)

func numberKind(v interface{}) numKind {
	if v == nil {
		return notNumber
	}
	switch reflect.ValueOf(v).Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return integerNumber
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return unsignedNumber
	case reflect.Float32, reflect.Float64:
		return floatNumber
	}
	return notNumber
}
