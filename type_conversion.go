package jsonvalue

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/cybergodev/jsonvalue/internal"
)

// Text-based type conversion
//
// Typed accessors go through a textual form: getters render the stored value
// to text and parse the requested type from it; putters render the Go value
// to text and decide from that text how to store it.

// Radix selects the base used to render and parse integers
type Radix int

const (
	Decimal Radix = 10
	Hex     Radix = 16
	Octal   Radix = 8
)

func (r Radix) String() string {
	switch r {
	case Decimal:
		return "dec"
	case Hex:
		return "hex"
	case Octal:
		return "oct"
	default:
		return fmt.Sprintf("radix(%d)", int(r))
	}
}

// pickRadix returns the first radix given, Decimal when none is
func pickRadix(radix []Radix) (Radix, error) {
	if len(radix) == 0 {
		return Decimal, nil
	}
	switch r := radix[0]; r {
	case Decimal, Hex, Octal:
		return r, nil
	default:
		return 0, newValueError("radix", "", fmt.Sprintf("unsupported %s", r), ErrConversion)
	}
}

// renderText returns the canonical text of a node: digits for integers,
// shortest round-trip form for reals, the payload for strings, 1 or 0 for
// booleans, and compact JSON for everything else.
func (v *Value) renderText(n *internal.Node) (string, error) {
	switch kindOf(n) {
	case KindInteger:
		return internal.FormatInteger(n.IntegerValue()), nil
	case KindReal:
		return strconv.FormatFloat(n.RealValue(), 'g', -1, 64), nil
	case KindString:
		return n.StringValue(), nil
	case KindBool:
		if n.BoolValue() {
			return "1", nil
		}
		return "0", nil
	default:
		out, err := v.getCodec().appendNode(nil, n)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}
}

func trimText(s string) string {
	start, end := 0, len(s)
	for start < end && internal.IsSpace(s[start]) {
		start++
	}
	for end > start && internal.IsSpace(s[end-1]) {
		end--
	}
	return s[start:end]
}

// integerDigits strips the optional sign and base prefix accepted for radix
func integerDigits(text string, radix Radix) string {
	if radix != Hex {
		return text
	}
	sign := ""
	if strings.HasPrefix(text, "-") || strings.HasPrefix(text, "+") {
		sign, text = text[:1], text[1:]
	}
	if strings.HasPrefix(text, "0x") || strings.HasPrefix(text, "0X") {
		text = text[2:]
	}
	return sign + text
}

func conversionError(op, key, text, target string) error {
	return newValueError(op, key, fmt.Sprintf("cannot convert %q to %s", truncateString(text, 64), target), ErrConversion)
}

func parseInt64(op, key, text string, radix Radix) (int64, error) {
	i, err := strconv.ParseInt(integerDigits(trimText(text), radix), int(radix), 64)
	if err != nil {
		return 0, conversionError(op, key, text, "int64")
	}
	return i, nil
}

func parseUint64(op, key, text string, radix Radix) (uint64, error) {
	u, err := strconv.ParseUint(integerDigits(trimText(text), radix), int(radix), 64)
	if err != nil {
		return 0, conversionError(op, key, text, "uint64")
	}
	return u, nil
}

func parseFloat64(op, key, text string) (float64, error) {
	f, err := strconv.ParseFloat(trimText(text), 64)
	if err != nil {
		return 0, conversionError(op, key, text, "float64")
	}
	return f, nil
}

func parseBool(op, key, text string) (bool, error) {
	b, err := strconv.ParseBool(trimText(text))
	if err != nil {
		return false, conversionError(op, key, text, "bool")
	}
	return b, nil
}

// isDecimalInt64 reports whether text reads back whole as a base-10 int64
func isDecimalInt64(text string) bool {
	if !internal.IsIntegerText(text) {
		return false
	}
	_, err := strconv.ParseInt(text, 10, 64)
	return err == nil
}

func formatInt64(i int64, radix Radix) string {
	return strconv.FormatInt(i, int(radix))
}

func formatUint64(u uint64, radix Radix) string {
	return strconv.FormatUint(u, int(radix))
}

func formatFloat64(f float64) string {
	return strconv.FormatFloat(f, 'g', -1, 64)
}

func formatBool(b bool) string {
	if b {
		return "1"
	}
	return "0"
}
