package plotter

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"unicode/utf8"
)

// formatCell renders a single value the way it appears inside a cell.
// Floats use fixed notation with the given precision, integers and strings
// are written as-is. NaN and infinities are spelled nan, inf and -inf.
func formatCell[T Cell](v T, precision int) string {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float64:
		if s, ok := nonFinite(rv.Float()); ok {
			return s
		}
		return strconv.FormatFloat(rv.Float(), 'f', precision, 64)
	case reflect.Float32:
		if s, ok := nonFinite(rv.Float()); ok {
			return s
		}
		return strconv.FormatFloat(rv.Float(), 'f', precision, 32)
	case reflect.Int:
		return strconv.FormatInt(rv.Int(), 10)
	case reflect.String:
		return rv.String()
	default:
		return fmt.Sprint(v)
	}
}

func nonFinite(f float64) (string, bool) {
	switch {
	case math.IsNaN(f):
		return "nan", true
	case math.IsInf(f, 1):
		return "inf", true
	case math.IsInf(f, -1):
		return "-inf", true
	}
	return "", false
}

// textWidth counts characters, not display columns.
func textWidth(s string) int {
	return utf8.RuneCountInString(s)
}

func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	return strings.Repeat(" ", n)
}

// center pads s to width, putting the odd extra space on the right.
func center(s string, width int) string {
	gap := width - textWidth(s)
	left := gap / 2
	right := gap - left
	return spaces(left) + s + spaces(right)
}

// alignRight pads s on the left to width. Longer text is never truncated.
func alignRight(s string, width int) string {
	return spaces(width-textWidth(s)) + s
}

// rule returns a border line of width characters without the newline.
func rule(width int) string {
	dashes := width - 2
	if dashes < 0 {
		dashes = 0
	}
	return "+" + strings.Repeat("-", dashes) + "+"
}
