package dataset

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Kind selects the element type values are converted to.
type Kind string

const (
	KindAuto    Kind = "auto"
	KindInt     Kind = "int"
	KindFloat   Kind = "float"
	KindFloat32 Kind = "float32"
	KindString  Kind = "string"
)

// ParseKind converts a user supplied type name to a Kind.
// Empty string defaults to KindAuto.
func ParseKind(s string) (Kind, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "auto":
		return KindAuto, nil
	case "int", "integer":
		return KindInt, nil
	case "float", "float64", "double":
		return KindFloat, nil
	case "float32", "single":
		return KindFloat32, nil
	case "string", "text", "str":
		return KindString, nil
	default:
		return "", fmt.Errorf("invalid value type %q (expected auto|int|float|float32|string)", s)
	}
}

// InferKind picks the narrowest kind that holds every value.
func InferKind(values []interface{}) Kind {
	kind := KindInt
	for _, v := range values {
		switch t := v.(type) {
		case int:
		case float64:
			if t != math.Trunc(t) || math.IsInf(t, 0) || math.IsNaN(t) {
				kind = KindFloat
			}
		default:
			return KindString
		}
	}
	return kind
}

// ConversionError reports a value that does not fit the requested kind.
type ConversionError struct {
	Index int
	Value interface{}
	Kind  Kind
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("value %d (%v) is not a valid %s", e.Index, e.Value, e.Kind)
}

// Ints converts values to integers. Integral floats and numeric strings are accepted.
func Ints(values []interface{}) ([]int, error) {
	out := make([]int, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case int:
			out[i] = t
		case float64:
			if t != math.Trunc(t) || t >= math.MaxInt || t < math.MinInt {
				return nil, &ConversionError{Index: i, Value: v, Kind: KindInt}
			}
			out[i] = int(t)
		case string:
			n, err := strconv.Atoi(strings.TrimSpace(t))
			if err != nil {
				return nil, &ConversionError{Index: i, Value: v, Kind: KindInt}
			}
			out[i] = n
		default:
			return nil, &ConversionError{Index: i, Value: v, Kind: KindInt}
		}
	}
	return out, nil
}

// Float64s converts values to double precision floats.
func Float64s(values []interface{}) ([]float64, error) {
	out := make([]float64, len(values))
	for i, v := range values {
		f, ok := toFloat(v, 64)
		if !ok {
			return nil, &ConversionError{Index: i, Value: v, Kind: KindFloat}
		}
		out[i] = f
	}
	return out, nil
}

// Float32s converts values to single precision floats.
func Float32s(values []interface{}) ([]float32, error) {
	out := make([]float32, len(values))
	for i, v := range values {
		f, ok := toFloat(v, 32)
		if !ok {
			return nil, &ConversionError{Index: i, Value: v, Kind: KindFloat32}
		}
		out[i] = float32(f)
	}
	return out, nil
}

// Strings converts every value to its display text. Nulls become empty strings.
func Strings(values []interface{}) []string {
	out := make([]string, len(values))
	for i, v := range values {
		switch t := v.(type) {
		case nil:
		case string:
			out[i] = t
		case float64:
			out[i] = strconv.FormatFloat(t, 'f', -1, 64)
		default:
			out[i] = fmt.Sprint(t)
		}
	}
	return out
}

func toFloat(v interface{}, bitSize int) (float64, bool) {
	switch t := v.(type) {
	case int:
		return float64(t), true
	case float64:
		return t, true
	case string:
		f, err := strconv.ParseFloat(strings.TrimSpace(t), bitSize)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}
