package dataset

import (
	"errors"
	"math"
	"reflect"
	"testing"
)

func TestParseKind(t *testing.T) {
	tests := []struct {
		in      string
		want    Kind
		wantErr bool
	}{
		{"", KindAuto, false},
		{"AUTO", KindAuto, false},
		{"int", KindInt, false},
		{"integer", KindInt, false},
		{"double", KindFloat, false},
		{" float ", KindFloat, false},
		{"single", KindFloat32, false},
		{"text", KindString, false},
		{"complex", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseKind(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseKind(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseKind(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestInferKind(t *testing.T) {
	tests := []struct {
		name   string
		values []interface{}
		want   Kind
	}{
		{"ints", []interface{}{1, 2, 3}, KindInt},
		{"integral floats", []interface{}{1.0, 2}, KindInt},
		{"fractions", []interface{}{1, 2.5}, KindFloat},
		{"strings", []interface{}{1, "x"}, KindString},
		{"bools", []interface{}{true}, KindString},
		{"empty", nil, KindInt},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := InferKind(tt.values); got != tt.want {
				t.Errorf("InferKind = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestInts(t *testing.T) {
	got, err := Ints([]interface{}{1, 2.0, " 3 "})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []int{1, 2, 3}) {
		t.Errorf("Ints = %v", got)
	}

	_, err = Ints([]interface{}{1, 2.5})
	var convErr *ConversionError
	if !errors.As(err, &convErr) {
		t.Fatalf("expected *ConversionError, got %v", err)
	}
	if convErr.Index != 1 || convErr.Kind != KindInt {
		t.Errorf("unexpected conversion error: %+v", convErr)
	}
}

func TestIntsRejectsOutOfRange(t *testing.T) {
	tests := []float64{math.Exp2(63), math.Exp2(64), -math.Exp2(64)}
	for _, v := range tests {
		_, err := Ints([]interface{}{v})
		var convErr *ConversionError
		if !errors.As(err, &convErr) {
			t.Errorf("Ints(%g): expected *ConversionError, got %v", v, err)
		}
	}

	got, err := Ints([]interface{}{-math.Exp2(63)})
	if err != nil || got[0] != math.MinInt {
		t.Errorf("Ints(-2^63) = %v, %v", got, err)
	}
}

func TestFloats(t *testing.T) {
	got, err := Float64s([]interface{}{1, 2.5, "3.25"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got, []float64{1, 2.5, 3.25}) {
		t.Errorf("Float64s = %v", got)
	}

	got32, err := Float32s([]interface{}{0.5, 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !reflect.DeepEqual(got32, []float32{0.5, 2}) {
		t.Errorf("Float32s = %v", got32)
	}

	if _, err := Float64s([]interface{}{"abc"}); err == nil {
		t.Error("expected error for non-numeric string")
	}
	if _, err := Float32s([]interface{}{true}); err == nil {
		t.Error("expected error for bool")
	}
}

func TestStrings(t *testing.T) {
	got := Strings([]interface{}{"a", 1, 2.5, nil, true})
	want := []string{"a", "1", "2.5", "", "true"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Strings = %v, want %v", got, want)
	}
}
