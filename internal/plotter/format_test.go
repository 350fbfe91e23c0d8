package plotter

import (
	"math"
	"testing"
)

func TestParseArrangement(t *testing.T) {
	tests := []struct {
		in      string
		want    Arrangement
		wantErr bool
	}{
		{"", RowMajor, false},
		{"row", RowMajor, false},
		{"Row-Major", RowMajor, false},
		{" rowmajor ", RowMajor, false},
		{"column", ColumnMajor, false},
		{"col", ColumnMajor, false},
		{"COLUMN-MAJOR", ColumnMajor, false},
		{"column_major", ColumnMajor, false},
		{"diagonal", RowMajor, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseArrangement(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseArrangement(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseArrangement(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestArrangementString(t *testing.T) {
	if RowMajor.String() != "row-major" {
		t.Errorf("RowMajor.String() = %q", RowMajor.String())
	}
	if ColumnMajor.String() != "column-major" {
		t.Errorf("ColumnMajor.String() = %q", ColumnMajor.String())
	}
	if Arrangement(7).String() != "Arrangement(7)" {
		t.Errorf("Arrangement(7).String() = %q", Arrangement(7).String())
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		s     string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abc", 4, "abc "},
		{"abcdef", 3, "abcdef"},
		{"", 3, "   "},
		{"é", 4, " é  "},
	}
	for _, tt := range tests {
		if got := center(tt.s, tt.width); got != tt.want {
			t.Errorf("center(%q, %d) = %q, want %q", tt.s, tt.width, got, tt.want)
		}
	}
}

func TestAlignRight(t *testing.T) {
	if got := alignRight("7", 4); got != "   7" {
		t.Errorf("alignRight = %q", got)
	}
	if got := alignRight("12345", 3); got != "12345" {
		t.Errorf("alignRight should not truncate, got %q", got)
	}
	if got := alignRight("x", -2); got != "x" {
		t.Errorf("alignRight with negative width = %q", got)
	}
}

func TestRule(t *testing.T) {
	tests := map[int]string{
		0: "++",
		1: "++",
		2: "++",
		5: "+---+",
	}
	for width, want := range tests {
		if got := rule(width); got != want {
			t.Errorf("rule(%d) = %q, want %q", width, got, want)
		}
	}
}

func TestFormatCell(t *testing.T) {
	if got := formatCell(3.0, Precision); got != "3.00000000" {
		t.Errorf("float64 = %q", got)
	}
	if got := formatCell(float32(0.5), Precision); got != "0.50000000" {
		t.Errorf("float32 = %q", got)
	}
	if got := formatCell(-42, Precision); got != "-42" {
		t.Errorf("int = %q", got)
	}
	if got := formatCell("text", Precision); got != "text" {
		t.Errorf("string = %q", got)
	}
}

func TestFormatCellNonFinite(t *testing.T) {
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"nan", formatCell(math.NaN(), Precision), "nan"},
		{"inf", formatCell(math.Inf(1), Precision), "inf"},
		{"-inf", formatCell(math.Inf(-1), Precision), "-inf"},
		{"float32 nan", formatCell(float32(math.NaN()), Precision), "nan"},
		{"float32 -inf", formatCell(float32(math.Inf(-1)), Precision), "-inf"},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: formatCell = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}
