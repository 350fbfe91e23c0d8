package output

import (
	"fmt"
	"reflect"

	"github.com/salmonumbrella/plotter/internal/plotter"
)

// Table is a simple table representation for table output.
type Table struct {
	Title   string     `json:"title,omitempty" yaml:"title,omitempty"`
	Headers []string   `json:"headers,omitempty" yaml:"headers,omitempty"`
	Rows    [][]string `json:"rows,omitempty" yaml:"rows,omitempty"`
}

func (p *Printer) printTable(data interface{}) error {
	table, ok := data.(Table)
	if !ok {
		var err error
		table, err = buildTable(data)
		if err != nil {
			return err
		}
	}
	if len(table.Rows) == 0 {
		return nil
	}

	values := make([]string, 0, len(table.Rows)*len(table.Headers))
	for _, row := range table.Rows {
		for i := range table.Headers {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}
			values = append(values, cell)
		}
	}

	width := p.width
	if width <= 0 {
		width = fitWidth(table)
	}

	tp, err := plotter.New(values, table.Title, table.Headers, width, len(values), plotter.RowMajor, plotter.WithStderr(p.w))
	if err != nil {
		return fmt.Errorf("table output: %w", err)
	}
	_, err = fmt.Fprint(p.w, tp.Table())
	return err
}

// fitWidth returns the narrowest width where every cell and header fits
// its column and the title fits its band.
func fitWidth(t Table) int {
	widest := 1
	for _, h := range t.Headers {
		widest = max(widest, len([]rune(h)))
	}
	for _, row := range t.Rows {
		for _, cell := range row {
			widest = max(widest, len([]rune(cell)))
		}
	}
	cols := len(t.Headers)
	return max(cols*widest+cols+1, len([]rune(t.Title))+2)
}

// buildTable turns a struct, map or slice into headers and rows.
// Structs and maps become a key/value table.
func buildTable(data interface{}) (Table, error) {
	v := reflect.ValueOf(data)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return Table{}, nil
		}
		v = v.Elem()
	}

	switch v.Kind() {
	case reflect.Map:
		return pairsTable(mapPairs(v)), nil
	case reflect.Struct:
		return pairsTable(structPairs(v)), nil
	case reflect.Slice, reflect.Array:
		return sliceTable(v), nil
	default:
		return Table{}, fmt.Errorf("table format requires a list, map or struct")
	}
}

func pairsTable(pairs [][2]string) Table {
	t := Table{Headers: []string{"key", "value"}}
	for _, kv := range pairs {
		t.Rows = append(t.Rows, []string{kv[0], kv[1]})
	}
	return t
}

func sliceTable(v reflect.Value) Table {
	if v.Len() == 0 {
		return Table{}
	}

	first := v.Index(0)
	for first.Kind() == reflect.Ptr && !first.IsNil() {
		first = first.Elem()
	}

	// Default for slices of maps or primitives
	if first.Kind() != reflect.Struct {
		t := Table{Headers: []string{"value"}}
		for i := 0; i < v.Len(); i++ {
			t.Rows = append(t.Rows, []string{fmt.Sprint(v.Index(i).Interface())})
		}
		return t
	}

	var t Table
	var fields []int
	for i := 0; i < first.NumField(); i++ {
		f := first.Type().Field(i)
		if !f.IsExported() {
			continue
		}
		fields = append(fields, i)
		t.Headers = append(t.Headers, fieldLabel(f))
	}

	for i := 0; i < v.Len(); i++ {
		item := v.Index(i)
		for item.Kind() == reflect.Ptr && !item.IsNil() {
			item = item.Elem()
		}
		row := make([]string, 0, len(fields))
		if item.Kind() != reflect.Struct {
			row = append(row, fmt.Sprint(item.Interface()))
			t.Rows = append(t.Rows, row)
			continue
		}
		for _, idx := range fields {
			row = append(row, fmt.Sprint(item.Field(idx).Interface()))
		}
		t.Rows = append(t.Rows, row)
	}
	return t
}
