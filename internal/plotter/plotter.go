// Package plotter renders a flat buffer of homogeneous values as a fixed-width
// ASCII table with a centered title, column headers and right-aligned cells.
package plotter

import (
	"fmt"
	"io"
	"os"
	"strings"
)

// Precision is the number of digits printed after the decimal point for
// floating point cells.
const Precision = 8

// Cell is the closed set of element types a Plotter can render.
type Cell interface {
	~int | ~float64 | ~float32 | ~string
}

// Option configures a Plotter.
type Option func(*options)

type options struct {
	stdout io.Writer
	stderr io.Writer
}

// WithStdout sets the sink used by Print. Defaults to os.Stdout.
func WithStdout(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stdout = w
		}
	}
}

// WithStderr sets the diagnostic sink used by Table. Defaults to os.Stderr.
func WithStderr(w io.Writer) Option {
	return func(o *options) {
		if w != nil {
			o.stderr = w
		}
	}
}

// Plotter renders values as a table. The geometry is fixed at construction
// and rendering never mutates it, so a Plotter may be rendered repeatedly.
//
// The values slice is borrowed, not copied: the caller keeps ownership and
// must not modify it while a render is in progress. A Plotter is not safe
// for concurrent use.
type Plotter[T Cell] struct {
	values      []T
	title       string
	columnNames []string
	arrangement Arrangement

	width       int
	size        int
	cols        int
	rows        int
	columnWidth int
	precision   int

	opts options
}

// New validates the inputs and derives the table geometry.
//
// Only the first rows*columns elements are rendered, where rows is
// elementCount divided by the number of columns; any remainder is dropped.
// Whether elementCount fits inside values is checked while rendering.
func New[T Cell](values []T, title string, columnNames []string, totalWidth, elementCount int, arrangement Arrangement, opts ...Option) (*Plotter[T], error) {
	if values == nil {
		return nil, &ArgumentError{Field: "data", Reason: "cannot be nil"}
	}
	if len(columnNames) == 0 {
		return nil, &ArgumentError{Field: "column names", Reason: "cannot be empty"}
	}
	if totalWidth <= 0 {
		return nil, &ArgumentError{Field: "table width", Reason: "must be positive"}
	}
	if elementCount <= 0 {
		return nil, &ArgumentError{Field: "size", Reason: "must be positive"}
	}

	o := options{stdout: os.Stdout, stderr: os.Stderr}
	for _, opt := range opts {
		opt(&o)
	}

	cols := len(columnNames)
	names := make([]string, cols)
	copy(names, columnNames)

	return &Plotter[T]{
		values:      values,
		title:       title,
		columnNames: names,
		arrangement: arrangement,
		width:       totalWidth,
		size:        elementCount,
		cols:        cols,
		rows:        elementCount / cols,
		columnWidth: (totalWidth - (cols + 1)) / cols,
		precision:   Precision,
		opts:        o,
	}, nil
}

// Title returns the table title.
func (p *Plotter[T]) Title() string { return p.title }

// ColumnNames returns a copy of the column headers.
func (p *Plotter[T]) ColumnNames() []string {
	names := make([]string, len(p.columnNames))
	copy(names, p.columnNames)
	return names
}

// Arrangement returns the source order of the values.
func (p *Plotter[T]) Arrangement() Arrangement { return p.arrangement }

// Width returns the total border-to-border width.
func (p *Plotter[T]) Width() int { return p.width }

// Rows returns the number of rendered rows.
func (p *Plotter[T]) Rows() int { return p.rows }

// Columns returns the number of columns.
func (p *Plotter[T]) Columns() int { return p.cols }

// ColumnWidth returns the width of every data cell. It can be zero or
// negative when the table is too narrow for its columns.
func (p *Plotter[T]) ColumnWidth() int { return p.columnWidth }

// Precision returns the decimal precision used for floating point cells.
func (p *Plotter[T]) Precision() int { return p.precision }

// Remainder returns how many of the requested elements do not fill a whole
// row and are therefore not rendered.
func (p *Plotter[T]) Remainder() int { return p.size - p.rows*p.cols }

// Render builds the table text. On failure the text built so far is
// returned together with a *RenderError. Each call starts from an empty
// buffer.
func (p *Plotter[T]) Render() (string, error) {
	var b strings.Builder
	err := p.render(&b)
	b.WriteString("\n")
	return b.String(), err
}

// Print writes the table to the stdout sink and returns it. A render failure
// is reported on the same sink ahead of the partial table.
func (p *Plotter[T]) Print() string {
	out, err := p.Render()
	if err != nil {
		_, _ = fmt.Fprintf(p.opts.stdout, "Error printing table: %v\n", err)
	}
	_, _ = io.WriteString(p.opts.stdout, out)
	return out
}

// Table returns the table text. A render failure is reported on the stderr
// sink together with the table title.
func (p *Plotter[T]) Table() string {
	out, err := p.Render()
	if err != nil {
		_, _ = fmt.Fprintf(p.opts.stderr, "Error printing table: %s\n%v\n", p.title, err)
	}
	return out
}

// Cells returns the rendered part of the data as a row-ordered matrix of
// formatted values, independent of the source arrangement.
func (p *Plotter[T]) Cells() ([][]string, error) {
	out := make([][]string, 0, p.rows)
	for i := 0; i < p.rows; i++ {
		start, stride := p.rowSpan(i)
		row := make([]string, 0, p.cols)
		for j := 0; j < p.cols; j++ {
			v, err := p.at(start + j*stride)
			if err != nil {
				return out, err
			}
			row = append(row, formatCell(v, p.precision))
		}
		out = append(out, row)
	}
	return out, nil
}

func (p *Plotter[T]) render(b *strings.Builder) (err error) {
	phase := "title"
	defer func() {
		if r := recover(); r != nil {
			err = &RenderError{Title: p.title, Phase: phase, Err: fmt.Errorf("%v", r)}
		}
	}()

	p.writeTitle(b)
	phase = "columns header"
	p.writeColumnsHeader(b)
	phase = "content"
	if err := p.writeContent(b); err != nil {
		return &RenderError{Title: p.title, Phase: phase, Err: err}
	}
	return nil
}

func (p *Plotter[T]) writeTitle(b *strings.Builder) {
	border := rule(p.width)
	b.WriteString(border + "\n")
	b.WriteString("|" + center(p.title, p.width-2) + "|\n")
	b.WriteString(border + "\n")
}

func (p *Plotter[T]) writeColumnsHeader(b *strings.Builder) {
	b.WriteString("|")
	for _, name := range p.columnNames {
		b.WriteString(center(name, p.columnWidth))
		b.WriteString("|")
	}
	b.WriteString("\n")
	b.WriteString(rule(p.width) + "\n")
}

func (p *Plotter[T]) writeContent(b *strings.Builder) error {
	for i := 0; i < p.rows; i++ {
		start, stride := p.rowSpan(i)
		if err := p.writeRow(b, start, stride); err != nil {
			return err
		}
	}
	b.WriteString(rule(p.width) + "\n")
	return nil
}

// writeRow emits one table row. Values wider than the column are replaced
// by the zero value in place and listed after the row instead.
func (p *Plotter[T]) writeRow(b *strings.Builder, start, stride int) error {
	var overflow strings.Builder

	b.WriteString("|")
	for j := 0; j < p.cols; j++ {
		v, err := p.at(start + j*stride)
		if err != nil {
			return err
		}

		text := formatCell(v, p.precision)
		if textWidth(text) > p.columnWidth {
			fmt.Fprintf(&overflow, "\n\ncell: %d value: %s", j, text)
			var zero T
			text = formatCell(zero, p.precision)
		}

		b.WriteString(alignRight(text, p.columnWidth))
		b.WriteString("|")
	}
	b.WriteString(overflow.String())
	b.WriteString("\n")
	return nil
}

// rowSpan returns the flat index of the first cell in row i and the
// distance between consecutive cells of that row.
func (p *Plotter[T]) rowSpan(i int) (start, stride int) {
	if p.arrangement == ColumnMajor {
		return i, p.rows
	}
	return i * p.cols, 1
}

func (p *Plotter[T]) at(idx int) (T, error) {
	if idx < 0 || idx >= len(p.values) {
		var zero T
		return zero, fmt.Errorf("%w: index %d, %d values available", ErrIndexOutOfRange, idx, len(p.values))
	}
	return p.values[idx], nil
}
