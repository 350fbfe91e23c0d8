package cmd

import (
	"context"
	"fmt"
	"io"

	"github.com/salmonumbrella/plotter/internal/config"
	"github.com/salmonumbrella/plotter/internal/dataset"
	"github.com/salmonumbrella/plotter/internal/output"
	"github.com/salmonumbrella/plotter/internal/plotter"
	"github.com/spf13/cobra"
)

// Render flags
var (
	renderTitle        string
	renderColumns      []string
	renderWidth        int
	renderArrangement  string
	renderType         string
	renderCount        int
	renderSelect       string
	renderStderrReport bool
)

var renderCmd = &cobra.Command{
	Use:   "render [file|-]",
	Short: "Render values as an ASCII table",
	Long: `Render a list of values as a fixed-width ASCII table.

The input is JSON or YAML: either a bare list of values or a document with
title, columns, width, arrangement, type and values keys. Flags override the
document. Reads stdin when no file is given or the file is "-".

Values that do not fit their column are shown as zero in place and listed
below the row as "cell: <column> value: <text>".`,
	Example: `  echo '[1.5, 2.25, 3, 4.125]' | plotter render -t Data -c A,B -w 25
  plotter render data.yaml --arrangement column-major
  plotter render report.json --select '.rows[] | [.min, .max]' -c min,max`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&renderTitle, "title", "t", "", "Table title")
	renderCmd.Flags().StringSliceVarP(&renderColumns, "columns", "c", nil, "Column names (comma separated or repeated)")
	renderCmd.Flags().IntVarP(&renderWidth, "width", "w", 0, "Total table width (env: PLOTTER_WIDTH)")
	renderCmd.Flags().StringVarP(&renderArrangement, "arrangement", "a", "", "Source order of values (row-major|column-major)")
	renderCmd.Flags().StringVar(&renderType, "type", "", "Value type (auto|int|float|float32|string)")
	renderCmd.Flags().IntVarP(&renderCount, "count", "n", 0, "Number of values to render (default: all)")
	renderCmd.Flags().StringVar(&renderSelect, "select", "", "jq expression selecting the values from the input")
	renderCmd.Flags().BoolVar(&renderStderrReport, "stderr-diagnostics", false, "Report render failures on stderr instead of stdout")

	rootCmd.AddCommand(renderCmd)
}

// tableOptions is the fully resolved input to a table render.
type tableOptions struct {
	Title       string
	Columns     []string
	Width       int
	Arrangement plotter.Arrangement
	Kind        dataset.Kind
	Count       int
}

// tableReport is the structured form of a rendered table.
type tableReport struct {
	Title       string     `json:"title" yaml:"title"`
	Columns     []string   `json:"columns" yaml:"columns"`
	Arrangement string     `json:"arrangement" yaml:"arrangement"`
	ValueType   string     `json:"value_type" yaml:"value_type"`
	Width       int        `json:"width" yaml:"width"`
	ColumnWidth int        `json:"column_width" yaml:"column_width"`
	Rows        int        `json:"rows" yaml:"rows"`
	Precision   int        `json:"precision" yaml:"precision"`
	Dropped     int        `json:"dropped" yaml:"dropped"`
	Cells       [][]string `json:"cells" yaml:"cells"`
	Table       string     `json:"table" yaml:"table"`
	Error       string     `json:"error,omitempty" yaml:"error,omitempty"`
}

func runRender(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	log := loggerFromContext(ctx)

	source := "-"
	if len(args) == 1 {
		source = args[0]
	}
	stdin := stdinFromContext(ctx)
	if source == "-" && !inputHasData(stdin) {
		return validationError{"no input: pass a file or pipe values on stdin"}
	}

	data, err := readInputSource(source, stdin)
	if err != nil {
		return err
	}
	doc, err := dataset.Parse(data)
	if err != nil {
		return err
	}
	if err := doc.Select(renderSelect); err != nil {
		return err
	}
	if len(doc.Values) == 0 {
		return dataset.ErrNoValues
	}

	opts, err := resolveTableOptions(cmd, doc, loadedConfig)
	if err != nil {
		return err
	}
	log.Debug().
		Str("title", opts.Title).
		Strs("columns", opts.Columns).
		Int("width", opts.Width).
		Str("arrangement", opts.Arrangement.String()).
		Str("type", string(opts.Kind)).
		Int("count", opts.Count).
		Int("values", len(doc.Values)).
		Msg("resolved table")

	return renderValues(ctx, opts, doc.Values)
}

// resolveTableOptions merges flags, the input document and config.
func resolveTableOptions(cmd *cobra.Command, doc *dataset.Document, cfg *config.Config) (tableOptions, error) {
	if cfg == nil {
		cfg = &config.Config{}
	}

	opts := tableOptions{
		Title:   doc.Title,
		Columns: doc.Columns,
		Count:   len(doc.Values),
	}
	if flagChanged(cmd, "title") {
		opts.Title = renderTitle
	}
	if flagChanged(cmd, "columns") {
		opts.Columns = splitColumns(renderColumns)
	}
	if flagChanged(cmd, "count") {
		if renderCount <= 0 {
			return opts, validationError{fmt.Sprintf("invalid --count %d (must be positive)", renderCount)}
		}
		opts.Count = renderCount
	}

	width, source, err := resolveWidth(cmd, renderWidth, doc.Width, cfg)
	if err != nil {
		return opts, err
	}
	opts.Width = width
	loggerFromContext(cmd.Context()).Debug().Str("source", source).Int("width", width).Msg("table width")

	arrangement, err := plotter.ParseArrangement(firstNonEmpty(flagValue(cmd, "arrangement", renderArrangement), doc.Arrangement, cfg.Arrangement))
	if err != nil {
		return opts, validationError{err.Error()}
	}
	opts.Arrangement = arrangement

	kind, err := dataset.ParseKind(firstNonEmpty(flagValue(cmd, "type", renderType), doc.Type, cfg.ValueType))
	if err != nil {
		return opts, validationError{err.Error()}
	}
	if kind == dataset.KindAuto {
		kind = dataset.InferKind(doc.Values)
	}
	opts.Kind = kind

	return opts, nil
}

// flagValue returns the flag's value only when the user set it.
func flagValue(cmd *cobra.Command, name, value string) string {
	if flagChanged(cmd, name) {
		return value
	}
	return ""
}

func renderValues(ctx context.Context, opts tableOptions, values []interface{}) error {
	switch opts.Kind {
	case dataset.KindInt:
		typed, err := dataset.Ints(values)
		if err != nil {
			return err
		}
		return renderTyped(ctx, opts, typed)
	case dataset.KindFloat32:
		typed, err := dataset.Float32s(values)
		if err != nil {
			return err
		}
		return renderTyped(ctx, opts, typed)
	case dataset.KindString:
		return renderTyped(ctx, opts, dataset.Strings(values))
	default:
		typed, err := dataset.Float64s(values)
		if err != nil {
			return err
		}
		return renderTyped(ctx, opts, typed)
	}
}

func renderTyped[T plotter.Cell](ctx context.Context, opts tableOptions, values []T) error {
	stdout := stdoutFromContext(ctx)
	stderr := stderrFromContext(ctx)
	log := loggerFromContext(ctx)

	p, err := plotter.New(values, opts.Title, opts.Columns, opts.Width, opts.Count, opts.Arrangement,
		plotter.WithStdout(stdout), plotter.WithStderr(stderr))
	if err != nil {
		return err
	}

	if !output.QuietFromContext(ctx) {
		if n := p.Remainder(); n > 0 {
			log.Warn().Int("dropped", n).Int("columns", p.Columns()).
				Msg("value count is not a multiple of the column count; trailing values are not rendered")
		}
		if p.ColumnWidth() <= 0 {
			log.Warn().Int("width", p.Width()).Int("columns", p.Columns()).Msg("table is too narrow for its columns")
		}
	}

	format := output.FormatFromContext(ctx)
	if !output.IsStructured(format) {
		if renderStderrReport {
			_, err := io.WriteString(stdout, p.Table())
			return err
		}
		p.Print()
		return nil
	}

	text, renderErr := p.Render()
	cells, cellsErr := p.Cells()
	report := tableReport{
		Title:       p.Title(),
		Columns:     p.ColumnNames(),
		Arrangement: p.Arrangement().String(),
		ValueType:   string(opts.Kind),
		Width:       p.Width(),
		ColumnWidth: p.ColumnWidth(),
		Rows:        p.Rows(),
		Precision:   p.Precision(),
		Dropped:     p.Remainder(),
		Cells:       cells,
		Table:       text,
	}
	if renderErr == nil && cellsErr != nil {
		renderErr = cellsErr
	}
	if renderErr != nil {
		report.Error = renderErr.Error()
		log.Error().Err(renderErr).Str("title", p.Title()).Msg("error printing table")
	}

	return output.NewPrinter(stdout, format).Print(ctx, report)
}
