package cmd

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/salmonumbrella/plotter/internal/config"
	"github.com/salmonumbrella/plotter/internal/output"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var (
	// Version is set at build time
	version = "dev"
	// Commit is set at build time
	commit = "none"
	// Date is set at build time
	date = "unknown"
)

// SetVersionInfo sets the version information from build flags
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
	rootCmd.Version = version
	rootCmd.SetVersionTemplate(versionLine())
}

func versionLine() string {
	return fmt.Sprintf("plotter version %s (commit: %s, built: %s)\n", version, commit, date)
}

// Global flags
var (
	outputFmt  string
	outputType output.Format
	debug      bool
	configFile string
	queryExpr  string
	queryFile  string
	errorFmt   string
	quietFlag  bool
)

// loadedConfig is the config resolved for the running command.
var loadedConfig *config.Config

var rootCmd = &cobra.Command{
	Use:   "plotter",
	Short: "Render values as fixed-width ASCII tables",
	Long: `plotter renders a flat list of numbers or strings as a boxed ASCII table
with a centered title, column headers and right-aligned cells.

Values are read from a JSON or YAML file (or stdin) and laid out in
row-major or column-major order.

Environment Variables:
  PLOTTER_WIDTH   Default table width`,
	Version:       version,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		skipConfigLoad := cmd.Name() == "config" || (cmd.Parent() != nil && cmd.Parent().Name() == "config")
		cfg := &config.Config{}
		if !skipConfigLoad {
			loadedCfg, err := loadConfigFromFlag()
			if err != nil {
				return formatConfigLoadError(err)
			}
			cfg = loadedCfg
		}
		loadedConfig = cfg

		// Output format selection: --output > config > default
		formatStr := outputFmt
		if !flagChanged(cmd, "output") && !flagChanged(cmd, "format") && strings.TrimSpace(cfg.OutputFormat) != "" {
			formatStr = strings.TrimSpace(cfg.OutputFormat)
		}
		format, err := output.ParseFormat(formatStr)
		if err != nil {
			return err
		}
		outputType = format
		outputFmt = string(format)

		// jq query
		if queryExpr != "" && queryFile != "" {
			return validationError{"use only one of --query or --query-file"}
		}
		if queryFile != "" {
			loaded, err := readInputSource(queryFile, cmd.InOrStdin())
			if err != nil {
				return err
			}
			queryExpr = strings.TrimSpace(string(loaded))
		}

		if !flagChanged(cmd, "error-format") && strings.TrimSpace(cfg.ErrorFormat) != "" {
			errorFmt = strings.TrimSpace(cfg.ErrorFormat)
		}

		ctx := cmd.Context()
		ctx = withIO(ctx, cmd.InOrStdin(), cmd.OutOrStdout(), cmd.ErrOrStderr())
		ctx = output.WithFormat(ctx, outputType)
		ctx = output.WithQuery(ctx, queryExpr)
		ctx = output.WithQuiet(ctx, quietFlag)
		ctx = WithErrorFormat(ctx, errorFmt)
		ctx = withLogger(ctx, cmd.ErrOrStderr(), debug, quietFlag)
		cmd.SetContext(ctx)
		if root := cmd.Root(); root != cmd {
			root.SetContext(ctx)
		}

		if err := validateErrorFormat(errorFmt); err != nil {
			return err
		}

		loggerFromContext(ctx).Debug().
			Str("command", cmd.CommandPath()).
			Str("output", GetOutputFormatString()).
			Str("config", configFile).
			Msg("starting")
		return nil
	},
}

// Execute runs the root command
func Execute() error {
	if err := rootCmd.Execute(); err != nil {
		printCommandError(currentContext(), err)
		return err
	}
	return nil
}

// GetOutputFormat returns the configured output format
func GetOutputFormat() output.Format {
	if outputType != "" {
		return outputType
	}
	parsed, err := output.ParseFormat(outputFmt)
	if err != nil {
		return output.FormatTable
	}
	return parsed
}

// GetOutputFormatString returns the output format as a string.
func GetOutputFormatString() string {
	if outputType != "" {
		return string(outputType)
	}
	return outputFmt
}

func init() {
	rootCmd.SetVersionTemplate(versionLine())

	// Global flags
	rootCmd.PersistentFlags().StringVarP(&outputFmt, "output", "o", "table", "Output format (table|text|json|ndjson|yaml)")
	rootCmd.PersistentFlags().StringVar(&outputFmt, "format", "table", "Alias for --output")
	rootCmd.PersistentFlags().StringVar(&queryExpr, "query", "", "jq expression to filter JSON output")
	rootCmd.PersistentFlags().StringVar(&queryFile, "query-file", "", "Read jq expression from file (use - for stdin)")
	rootCmd.PersistentFlags().StringVar(&errorFmt, "error-format", "auto", "Error output format (auto|text|json|yaml)")
	rootCmd.PersistentFlags().BoolVar(&quietFlag, "quiet", false, "Suppress warnings")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Config file (default: ~/.config/plotter/config.yaml)")
}

func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	return term.IsTerminal(int(file.Fd()))
}

// terminalWidth reports the column count of w when it is a terminal.
func terminalWidth(w io.Writer) (int, bool) {
	file, ok := w.(*os.File)
	if !ok || !term.IsTerminal(int(file.Fd())) {
		return 0, false
	}
	width, _, err := term.GetSize(int(file.Fd()))
	if err != nil || width <= 0 {
		return 0, false
	}
	return width, true
}
