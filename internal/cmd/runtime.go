package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/salmonumbrella/plotter/internal/config"
	"github.com/spf13/cobra"
)

// loadConfigFromFlag loads config from --config if provided, otherwise from default path.
func loadConfigFromFlag() (*config.Config, error) {
	if strings.TrimSpace(configFile) != "" {
		return config.Load(configFile)
	}
	return config.ReadConfig()
}

func flagChanged(cmd *cobra.Command, name string) bool {
	if cmd == nil {
		return false
	}
	if cmd.Flags().Changed(name) {
		return true
	}
	return cmd.InheritedFlags().Changed(name)
}

func formatConfigLoadError(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("load config: %w", err)
}

// firstNonEmpty returns the first value that is not blank after trimming.
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if s := strings.TrimSpace(v); s != "" {
			return s
		}
	}
	return ""
}

// resolveWidth picks the table width with precedence:
// flag > input document > env > config > terminal > default.
func resolveWidth(cmd *cobra.Command, flagWidth, docWidth int, cfg *config.Config) (int, string, error) {
	if flagChanged(cmd, "width") {
		if flagWidth <= 0 {
			return 0, "", validationError{fmt.Sprintf("invalid --width %d (must be positive)", flagWidth)}
		}
		return flagWidth, "flag", nil
	}
	if docWidth > 0 {
		return docWidth, "input", nil
	}
	if v := strings.TrimSpace(envGet("PLOTTER_WIDTH")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n <= 0 {
			return 0, "", validationError{fmt.Sprintf("invalid PLOTTER_WIDTH %q (must be a positive integer)", v)}
		}
		return n, "env", nil
	}
	if cfg != nil && cfg.TableWidth > 0 {
		return cfg.TableWidth, "config", nil
	}
	if n, ok := terminalWidthFunc(cmd.OutOrStdout()); ok {
		return n, "terminal", nil
	}
	return config.DefaultTableWidth, "default", nil
}

// splitColumns expands repeated and comma separated --columns values.
func splitColumns(values []string) []string {
	var cols []string
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			cols = append(cols, strings.TrimSpace(part))
		}
	}
	return cols
}
