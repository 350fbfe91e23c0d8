package cmd

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/salmonumbrella/plotter/internal/config"
	"github.com/salmonumbrella/plotter/internal/dataset"
	"github.com/salmonumbrella/plotter/internal/output"
	"github.com/salmonumbrella/plotter/internal/plotter"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage CLI configuration",
	Long: `Manage CLI configuration stored in ~/.config/plotter/config.yaml.

You can view, set, or unset config keys such as table_width, arrangement,
value_type, output_format, and error_format.`,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current configuration",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfigFromFlag()
		if err != nil {
			return formatConfigLoadError(err)
		}
		return printOutput(configOutput(cfg))
	},
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a configuration value",
	Args:  cobra.ExactArgs(2),
	RunE:  runConfigSet,
}

var configUnsetCmd = &cobra.Command{
	Use:   "unset <key>",
	Short: "Unset a configuration value",
	Args:  cobra.ExactArgs(1),
	RunE:  runConfigUnset,
}

var configKeysCmd = &cobra.Command{
	Use:   "keys",
	Short: "List supported configuration keys",
	RunE: func(cmd *cobra.Command, args []string) error {
		keys := supportedConfigKeys()
		sort.Strings(keys)
		return printOutput(keys)
	},
}

func configPath() (string, error) {
	if strings.TrimSpace(configFile) != "" {
		return configFile, nil
	}
	return config.DefaultConfigPath()
}

func supportedConfigKeys() []string {
	return []string{
		"table_width",
		"arrangement",
		"value_type",
		"output_format",
		"error_format",
	}
}

// applyConfigValue validates value for key and stores it in cfg.
func applyConfigValue(cfg *config.Config, key, value string) error {
	switch key {
	case "table_width":
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return validationError{fmt.Sprintf("invalid table_width %q (must be a positive integer)", value)}
		}
		cfg.TableWidth = n
	case "arrangement":
		a, err := plotter.ParseArrangement(value)
		if err != nil {
			return validationError{err.Error()}
		}
		cfg.Arrangement = a.String()
	case "value_type":
		k, err := dataset.ParseKind(value)
		if err != nil {
			return validationError{err.Error()}
		}
		cfg.ValueType = string(k)
	case "output_format":
		f, err := output.ParseFormat(value)
		if err != nil {
			return validationError{err.Error()}
		}
		cfg.OutputFormat = string(f)
	case "error_format":
		if err := validateErrorFormat(value); err != nil {
			return err
		}
		cfg.ErrorFormat = strings.ToLower(value)
	default:
		return validationError{fmt.Sprintf("unknown config key: %s", key)}
	}
	return nil
}

func clearConfigValue(cfg *config.Config, key string) error {
	switch key {
	case "table_width":
		cfg.TableWidth = 0
	case "arrangement":
		cfg.Arrangement = ""
	case "value_type":
		cfg.ValueType = ""
	case "output_format":
		cfg.OutputFormat = ""
	case "error_format":
		cfg.ErrorFormat = ""
	default:
		return validationError{fmt.Sprintf("unknown config key: %s", key)}
	}
	return nil
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	configCmd.AddCommand(configUnsetCmd)
	configCmd.AddCommand(configKeysCmd)

	rootCmd.AddCommand(configCmd)
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))
	value := strings.TrimSpace(args[1])

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if err := applyConfigValue(cfg, key, value); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printOutput(map[string]string{
			"status": "updated",
			"key":    key,
			"value":  value,
		})
	}

	_, err = fmt.Fprintf(stdoutFromContext(currentContext()), "Updated %s\n", key)
	return err
}

func runConfigUnset(cmd *cobra.Command, args []string) error {
	key := strings.ToLower(strings.TrimSpace(args[0]))

	cfg, err := loadConfigFromFlag()
	if err != nil {
		return formatConfigLoadError(err)
	}

	if err := clearConfigValue(cfg, key); err != nil {
		return err
	}

	path, err := configPath()
	if err != nil {
		return err
	}
	if err := cfg.Save(path); err != nil {
		return err
	}

	if structuredOutputRequested() {
		return printOutput(map[string]string{
			"status": "unset",
			"key":    key,
		})
	}

	_, err = fmt.Fprintf(stdoutFromContext(currentContext()), "Unset %s\n", key)
	return err
}

func configOutput(cfg *config.Config) map[string]interface{} {
	return map[string]interface{}{
		"table_width":   cfg.TableWidth,
		"arrangement":   cfg.Arrangement,
		"value_type":    cfg.ValueType,
		"output_format": cfg.OutputFormat,
		"error_format":  cfg.ErrorFormat,
	}
}
