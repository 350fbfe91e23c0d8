package cmd

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/salmonumbrella/plotter/internal/dataset"
	"github.com/salmonumbrella/plotter/internal/output"
	"github.com/salmonumbrella/plotter/internal/plotter"
)

// validationError indicates invalid flags or command input.
type validationError struct{ Message string }

func (e validationError) Error() string { return e.Message }

func validateErrorFormat(format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "", "auto", "text", "json", "yaml":
		return nil
	default:
		return validationError{fmt.Sprintf("invalid --error-format %q (expected auto|text|json|yaml)", format)}
	}
}

func effectiveErrorFormat(ctx context.Context) string {
	format := ErrorFormatFromContext(ctx)
	if format == "" {
		format = errorFmt
	}
	format = strings.ToLower(strings.TrimSpace(format))
	if format == "" || format == "auto" {
		switch output.FormatFromContext(ctx) {
		case output.FormatJSON, output.FormatNDJSON:
			return "json"
		case output.FormatYAML:
			return "yaml"
		default:
			return "text"
		}
	}
	return format
}

func printCommandError(ctx context.Context, err error) {
	if err == nil {
		return
	}

	switch effectiveErrorFormat(ctx) {
	case "json":
		enc := json.NewEncoder(stderrFromContext(ctx))
		enc.SetEscapeHTML(false)
		_ = enc.Encode(buildErrorEnvelope(err))
		return
	case "yaml":
		enc := yaml.NewEncoder(stderrFromContext(ctx))
		enc.SetIndent(2)
		_ = enc.Encode(buildErrorEnvelope(err))
		_ = enc.Close()
		return
	}

	_, _ = fmt.Fprintln(stderrFromContext(ctx), "Error:", err)
}

func buildErrorEnvelope(err error) map[string]interface{} {
	errMap := map[string]interface{}{
		"message":  err.Error(),
		"category": "system",
		"type":     "error",
	}

	var argErr *plotter.ArgumentError
	if errors.As(err, &argErr) {
		errMap["type"] = "invalid_argument"
		errMap["category"] = "user"
		errMap["field"] = argErr.Field
	}

	var convErr *dataset.ConversionError
	if errors.As(err, &convErr) {
		errMap["type"] = "conversion"
		errMap["category"] = "user"
		errMap["index"] = convErr.Index
	}

	if errors.Is(err, dataset.ErrNoValues) {
		errMap["type"] = "no_values"
		errMap["category"] = "user"
	}

	var valErr validationError
	if errors.As(err, &valErr) {
		errMap["type"] = "validation"
		errMap["category"] = "user"
	}

	var renderErr *plotter.RenderError
	if errors.As(err, &renderErr) {
		errMap["type"] = "render"
		errMap["subtype"] = renderErr.Phase
	}

	return map[string]interface{}{"error": errMap}
}
