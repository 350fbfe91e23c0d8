package cmd

import (
	"bytes"
	"context"
	"os"
	"strings"
	"testing"
)

func TestIOContextFallbacks(t *testing.T) {
	ctx := context.Background()
	if stdinFromContext(ctx) != os.Stdin {
		t.Error("expected os.Stdin fallback")
	}
	if stdoutFromContext(ctx) != os.Stdout {
		t.Error("expected os.Stdout fallback")
	}
	if stderrFromContext(ctx) != os.Stderr {
		t.Error("expected os.Stderr fallback")
	}
	if ioFromContext(nil).out != nil {
		t.Error("nil context should yield empty io state")
	}
}

func TestIOContextRoundTrip(t *testing.T) {
	in := &bytes.Buffer{}
	out := &bytes.Buffer{}
	errBuf := &bytes.Buffer{}
	ctx := withIO(context.Background(), in, out, errBuf)

	if stdinFromContext(ctx) != in {
		t.Error("stdin not stored")
	}
	if stdoutFromContext(ctx) != out {
		t.Error("stdout not stored")
	}
	if stderrFromContext(ctx) != errBuf {
		t.Error("stderr not stored")
	}
}

func TestErrorFormatContext(t *testing.T) {
	if got := ErrorFormatFromContext(context.Background()); got != "" {
		t.Errorf("expected empty format, got %q", got)
	}
	ctx := WithErrorFormat(context.Background(), "json")
	if got := ErrorFormatFromContext(ctx); got != "json" {
		t.Errorf("ErrorFormatFromContext() = %q, want json", got)
	}
}

func TestLoggerLevels(t *testing.T) {
	tests := []struct {
		name      string
		debug     bool
		quiet     bool
		wantDebug bool
		wantWarn  bool
	}{
		{"default", false, false, false, true},
		{"debug", true, false, true, true},
		{"quiet", false, true, false, false},
		{"debug wins over quiet", true, true, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			ctx := withLogger(context.Background(), &buf, tt.debug, tt.quiet)
			log := loggerFromContext(ctx)
			log.Debug().Msg("debug-event")
			log.Warn().Msg("warn-event")
			log.Error().Msg("error-event")

			got := buf.String()
			if strings.Contains(got, "debug-event") != tt.wantDebug {
				t.Errorf("debug event presence = %v, want %v", !tt.wantDebug, tt.wantDebug)
			}
			if strings.Contains(got, "warn-event") != tt.wantWarn {
				t.Errorf("warn event presence = %v, want %v", !tt.wantWarn, tt.wantWarn)
			}
			if !strings.Contains(got, "error-event") {
				t.Error("error events should always be logged")
			}
		})
	}
}

func TestLoggerFromContextWithoutLogger(t *testing.T) {
	log := loggerFromContext(nil)
	// A disabled logger must be safe to use.
	log.Warn().Msg("dropped")
}
