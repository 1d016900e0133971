package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func TestInit_FiltersBelowConfiguredLevel(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "warn", Output: &buf})

	log.Info().Msg("hidden")
	log.Warn().Msg("visible")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info output must be filtered at warn level")
	}
	if !strings.Contains(out, "visible") {
		t.Error("warn output must pass at warn level")
	}
}

func TestInit_EmitsJSONByDefault(t *testing.T) {
	var buf bytes.Buffer
	log := Init(Options{Level: "info", Output: &buf})

	log.Info().Str("component", "store").Msg("ready")

	out := buf.String()
	if !strings.Contains(out, `"component":"store"`) || !strings.Contains(out, `"message":"ready"`) {
		t.Errorf("expected structured JSON output, got %q", out)
	}
}

func TestParseLevel(t *testing.T) {
	cases := map[string]zerolog.Level{
		"trace":    zerolog.TraceLevel,
		"debug":    zerolog.DebugLevel,
		"info":     zerolog.InfoLevel,
		"warn":     zerolog.WarnLevel,
		"warning":  zerolog.WarnLevel,
		"ERROR":    zerolog.ErrorLevel,
		" debug ":  zerolog.DebugLevel,
		"":         zerolog.InfoLevel,
		"verbose!": zerolog.InfoLevel,
	}

	for in, want := range cases {
		if got := parseLevel(in); got != want {
			t.Errorf("parseLevel(%q): expected %v, got %v", in, want, got)
		}
	}
}
