package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestPackage_LogFunctions_UseDefaultLogger(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf)
	Config(WithLevel(LevelTrace), WithFormat(FormatJSON))

	tests := []struct {
		name  string
		fn    func(string, ...slog.Attr)
		level string
	}{
		{"Trace", Trace, "TRACE"},
		{"Debug", Debug, "DEBUG"},
		{"Info", Info, "INFO"},
		{"Warn", Warn, "WARN"},
		{"Error", Error, "ERROR"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf.Reset()
			tt.fn(tt.name+" message", slog.String("key", "value"))

			output := buf.String()
			if !strings.Contains(output, tt.name+" message") {
				t.Errorf("expected message in output, got: %s", output)
			}
			if !strings.Contains(output, tt.level) {
				t.Errorf("expected level %q, got: %s", tt.level, output)
			}
			if !strings.Contains(output, `"key":"value"`) {
				t.Errorf("expected attribute, got: %s", output)
			}
		})
	}
}

func TestPackage_Config_KeepsOutput(t *testing.T) {
	original := Default()
	defer func() { defaultLog = original }()

	var buf bytes.Buffer

	defaultLog = Make(&buf)
	Config(WithLevel(LevelError))
	Info("dropped")
	Error("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Errorf("info logged at error level: %s", buf.String())
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Errorf("error not logged: %s", buf.String())
	}
}
