package log

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"testing"
)

func TestLogger_Make_Defaults(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf)

	if logger.Level() != LevelInfo {
		t.Errorf("expected default level info, got %v", logger.Level())
	}
	if logger.Format() != FormatJSON {
		t.Errorf("expected default format json, got %v", logger.Format())
	}

	logger.Info("hello", slog.String("key", "value"))

	var result map[string]any
	if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
		t.Fatalf("failed to parse JSON output: %v\n%s", err, buf.String())
	}
	if result["msg"] != "hello" {
		t.Errorf("expected msg=hello, got %v", result["msg"])
	}
	if result["key"] != "value" {
		t.Errorf("expected key=value, got %v", result["key"])
	}
	if result["level"] != "INFO" {
		t.Errorf("expected level=INFO, got %v", result["level"])
	}
}

func TestLogger_ZeroValue_Discards(t *testing.T) {
	var logger Logger

	// Must not panic.
	logger.Trace("trace")
	logger.Info("info")
	logger.With(slog.Int("n", 1)).Error("error")

	if logger.Level() != DefaultLevel {
		t.Errorf("expected default level, got %v", logger.Level())
	}
}

func TestLogger_WithLevel_FiltersMessages(t *testing.T) {
	tests := []struct {
		name    string
		level   Level
		log     func(Logger)
		written bool
	}{
		{"trace below info", LevelInfo, func(l Logger) { l.Trace("m") }, false},
		{"debug below info", LevelInfo, func(l Logger) { l.Debug("m") }, false},
		{"info at info", LevelInfo, func(l Logger) { l.Info("m") }, true},
		{"trace at trace", LevelTrace, func(l Logger) { l.Trace("m") }, true},
		{"warn below error", LevelError, func(l Logger) { l.Warn("m") }, false},
		{"error at error", LevelError, func(l Logger) { l.Error("m") }, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			tt.log(Make(&buf, WithLevel(tt.level)))

			if got := buf.Len() > 0; got != tt.written {
				t.Errorf("written = %v, want %v: %q", got, tt.written, buf.String())
			}
		})
	}
}

func TestLogger_TraceLevel_RendersName(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithLevel(LevelTrace)).Trace("deep")

	if !strings.Contains(buf.String(), `"level":"TRACE"`) {
		t.Errorf("expected TRACE level, got: %s", buf.String())
	}
}

func TestLogger_WithTimeLayout(t *testing.T) {
	t.Run("none", func(t *testing.T) {
		var buf bytes.Buffer
		Make(&buf, WithTimeLayout("")).Info("m")

		if strings.Contains(buf.String(), `"time"`) {
			t.Errorf("expected no time field, got: %s", buf.String())
		}
	})

	t.Run("kitchen", func(t *testing.T) {
		var buf bytes.Buffer
		Make(&buf, WithTimeLayout("Kitchen")).Info("m")

		var result map[string]any
		if err := json.Unmarshal(buf.Bytes(), &result); err != nil {
			t.Fatal(err)
		}

		ts, _ := result["time"].(string)
		if !strings.HasSuffix(ts, "AM") && !strings.HasSuffix(ts, "PM") {
			t.Errorf("expected kitchen time, got %q", ts)
		}
	})
}

func TestLogger_WithCaller(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithCaller(true)).Info("m")

	if !strings.Contains(buf.String(), "log_test.go") {
		t.Errorf("expected caller in output, got: %s", buf.String())
	}

	buf.Reset()
	Make(&buf).Info("m")

	if strings.Contains(buf.String(), `"source"`) {
		t.Errorf("unexpected source in output: %s", buf.String())
	}
}

func TestLogger_TextFormat(t *testing.T) {
	var buf bytes.Buffer
	Make(&buf, WithFormat(FormatText)).Info("plain", slog.String("k", "v"))

	out := buf.String()
	if !strings.Contains(out, "msg=plain") || !strings.Contains(out, "k=v") {
		t.Errorf("unexpected text output: %s", out)
	}
	if strings.Contains(out, colorReset) {
		t.Errorf("unexpected color codes: %q", out)
	}
}

func TestLogger_Pretty(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf,
		WithFormat(FormatText),
		WithPretty(true),
		WithTimeLayout("none"),
	).With(slog.String("component", "render"))

	logger.Warn("careful", slog.Int("n", 3), slog.Bool("ok", true))

	out := buf.String()
	for _, want := range []string{
		"WARN", "careful", "component", "render", "n", "3", "ok", "true",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output: %q", want, out)
		}
	}
	if !strings.Contains(out, colorYellow) {
		t.Errorf("expected colored output: %q", out)
	}
	if strings.Contains(out, "time") {
		t.Errorf("unexpected time: %q", out)
	}
}

func TestLogger_With_AddsAttributes(t *testing.T) {
	var buf bytes.Buffer
	logger := Make(&buf).With(slog.String("request", "42"))
	logger.Info("m")

	if !strings.Contains(buf.String(), `"request":"42"`) {
		t.Errorf("expected persistent attr, got: %s", buf.String())
	}
}

func TestLogger_Wrap_OverridesConfig(t *testing.T) {
	var buf bytes.Buffer
	base := Make(&buf, WithLevel(LevelError))
	wrapped := base.Wrap(WithLevel(LevelDebug), WithFormat(FormatText))

	if base.Level() != LevelError {
		t.Errorf("base level changed to %v", base.Level())
	}
	if wrapped.Level() != LevelDebug || wrapped.Format() != FormatText {
		t.Errorf("wrap not applied: %v %v", wrapped.Level(), wrapped.Format())
	}

	wrapped.Debug("visible")
	if !strings.Contains(buf.String(), "visible") {
		t.Errorf("expected wrapped logger to share output: %q", buf.String())
	}
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want Level
	}{
		{"trace", LevelTrace},
		{"TRACE", LevelTrace},
		{"debug", LevelDebug},
		{"info", LevelInfo},
		{"Warn", LevelWarn},
		{"error", LevelError},
		{"bogus", DefaultLevel},
		{"", DefaultLevel},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParseLevel(tt.in); got != tt.want {
				t.Errorf("ParseLevel(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"json", FormatJSON},
		{" TEXT ", FormatText},
		{"yaml", DefaultFormat},
	}

	for _, tt := range tests {
		if got := ParseFormat(tt.in); got != tt.want {
			t.Errorf("ParseFormat(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestLevelsAndFormats(t *testing.T) {
	var levels []string
	for l := range Levels() {
		levels = append(levels, l)
	}

	if strings.Join(levels, ",") != "trace,debug,info,warn,error" {
		t.Errorf("unexpected levels %v", levels)
	}

	var formats []string
	for f := range Formats() {
		formats = append(formats, f)
	}

	if strings.Join(formats, ",") != "json,text" {
		t.Errorf("unexpected formats %v", formats)
	}
}

func TestLevelAndFormatString(t *testing.T) {
	tests := []struct {
		in   fmt.Stringer
		want string
	}{
		{LevelTrace, "trace"},
		{LevelError, "error"},
		{Level(2), "Level(2)"},
		{FormatText, "text"},
		{FormatJSON, "json"},
		{Format(7), "Format(7)"},
	}

	for _, tt := range tests {
		if got := tt.in.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}
