package log

//go:generate go tool stringer --linecomment --type Level,Format --output config_string.go

import (
	"io"
	"iter"
	"log/slog"
	"strings"
	"time"
)

// Level represents the severity of a log message.
type Level slog.Level

const (
	LevelTrace Level = Level(slog.LevelDebug - 4) // trace
	LevelDebug Level = Level(slog.LevelDebug)     // debug
	LevelInfo  Level = Level(slog.LevelInfo)      // info
	LevelWarn  Level = Level(slog.LevelWarn)      // warn
	LevelError Level = Level(slog.LevelError)     // error
)

// DefaultLevel is the default log level.
const DefaultLevel = LevelInfo

// Levels returns an iterator over all defined log level names.
func Levels() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, level := range []Level{
			LevelTrace,
			LevelDebug,
			LevelInfo,
			LevelWarn,
			LevelError,
		} {
			if !yield(level.String()) {
				return
			}
		}
	}
}

// ParseLevel parses a level name, case-insensitively. Anything slog accepts
// (such as "debug+2") is accepted too. Unrecognized input yields
// [DefaultLevel].
func ParseLevel(s string) Level {
	if strings.EqualFold(strings.TrimSpace(s), "trace") {
		return LevelTrace
	}

	var l slog.Level

	if err := l.UnmarshalText([]byte(strings.TrimSpace(s))); err != nil {
		return DefaultLevel
	}

	return Level(l)
}

// Format represents the output format for log messages.
type Format int

const (
	FormatText Format = iota // text
	FormatJSON               // json
)

// DefaultFormat is the default log message format.
const DefaultFormat = FormatJSON

// Formats returns an iterator over all defined log format names.
func Formats() iter.Seq[string] {
	return func(yield func(string) bool) {
		for _, f := range []Format{FormatJSON, FormatText} {
			if !yield(f.String()) {
				return
			}
		}
	}
}

// ParseFormat parses "json" or "text". Unrecognized input yields
// [DefaultFormat].
func ParseFormat(s string) Format {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "json":
		return FormatJSON
	case "text":
		return FormatText
	default:
		return DefaultFormat
	}
}

// DefaultTimeLayout is the default timestamp layout.
const DefaultTimeLayout = time.RFC3339

// config holds the settings a Logger was made with.
type config struct {
	output     io.Writer
	timeLayout string
	level      Level
	format     Format
	caller     bool
	pretty     bool
}

func defaultConfig(w io.Writer) config {
	if w == nil {
		w = io.Discard
	}

	return config{
		output:     w,
		timeLayout: DefaultTimeLayout,
		level:      DefaultLevel,
		format:     DefaultFormat,
	}
}

// handler creates the slog.Handler described by c.
func (c config) handler() slog.Handler {
	layout := resolveTimeLayout(c.timeLayout)

	opts := &slog.HandlerOptions{
		AddSource: c.caller,
		Level:     slog.Level(c.level),
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if len(groups) > 0 {
				return a
			}

			switch a.Key {
			case slog.TimeKey:
				if layout == "" {
					return slog.Attr{}
				}

				if t, ok := a.Value.Any().(time.Time); ok {
					a.Value = slog.StringValue(t.Format(layout))
				}

			case slog.LevelKey:
				// Show "TRACE" instead of "DEBUG-4".
				if l, ok := a.Value.Any().(slog.Level); ok && Level(l) == LevelTrace {
					a.Value = slog.StringValue(strings.ToUpper(LevelTrace.String()))
				}
			}

			return a
		},
	}

	switch c.format {
	case FormatText:
		if c.pretty {
			return newPrettyHandler(c.output, opts)
		}

		return slog.NewTextHandler(c.output, opts)

	case FormatJSON:
		return slog.NewJSONHandler(c.output, opts)

	default:
		return slog.DiscardHandler
	}
}

// timeLayouts maps named layouts (lowercase, alphanumerics only) to
// [time] package layouts.
var timeLayouts = map[string]string{
	"rfc3339":     time.RFC3339,
	"rfc3339nano": time.RFC3339Nano,
	"ansic":       time.ANSIC,
	"unixdate":    time.UnixDate,
	"rfc822":      time.RFC822,
	"kitchen":     time.Kitchen,
	"stamp":       time.Stamp,
	"stampmilli":  time.StampMilli,
	"stampmicro":  time.StampMicro,
	"datetime":    time.DateTime,
	"none":        "",
}

// resolveTimeLayout returns the layout for a named layout, the input
// verbatim for a custom layout, or "" (no timestamps) for blank input.
func resolveTimeLayout(layout string) string {
	key := strings.Map(func(r rune) rune {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			return r
		}

		return -1
	}, strings.ToLower(layout))

	if key == "" {
		return ""
	}

	if std, ok := timeLayouts[key]; ok {
		return std
	}

	return layout
}
