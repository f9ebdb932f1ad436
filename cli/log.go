package cli

import (
	"context"
	"log/slog"
	"slices"
	"strconv"
	"strings"

	"github.com/alecthomas/kong"

	"github.com/ardnew/scadgen/log"
)

// logFormat configures the logger format as a side effect of parsing via
// encoding.TextUnmarshaler, so errors reported during parsing already use it.
type logFormat string

// UnmarshalText implements encoding.TextUnmarshaler.
func (f *logFormat) UnmarshalText(text []byte) error {
	*f = logFormat(text)
	log.Config(log.WithFormat(log.ParseFormat(string(*f))))

	return nil
}

// logLevel configures the logger level as a side effect of parsing via
// encoding.TextUnmarshaler.
type logLevel string

// UnmarshalText implements encoding.TextUnmarshaler.
func (l *logLevel) UnmarshalText(text []byte) error {
	*l = logLevel(text)
	log.Config(log.WithLevel(log.ParseLevel(string(*l))))

	return nil
}

type logConfig struct {
	Level      logLevel  `default:"info"    enum:"${logLevelEnum}"  help:"Set log level."`
	Format     logFormat `default:"text"    enum:"${logFormatEnum}" help:"Set log format."`
	TimeLayout string    `default:"RFC3339"                         help:"Set timestamp format (Go layout, layout name or 'none')."`
	Caller     bool      `default:"false"                           help:"Include caller information."                               negatable:""`
	Pretty     bool      `default:"true"                            help:"Enable colorized pretty printing."                         negatable:""`
}

func (*logConfig) vars() kong.Vars {
	return kong.Vars{
		"logLevelEnum":  strings.Join(slices.Collect(log.Levels()), ","),
		"logFormatEnum": strings.Join(slices.Collect(log.Formats()), ","),
	}
}

func (*logConfig) group() kong.Group {
	var group kong.Group

	group.Key = "log"
	group.Title = "Logging options"

	return group
}

func (f *logConfig) start(ctx context.Context) {
	log.Config(
		log.WithLevel(log.ParseLevel(string(f.Level))),
		log.WithFormat(log.ParseFormat(string(f.Format))),
		log.WithTimeLayout(f.TimeLayout),
		log.WithCaller(f.Caller),
		log.WithPretty(f.Pretty),
	)

	log.DebugContext(ctx, "logger initialized",
		slog.String("level", string(f.Level)),
		slog.String("format", string(f.Format)),
		slog.String("time", f.TimeLayout),
		slog.Bool("caller", f.Caller),
		slog.Bool("pretty", f.Pretty),
	)
}

// scan performs an early pass over command-line arguments and applies logger
// flags before kong begins parsing, so the logger is configured regardless
// of flag position. Boolean flags don't go through encoding.TextUnmarshaler
// and are only applied here until [logConfig.start].
func (f *logConfig) scan(args []string) {
	toggles := map[string]struct {
		field *bool
		opt   func(bool) log.Option
	}{
		"pretty": {&f.Pretty, log.WithPretty},
		"caller": {&f.Caller, log.WithCaller},
	}

	for i := 0; i < len(args); i++ {
		arg := args[i]
		if arg == "--" {
			return
		}

		negated := strings.HasPrefix(arg, "--no-log-")

		var name string

		switch {
		case negated:
			name = strings.TrimPrefix(arg, "--no-log-")
		case strings.HasPrefix(arg, "--log-"):
			name = strings.TrimPrefix(arg, "--log-")
		default:
			continue
		}

		name, value, assigned := strings.Cut(name, "=")

		switch name {
		case "level", "format":
			if negated {
				continue
			}

			// Consume the next argument as the value unless assigned.
			if !assigned && i+1 < len(args) && !strings.HasPrefix(args[i+1], "-") {
				value = args[i+1]
				i++
			}

			if name == "level" {
				_ = f.Level.UnmarshalText([]byte(value))
			} else {
				_ = f.Format.UnmarshalText([]byte(value))
			}

		case "pretty", "caller":
			v := true

			if assigned {
				b, err := strconv.ParseBool(value)
				if err != nil {
					continue
				}

				v = b
			}

			if negated {
				v = !v
			}

			t := toggles[name]
			*t.field = v
			log.Config(t.opt(v))
		}
	}
}
