// Package log provides a simplified structured logging interface based on
// [log/slog].
//
// Loggers are immutable values configured with functional options at
// creation time:
//
//	logger := log.Make(os.Stderr,
//		log.WithLevel(log.LevelDebug),
//		log.WithFormat(log.FormatText),
//		log.WithCaller(true))
//
//	logger.Info("model rendered", slog.Int("lines", n))
//
// The zero [Logger] discards every message, so libraries can hold one
// without requiring callers to configure it.
//
// # Levels
//
// [LevelTrace], [LevelDebug], [LevelInfo], [LevelWarn] and [LevelError].
// Trace sits below slog's Debug and is used for per-node bookkeeping.
//
// # Formats
//
// [FormatJSON] (default) and [FormatText]. Text output can be colorized with
// [WithPretty].
//
// # Package Logger
//
// The package-level functions ([Info], [Debug], ...) write through a
// default logger that is reconfigured with [Config].
package log
