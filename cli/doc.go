// Package cli contains the command line interface for scadgen.
//
// # Usage
//
//	scadgen [flags] render [source] [-o file]
//	scadgen [flags] tree [source] [--[no-]color]
//	scadgen [flags] catalog [query]
//	scadgen [flags] init [--force]
//
// The source "-" (the default) reads a manifest from stdin. render is the
// default command.
//
// # Import Search Path
//
// Manifest imports are resolved against the importing file's directory,
// then each --path directory, then each directory listed in $SCADGEN_PATH.
//
// # Configuration File
//
// Flag defaults are read from config.yaml in the user configuration
// directory (for example ~/.config/scadgen/config.yaml). The file maps flag
// names to values; init writes one from the current flags:
//
//	log-level: debug
//	log-format: text
//	path:
//	  - ~/scad/lib
//
// # Logging Options
//
//   - --log-level: minimum level (trace, debug, info, warn, error)
//   - --log-format: output format (json, text)
//   - --log-time-layout: timestamp layout (RFC3339, Kitchen, ..., none)
//   - --log-caller: include caller information
//   - --log-pretty: colorize text output
//
// # Profiling Options
//
// Profiling is only available when built with the pprof build tag:
//
//	go build -tags pprof -o scadgen .
//
//   - --pprof-mode: enable profiling (see package profile)
//   - --pprof-dir: profile output directory (default ~/.cache/scadgen/pprof)
package cli
