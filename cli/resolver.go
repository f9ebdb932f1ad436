package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/goccy/go-yaml"
)

// resolve is a [kong.ConfigurationLoader] for YAML config files.
//
// The file is a flat mapping from flag name to value, as written by the
// init command:
//
//	log-level: debug
//	log-format: text
//	log-pretty: false
//	path:
//	  - ~/scad/lib
//
// Keys may use underscores in place of hyphens. Command-line flags override
// config file values.
func resolve(r io.Reader) (kong.Resolver, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var m map[string]any

	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, err
	}

	c := make(config, len(m))
	for k, v := range m {
		c[k] = configValue(v)
	}

	return c, nil
}

// config implements [kong.Resolver] for YAML configs.
type config map[string]any

// Validate implements [kong.Resolver].
func (config) Validate(*kong.Application) error { return nil }

// Resolve implements [kong.Resolver].
func (r config) Resolve(
	_ *kong.Context,
	_ *kong.Path,
	flag *kong.Flag,
) (any, error) {
	if value, ok := r[flag.Name]; ok {
		return value, nil
	}

	if value, ok := r[strings.ReplaceAll(flag.Name, "-", "_")]; ok {
		return value, nil
	}

	return nil, nil
}

// configValue converts decoded YAML into values kong's mappers accept:
// numbers become strings and sequences become []any of converted values.
func configValue(v any) any {
	switch x := v.(type) {
	case uint64, int64, float64:
		return fmt.Sprint(x)

	case []any:
		out := make([]any, len(x))
		for i, e := range x {
			out[i] = configValue(e)
		}

		return out

	default:
		return x
	}
}
