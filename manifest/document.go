package manifest

import (
	"context"
	"log/slog"

	"github.com/goccy/go-yaml"
)

// Document is the decoded form of a manifest file.
type Document struct {
	Imports []string      `yaml:"imports,omitempty"`
	Vars    yaml.MapSlice `yaml:"vars,omitempty"`
	Modules []ModuleDef   `yaml:"modules,omitempty"`
	Model   []Node        `yaml:"model,omitempty"`
}

// ModuleDef defines a named module.
type ModuleDef struct {
	Name string `yaml:"name"`
	Body []Node `yaml:"body,omitempty"`
}

// Node is a single statement of a model or module body.
type Node struct {
	Object    string `yaml:"object,omitempty"`
	Operation string `yaml:"operation,omitempty"`
	Chain     []Node `yaml:"chain,omitempty"`
	Call      string `yaml:"call,omitempty"`
	Each      *Each  `yaml:"each,omitempty"`
	Scope     bool   `yaml:"scope,omitempty"`

	Args   []any         `yaml:"args,omitempty"`
	Kwargs yaml.MapSlice `yaml:"kwargs,omitempty"`
	Body   []Node        `yaml:"body,omitempty"`
}

// Each repeats a body once per element of In, binding the element to Var.
type Each struct {
	Var string `yaml:"var"`
	In  any    `yaml:"in"`
}

// Kind returns the name of the node's kind, or an error unless exactly one
// kind is set.
func (n Node) Kind() (string, error) {
	var kinds []string

	if n.Object != "" {
		kinds = append(kinds, "object")
	}

	if n.Operation != "" {
		kinds = append(kinds, "operation")
	}

	if len(n.Chain) > 0 {
		kinds = append(kinds, "chain")
	}

	if n.Call != "" {
		kinds = append(kinds, "call")
	}

	if n.Each != nil {
		kinds = append(kinds, "each")
	}

	if n.Scope {
		kinds = append(kinds, "scope")
	}

	if len(kinds) != 1 {
		return "", ErrNodeKind.With(slog.Any("kinds", kinds))
	}

	return kinds[0], nil
}

// decode parses data strictly: unknown keys are errors, and mappings decode
// in document order so keyword arguments keep their YAML order.
func decode(ctx context.Context, data []byte) (Document, error) {
	var doc Document

	err := yaml.UnmarshalContext(ctx, data, &doc,
		yaml.UseOrderedMap(),
		yaml.DisallowUnknownField(),
	)
	if err != nil {
		return Document{}, err
	}

	return doc, nil
}
