package scad

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/ardnew/scadgen/log"
)

// Scoper is a construct that can be opened on a [Builder]: [Scope],
// [Operation], [Module] and [Chain].
type Scoper interface {
	// enter attaches the construct beneath current and returns the
	// container that becomes current.
	enter(current Container) Container
}

// Builder tracks the currently open scope.
//
// Constructors that take a Builder attach to its current scope instead of
// taking an explicit parent. A Builder is not safe for concurrent use.
type Builder struct {
	current Container
	open    []*Handle
	log     log.Logger
}

// Option configures a [Builder].
type Option func(*Builder)

// WithLogger sets the logger receiving trace events for scope and module
// bookkeeping. The zero [log.Logger] discards everything.
func WithLogger(l log.Logger) Option {
	return func(b *Builder) { b.log = l }
}

// NewBuilder returns a Builder with no open scope.
func NewBuilder(opts ...Option) *Builder {
	b := &Builder{}

	for _, opt := range opts {
		opt(b)
	}

	return b
}

// Current returns the innermost open scope, or nil.
func (b *Builder) Current() Container { return b.current }

// Open opens s beneath the current scope and makes it (or, for a [Chain],
// its last link) current. The returned handle must be closed, in reverse
// order of opening.
func (b *Builder) Open(s Scoper) *Handle {
	h := &Handle{b: b, outer: b.current}

	h.inner = s.enter(b.current)
	b.current = h.inner
	b.open = append(b.open, h)

	b.log.Trace("scope open",
		slog.String("scope", describe(h.inner)),
		slog.Int("open", len(b.open)),
	)

	return h
}

// With opens s, runs body, and closes s on every exit path, including
// panics. An error from body takes precedence over an error from closing.
func (b *Builder) With(s Scoper, body func() error) (err error) {
	h := b.Open(s)

	defer func() {
		if cerr := h.Close(); err == nil {
			err = cerr
		}
	}()

	return body()
}

// Handle restores the builder's previous scope when closed.
type Handle struct {
	b      *Builder
	inner  Container
	outer  Container
	closed bool
}

// Scope returns the container that was made current when the handle was
// opened.
func (h *Handle) Scope() Container { return h.inner }

// Close restores the scope that was current before the handle's scope was
// opened. Closing a handle that is not the innermost open scope also closes
// every handle opened after it, and reports [ErrScopeOrder]. Closing twice
// reports [ErrScopeClosed] and has no effect.
func (h *Handle) Close() error {
	if h.closed {
		return ErrScopeClosed.With(slog.String("scope", describe(h.inner)))
	}

	b := h.b
	i := slices.Index(b.open, h)

	var err error
	if i < len(b.open)-1 {
		err = ErrScopeOrder.With(
			slog.String("closing", describe(h.inner)),
			slog.String("current", describe(b.current)),
			slog.Int("abandoned", len(b.open)-1-i),
		)
	}

	for _, o := range b.open[i:] {
		o.closed = true
	}

	b.open = b.open[:i]
	b.current = h.outer

	b.log.Trace("scope close",
		slog.String("scope", describe(h.inner)),
		slog.Int("open", len(b.open)),
	)

	return err
}

// Object constructs a leaf named name in the current scope.
func (b *Builder) Object(name string, args ...any) (*Object, error) {
	if b.current == nil {
		return nil, ErrMissingContext.With(slog.String("object", name))
	}

	o := &Object{name: name, args: MakeArgs(args...)}
	o.parent = b.current
	b.current.add(o)

	return o, nil
}

// Operation constructs an operation named name. The operation is attached
// when it is opened, not here; construction only requires that some scope
// is open.
func (b *Builder) Operation(name string, args ...any) (*Operation, error) {
	if b.current == nil {
		return nil, ErrMissingContext.With(slog.String("operation", name))
	}

	return &Operation{name: name, args: MakeArgs(args...)}, nil
}

// Module constructs a module named name. If a scope is open, it becomes the
// module's provisional parent until the module is registered elsewhere.
func (b *Builder) Module(name string) *Module {
	m := &Module{name: name}
	m.parent = b.current

	return m
}

func describe(c Container) string {
	if c == nil {
		return "<nil>"
	}

	return fmt.Sprint(c)
}
