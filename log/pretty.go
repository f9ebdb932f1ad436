package log

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"sync"
	"time"
)

// ANSI color codes for pretty printing.
const (
	colorReset   = "\033[0m"
	colorGray    = "\033[90m"
	colorRed     = "\033[31m"
	colorGreen   = "\033[32m"
	colorYellow  = "\033[33m"
	colorBlue    = "\033[34m"
	colorMagenta = "\033[35m"
	colorCyan    = "\033[36m"
)

// prettyHandler writes colorized key=value lines.
type prettyHandler struct {
	opts   slog.HandlerOptions
	mu     *sync.Mutex
	w      io.Writer
	prefix string // group prefix for attribute keys
	attrs  []byte // preformatted attributes from WithAttrs
}

func newPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *prettyHandler {
	return &prettyHandler{opts: *opts, mu: &sync.Mutex{}, w: w}
}

func (h *prettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	minLevel := slog.LevelInfo
	if h.opts.Level != nil {
		minLevel = h.opts.Level.Level()
	}

	return level >= minLevel
}

func (h *prettyHandler) Handle(_ context.Context, r slog.Record) error {
	buf := new(bytes.Buffer)

	if !r.Time.IsZero() {
		h.writeAttr(buf, "", slog.Time(slog.TimeKey, r.Time))
	}

	h.writeLevel(buf, r.Level)

	if h.opts.AddSource && r.PC != 0 {
		if src := r.Source(); src != nil {
			h.writeAttr(buf, "", slog.String(
				slog.SourceKey, fmt.Sprintf("%s:%d", src.File, src.Line),
			))
		}
	}

	h.writeAttr(buf, "", slog.String(slog.MessageKey, r.Message))

	if len(h.attrs) > 0 {
		buf.WriteByte(' ')
		buf.Write(h.attrs)
	}

	r.Attrs(func(a slog.Attr) bool {
		h.writeAttr(buf, h.prefix, a)

		return true
	})

	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()

	_, err := h.w.Write(buf.Bytes())

	return err
}

func (h *prettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	buf := bytes.NewBuffer(bytes.Clone(h.attrs))

	for _, a := range attrs {
		h.writeAttr(buf, h.prefix, a)
	}

	c := *h
	c.attrs = buf.Bytes()

	return &c
}

func (h *prettyHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}

	c := *h
	c.prefix = h.prefix + name + "."

	return &c
}

func (h *prettyHandler) writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	if h.opts.ReplaceAttr != nil && a.Value.Kind() != slog.KindGroup {
		a = h.opts.ReplaceAttr(nil, a)
	}

	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}

	if a.Value.Kind() == slog.KindGroup {
		group := a.Value.Group()
		if len(group) == 0 {
			return
		}

		if a.Key != "" {
			prefix += a.Key + "."
		}

		for _, ga := range group {
			h.writeAttr(buf, prefix, ga)
		}

		return
	}

	if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != ' ' {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray)
	buf.WriteString(prefix + a.Key)
	buf.WriteString(colorReset)
	buf.WriteByte('=')

	writeValue(buf, a.Value)
}

func (h *prettyHandler) writeLevel(buf *bytes.Buffer, level slog.Level) {
	var color string

	switch {
	case level >= slog.LevelError:
		color = colorRed
	case level >= slog.LevelWarn:
		color = colorYellow
	case level >= slog.LevelInfo:
		color = colorGreen
	default:
		color = colorBlue
	}

	if buf.Len() > 0 {
		buf.WriteByte(' ')
	}

	buf.WriteString(colorGray + slog.LevelKey + colorReset + "=")
	buf.WriteString(color)
	buf.WriteString(strings.ToUpper(Level(level).String()))
	buf.WriteString(colorReset)
}

func writeValue(buf *bytes.Buffer, v slog.Value) {
	color, text := colorCyan, ""

	switch v.Kind() {
	case slog.KindString:
		text = v.String()

	case slog.KindInt64:
		color, text = colorYellow, strconv.FormatInt(v.Int64(), 10)

	case slog.KindUint64:
		color, text = colorYellow, strconv.FormatUint(v.Uint64(), 10)

	case slog.KindFloat64:
		color, text = colorYellow, strconv.FormatFloat(v.Float64(), 'g', -1, 64)

	case slog.KindBool:
		color, text = colorRed, "false"
		if v.Bool() {
			color, text = colorGreen, "true"
		}

	case slog.KindDuration:
		color, text = colorMagenta, v.Duration().String()

	case slog.KindTime:
		color, text = colorBlue, v.Time().Format(time.RFC3339)

	default:
		text = v.String()
	}

	buf.WriteString(color)
	buf.WriteString(text)
	buf.WriteString(colorReset)
}
