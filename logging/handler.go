package logging

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"
)

const timestampLayout = "2006-01-02 15:04:05.000"

// lineHandler renders single-line records: timestamp, padded level, scope, message, attrs
type lineHandler struct {
	w      io.Writer
	mu     *sync.Mutex
	scope  string
	level  Level
	color  bool
	attrs  []slog.Attr
	prefix string
}

func (h *lineHandler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.slogLevel()
}

func (h *lineHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.WriteString(r.Time.Format(timestampLayout))
	buf.WriteByte(' ')

	lvl := Level(int(r.Level) / 4)
	name := fmt.Sprintf("%-5s", lvl.String())
	if c, ok := levelColors[lvl]; ok && h.color {
		name = c + name + "\x1b[0m"
	}
	buf.WriteString(name)
	buf.WriteString(" [")
	buf.WriteString(h.scope)
	buf.WriteString("] ")
	buf.WriteString(r.Message)

	for _, a := range h.attrs {
		writeAttr(&buf, h.prefix, a)
	}
	r.Attrs(func(a slog.Attr) bool {
		writeAttr(&buf, h.prefix, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *lineHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	clone := *h
	clone.attrs = append(append([]slog.Attr(nil), h.attrs...), attrs...)
	return &clone
}

func (h *lineHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	clone := *h
	clone.prefix = h.prefix + name + "."
	return &clone
}

func writeAttr(buf *bytes.Buffer, prefix string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		for _, ga := range a.Value.Group() {
			writeAttr(buf, prefix+a.Key+".", ga)
		}
		return
	}
	buf.WriteByte(' ')
	buf.WriteString(prefix)
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	fmt.Fprint(buf, a.Value.Any())
}
