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

const (
	ansiReset  = "\033[0m"
	ansiDim    = "\033[2m"
	ansiBold   = "\033[1m"
	ansiRed    = "\033[31m"
	ansiGreen  = "\033[32m"
	ansiYellow = "\033[33m"
	ansiCyan   = "\033[36m"
)

// TerminalHandler formats log records as coloured terminal output.
// Stage names are highlighted and interval values are printed as is, so a
// split trace reads like the ranges it describes.
//
// Output format:
//
//	15:04:05.000 DBG split stage=seed-to-soil piece=[79, 92] rule=[50, 97] +2 mapped=[81, 94] unmapped=0
type TerminalHandler struct {
	writer io.Writer
	level  slog.Leveler
	attrs  []slog.Attr
	groups []string
	mu     *sync.Mutex
}

func newTerminalHandler(w io.Writer, opts *slog.HandlerOptions) *TerminalHandler {
	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}
	return &TerminalHandler{
		writer: w,
		level:  level,
		mu:     &sync.Mutex{},
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *TerminalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats a log record as coloured terminal output and writes it.
func (h *TerminalHandler) Handle(_ context.Context, r slog.Record) error {
	var buf bytes.Buffer
	buf.Grow(256)

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(ansiDim)
	buf.WriteString(ts.Format("15:04:05.000"))
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')

	color, label := levelStyle(r.Level)
	buf.WriteString(color)
	buf.WriteString(label)
	buf.WriteString(ansiReset)
	buf.WriteByte(' ')

	buf.WriteString(ansiBold)
	buf.WriteString(r.Message)
	buf.WriteString(ansiReset)

	for _, a := range h.attrs {
		appendAttr(&buf, a, h.groups)
	}
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(&buf, a, h.groups)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.writer.Write(buf.Bytes())
	return err
}

// WithAttrs returns a new handler whose attributes consist of both the
// existing attributes and attrs.
func (h *TerminalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	merged := make([]slog.Attr, len(h.attrs), len(h.attrs)+len(attrs))
	copy(merged, h.attrs)
	merged = append(merged, attrs...)
	return &TerminalHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  merged,
		groups: h.groups,
		mu:     h.mu,
	}
}

// WithGroup returns a new handler with the given group name prepended to
// subsequent attribute keys.
func (h *TerminalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	extended := make([]string, len(h.groups)+1)
	copy(extended, h.groups)
	extended[len(h.groups)] = name
	return &TerminalHandler{
		writer: h.writer,
		level:  h.level,
		attrs:  h.attrs,
		groups: extended,
		mu:     h.mu,
	}
}

func levelStyle(level slog.Level) (string, string) {
	switch {
	case level < slog.LevelInfo:
		return ansiCyan, "DBG"
	case level < slog.LevelWarn:
		return ansiGreen, "INF"
	case level < slog.LevelError:
		return ansiYellow, "WRN"
	default:
		return ansiRed, "ERR"
	}
}

func appendAttr(buf *bytes.Buffer, a slog.Attr, groups []string) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		prefix := groups
		if a.Key != "" {
			prefix = append(append([]string(nil), groups...), a.Key)
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, ga, prefix)
		}
		return
	}

	buf.WriteByte(' ')
	buf.WriteString(ansiDim)
	for _, g := range groups {
		buf.WriteString(g)
		buf.WriteByte('.')
	}
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	buf.WriteString(ansiReset)

	text, style := formatAttrValue(a.Key, a.Value)
	if style == "" {
		buf.WriteString(text)
		return
	}
	buf.WriteString(style)
	buf.WriteString(text)
	buf.WriteString(ansiReset)
}

// formatAttrValue renders v and picks its colour. Stage names stand out,
// intervals ("[a, b]", as interval.Interval prints itself) stay unquoted, and
// durations are cut to microseconds.
func formatAttrValue(key string, v slog.Value) (text, style string) {
	switch v.Kind() {
	case slog.KindString:
		s := v.String()
		switch {
		case key == stageKey:
			return s, ansiBold + ansiCyan
		case isInterval(s):
			return s, ansiYellow
		case strings.ContainsAny(s, " \t\n\"\\"):
			return fmt.Sprintf("%q", s), ""
		}
		return s, ""
	case slog.KindDuration:
		return v.Duration().Round(time.Microsecond).String(), ""
	}
	return v.String(), ""
}

// stageKey is the attribute naming the pipeline stage a record belongs to.
const stageKey = "stage"

// isInterval reports whether s looks like "[start, end]", optionally followed
// by a signed rule offset as in "[50, 97] +2".
func isInterval(s string) bool {
	inner, ok := strings.CutPrefix(s, "[")
	if !ok {
		return false
	}
	inner, offset, ok := strings.Cut(inner, "]")
	if !ok {
		return false
	}
	if offset != "" {
		signed, ok := strings.CutPrefix(offset, " ")
		if !ok || len(signed) < 2 || (signed[0] != '+' && signed[0] != '-') {
			return false
		}
		if _, err := strconv.Atoi(signed[1:]); err != nil {
			return false
		}
	}
	lo, hi, ok := strings.Cut(inner, ", ")
	if !ok {
		return false
	}
	_, errLo := strconv.Atoi(lo)
	_, errHi := strconv.Atoi(hi)
	return errLo == nil && errHi == nil
}
