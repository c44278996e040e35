package logging

import (
	"context"
	"log/slog"
	"strings"

	"github.com/coreos/go-systemd/v22/journal"
)

var _ slog.Handler = &JournalHandler{}

// JournalHandler is a slog.Handler that writes records to the systemd
// journal, mapping attributes to journal fields.
type JournalHandler struct {
	level  slog.Level
	attrs  []slog.Attr
	groups []string
}

func NewJournalHandler(level slog.Level) *JournalHandler {
	return &JournalHandler{level: level}
}

func (h *JournalHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level
}

func (h *JournalHandler) Handle(_ context.Context, record slog.Record) error {
	fields := map[string]string{
		"SYSLOG_IDENTIFIER": "ledpanel",
	}
	for _, attr := range h.attrs {
		addField(fields, attr, h.groups)
	}
	record.Attrs(func(attr slog.Attr) bool {
		addField(fields, attr, h.groups)
		return true
	})
	return journal.Send(record.Message, priority(record.Level), fields)
}

func (h *JournalHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := *h
	h2.attrs = append(h.attrs[:len(h.attrs):len(h.attrs)], attrs...)
	return &h2
}

func (h *JournalHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	h2.groups = append(h.groups[:len(h.groups):len(h.groups)], name)
	return &h2
}

func priority(level slog.Level) journal.Priority {
	switch {
	case level >= slog.LevelError:
		return journal.PriErr
	case level >= slog.LevelWarn:
		return journal.PriWarning
	case level >= slog.LevelInfo:
		return journal.PriInfo
	default:
		return journal.PriDebug
	}
}

func addField(fields map[string]string, attr slog.Attr, groups []string) {
	if attr.Equal(slog.Attr{}) {
		return
	}
	value := attr.Value.Resolve()
	if value.Kind() == slog.KindGroup {
		groups = append(groups[:len(groups):len(groups)], attr.Key)
		for _, a := range value.Group() {
			addField(fields, a, groups)
		}
		return
	}
	key := attr.Key
	if len(groups) > 0 {
		key = strings.Join(groups, "_") + "_" + key
	}
	fields[fieldName(key)] = value.String()
}

// fieldName maps an attribute key to a valid journal field name:
// uppercase, with anything but letters and digits replaced by an
// underscore.
func fieldName(key string) string {
	name := make([]byte, 0, len(key))
	for _, c := range []byte(strings.ToUpper(key)) {
		switch {
		case c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
			name = append(name, c)
		default:
			name = append(name, '_')
		}
	}
	return string(name)
}
