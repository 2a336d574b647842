package logging

import (
	"context"
	"log/slog"
	"strings"
)

// componentLevelHandler enforces a per-component minimum level. The wrapped
// handler must be configured with the most verbose level needed globally.
type componentLevelHandler struct {
	next   slog.Handler
	levels map[string]slog.Level
	min    slog.Level
}

func newComponentLevelHandler(next slog.Handler, base slog.Level, overrides map[string]string) slog.Handler {
	levels := make(map[string]slog.Level, len(overrides))
	for component, value := range overrides {
		name := strings.ToLower(strings.TrimSpace(component))
		if name == "" {
			continue
		}
		levels[name] = parseLevel(value)
	}
	return &componentLevelHandler{next: next, levels: levels, min: base}
}

func (h *componentLevelHandler) Enabled(ctx context.Context, level slog.Level) bool {
	if level < h.min {
		return false
	}
	return h.next.Enabled(ctx, level)
}

func (h *componentLevelHandler) Handle(ctx context.Context, record slog.Record) error {
	if record.Level < h.min {
		return nil
	}
	return h.next.Handle(ctx, record)
}

func (h *componentLevelHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	min := h.min
	for _, attr := range attrs {
		if attr.Key != FieldComponent {
			continue
		}
		if lvl, ok := h.levels[strings.ToLower(attr.Value.String())]; ok {
			min = lvl
		}
	}
	return &componentLevelHandler{next: h.next.WithAttrs(attrs), levels: h.levels, min: min}
}

func (h *componentLevelHandler) WithGroup(name string) slog.Handler {
	return &componentLevelHandler{next: h.next.WithGroup(name), levels: h.levels, min: h.min}
}
