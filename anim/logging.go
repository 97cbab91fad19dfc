package anim

import (
	"log/slog"
)

// LogValue implements slog.LogValuer for structured logging.
func (e *Engine) LogValue() slog.Value {
	columns, symbols, snippets := e.Counts()
	attrs := []slog.Attr{
		slog.Bool("mounted", e.mounted),
		slog.Float64("width", e.width),
		slog.Float64("height", e.height),
		slog.String("theme", e.theme.String()),
		slog.Int64("ticks", e.ticks),
		slog.Float64("anim_time", e.time),
	}
	if e.mounted {
		attrs = append(attrs,
			slog.Int("columns", columns),
			slog.Int("symbols", symbols),
			slog.Int("snippets", snippets),
		)
	}
	if e.disposed {
		attrs = append(attrs, slog.Bool("disposed", true))
	}
	return slog.GroupValue(attrs...)
}

// logMount reports a mount at debug level.
func (e *Engine) logMount() {
	slog.Debug("engine mounted", "mount", e.mounts, "engine", e)
}
