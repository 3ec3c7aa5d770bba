package dlerrors

import "log/slog"

// LogValue implements slog.LogValuer so a normalized error logs as a group:
//
//	logger.Error("request failed", "err", normalized)
//	// err.error=NotFound err.description=... err.status_code=404 err.debug=...
func (e *Error) LogValue() slog.Value {
	if e == nil {
		return slog.StringValue("<nil>")
	}
	attrs := []slog.Attr{
		slog.String("error", e.label),
		slog.String("description", e.description),
		slog.Int("status_code", e.statusCode),
		slog.Any("debug", e.debug),
	}
	if e.stack != "" {
		attrs = append(attrs, slog.String("stack", e.stack))
	}
	return slog.GroupValue(attrs...)
}
