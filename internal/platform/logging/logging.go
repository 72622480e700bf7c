// Package logging builds the service's slog logger and carries it through
// request contexts.
//
//	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
//	ctx = logging.WithLogger(ctx, logger.With(slog.String("request_id", id)))
//	logging.FromContext(ctx).ErrorContext(ctx, "failed to change stage status",
//	    slog.String("operation", "ChangeStageStatus"),
//	    slog.String("stage_id", id.String()),
//	    slog.Any("error", err),
//	)
//
// Error logs name the operation and the ids involved and attach the error
// chain with slog.Any. Credentials are masked by the handler, so call sites
// do not redact.
package logging

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"slices"
	"strings"
)

type contextKey struct{}

// New returns a JSON logger, or a text logger when format is "text", at the
// given level. Unknown levels fall back to info. Debug output includes the
// source location.
func New(level, format string, w io.Writer) *slog.Logger {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	opts := &slog.HandlerOptions{
		Level:       lvl,
		AddSource:   lvl <= slog.LevelDebug,
		ReplaceAttr: redactor(),
	}
	if format == "text" {
		return slog.New(slog.NewTextHandler(w, opts))
	}
	return slog.New(slog.NewJSONHandler(w, opts))
}

// WithLogger stores logger in ctx.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, contextKey{}, logger)
}

// FromContext returns the logger stored in ctx, or slog.Default().
func FromContext(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

// Ensure stores fallback in ctx unless ctx already carries a logger.
func Ensure(ctx context.Context, fallback *slog.Logger) context.Context {
	if _, ok := ctx.Value(contextKey{}).(*slog.Logger); ok {
		return ctx
	}
	return WithLogger(ctx, fallback)
}

// Headers renders h as a "headers" group with lowercased, sorted keys so
// the field-name rules mask credentials such as authorization and cookie.
func Headers(h http.Header) slog.Attr {
	keys := make([]string, 0, len(h))
	for k := range h {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	attrs := make([]any, 0, len(keys))
	for _, k := range keys {
		attrs = append(attrs, slog.String(strings.ToLower(k), strings.Join(h[k], ",")))
	}
	return slog.Group("headers", attrs...)
}
