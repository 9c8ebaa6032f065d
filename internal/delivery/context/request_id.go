// Package context carries per-request values from the HTTP edge into use cases,
// repositories and outbound calls to the chat backend.
package context

import (
	"context"
	"log/slog"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// HeaderXRequestID is echoed on every response and forwarded to the chat backend.
const HeaderXRequestID = "X-Request-Id"

// maxRequestIDLength bounds client-supplied IDs, which end up in logs and stored interactions.
const maxRequestIDLength = 64

// echoRequestIDKey names the request ID in echo.Context storage.
const echoRequestIDKey = "request_id"

type ctxKey int

const (
	requestIDKey ctxKey = iota
	loggerKey
)

// ResolveRequestID keeps a client-supplied ID when it is short printable ASCII
// and mints a UUID otherwise.
func ResolveRequestID(supplied string) string {
	if validRequestID(supplied) {
		return supplied
	}

	return uuid.NewString()
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] < 0x21 || id[i] > 0x7e {
			return false
		}
	}

	return true
}

// Bind attaches the request ID and request-scoped logger to c and to its request context.
func Bind(c echo.Context, requestID string, logger *slog.Logger) {
	c.Set(echoRequestIDKey, requestID)

	ctx := WithRequestID(c.Request().Context(), requestID)
	ctx = WithLogger(ctx, logger)
	c.SetRequest(c.Request().WithContext(ctx))
}

// GetRequestID returns the ID bound to c. Outside the middleware chain an ID is
// minted once and kept on c so every envelope of the request agrees.
func GetRequestID(c echo.Context) string {
	if id, ok := c.Get(echoRequestIDKey).(string); ok && id != "" {
		return id
	}
	if id := GetRequestIDFromContext(c.Request().Context()); id != "" {
		c.Set(echoRequestIDKey, id)

		return id
	}

	id := uuid.NewString()
	c.Set(echoRequestIDKey, id)

	return id
}

// GetRequestIDFromContext returns the bound request ID, or "" for background work.
func GetRequestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)

	return id
}

// WithRequestID returns a copy of ctx carrying requestID.
func WithRequestID(ctx context.Context, requestID string) context.Context {
	return context.WithValue(ctx, requestIDKey, requestID)
}

// GetLoggerOrDefault returns the request-scoped logger, or fallback when none is bound.
func GetLoggerOrDefault(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey).(*slog.Logger); ok && logger != nil {
		return logger
	}

	return fallback
}

// WithLogger returns a copy of ctx carrying logger.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, logger)
}
