package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"conecta/config"
	deliverycontext "conecta/internal/delivery/context"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger routes GORM output through the request-scoped slog logger, so every
// statement issued while serving a request carries its request_id.
type queryLogger struct {
	base          *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
	logNotFound   bool
}

func newQueryLogger(base *slog.Logger, debug bool, cfg *config.QueryLogConfig) logger.Interface {
	level := logger.Warn
	if debug {
		level = logger.Info
	}

	l := &queryLogger{base: base, level: level}
	if cfg != nil {
		l.slowThreshold = cfg.SlowThreshold
		l.logNotFound = cfg.LogNotFound
	}

	return l
}

func (l *queryLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Info, slog.LevelInfo, msg, args)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Warn, slog.LevelWarn, msg, args)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.message(ctx, logger.Error, slog.LevelError, msg, args)
}

func (l *queryLogger) message(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args []any) {
	if l.level < threshold || l.base == nil {
		return
	}

	l.scoped(ctx).LogAttrs(ctx, level, "GORM "+level.String(), slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	if l.base == nil || l.level == logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	level, msg, extra := l.classify(err, elapsed)
	if msg == "" {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := append([]slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}, extra...)
	l.scoped(ctx).LogAttrs(ctx, level, msg, attrs...)
}

// classify decides whether a finished statement is logged, and how.
// An empty message means the statement is not reported.
func (l *queryLogger) classify(err error, elapsed time.Duration) (slog.Level, string, []slog.Attr) {
	if err != nil && l.level >= logger.Error {
		if errors.Is(err, gorm.ErrRecordNotFound) && !l.logNotFound {
			return 0, "", nil
		}

		// Constraint and width violations are mapped to client errors by the repositories.
		if state := sqlState(err); isExpectedSQLState(state) {
			return slog.LevelDebug, "GORM statement rejected", []slog.Attr{
				slog.String("sqlstate", state),
				slog.String("error", err.Error()),
			}
		}

		return slog.LevelError, "GORM query failed", []slog.Attr{slog.String("error", err.Error())}
	}

	if l.slowThreshold > 0 && elapsed > l.slowThreshold && l.level >= logger.Warn {
		return slog.LevelWarn, "GORM slow query", []slog.Attr{slog.Duration("slow_threshold", l.slowThreshold)}
	}

	if l.level >= logger.Info {
		return slog.LevelInfo, "GORM query", nil
	}

	return 0, "", nil
}

func (l *queryLogger) scoped(ctx context.Context) *slog.Logger {
	if ctx == nil {
		return l.base
	}

	return deliverycontext.GetLoggerOrDefault(ctx, l.base)
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}

func isExpectedSQLState(state string) bool {
	switch state {
	case pgUniqueViolation, pgForeignKeyViolation, pgCheckViolation, pgStringTooLong:
		return true
	default:
		return false
	}
}
