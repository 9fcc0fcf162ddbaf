package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/infra/metrics"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultGormSlowThreshold = 200 * time.Millisecond

// gormSlogLogger routes GORM output through the request-scoped slog logger so
// SQL lines carry the request and courier IDs, and times every statement.
type gormSlogLogger struct {
	logger        *slog.Logger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func newGormSlogLogger(baseLogger *slog.Logger, cfg *config.Config) logger.Interface {
	level := logger.Warn
	if cfg != nil && cfg.Env.Debug {
		level = logger.Info
	}

	return &gormSlogLogger{
		logger:        baseLogger,
		level:         level,
		slowThreshold: defaultGormSlowThreshold,
	}
}

func (l *gormSlogLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level

	return &cloned
}

func (l *gormSlogLogger) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, l.logger)
}

func (l *gormSlogLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *gormSlogLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *gormSlogLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *gormSlogLogger) printf(ctx context.Context, threshold logger.LogLevel, level slog.Level, msg string, args ...any) {
	if l.level < threshold || l.logger == nil {
		return
	}

	l.log(ctx).LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func (l *gormSlogLogger) Trace(ctx context.Context, begin time.Time, sqlAndRowsFn func() (string, int64), err error) {
	elapsed := time.Since(begin)
	result := l.classify(err, elapsed)
	metrics.DBQueryDuration.WithLabelValues(result).Observe(elapsed.Seconds())

	if l.logger == nil || l.level == logger.Silent {
		return
	}

	sql, rows := sqlAndRowsFn()
	attrs := []slog.Attr{
		slog.Duration("elapsed", elapsed),
		slog.Int64("rows", rows),
		slog.String("sql", sql),
	}

	switch {
	case result == metrics.QueryError && l.level >= logger.Error:
		level := slog.LevelError
		// Constraint violations are mapped to domain errors by the repositories.
		if code := sqlState(err); code != "" && code[:2] == "23" {
			level = slog.LevelWarn
		}
		attrs = append(attrs, slog.String("error", err.Error()))
		l.log(ctx).LogAttrs(ctx, level, "GORM query failed", attrs...)
	case result == metrics.QuerySlow && l.level >= logger.Warn:
		attrs = append(attrs, slog.Duration("slow_threshold", l.slowThreshold))
		l.log(ctx).LogAttrs(ctx, slog.LevelWarn, "GORM slow query", attrs...)
	case l.level >= logger.Info:
		l.log(ctx).LogAttrs(ctx, slog.LevelInfo, "GORM query", attrs...)
	}
}

// classify treats record-not-found as a normal result since lookups use it for absence.
func (l *gormSlogLogger) classify(err error, elapsed time.Duration) string {
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		return metrics.QueryError
	case l.slowThreshold > 0 && elapsed > l.slowThreshold:
		return metrics.QuerySlow
	default:
		return metrics.QueryOK
	}
}
