package logger

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// DefaultSlowQueryThreshold is the duration above which a query is logged as slow.
const DefaultSlowQueryThreshold = 200 * time.Millisecond

// GormLogger adapts slog to gorm's logger.Interface.
type GormLogger struct {
	logger        *slog.Logger
	level         gormlogger.LogLevel
	slowThreshold time.Duration
}

var _ gormlogger.Interface = (*GormLogger)(nil)

// NewGormLogger creates a gorm logger that writes through l.
// SQL statements are traced at debug level when l has debug enabled.
func NewGormLogger(l *slog.Logger) *GormLogger {
	if l == nil {
		l = slog.Default()
	}
	level := gormlogger.Warn
	if l.Enabled(context.Background(), slog.LevelDebug) {
		level = gormlogger.Info
	}
	return &GormLogger{
		logger:        l.With(slog.String("component", "gorm")),
		level:         level,
		slowThreshold: DefaultSlowQueryThreshold,
	}
}

// LogMode returns a copy of the logger with the given level.
func (g *GormLogger) LogMode(level gormlogger.LogLevel) gormlogger.Interface {
	clone := *g
	clone.level = level
	return &clone
}

// Info logs at info level.
func (g *GormLogger) Info(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Info {
		FromContextOrDefault(ctx, g.logger).InfoContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Warn logs at warn level.
func (g *GormLogger) Warn(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Warn {
		FromContextOrDefault(ctx, g.logger).WarnContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Error logs at error level.
func (g *GormLogger) Error(ctx context.Context, msg string, args ...interface{}) {
	if g.level >= gormlogger.Error {
		FromContextOrDefault(ctx, g.logger).ErrorContext(ctx, fmt.Sprintf(msg, args...))
	}
}

// Trace logs an executed statement. Failed statements are logged at error
// level, except record-not-found which callers handle themselves.
func (g *GormLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if g.level <= gormlogger.Silent {
		return
	}

	elapsed := time.Since(begin)
	sql, rows := fc()
	log := FromContextOrDefault(ctx, g.logger)
	attrs := []any{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}

	switch {
	case err != nil && g.level >= gormlogger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		log.ErrorContext(ctx, "query failed", append(attrs, slog.String("error", err.Error()))...)
	case g.slowThreshold > 0 && elapsed > g.slowThreshold && g.level >= gormlogger.Warn:
		log.WarnContext(ctx, "slow query", append(attrs, slog.Duration("threshold", g.slowThreshold))...)
	case g.level >= gormlogger.Info:
		log.DebugContext(ctx, "query executed", attrs...)
	}
}
