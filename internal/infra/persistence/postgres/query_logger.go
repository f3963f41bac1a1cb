package postgres

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"catalog/config"

	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// queryLogger routes GORM output through slog. Bound parameters are never
// rendered into the logged SQL: user rows carry password hashes and
// verification tokens.
type queryLogger struct {
	log           *slog.Logger
	mode          logger.LogLevel
	slowThreshold time.Duration
}

var (
	_ logger.Interface  = (*queryLogger)(nil)
	_ gorm.ParamsFilter = (*queryLogger)(nil)
)

func newQueryLogger(base *slog.Logger, cfg *config.Config) *queryLogger {
	l := &queryLogger{log: base, mode: logger.Warn}
	if cfg == nil {
		return l
	}
	if cfg.Env.Debug {
		l.mode = logger.Info
	}
	if cfg.Database != nil {
		l.slowThreshold = cfg.Database.SlowQueryThreshold
	}

	return l
}

func (l *queryLogger) LogMode(mode logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.mode = mode

	return &cloned
}

// ParamsFilter keeps the placeholders and drops the values.
func (l *queryLogger) ParamsFilter(_ context.Context, sql string, _ ...any) (string, []any) {
	return sql, nil
}

func (l *queryLogger) Info(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Info, slog.LevelInfo, msg, args...)
}

func (l *queryLogger) Warn(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Warn, slog.LevelWarn, msg, args...)
}

func (l *queryLogger) Error(ctx context.Context, msg string, args ...any) {
	l.printf(ctx, logger.Error, slog.LevelError, msg, args...)
}

func (l *queryLogger) Trace(ctx context.Context, begin time.Time, fc func() (string, int64), err error) {
	if !l.enabled(logger.Error) {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
		l.log.LogAttrs(ctx, slog.LevelError, "Postgres statement failed",
			append(statementAttrs(fc, elapsed), slog.String("error", err.Error()))...)
	case l.slowThreshold > 0 && elapsed > l.slowThreshold && l.enabled(logger.Warn):
		l.log.LogAttrs(ctx, slog.LevelWarn, "Postgres slow statement",
			append(statementAttrs(fc, elapsed), slog.Duration("threshold", l.slowThreshold))...)
	case l.enabled(logger.Info):
		l.log.LogAttrs(ctx, slog.LevelDebug, "Postgres statement", statementAttrs(fc, elapsed)...)
	}
}

func (l *queryLogger) enabled(mode logger.LogLevel) bool {
	return l.log != nil && l.mode >= mode
}

func (l *queryLogger) printf(ctx context.Context, mode logger.LogLevel, level slog.Level, msg string, args ...any) {
	if !l.enabled(mode) {
		return
	}
	l.log.LogAttrs(ctx, level, "GORM", slog.String("message", fmt.Sprintf(msg, args...)))
}

func statementAttrs(fc func() (string, int64), elapsed time.Duration) []slog.Attr {
	sql, rows := fc()

	return []slog.Attr{
		slog.String("sql", sql),
		slog.Int64("rows", rows),
		slog.Duration("elapsed", elapsed),
	}
}
