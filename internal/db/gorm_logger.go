package db

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const defaultSlowThreshold = 200 * time.Millisecond

// gormZapLogger routes gorm's statement log into the service's zap logger.
type gormZapLogger struct {
	logs          *zap.SugaredLogger
	level         logger.LogLevel
	slowThreshold time.Duration
}

func NewGormLogger(logs *zap.SugaredLogger) logger.Interface {
	if logs == nil {
		logs = zap.NewNop().Sugar()
	}

	return &gormZapLogger{
		logs:          logs.Named("gorm"),
		level:         logger.Warn,
		slowThreshold: defaultSlowThreshold,
	}
}

func (l *gormZapLogger) LogMode(level logger.LogLevel) logger.Interface {
	cloned := *l
	cloned.level = level
	return &cloned
}

func (l *gormZapLogger) Info(_ context.Context, msg string, args ...any) {
	if l.level < logger.Info {
		return
	}
	l.logs.Infow("gorm info", "message", fmt.Sprintf(msg, args...))
}

func (l *gormZapLogger) Warn(_ context.Context, msg string, args ...any) {
	if l.level < logger.Warn {
		return
	}
	l.logs.Warnw("gorm warning", "message", fmt.Sprintf(msg, args...))
}

func (l *gormZapLogger) Error(_ context.Context, msg string, args ...any) {
	if l.level < logger.Error {
		return
	}
	l.logs.Errorw("gorm error", "message", fmt.Sprintf(msg, args...))
}

// Trace logs failed and slow statements; not-found lookups are expected and skipped.
func (l *gormZapLogger) Trace(_ context.Context, begin time.Time, fc func() (string, int64), err error) {
	if l.level <= logger.Silent {
		return
	}

	elapsed := time.Since(begin)
	switch {
	case err != nil && l.level >= logger.Error && !errors.Is(err, gorm.ErrRecordNotFound):
		sql, rows := fc()
		l.logs.Errorw("query failed",
			"error", err,
			"elapsed", elapsed,
			"rows", rows,
			"sql", sql)
	case elapsed > l.slowThreshold && l.level >= logger.Warn:
		sql, rows := fc()
		l.logs.Warnw("slow query",
			"elapsed", elapsed,
			"threshold", l.slowThreshold,
			"rows", rows,
			"sql", sql)
	case l.level >= logger.Info:
		sql, rows := fc()
		l.logs.Debugw("query",
			"elapsed", elapsed,
			"rows", rows,
			"sql", sql)
	}
}
