package logger

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newObservedGorm(level string, slow float64) (*GormLogger, *observer.ObservedLogs) {
	core, logs := observer.New(zapcore.DebugLevel)
	return NewGormLogger(zap.New(core), slow, level), logs
}

func query(sql string) func() (string, int64) {
	return func() (string, int64) { return sql, 1 }
}

func TestNewGormLogger_Levels(t *testing.T) {
	tests := map[string]gormlogger.LogLevel{
		"silent": gormlogger.Silent,
		"error":  gormlogger.Error,
		"warn":   gormlogger.Warn,
		"info":   gormlogger.Info,
		"debug":  gormlogger.Info,
		"":       gormlogger.Warn,
	}
	for in, want := range tests {
		l, _ := newObservedGorm(in, 0)
		assert.Equal(t, want, l.LogLevel, in)
	}
}

func TestGormLogger_Trace(t *testing.T) {
	ctx := ContextWithRequestID(context.Background(), "req-1")

	t.Run("record not found is quiet", func(t *testing.T) {
		l, logs := newObservedGorm("warn", 0)
		l.Trace(ctx, time.Now(), query("SELECT 1"), gorm.ErrRecordNotFound)
		assert.Zero(t, logs.Len())
	})

	t.Run("unique violation is a warning", func(t *testing.T) {
		l, logs := newObservedGorm("warn", 0)
		l.Trace(ctx, time.Now(), query("INSERT"), gorm.ErrDuplicatedKey)

		entries := logs.FilterMessage("gorm unique violation").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, zapcore.WarnLevel, entries[0].Level)
			assert.Equal(t, "req-1", entries[0].ContextMap()["request_id"])
		}
	})

	t.Run("other errors are errors", func(t *testing.T) {
		l, logs := newObservedGorm("warn", 0)
		l.Trace(ctx, time.Now(), query("SELECT"), errors.New("boom"))
		assert.Equal(t, 1, logs.FilterMessage("gorm query error").Len())
	})

	t.Run("slow query", func(t *testing.T) {
		l, logs := newObservedGorm("warn", 0.001)
		l.Trace(ctx, time.Now().Add(-time.Second), query("SELECT"), nil)
		assert.Equal(t, 1, logs.FilterMessage("gorm slow query").Len())
	})

	t.Run("long sql is truncated", func(t *testing.T) {
		l, logs := newObservedGorm("info", 0)
		l.Trace(ctx, time.Now(), query(strings.Repeat("x", maxSQLLength+10)), nil)

		entries := logs.FilterMessage("gorm query").All()
		if assert.Len(t, entries, 1) {
			assert.Equal(t, true, entries[0].ContextMap()["sql_truncated"])
		}
	})

	t.Run("silent logs nothing", func(t *testing.T) {
		l, logs := newObservedGorm("silent", 0)
		l.Trace(ctx, time.Now(), query("SELECT"), errors.New("boom"))
		assert.Zero(t, logs.Len())
	})
}
