package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"authgate/config"

	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newBufferLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestGormSlogLogger_ParamsFilterDropsValues(t *testing.T) {
	l := &gormSlogLogger{}

	stmt, params := l.ParamsFilter(context.Background(), "INSERT INTO client_tokens VALUES ($1,$2)", "client-1", "secret-token")

	assert.Equal(t, "INSERT INTO client_tokens VALUES ($1,$2)", stmt)
	assert.Nil(t, params)
}

func TestGormSlogLogger_Classify(t *testing.T) {
	warnOnly := newGormSlogLogger(slog.Default(), &config.Config{}).(*gormSlogLogger)

	_, _, ok := warnOnly.classify(time.Millisecond, gorm.ErrRecordNotFound)
	assert.False(t, ok, "missing token row is not logged")

	level, _, ok := warnOnly.classify(time.Millisecond, assert.AnError)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelError, level)

	level, msg, ok := warnOnly.classify(time.Second, nil)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Equal(t, "GORM slow query", msg)

	_, _, ok = warnOnly.classify(time.Millisecond, nil)
	assert.False(t, ok)

	_, _, ok = warnOnly.LogMode(logger.Info).(*gormSlogLogger).classify(time.Millisecond, nil)
	assert.True(t, ok)
}

func TestGormSlogLogger_TraceWritesSQL(t *testing.T) {
	var buf bytes.Buffer
	l := newGormSlogLogger(newBufferLogger(&buf), &config.Config{})

	l.Trace(context.Background(), time.Now(), func() (string, int64) {
		return "DELETE FROM client_tokens WHERE client_id = $1", 0
	}, assert.AnError)

	assert.Contains(t, buf.String(), "GORM query failed")
	assert.Contains(t, buf.String(), "client_id = $1")
}

func TestPoolWait(t *testing.T) {
	_, _, ok := poolWait(sql.DBStats{WaitCount: 3}, sql.DBStats{WaitCount: 3})
	assert.False(t, ok)

	level, attrs, ok := poolWait(
		sql.DBStats{WaitCount: 1, WaitDuration: 10 * time.Millisecond},
		sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond, OpenConnections: 4},
	)
	assert.True(t, ok)
	assert.Equal(t, slog.LevelWarn, level)
	assert.Contains(t, attrs, slog.Duration("avg_wait", 50*time.Millisecond))

	level, _, ok = poolWait(sql.DBStats{}, sql.DBStats{WaitCount: 1, WaitDuration: time.Millisecond})
	assert.True(t, ok)
	assert.Equal(t, slog.LevelDebug, level)
}
