package postgres

import (
	"bytes"
	"context"
	"database/sql"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestPoolMonitor_Sample(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	current := sql.DBStats{}
	m := newPoolMonitor(logger, func() sql.DBStats { return current })

	m.sample(context.Background())
	assert.Empty(t, buf.String(), "no waits, nothing to report")

	current = sql.DBStats{WaitCount: 2, WaitDuration: 10 * time.Millisecond}
	m.sample(context.Background())
	assert.Contains(t, buf.String(), `"level":"DEBUG"`)
	assert.Contains(t, buf.String(), `"waits":2`)

	buf.Reset()
	current = sql.DBStats{WaitCount: 3, WaitDuration: 110 * time.Millisecond}
	m.sample(context.Background())
	assert.Contains(t, buf.String(), `"level":"WARN"`)
	assert.Contains(t, buf.String(), `"waits":1`)
}

func TestPoolMonitor_RunStopsOnCancel(t *testing.T) {
	m := newPoolMonitor(slog.New(slog.NewTextHandler(&bytes.Buffer{}, nil)), func() sql.DBStats { return sql.DBStats{} })
	m.interval = time.Millisecond

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		m.Run(ctx)
		close(done)
	}()
	cancel()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("monitor did not stop")
	}
}
