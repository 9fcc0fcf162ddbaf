package postgres

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"
	"mandoob/internal/infra/metrics"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func newTestGormLogger(debug bool) (*gormSlogLogger, *bytes.Buffer) {
	buf := &bytes.Buffer{}
	cfg := &config.Config{}
	cfg.Env.Debug = debug
	base := slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	return newGormSlogLogger(base, cfg).(*gormSlogLogger), buf
}

func sqlFn() (string, int64) {
	return `SELECT * FROM "orders" WHERE user_id = 'u1'`, 3
}

func TestGormSlogLogger_Trace(t *testing.T) {
	t.Run("uses request logger", func(t *testing.T) {
		l, _ := newTestGormLogger(true)
		reqBuf := &bytes.Buffer{}
		reqLogger := slog.New(slog.NewJSONHandler(reqBuf, nil)).With(slog.String("request_id", "req-9"))
		ctx := deliverycontext.WithLogger(context.Background(), reqLogger)

		l.Trace(ctx, time.Now(), sqlFn, nil)

		assert.Contains(t, reqBuf.String(), `"request_id":"req-9"`)
		assert.Contains(t, reqBuf.String(), `"rows":3`)
	})

	t.Run("quiet mode skips fast queries", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, nil)

		assert.Empty(t, buf.String())
	})

	t.Run("record not found is not an error", func(t *testing.T) {
		l, buf := newTestGormLogger(false)
		before := testutil.ToFloat64(metrics.DBQueryDuration.WithLabelValues(metrics.QueryError))

		l.Trace(context.Background(), time.Now(), sqlFn, gorm.ErrRecordNotFound)

		assert.Empty(t, buf.String())
		assert.InDelta(t, before, testutil.ToFloat64(metrics.DBQueryDuration.WithLabelValues(metrics.QueryError)), 0)
	})

	t.Run("constraint violations log as warnings", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.WithStack(&pgconn.PgError{Code: "23505"}))

		assert.Contains(t, buf.String(), `"level":"WARN"`)
		assert.Contains(t, buf.String(), "GORM query failed")
	})

	t.Run("driver failures log as errors", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now(), sqlFn, errors.New("connection reset"))

		assert.Contains(t, buf.String(), `"level":"ERROR"`)
	})

	t.Run("slow queries warn", func(t *testing.T) {
		l, buf := newTestGormLogger(false)

		l.Trace(context.Background(), time.Now().Add(-time.Second), sqlFn, nil)

		assert.Contains(t, buf.String(), "GORM slow query")
	})
}
