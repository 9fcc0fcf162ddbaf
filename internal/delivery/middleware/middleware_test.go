package middleware

import (
	"bytes"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mandoob/config"
	deliverycontext "mandoob/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newBufferLogger() (*slog.Logger, *bytes.Buffer) {
	buf := &bytes.Buffer{}

	return slog.New(slog.NewJSONHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})), buf
}

func TestRequestIDMiddleware_Process(t *testing.T) {
	tests := []struct {
		name     string
		header   string
		expected func(t *testing.T, got string)
	}{
		{
			name:   "keeps caller id",
			header: "req-123",
			expected: func(t *testing.T, got string) {
				assert.Equal(t, "req-123", got)
			},
		},
		{
			name:   "generates when missing",
			header: "",
			expected: func(t *testing.T, got string) {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			},
		},
		{
			name:   "replaces oversized id",
			header: strings.Repeat("x", maxRequestIDLength+1),
			expected: func(t *testing.T, got string) {
				_, err := uuid.Parse(got)
				assert.NoError(t, err)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, _ := newBufferLogger()
			e := echo.New()

			var fromCtx string
			var hasLogger bool
			handler := NewRequestIDMiddleware(logger).Process(func(c echo.Context) error {
				fromCtx = deliverycontext.GetRequestIDFromContext(c.Request().Context())
				hasLogger = deliverycontext.GetLogger(c.Request().Context()) != nil

				return c.NoContent(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/api/v1/orders", nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXRequestID, tt.header)
			}
			rec := httptest.NewRecorder()

			require.NoError(t, handler(e.NewContext(req, rec)))

			got := rec.Header().Get(deliverycontext.HeaderXRequestID)
			tt.expected(t, got)
			assert.Equal(t, got, fromCtx)
			assert.True(t, hasLogger)
		})
	}
}

func TestLoggerMiddleware_Handle(t *testing.T) {
	tests := []struct {
		name    string
		debug   bool
		path    string
		handler echo.HandlerFunc
		logged  string
	}{
		{
			name:  "debug logs success",
			debug: true,
			path:  "/api/v1/orders",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
			logged: `"level":"INFO"`,
		},
		{
			name:  "quiet mode skips success",
			debug: false,
			path:  "/api/v1/orders",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
		{
			name:  "quiet mode still logs server failures",
			debug: false,
			path:  "/api/v1/orders",
			handler: func(c echo.Context) error {
				return echo.NewHTTPError(http.StatusBadGateway, "upstream")
			},
			logged: `"status":502`,
		},
		{
			name:  "probe paths are never logged",
			debug: true,
			path:  "/health",
			handler: func(c echo.Context) error {
				return c.NoContent(http.StatusOK)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			logger, buf := newBufferLogger()
			cfg := &config.Config{}
			cfg.Env.Debug = tt.debug

			e := echo.New()
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			c := e.NewContext(req, httptest.NewRecorder())

			_ = NewLoggerMiddleware(logger, cfg).Handle(tt.handler)(c)

			if tt.logged == "" {
				assert.Empty(t, buf.String())

				return
			}
			assert.Contains(t, buf.String(), tt.logged)
		})
	}
}
