package notification

import (
	"context"
	"log/slog"

	"mandoob/internal/domain/service"
)

type logService struct {
	logger *slog.Logger
}

// NewLogService returns a PushService that only logs messages. It is used when
// Firebase is not configured, typically in development.
func NewLogService(logger *slog.Logger) service.PushService {
	return &logService{logger: logger}
}

func (s *logService) SendSinglePush(ctx context.Context, token, title, body string, data map[string]string) error {
	s.logger.InfoContext(ctx, "Push skipped, Firebase not configured",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("tokens", 1),
		slog.Any("data", data),
	)

	return nil
}

func (s *logService) SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (int, int, []string, error) {
	s.logger.InfoContext(ctx, "Push skipped, Firebase not configured",
		slog.String("title", title),
		slog.String("body", body),
		slog.Int("tokens", len(tokens)),
		slog.Any("data", data),
	)

	return len(tokens), 0, nil, nil
}
