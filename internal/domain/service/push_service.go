package service

import (
	"context"
)

// PushService sends push notifications to courier devices.
type PushService interface {
	// SendBatchPush sends one message to many device tokens (max 500).
	// Returns success count, failure count and the tokens that are no longer valid.
	SendBatchPush(ctx context.Context, tokens []string, title, body string, data map[string]string) (successCount, failureCount int, invalidTokens []string, err error)

	// SendSinglePush sends a message to one device token.
	SendSinglePush(ctx context.Context, token, title, body string, data map[string]string) error
}
