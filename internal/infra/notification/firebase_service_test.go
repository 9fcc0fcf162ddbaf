package notification

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"

	"firebase.google.com/go/v4/messaging"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeSender struct {
	batches [][]string
	err     error
}

func (f *fakeSender) Send(_ context.Context, _ *messaging.Message) (string, error) {
	return "projects/p/messages/1", f.err
}

func (f *fakeSender) SendEachForMulticast(_ context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.batches = append(f.batches, message.Tokens)

	responses := make([]*messaging.SendResponse, len(message.Tokens))
	for i := range message.Tokens {
		responses[i] = &messaging.SendResponse{Success: true}
	}

	return &messaging.BatchResponse{SuccessCount: len(message.Tokens), Responses: responses}, nil
}

func TestFirebaseService_SendBatchPush_SplitsIntoMulticasts(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	tokens := make([]string, 1201)
	for i := range tokens {
		tokens[i] = fmt.Sprintf("token-%d", i)
	}

	success, failure, invalid, err := svc.SendBatchPush(context.Background(), tokens, "New order", "Pickup at restaurant a", nil)
	require.NoError(t, err)
	assert.Equal(t, 1201, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)

	require.Len(t, sender.batches, 3)
	assert.Len(t, sender.batches[0], 500)
	assert.Len(t, sender.batches[1], 500)
	assert.Len(t, sender.batches[2], 201)
}

func TestFirebaseService_SendBatchPush_NoTokens(t *testing.T) {
	sender := &fakeSender{}
	svc := &firebaseService{client: sender}

	success, failure, invalid, err := svc.SendBatchPush(context.Background(), nil, "t", "b", nil)
	require.NoError(t, err)
	assert.Zero(t, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.Empty(t, sender.batches)
}

func TestFirebaseService_SendErrors(t *testing.T) {
	svc := &firebaseService{client: &fakeSender{err: errors.New("fcm down")}}

	_, _, _, err := svc.SendBatchPush(context.Background(), []string{"a"}, "t", "b", nil)
	assert.ErrorContains(t, err, "fcm down")

	err = svc.SendSinglePush(context.Background(), "a", "t", "b", nil)
	assert.ErrorContains(t, err, "fcm down")
}

func TestCollectInvalidTokens_IgnoresSuccessAndGenericFailures(t *testing.T) {
	tokens := []string{"ok", "failed"}
	responses := []*messaging.SendResponse{
		{Success: true},
		{Success: false, Error: errors.New("internal error")},
	}

	assert.Empty(t, collectInvalidTokens(tokens, responses))
}

func TestLogService_ReportsEverythingDelivered(t *testing.T) {
	svc := NewLogService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	success, failure, invalid, err := svc.SendBatchPush(context.Background(), []string{"a", "b"}, "t", "b", nil)
	require.NoError(t, err)
	assert.Equal(t, 2, success)
	assert.Zero(t, failure)
	assert.Empty(t, invalid)
	assert.NoError(t, svc.SendSinglePush(context.Background(), "a", "t", "b", nil))
}
