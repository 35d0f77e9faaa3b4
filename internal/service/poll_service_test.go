package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tempmail/internal/logger"
	"tempmail/internal/model"
	"tempmail/internal/provider"
)

// mockAdapter is a mock provider adapter for testing.
type mockAdapter struct {
	source            model.Source
	FetchMessagesFunc func(ctx context.Context, address string) ([]*model.NormalizedMessage, error)
}

func (m *mockAdapter) Name() model.Source { return m.source }

func (m *mockAdapter) FetchMessages(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
	if m.FetchMessagesFunc != nil {
		return m.FetchMessagesFunc(ctx, address)
	}
	return nil, nil
}

func newMessage(id string, age time.Duration, subject, text, html string) *model.NormalizedMessage {
	return &model.NormalizedMessage{
		ID:       id,
		From:     "noreply@example.com",
		Subject:  subject,
		TextBody: text,
		HTMLBody: html,
		Date:     time.Now().Add(-age),
		Folder:   model.FolderInbox,
		Source:   model.SourceMaildrop,
	}
}

func TestPollMailboxEmptyInbox(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	pollService := NewPollService(maildrop, nil, logger.New())

	result, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")

	assert.NoError(t, err)
	assert.Equal(t, "", result.Code)
	assert.Nil(t, result.MatchedMessage)
	assert.NotNil(t, result.Messages)
	assert.Empty(t, result.Messages)
}

func TestPollMailboxFindsFirstVerificationCode(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	maildrop.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		return []*model.NormalizedMessage{
			newMessage("old", 3*time.Hour, "Verification", "your code: 111111", ""),
			newMessage("newsletter", 1*time.Hour, "Weekly digest", "nothing here", ""),
			newMessage("new", 2*time.Hour, "Your verification code", "Use 482913 to continue", ""),
		}, nil
	}
	pollService := NewPollService(maildrop, nil, logger.New())

	result, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")

	assert.NoError(t, err)
	// Newest verification email with a code wins, not the provider's order.
	assert.Equal(t, "482913", result.Code)
	assert.Equal(t, "new", result.MatchedMessage.ID)

	// The full inbox comes back sorted by date descending.
	assert.Len(t, result.Messages, 3)
	assert.Equal(t, "newsletter", result.Messages[0].ID)
	assert.Equal(t, "new", result.Messages[1].ID)
	assert.Equal(t, "old", result.Messages[2].ID)
}

func TestPollMailboxFallsBackToHTMLBody(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	maildrop.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		return []*model.NormalizedMessage{
			newMessage("m1", time.Hour, "Verify your account", "click the button below", "<b>482913</b>"),
		}, nil
	}
	pollService := NewPollService(maildrop, nil, logger.New())

	result, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")

	assert.NoError(t, err)
	assert.Equal(t, "482913", result.Code)
}

func TestPollMailboxVerificationWithoutCodeIsSkipped(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	maildrop.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		return []*model.NormalizedMessage{
			newMessage("link-only", 1*time.Hour, "Confirm your email", "click the link to confirm", ""),
			newMessage("with-code", 2*time.Hour, "Your OTP", "otp: 4821", ""),
		}, nil
	}
	pollService := NewPollService(maildrop, nil, logger.New())

	result, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")

	assert.NoError(t, err)
	assert.Equal(t, "4821", result.Code)
	assert.Equal(t, "with-code", result.MatchedMessage.ID)
	assert.Len(t, result.Messages, 2)
}

func TestPollMailboxProviderErrorPropagates(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	maildrop.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		return nil, &provider.TransportError{Provider: "maildrop", Status: 500}
	}
	pollService := NewPollService(maildrop, nil, logger.New())

	result, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")

	assert.Nil(t, result)
	var transportErr *provider.TransportError
	assert.True(t, errors.As(err, &transportErr))
}

func TestPollMailboxRoutesByAddress(t *testing.T) {
	var maildropCalled, gmailCalled bool
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	maildrop.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		maildropCalled = true
		return nil, nil
	}
	gmail := &mockAdapter{source: model.SourceGmail}
	gmail.FetchMessagesFunc = func(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
		gmailCalled = true
		return nil, nil
	}
	pollService := NewPollService(maildrop, gmail, logger.New())

	_, err := pollService.PollMailbox(context.Background(), "tester@maildrop.cc")
	assert.NoError(t, err)
	_, err = pollService.PollMailbox(context.Background(), "bare-username")
	assert.NoError(t, err)
	assert.True(t, maildropCalled)
	assert.False(t, gmailCalled)

	_, err = pollService.PollMailbox(context.Background(), "me@mailboxes.live")
	assert.NoError(t, err)
	assert.True(t, gmailCalled)
}

func TestPollMailboxUnconfiguredProvider(t *testing.T) {
	maildrop := &mockAdapter{source: model.SourceMaildrop}
	pollService := NewPollService(maildrop, nil, logger.New())

	_, err := pollService.PollMailbox(context.Background(), "me@mailboxes.live")

	var authErr *provider.AuthError
	assert.True(t, errors.As(err, &authErr))
}
