package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"tempmail/internal/logger"
	"tempmail/internal/mailcheck"
	"tempmail/internal/model"
	"tempmail/internal/provider"
)

type pollService struct {
	maildrop provider.Adapter
	gmail    provider.Adapter
	logger   *logger.Logger
}

// NewPollService wires the per-provider adapters into one poll operation.
// Either adapter may be nil when that provider is not configured; polling
// an address that needs it then fails with an AuthError.
func NewPollService(maildrop, gmail provider.Adapter, logger *logger.Logger) PollService {
	return &pollService{
		maildrop: maildrop,
		gmail:    gmail,
		logger:   logger,
	}
}

// PollMailbox fetches the inbox for an address, classifies each message and
// extracts a verification code from the first verification email that
// yields one. No code is a success outcome, not an error; provider
// failures propagate as typed errors.
func (s *pollService) PollMailbox(ctx context.Context, address string) (*model.MailboxPollResult, error) {
	adapter, name := s.adapterFor(address)
	if adapter == nil {
		return nil, &provider.AuthError{Provider: string(name), Err: errors.New("provider not configured")}
	}

	messages, err := adapter.FetchMessages(ctx, address)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch messages for %s: %w", address, err)
	}
	if messages == nil {
		messages = []*model.NormalizedMessage{}
	}

	// Providers do not guarantee an ordering, so impose newest-first here.
	sort.SliceStable(messages, func(i, j int) bool {
		return messages[i].Date.After(messages[j].Date)
	})

	result := &model.MailboxPollResult{Messages: messages}
	for _, msg := range messages {
		if !mailcheck.IsVerification(msg) {
			continue
		}
		code := mailcheck.ExtractCode(msg.TextBody)
		if code == "" {
			code = mailcheck.ExtractCode(msg.HTMLBody)
		}
		if code != "" {
			result.Code = code
			result.MatchedMessage = msg
			break
		}
	}

	if result.Code != "" {
		s.logger.Info("Found verification code for", address, "in message:", result.MatchedMessage.ID)
	} else {
		s.logger.Info("No verification code found for", address, "among", len(messages), "messages")
	}
	return result, nil
}

// adapterFor picks the provider for an address: Maildrop owns @maildrop.cc
// addresses and bare usernames, everything else goes to Gmail.
func (s *pollService) adapterFor(address string) (provider.Adapter, model.Source) {
	if strings.HasSuffix(strings.ToLower(address), "@maildrop.cc") || !strings.Contains(address, "@") {
		return s.maildrop, model.SourceMaildrop
	}
	return s.gmail, model.SourceGmail
}
