package service

import (
	"context"
	"fmt"
	"math/rand"
	"strconv"

	"tempmail/internal/logger"
)

type sendService struct {
	client ResendClient
	from   string
	logger *logger.Logger
}

// SendResult reports a successful outbound verification email.
type SendResult struct {
	MessageID string `json:"message_id"`
	Code      string `json:"verification_code"`
}

func NewSendService(client ResendClient, from string, logger *logger.Logger) SendService {
	return &sendService{
		client: client,
		from:   from,
		logger: logger,
	}
}

// SendVerification generates a fresh 6-digit code, renders the requested
// template around it and delivers the email. The code is returned so the
// caller can confirm the extraction pipeline against a known value.
func (s *sendService) SendVerification(ctx context.Context, to, template string) (*SendResult, error) {
	code := generateCode()
	subject, html := renderTemplate(template, code, to)

	messageID, err := s.client.Send(ctx, s.from, to, subject, html)
	if err != nil {
		return nil, fmt.Errorf("failed to send verification email: %w", err)
	}

	s.logger.Info("Sent verification email to:", to, "message ID:", messageID)
	return &SendResult{MessageID: messageID, Code: code}, nil
}

// generateCode returns a 6-digit code; the target registration flows expect
// exactly six digits.
func generateCode() string {
	return strconv.Itoa(100000 + rand.Intn(900000))
}
