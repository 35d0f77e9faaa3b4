package service

import (
	"context"

	"tempmail/internal/model"
)

type PollService interface {
	PollMailbox(ctx context.Context, address string) (*model.MailboxPollResult, error)
}

type MailboxService interface {
	SaveMailboxes(ctx context.Context, mailboxes []*model.Mailbox) (int, error)
	GetMailboxes(ctx context.Context) ([]*model.Mailbox, error)
	MarkUsed(ctx context.Context, id string) error
	RecordCode(ctx context.Context, address, code string) error
}

type SendService interface {
	SendVerification(ctx context.Context, to, template string) (*SendResult, error)
}

// ResendClient interface for sending mail through the Resend API
type ResendClient interface {
	Send(ctx context.Context, from, to, subject, html string) (string, error)
}
