package repository

import (
	"context"

	"tempmail/internal/model"
)

// MailboxRepository defines the interface for mailbox record persistence.
type MailboxRepository interface {
	Save(ctx context.Context, mailbox *model.Mailbox) error
	FindByID(ctx context.Context, id string) (*model.Mailbox, error)
	FindByEmail(ctx context.Context, email string) (*model.Mailbox, error)
	FindAll(ctx context.Context) ([]*model.Mailbox, error)
	MarkUsed(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
}
