package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tempmail/internal/logger"
	"tempmail/internal/model"
	"tempmail/internal/repository"
)

type mailboxService struct {
	repo   repository.MailboxRepository
	logger *logger.Logger
}

func NewMailboxService(repo repository.MailboxRepository, logger *logger.Logger) MailboxService {
	return &mailboxService{
		repo:   repo,
		logger: logger,
	}
}

// SaveMailboxes upserts a batch of mailbox records, filling in defaults for
// fields the caller left empty. Client-supplied IDs are honored so an
// exported list can be re-imported unchanged. Returns the number saved.
func (s *mailboxService) SaveMailboxes(ctx context.Context, mailboxes []*model.Mailbox) (int, error) {
	saved := 0
	for _, mailbox := range mailboxes {
		if mailbox.Email == "" || mailbox.Password == "" {
			return saved, errors.New("mailbox email and password are required")
		}
		if mailbox.ID == "" {
			mailbox.ID = uuid.New().String()
		}
		if mailbox.Status == "" {
			mailbox.Status = model.StatusWaiting
		}
		if mailbox.Created.IsZero() {
			mailbox.Created = time.Now()
		}
		if err := s.repo.Save(ctx, mailbox); err != nil {
			return saved, fmt.Errorf("failed to save mailbox %s: %w", mailbox.Email, err)
		}
		saved++
	}
	s.logger.Info("Saved", saved, "mailbox records")
	return saved, nil
}

func (s *mailboxService) GetMailboxes(ctx context.Context) ([]*model.Mailbox, error) {
	return s.repo.FindAll(ctx)
}

func (s *mailboxService) MarkUsed(ctx context.Context, id string) error {
	if err := s.repo.MarkUsed(ctx, id); err != nil {
		return err
	}
	s.logger.Info("Marked mailbox as used:", id)
	return nil
}

// RecordCode stores a freshly extracted verification code on the tracked
// record for the address and stamps the check time. Polls for addresses the
// store does not track are allowed; the caller decides whether that is
// worth logging.
func (s *mailboxService) RecordCode(ctx context.Context, address, code string) error {
	mailbox, err := s.repo.FindByEmail(ctx, address)
	if err != nil {
		return err
	}
	now := time.Now()
	mailbox.VerificationCode = code
	mailbox.Status = model.StatusVerified
	mailbox.LastChecked = &now
	return s.repo.Save(ctx, mailbox)
}
