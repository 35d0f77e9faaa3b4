package service

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"tempmail/internal/logger"
	"tempmail/internal/model"
	"tempmail/internal/repository/memory"
)

func TestMailboxServiceSaveFillsDefaults(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	saved, err := mailboxService.SaveMailboxes(context.Background(), []*model.Mailbox{
		{Email: "tester@maildrop.cc", Password: "secret"},
	})

	assert.NoError(t, err)
	assert.Equal(t, 1, saved)

	mailboxes, err := mailboxService.GetMailboxes(context.Background())
	assert.NoError(t, err)
	assert.Len(t, mailboxes, 1)
	assert.NotEmpty(t, mailboxes[0].ID)
	assert.Equal(t, model.StatusWaiting, mailboxes[0].Status)
	assert.False(t, mailboxes[0].Created.IsZero())
}

func TestMailboxServiceSaveKeepsClientIDs(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	_, err := mailboxService.SaveMailboxes(context.Background(), []*model.Mailbox{
		{ID: "imported-1", Email: "tester@maildrop.cc", Password: "secret", Status: model.StatusVerified},
	})
	assert.NoError(t, err)

	mailbox, err := repo.FindByID(context.Background(), "imported-1")
	assert.NoError(t, err)
	assert.Equal(t, model.StatusVerified, mailbox.Status)
}

func TestMailboxServiceSaveRequiresCredentials(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	_, err := mailboxService.SaveMailboxes(context.Background(), []*model.Mailbox{
		{Email: "tester@maildrop.cc"},
	})
	assert.Error(t, err)
}

func TestMailboxServiceMarkUsed(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	mailbox := model.NewMailbox("tester@maildrop.cc", "secret")
	assert.NoError(t, repo.Save(context.Background(), mailbox))

	assert.NoError(t, mailboxService.MarkUsed(context.Background(), mailbox.ID))

	stored, err := repo.FindByID(context.Background(), mailbox.ID)
	assert.NoError(t, err)
	assert.True(t, stored.Used)

	assert.Error(t, mailboxService.MarkUsed(context.Background(), "missing"))
}

func TestMailboxServiceRecordCode(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	mailbox := model.NewMailbox("tester@maildrop.cc", "secret")
	assert.NoError(t, repo.Save(context.Background(), mailbox))

	err := mailboxService.RecordCode(context.Background(), "tester@maildrop.cc", "482913")
	assert.NoError(t, err)

	stored, err := repo.FindByEmail(context.Background(), "tester@maildrop.cc")
	assert.NoError(t, err)
	assert.Equal(t, "482913", stored.VerificationCode)
	assert.Equal(t, model.StatusVerified, stored.Status)
	assert.NotNil(t, stored.LastChecked)
	assert.WithinDuration(t, time.Now(), *stored.LastChecked, 5*time.Second)
}

func TestMailboxServiceRecordCodeUntracked(t *testing.T) {
	repo := memory.NewInMemoryMailboxRepository()
	mailboxService := NewMailboxService(repo, logger.New())

	err := mailboxService.RecordCode(context.Background(), "stranger@maildrop.cc", "482913")
	assert.Error(t, err)
}
