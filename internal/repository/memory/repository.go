package memory

import (
	"context"
	"errors"
	"sort"
	"sync"

	"tempmail/internal/model"
)

type InMemoryMailboxRepository struct {
	mailboxes map[string]*model.Mailbox
	mutex     sync.RWMutex
}

func NewInMemoryMailboxRepository() *InMemoryMailboxRepository {
	return &InMemoryMailboxRepository{
		mailboxes: make(map[string]*model.Mailbox),
	}
}

func (r *InMemoryMailboxRepository) Save(ctx context.Context, mailbox *model.Mailbox) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	r.mailboxes[mailbox.ID] = mailbox
	return nil
}

func (r *InMemoryMailboxRepository) FindByID(ctx context.Context, id string) (*model.Mailbox, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	mailbox, exists := r.mailboxes[id]
	if !exists {
		return nil, errors.New("mailbox not found")
	}
	return mailbox, nil
}

func (r *InMemoryMailboxRepository) FindByEmail(ctx context.Context, email string) (*model.Mailbox, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	for _, mailbox := range r.mailboxes {
		if mailbox.Email == email {
			return mailbox, nil
		}
	}
	return nil, errors.New("mailbox not found")
}

func (r *InMemoryMailboxRepository) FindAll(ctx context.Context) ([]*model.Mailbox, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	mailboxes := make([]*model.Mailbox, 0, len(r.mailboxes))
	for _, mailbox := range r.mailboxes {
		mailboxes = append(mailboxes, mailbox)
	}
	// Newest first, matching the Postgres ordering.
	sort.Slice(mailboxes, func(i, j int) bool {
		return mailboxes[i].Created.After(mailboxes[j].Created)
	})
	return mailboxes, nil
}

func (r *InMemoryMailboxRepository) MarkUsed(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	mailbox, exists := r.mailboxes[id]
	if !exists {
		return errors.New("mailbox not found")
	}
	mailbox.Used = true
	return nil
}

func (r *InMemoryMailboxRepository) Delete(ctx context.Context, id string) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	if _, exists := r.mailboxes[id]; !exists {
		return errors.New("mailbox not found")
	}
	delete(r.mailboxes, id)
	return nil
}
