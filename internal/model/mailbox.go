package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StatusWaiting  = "waiting"
	StatusVerified = "verified"
)

// Mailbox is a disposable email address tracked by the service, together
// with the credentials it was registered with and the last known
// verification state.
type Mailbox struct {
	ID               string     `json:"id"`
	Email            string     `json:"email"`
	Password         string     `json:"password"`
	VerificationCode string     `json:"verification_code"`
	Status           string     `json:"status"`
	Used             bool       `json:"used"`
	Created          time.Time  `json:"created"`
	LastChecked      *time.Time `json:"last_checked"`
}

func NewMailbox(email, password string) *Mailbox {
	return &Mailbox{
		ID:       uuid.New().String(),
		Email:    email,
		Password: password,
		Status:   StatusWaiting,
		Created:  time.Now(),
	}
}
