package model

import "time"

// Folder is a best-effort hint about where the provider filed a message.
type Folder string

const (
	FolderInbox      Folder = "inbox"
	FolderSpam       Folder = "spam"
	FolderPromotions Folder = "promotions"
	FolderUpdates    Folder = "updates"
	FolderSocial     Folder = "social"
	FolderTrash      Folder = "trash"
	FolderUnknown    Folder = "unknown"
)

// Source identifies the provider a message was fetched from. Used only for
// diagnostics.
type Source string

const (
	SourceMaildrop Source = "maildrop"
	SourceGmail    Source = "gmail"
)

// NormalizedMessage is the provider-agnostic shape of a fetched email.
// TextBody and HTMLBody are always plain strings, possibly empty; callers
// must tolerate either being empty.
type NormalizedMessage struct {
	ID       string    `json:"id"`
	From     string    `json:"from"`
	Subject  string    `json:"subject"`
	TextBody string    `json:"text_body"`
	HTMLBody string    `json:"html_body"`
	Date     time.Time `json:"date"`
	Folder   Folder    `json:"folder"`
	Source   Source    `json:"source"`
}

// MailboxPollResult is the outcome of polling one mailbox once. Code is
// empty when no verification code was found, which is a normal outcome and
// not an error. Messages holds the full normalized inbox sorted by date
// descending, regardless of whether anything matched.
type MailboxPollResult struct {
	Code           string               `json:"verification_code"`
	MatchedMessage *NormalizedMessage   `json:"matched_message"`
	Messages       []*NormalizedMessage `json:"messages"`
}
