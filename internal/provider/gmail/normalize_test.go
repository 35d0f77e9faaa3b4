package gmail

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	gmailapi "google.golang.org/api/gmail/v1"

	"tempmail/internal/logger"
	"tempmail/internal/model"
)

const target = "me@mailboxes.live"

func testMessage() *gmailapi.Message {
	return &gmailapi.Message{
		Id: "18c2f",
		Payload: &gmailapi.MessagePart{
			Headers: []*gmailapi.MessagePartHeader{
				{Name: "From", Value: "BC.GAME <noreply@bc.game>"},
				{Name: "To", Value: "Me <me@mailboxes.live>"},
				{Name: "Subject", Value: "Your verification code"},
				{Name: "Date", Value: "Mon, 02 Jan 2006 15:04:05 -0700"},
			},
			Parts: []*gmailapi.MessagePart{
				{
					MimeType: "multipart/alternative",
					Parts: []*gmailapi.MessagePart{
						{MimeType: "text/plain", Body: &gmailapi.MessagePartBody{Data: "aGVsbG8"}},
						{MimeType: "text/html", Body: &gmailapi.MessagePartBody{Data: "PHA+aGVsbG88L3A+"}},
					},
				},
			},
		},
	}
}

func TestNormalizeMultipartMessage(t *testing.T) {
	msg := Normalize(testMessage(), target, logger.New())

	assert.NotNil(t, msg)
	assert.Equal(t, "gmail-18c2f", msg.ID)
	assert.Equal(t, "BC.GAME <noreply@bc.game>", msg.From)
	assert.Equal(t, "Your verification code", msg.Subject)
	assert.Equal(t, "hello", msg.TextBody)
	assert.Equal(t, "<p>hello</p>", msg.HTMLBody)
	assert.Equal(t, model.FolderInbox, msg.Folder)
	assert.Equal(t, model.SourceGmail, msg.Source)

	expected := time.Date(2006, 1, 2, 15, 4, 5, 0, time.FixedZone("", -7*3600))
	assert.True(t, msg.Date.Equal(expected))
}

func TestNormalizeDropsOtherRecipients(t *testing.T) {
	// Gmail's to: search is a superset match; a message listed for another
	// alias must be filtered out client-side.
	raw := testMessage()
	raw.Payload.Headers[1].Value = "other@mailboxes.live"

	assert.Nil(t, Normalize(raw, target, logger.New()))
}

func TestNormalizeHeaderNamesCaseInsensitive(t *testing.T) {
	raw := testMessage()
	raw.Payload.Headers[2] = &gmailapi.MessagePartHeader{Name: "subject", Value: "lower"}

	msg := Normalize(raw, target, logger.New())
	assert.NotNil(t, msg)
	assert.Equal(t, "lower", msg.Subject)
}

func TestNormalizeSingleTopLevelBody(t *testing.T) {
	raw := &gmailapi.Message{
		Id: "abc",
		Payload: &gmailapi.MessagePart{
			MimeType: "text/plain",
			Headers: []*gmailapi.MessagePartHeader{
				{Name: "To", Value: target},
			},
			Body: &gmailapi.MessagePartBody{Data: "aGVsbG8"},
		},
	}

	msg := Normalize(raw, target, logger.New())
	assert.NotNil(t, msg)
	assert.Equal(t, "hello", msg.TextBody)
	assert.Equal(t, "", msg.HTMLBody)
}

func TestNormalizeBadPartDoesNotDropMessage(t *testing.T) {
	raw := testMessage()
	raw.Payload.Parts[0].Parts[0].Body.Data = "!!!not-base64!!!"

	msg := Normalize(raw, target, logger.New())
	assert.NotNil(t, msg)
	assert.Equal(t, "", msg.TextBody)
	assert.Equal(t, "<p>hello</p>", msg.HTMLBody)
}

func TestNormalizeDateFallsBackToNow(t *testing.T) {
	raw := testMessage()
	raw.Payload.Headers[3].Value = "garbage"

	msg := Normalize(raw, target, logger.New())
	assert.NotNil(t, msg)
	assert.WithinDuration(t, time.Now(), msg.Date, 5*time.Second)
}

func TestFolderFromLabels(t *testing.T) {
	assert.Equal(t, model.FolderInbox, folderFromLabels(nil))
	assert.Equal(t, model.FolderInbox, folderFromLabels([]string{"INBOX", "UNREAD"}))
	assert.Equal(t, model.FolderPromotions, folderFromLabels([]string{"INBOX", "CATEGORY_PROMOTIONS"}))
	assert.Equal(t, model.FolderUpdates, folderFromLabels([]string{"CATEGORY_UPDATES"}))
	assert.Equal(t, model.FolderSocial, folderFromLabels([]string{"CATEGORY_SOCIAL"}))
	assert.Equal(t, model.FolderTrash, folderFromLabels([]string{"TRASH"}))
	// Spam wins over a category label carried at the same time.
	assert.Equal(t, model.FolderSpam, folderFromLabels([]string{"SPAM", "CATEGORY_PROMOTIONS"}))
}
