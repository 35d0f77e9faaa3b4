package gmail

import (
	"encoding/base64"
	"strings"
	"time"

	gmailapi "google.golang.org/api/gmail/v1"

	"tempmail/internal/logger"
	"tempmail/internal/model"
)

// Normalize converts a full-format Gmail message into the provider-agnostic
// shape. Returns nil when the message was not addressed to target, since
// Gmail's to: search matches more broadly than an exact recipient.
func Normalize(msg *gmailapi.Message, target string, log *logger.Logger) *model.NormalizedMessage {
	if msg == nil || msg.Payload == nil {
		return nil
	}

	to := header(msg.Payload.Headers, "To")
	if !strings.Contains(strings.ToLower(to), strings.ToLower(target)) {
		return nil
	}

	var text, html strings.Builder
	collectBodies(msg.Payload, &text, &html, log)

	return &model.NormalizedMessage{
		ID:       "gmail-" + msg.Id,
		From:     header(msg.Payload.Headers, "From"),
		Subject:  header(msg.Payload.Headers, "Subject"),
		TextBody: text.String(),
		HTMLBody: html.String(),
		Date:     parseDate(header(msg.Payload.Headers, "Date")),
		Folder:   folderFromLabels(msg.LabelIds),
		Source:   model.SourceGmail,
	}
}

func header(headers []*gmailapi.MessagePartHeader, name string) string {
	for _, h := range headers {
		if strings.EqualFold(h.Name, name) {
			return h.Value
		}
	}
	return ""
}

// collectBodies walks the MIME tree, which may nest multipart/alternative
// and multipart/mixed arbitrarily deep, and concatenates every text/plain
// leaf into text and every text/html leaf into html. A part that fails to
// decode is logged and skipped; one bad part must not lose the message.
func collectBodies(part *gmailapi.MessagePart, text, html *strings.Builder, log *logger.Logger) {
	if part == nil {
		return
	}
	if len(part.Parts) > 0 {
		for _, child := range part.Parts {
			collectBodies(child, text, html, log)
		}
		return
	}
	if part.Body == nil || part.Body.Data == "" {
		return
	}
	switch part.MimeType {
	case "text/plain":
		text.WriteString(decodeBase64URL(part.Body.Data, log))
	case "text/html":
		html.WriteString(decodeBase64URL(part.Body.Data, log))
	}
}

// decodeBase64URL decodes Gmail's base64url part payloads: the url-safe
// alphabet is mapped back to the standard one and padding restored, which
// also tolerates parts that arrive already standard-encoded.
func decodeBase64URL(data string, log *logger.Logger) string {
	data = strings.NewReplacer("-", "+", "_", "/").Replace(data)
	if m := len(data) % 4; m != 0 {
		data += strings.Repeat("=", 4-m)
	}
	decoded, err := base64.StdEncoding.DecodeString(data)
	if err != nil {
		log.Error("Failed to decode message part:", err)
		return ""
	}
	return string(decoded)
}

var dateLayouts = []string{
	time.RFC1123Z,
	time.RFC1123,
	"Mon, 2 Jan 2006 15:04:05 -0700 (MST)",
	"Mon, 2 Jan 2006 15:04:05 -0700",
	"2 Jan 2006 15:04:05 -0700",
}

// parseDate normalizes the Date header to an instant. Providers send dates
// in varying formats; an unparseable date falls back to now rather than
// failing the message.
func parseDate(value string) time.Time {
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			return parsed
		}
	}
	return time.Now()
}

// folderFromLabels maps Gmail labels to a folder tag. Spam and trash take
// precedence when a message carries category labels as well.
func folderFromLabels(labels []string) model.Folder {
	set := make(map[string]bool, len(labels))
	for _, label := range labels {
		set[label] = true
	}
	switch {
	case set["SPAM"]:
		return model.FolderSpam
	case set["TRASH"]:
		return model.FolderTrash
	case set["CATEGORY_PROMOTIONS"]:
		return model.FolderPromotions
	case set["CATEGORY_UPDATES"]:
		return model.FolderUpdates
	case set["CATEGORY_SOCIAL"]:
		return model.FolderSocial
	default:
		return model.FolderInbox
	}
}
