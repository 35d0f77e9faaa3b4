package maildrop

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"tempmail/internal/logger"
	"tempmail/internal/model"
	"tempmail/internal/provider"
)

const DefaultAPIURL = "https://api.maildrop.cc/graphql"

const providerName = "maildrop"

// Client fetches a Maildrop inbox through the public GraphQL API.
type Client struct {
	apiURL     string
	httpClient *http.Client
	logger     *logger.Logger
}

func NewClient(apiURL string, logger *logger.Logger) *Client {
	if apiURL == "" {
		apiURL = DefaultAPIURL
	}
	return &Client{
		apiURL:     apiURL,
		httpClient: &http.Client{Timeout: 30 * time.Second},
		logger:     logger,
	}
}

func (c *Client) Name() model.Source { return model.SourceMaildrop }

type graphqlRequest struct {
	Query string `json:"query"`
}

type inboxResponse struct {
	Data *struct {
		Inbox []inboxMessage `json:"inbox"`
	} `json:"data"`
}

// inboxMessage is the raw Maildrop record. Older API versions used
// mailfrom/body where current ones use headerfrom/data, so both are
// accepted.
type inboxMessage struct {
	ID         string `json:"id"`
	HeaderFrom string `json:"headerfrom"`
	MailFrom   string `json:"mailfrom"`
	Subject    string `json:"subject"`
	Data       string `json:"data"`
	Body       string `json:"body"`
	HTML       string `json:"html"`
	Date       string `json:"date"`
}

// FetchMessages queries the Maildrop inbox for the mailbox-name portion of
// the address.
func (c *Client) FetchMessages(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
	mailbox := MailboxName(address)

	query := fmt.Sprintf("query CheckInbox { inbox(mailbox: %q) { id headerfrom subject data html date } }", mailbox)
	payload, err := json.Marshal(graphqlRequest{Query: query})
	if err != nil {
		return nil, fmt.Errorf("failed to build inbox query: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiURL, bytes.NewBuffer(payload))
	if err != nil {
		return nil, &provider.TransportError{Provider: providerName, Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &provider.TransportError{Provider: providerName, Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		return nil, &provider.AuthError{Provider: providerName, Err: fmt.Errorf("status %d", resp.StatusCode)}
	}
	if resp.StatusCode != http.StatusOK {
		return nil, &provider.TransportError{Provider: providerName, Status: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &provider.TransportError{Provider: providerName, Err: err}
	}

	var decoded inboxResponse
	if err := json.Unmarshal(body, &decoded); err != nil {
		return nil, &provider.MalformedResponseError{Provider: providerName, Err: err}
	}
	if decoded.Data == nil {
		return nil, &provider.MalformedResponseError{Provider: providerName, Err: errors.New("response has no data.inbox")}
	}

	messages := make([]*model.NormalizedMessage, 0, len(decoded.Data.Inbox))
	for _, raw := range decoded.Data.Inbox {
		messages = append(messages, normalize(raw))
	}

	c.logger.Info("Fetched", len(messages), "messages from Maildrop mailbox:", mailbox)
	return messages, nil
}

// MailboxName resolves the Maildrop mailbox for an address: the part before
// the @, or the whole string when a bare username was given.
func MailboxName(address string) string {
	if i := strings.Index(address, "@"); i >= 0 {
		return address[:i]
	}
	return address
}

func normalize(raw inboxMessage) *model.NormalizedMessage {
	from := raw.HeaderFrom
	if from == "" {
		from = raw.MailFrom
	}
	text := raw.Data
	if text == "" {
		text = raw.Body
	}
	date, err := time.Parse(time.RFC3339, raw.Date)
	if err != nil {
		date = time.Now()
	}
	return &model.NormalizedMessage{
		ID:       raw.ID,
		From:     from,
		Subject:  raw.Subject,
		TextBody: text,
		HTMLBody: raw.HTML,
		Date:     date,
		Folder:   model.FolderInbox,
		Source:   model.SourceMaildrop,
	}
}
