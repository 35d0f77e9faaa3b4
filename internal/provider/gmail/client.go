package gmail

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	gmailapi "google.golang.org/api/gmail/v1"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"

	"tempmail/internal/logger"
	"tempmail/internal/model"
	"tempmail/internal/provider"
)

const (
	providerName = "gmail"
	gmailUser    = "me"

	defaultBatchSize  = 5
	defaultBatchPause = 200 * time.Millisecond
	maxListResults    = 50
)

// Config carries the OAuth credentials and fetch tuning for the Gmail
// adapter. Credentials are passed in explicitly so tests can build a client
// against a stub transport instead of mutating the environment.
type Config struct {
	ClientID     string
	ClientSecret string
	RefreshToken string
	// BatchSize bounds the number of concurrent per-message detail fetches;
	// BatchPause is the delay between batches. Both are rate-limit tunables,
	// not correctness properties.
	BatchSize  int
	BatchPause time.Duration
}

// Client polls a Gmail account that receives mail for many disposable
// aliases. Each poll narrows the shared inbox down to one target address.
type Client struct {
	service    *gmailapi.Service
	batchSize  int
	batchPause time.Duration
	logger     *logger.Logger
}

func NewClient(ctx context.Context, cfg Config, logger *logger.Logger) (*Client, error) {
	if cfg.ClientID == "" || cfg.ClientSecret == "" || cfg.RefreshToken == "" {
		return nil, &provider.AuthError{Provider: providerName, Err: errors.New("missing OAuth credentials")}
	}

	oauthConfig := &oauth2.Config{
		ClientID:     cfg.ClientID,
		ClientSecret: cfg.ClientSecret,
		Endpoint:     google.Endpoint,
		Scopes:       []string{gmailapi.GmailReadonlyScope},
	}
	tokenSource := oauthConfig.TokenSource(ctx, &oauth2.Token{RefreshToken: cfg.RefreshToken})

	service, err := gmailapi.NewService(ctx, option.WithTokenSource(tokenSource))
	if err != nil {
		return nil, fmt.Errorf("failed to create Gmail service: %w", err)
	}

	batchSize := cfg.BatchSize
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	batchPause := cfg.BatchPause
	if batchPause <= 0 {
		batchPause = defaultBatchPause
	}

	return &Client{
		service:    service,
		batchSize:  batchSize,
		batchPause: batchPause,
		logger:     logger,
	}, nil
}

func (c *Client) Name() model.Source { return model.SourceGmail }

// FetchMessages lists recent messages addressed to the target and fetches
// each one's full payload. The search is time-boxed to the last 48 hours
// and includes spam and trash; Gmail's to: filter is a superset match, so
// the exact recipient check happens again during normalization.
func (c *Client) FetchMessages(ctx context.Context, address string) ([]*model.NormalizedMessage, error) {
	query := fmt.Sprintf("to:%s newer_than:2d", address)
	list, err := c.service.Users.Messages.List(gmailUser).
		Q(query).
		IncludeSpamTrash(true).
		MaxResults(maxListResults).
		Context(ctx).
		Do()
	if err != nil {
		return nil, wrapAPIError(err)
	}

	ids := make([]string, 0, len(list.Messages))
	for _, m := range list.Messages {
		ids = append(ids, m.Id)
	}

	var messages []*model.NormalizedMessage
	// Detail fetches for distinct message IDs are independent; run them in
	// small concurrent batches with a pause in between to respect Gmail's
	// rate limits.
	for start := 0; start < len(ids); start += c.batchSize {
		end := min(start+c.batchSize, len(ids))
		batch := ids[start:end]

		fetched := make([]*gmailapi.Message, len(batch))
		fetchErrs := make([]error, len(batch))
		var wg sync.WaitGroup
		for i, id := range batch {
			wg.Add(1)
			go func(i int, id string) {
				defer wg.Done()
				fetched[i], fetchErrs[i] = c.service.Users.Messages.Get(gmailUser, id).
					Format("full").
					Context(ctx).
					Do()
			}(i, id)
		}
		wg.Wait()

		for i, fetchErr := range fetchErrs {
			if fetchErr != nil {
				return nil, wrapAPIError(fetchErr)
			}
			if msg := Normalize(fetched[i], address, c.logger); msg != nil {
				messages = append(messages, msg)
			}
		}

		if end < len(ids) {
			time.Sleep(c.batchPause)
		}
	}

	c.logger.Info("Fetched", len(messages), "of", len(ids), "Gmail messages for:", address)
	return messages, nil
}

func wrapAPIError(err error) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) {
		if apiErr.Code == http.StatusUnauthorized || apiErr.Code == http.StatusForbidden {
			return &provider.AuthError{Provider: providerName, Err: err}
		}
		return &provider.TransportError{Provider: providerName, Status: apiErr.Code, Err: err}
	}
	return &provider.TransportError{Provider: providerName, Err: err}
}
