package resend

import "context"

// MockClient is a mock Resend client for testing.
type MockClient struct {
	SendFunc func(ctx context.Context, from, to, subject, html string) (string, error)
}

func NewMockClient() *MockClient {
	return &MockClient{}
}

func (m *MockClient) Send(ctx context.Context, from, to, subject, html string) (string, error) {
	if m.SendFunc != nil {
		return m.SendFunc(ctx, from, to, subject, html)
	}

	// Default mock behavior: pretend the send succeeded
	return "mock-message-id", nil
}
