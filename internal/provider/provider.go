package provider

import (
	"context"

	"tempmail/internal/model"
)

// Adapter fetches and normalizes inbox messages for one mail provider.
// Implementations must surface auth and transport failures as the typed
// errors in this package so callers can tell "could not check mail at all"
// apart from "no mail yet".
type Adapter interface {
	// Name returns the provider tag used in diagnostics.
	Name() model.Source
	// FetchMessages returns every message currently visible for the given
	// mailbox address, already normalized. A mailbox with no mail yields an
	// empty slice and no error.
	FetchMessages(ctx context.Context, address string) ([]*model.NormalizedMessage, error)
}
