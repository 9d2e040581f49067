package service

import (
	"context"
	"time"

	"github.com/nauteik/soa-project-sub001/internal/errors"
)

// ErrStoreKeyNotFound is returned by SessionStore.Get for an absent or
// expired key.
var ErrStoreKeyNotFound = errors.New("session store: key not found")

// SessionStore is the persisted key-value state behind sessions and checkout
// hand-offs (the rendition of the SPA's browser storage). Values are opaque
// bytes; a zero ttl means no expiry.
type SessionStore interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
}
