// Package metadata implements durable key-value storage kept beside, but
// independent of, the user record store. The session cache lives here.
package metadata

import "context"

// Repository is a durable key-value store with upsert semantics.
// Get returns (nil, nil) for an absent key; Delete and Clear are no-ops on
// keys that do not exist.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
