// Package kvstore is the persistence layer of the core: a single flat
// key-value table standing in for a backend database. The raw Repository
// speaks bytes and errors; Store layers JSON (de)serialization and the
// fail-soft contract on top, so no storage error ever escapes it.
package kvstore

import "context"

// Repository is the raw key-value backend. Get returns (nil, nil) for an
// absent key; Delete and Clear are idempotent.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
