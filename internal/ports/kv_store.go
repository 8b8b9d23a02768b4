package ports

import "context"

// KeyValueStore is a durable string slot store. Get returns
// domain.ErrRecordNotFound when the key is absent; Delete of a missing key
// is not an error.
type KeyValueStore interface {
	Get(ctx context.Context, key string) (string, error)
	Put(ctx context.Context, key string, value string) error
	Delete(ctx context.Context, key string) error
}
