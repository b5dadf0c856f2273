// Package metadata stores small key/value pairs in the local SQLite database.
// The session store keeps the persisted credentials here.
package metadata

import (
	"context"
)

// Repository is a flat key/value store. Missing keys are not errors: Get
// returns (nil, nil) and GetMany leaves them out of the result.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	GetMany(ctx context.Context, keys ...string) (map[string][]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	SetMany(ctx context.Context, values map[string][]byte) error
	Delete(ctx context.Context, key string) error
	List(ctx context.Context) (map[string][]byte, error)
	Clear(ctx context.Context) error
}
