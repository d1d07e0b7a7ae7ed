// Package state provides the keyed conversation state store and its
// pluggable storage backends.
package state

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("state: key not found")

// Storage persists opaque state blobs under string keys. Implementations
// must be safe for concurrent use; serialization of turns within one
// conversation is the caller's concern.
type Storage interface {
	Read(ctx context.Context, key string) ([]byte, error)
	Write(ctx context.Context, key string, data []byte) error
	Delete(ctx context.Context, key string) error
}
