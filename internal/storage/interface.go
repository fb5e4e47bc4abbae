package storage

import (
	"context"
	"errors"
)

// ErrNotLoaded is returned by operations on a provider before Init or Load.
var ErrNotLoaded = errors.New("storage not loaded")

// Provider is a durable string key-value store. Values are opaque to the
// provider; callers store JSON.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error

	// Get returns the value for key. ok is false when the key was never set.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set durably writes value under key, replacing any previous value.
	// A failed Set leaves the previous value in place.
	Set(ctx context.Context, key, value string) error
	// Keys returns every stored key with the given prefix, sorted.
	Keys(ctx context.Context, prefix string) ([]string, error)

	// Utils
	GetConfigPath() string
}
