// Package storage persists the storefront collections in a key-value store.
//
// Each collection lives under its own key as one JSON array and is always
// written whole. Backends only need to get and set opaque byte values.
package storage

import (
	"context"
	"errors"
)

// Keys of the three persisted collections.
const (
	KeyCatalog = "catalog"
	KeyCart    = "cart"
	KeyOrders  = "orders"
)

// ErrKeyNotFound is returned by Store.Get when nothing was ever written under a key.
var ErrKeyNotFound = errors.New("key not found")

// Store is a byte-oriented key-value backend.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Close() error
}
