package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rogerio-castellano/grillaway/internal/models"
)

// Adapter reads and writes the typed collections on top of a Store.
type Adapter struct {
	store  Store
	prefix string
}

// NewAdapter wraps store. prefix is prepended to every collection key.
func NewAdapter(store Store, prefix string) *Adapter {
	return &Adapter{store: store, prefix: prefix}
}

// LoadProducts returns the persisted catalog. found is false when the catalog
// was never saved, which tells the caller to seed it.
func (a *Adapter) LoadProducts(ctx context.Context) (products []models.Product, found bool, err error) {
	return load[models.Product](ctx, a, KeyCatalog)
}

func (a *Adapter) SaveProducts(ctx context.Context, products []models.Product) error {
	return save(ctx, a, KeyCatalog, products)
}

func (a *Adapter) LoadCart(ctx context.Context) ([]models.CartLine, error) {
	lines, _, err := load[models.CartLine](ctx, a, KeyCart)
	return lines, err
}

func (a *Adapter) SaveCart(ctx context.Context, lines []models.CartLine) error {
	return save(ctx, a, KeyCart, lines)
}

func (a *Adapter) LoadOrders(ctx context.Context) ([]models.Order, error) {
	orders, _, err := load[models.Order](ctx, a, KeyOrders)
	return orders, err
}

func (a *Adapter) SaveOrders(ctx context.Context, orders []models.Order) error {
	return save(ctx, a, KeyOrders, orders)
}

// Key returns the backend key used for a collection.
func (a *Adapter) Key(collection string) string {
	return a.prefix + collection
}

func load[T any](ctx context.Context, a *Adapter, collection string) ([]T, bool, error) {
	data, err := a.store.Get(ctx, a.Key(collection))
	if errors.Is(err, ErrKeyNotFound) {
		return []T{}, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read %s: %w", collection, err)
	}

	items := []T{}
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, false, fmt.Errorf("failed to decode %s: %w", collection, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, true, nil
}

func save[T any](ctx context.Context, a *Adapter, collection string, items []T) error {
	if items == nil {
		items = []T{}
	}
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", collection, err)
	}
	if err := a.store.Set(ctx, a.Key(collection), data); err != nil {
		return fmt.Errorf("failed to write %s: %w", collection, err)
	}
	return nil
}
