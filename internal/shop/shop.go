// Package shop implements the storefront: catalog, cart, checkout and order
// tracking over one shared State persisted through a storage.Adapter.
package shop

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/storage"
)

type Options struct {
	Shipping ShippingPolicy
	Logger   *slog.Logger
	// OrderID and Now default to RandomOrderID and time.Now.
	OrderID func() string
	Now     func() time.Time
}

// Shop wires the components around a single State.
type Shop struct {
	State    *State
	Catalog  *Catalog
	Cart     *Cart
	Checkout *Checkout
	Tracking *Tracking
}

// New loads the persisted state (seeding the catalog on first run) and builds
// the components.
func New(ctx context.Context, store *storage.Adapter, opts Options) (*Shop, error) {
	log := opts.Logger
	if log == nil {
		log = slog.Default()
	}

	state, catalogFound, err := LoadState(ctx, store)
	if err != nil {
		return nil, err
	}

	shipping := opts.Shipping
	if shipping == (ShippingPolicy{}) {
		shipping = DefaultShippingPolicy()
	}

	cart := NewCart(state, store)
	checkout := NewCheckout(state, cart, store, shipping, log)
	if opts.OrderID != nil {
		checkout.newID = opts.OrderID
	}
	if opts.Now != nil {
		checkout.now = opts.Now
	}

	catalog := NewCatalog(state, store, log)
	if !catalogFound {
		if err := catalog.Seed(ctx); err != nil {
			return nil, fmt.Errorf("seed catalog: %w", err)
		}
	}

	return &Shop{
		State:    state,
		Catalog:  catalog,
		Cart:     cart,
		Checkout: checkout,
		Tracking: NewTracking(state),
	}, nil
}
