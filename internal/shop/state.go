package shop

import (
	"context"
	"slices"
	"sync"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/storage"
)

const FilterAll = "all"

// State is the single application state shared by every component. The
// components lock mu for the whole of each operation.
type State struct {
	mu sync.Mutex

	Products []models.Product
	Cart     []models.CartLine
	Orders   []models.Order
	Filter   string
}

// LoadState reads the three persisted collections. catalogFound is false when
// no catalog was ever written; Products is then empty and the caller seeds it.
func LoadState(ctx context.Context, store *storage.Adapter) (state *State, catalogFound bool, err error) {
	products, found, err := store.LoadProducts(ctx)
	if err != nil {
		return nil, false, err
	}
	if !found {
		products = []models.Product{}
	}

	cart, err := store.LoadCart(ctx)
	if err != nil {
		return nil, false, err
	}
	orders, err := store.LoadOrders(ctx)
	if err != nil {
		return nil, false, err
	}

	return &State{
		Products: products,
		Cart:     cart,
		Orders:   orders,
		Filter:   FilterAll,
	}, found, nil
}

// findProduct returns the product with id. Callers hold mu.
func (s *State) findProduct(id int) (models.Product, bool) {
	i := slices.IndexFunc(s.Products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return models.Product{}, false
	}
	return s.Products[i], true
}

func cloneOrder(o models.Order) models.Order {
	o.Items = slices.Clone(o.Items)
	return o
}
