package shop

import (
	"context"
	"slices"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/storage"
)

// LineView is a cart line resolved against the catalog.
type LineView struct {
	Product   models.Product `json:"product"`
	Qty       int            `json:"qty"`
	LineTotal int64          `json:"line_total"`
}

// Cart owns the cart lines. Lines whose product has been deleted are kept but
// skipped by every computation.
type Cart struct {
	state *State
	store *storage.Adapter
}

func NewCart(state *State, store *storage.Adapter) *Cart {
	return &Cart{state: state, store: store}
}

// Add puts one more unit of productID in the cart.
func (c *Cart) Add(ctx context.Context, productID int) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.add(ctx, productID)
}

// AddListed is Add for a product that must be in the catalog. The lookup and
// the write happen under one lock.
func (c *Cart) AddListed(ctx context.Context, productID int) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	if _, ok := c.state.findProduct(productID); !ok {
		return productNotFound(productID)
	}
	return c.add(ctx, productID)
}

func (c *Cart) add(ctx context.Context, productID int) error {
	next := slices.Clone(c.state.Cart)
	if i := indexLine(next, productID); i >= 0 {
		next[i].Qty++
	} else {
		next = append(next, models.CartLine{ProductID: productID, Qty: 1})
	}
	return c.save(ctx, next)
}

// ChangeQty adds delta to a line's quantity and drops the line once it falls
// to zero or below. A missing line is a no-op.
func (c *Cart) ChangeQty(ctx context.Context, productID, delta int) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	i := indexLine(c.state.Cart, productID)
	if i < 0 {
		return nil
	}

	next := slices.Clone(c.state.Cart)
	if qty := next[i].Qty + delta; qty <= 0 {
		next = slices.Delete(next, i, i+1)
	} else {
		next[i].Qty = qty
	}
	return c.save(ctx, next)
}

// Remove drops the line for productID, if any, and persists the cart.
func (c *Cart) Remove(ctx context.Context, productID int) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	next := slices.DeleteFunc(slices.Clone(c.state.Cart), func(l models.CartLine) bool {
		return l.ProductID == productID
	})
	return c.save(ctx, next)
}

func (c *Cart) Clear(ctx context.Context) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.clear(ctx)
}

func (c *Cart) clear(ctx context.Context) error {
	return c.save(ctx, []models.CartLine{})
}

// Total is the sum of price × qty over lines whose product still exists.
func (c *Cart) Total() int64 {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.total()
}

func (c *Cart) total() int64 {
	var total int64
	for _, v := range c.items() {
		total += v.LineTotal
	}
	return total
}

// Lines returns a copy of the raw cart lines, dangling ones included.
func (c *Cart) Lines() []models.CartLine {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return slices.Clone(c.state.Cart)
}

// Items returns the resolvable lines joined with their products.
func (c *Cart) Items() []LineView {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.items()
}

func (c *Cart) items() []LineView {
	views := []LineView{}
	for _, l := range c.state.Cart {
		p, ok := c.state.findProduct(l.ProductID)
		if !ok {
			continue
		}
		views = append(views, LineView{Product: p, Qty: l.Qty, LineTotal: p.Price * int64(l.Qty)})
	}
	return views
}

// Count is the number of units across resolvable lines.
func (c *Cart) Count() int {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	count := 0
	for _, v := range c.items() {
		count += v.Qty
	}
	return count
}

// save persists lines and commits them to the state. Callers hold mu.
func (c *Cart) save(ctx context.Context, lines []models.CartLine) error {
	if err := c.store.SaveCart(ctx, lines); err != nil {
		return err
	}
	c.state.Cart = lines
	return nil
}

func indexLine(lines []models.CartLine, productID int) int {
	return slices.IndexFunc(lines, func(l models.CartLine) bool { return l.ProductID == productID })
}
