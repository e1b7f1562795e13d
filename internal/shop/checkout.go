package shop

import (
	"context"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"slices"
	"strings"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/storage"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
)

// Summary is the priced view of the cart for one delivery method.
type Summary struct {
	Items           []LineView `json:"items"`
	Delivery        string     `json:"delivery"`
	Subtotal        int64      `json:"subtotal"`
	Shipping        int64      `json:"shipping"`
	ShippingDisplay string     `json:"shipping_display"`
	Total           int64      `json:"total"`
}

// OrderRequest carries the checkout form.
type OrderRequest struct {
	Delivery string
	Payment  string
	Address  string
}

// RandomOrderID returns "ORD-" followed by five random digits. Collisions are
// not checked.
func RandomOrderID() string {
	return fmt.Sprintf("ORD-%d", 10000+rand.IntN(90000))
}

type Checkout struct {
	state    *State
	cart     *Cart
	store    *storage.Adapter
	shipping ShippingPolicy
	newID    func() string
	now      func() time.Time
	log      *slog.Logger
}

func NewCheckout(state *State, cart *Cart, store *storage.Adapter, shipping ShippingPolicy, log *slog.Logger) *Checkout {
	return &Checkout{
		state:    state,
		cart:     cart,
		store:    store,
		shipping: shipping,
		newID:    RandomOrderID,
		now:      time.Now,
		log:      logger.WithComponent(log, "checkout"),
	}
}

// ComputeSummary prices the current cart for deliveryMethod.
func (c *Checkout) ComputeSummary(deliveryMethod string) Summary {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.summary(deliveryMethod)
}

func (c *Checkout) summary(deliveryMethod string) Summary {
	items := c.cart.items()
	var subtotal int64
	for _, v := range items {
		subtotal += v.LineTotal
	}
	shipping := c.shipping.Cost(deliveryMethod)
	return Summary{
		Items:           items,
		Delivery:        deliveryMethod,
		Subtotal:        subtotal,
		Shipping:        shipping,
		ShippingDisplay: c.shipping.Display(deliveryMethod),
		Total:           subtotal + shipping,
	}
}

// PlaceOrder turns the cart into an order with status "Processing", persists
// the order history and empties the cart. Invalid requests change nothing.
func (c *Checkout) PlaceOrder(ctx context.Context, req OrderRequest) (models.Order, error) {
	req.Delivery = strings.TrimSpace(req.Delivery)
	req.Address = strings.TrimSpace(req.Address)
	req.Payment = strings.TrimSpace(req.Payment)

	if err := validateOrderRequest(req); err != nil {
		return models.Order{}, err
	}

	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	if len(c.state.Cart) == 0 {
		return models.Order{}, &ValidationError{Message: "cart is empty"}
	}

	summary := c.summary(req.Delivery)
	order := models.Order{
		ID:        c.newID(),
		Items:     slices.Clone(c.state.Cart),
		Subtotal:  summary.Subtotal,
		Shipping:  summary.Shipping,
		Total:     summary.Total,
		Status:    models.OrderStatusProcessing,
		Delivery:  req.Delivery,
		Payment:   req.Payment,
		Address:   req.Address,
		CreatedAt: c.now().UTC(),
	}

	orders := append(slices.Clone(c.state.Orders), order)
	if err := c.store.SaveOrders(ctx, orders); err != nil {
		return models.Order{}, err
	}
	c.state.Orders = orders

	if err := c.cart.clear(ctx); err != nil {
		// the order is recorded; only the cart reset failed
		c.log.Error("failed to clear cart after checkout", "order_id", order.ID, "error", err)
		return cloneOrder(order), fmt.Errorf("order %s placed but cart not cleared: %w", order.ID, err)
	}

	c.log.Info("order placed", "order_id", order.ID, "total", order.Total, "delivery", order.Delivery)
	return cloneOrder(order), nil
}

func validateOrderRequest(req OrderRequest) error {
	var fields []FieldError
	if req.Delivery == "" {
		fields = append(fields, FieldError{Field: "delivery", Description: "Delivery method is required"})
	}
	if req.Address == "" {
		fields = append(fields, FieldError{Field: "address", Description: "Address is required"})
	}
	if len(fields) > 0 {
		return &ValidationError{Message: "incomplete shipping data", Fields: fields}
	}
	if !validDelivery(req.Delivery) {
		return &ValidationError{
			Message: "unknown delivery method",
			Fields:  []FieldError{{Field: "delivery", Description: "Delivery must be offline, internal or external"}},
		}
	}
	return nil
}
