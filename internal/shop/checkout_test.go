package shop

import (
	"errors"
	"testing"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckout_ComputeSummary(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 2)) // 170000

	tests := []struct {
		delivery string
		shipping int64
		display  string
	}{
		{delivery: DeliveryInternal, shipping: 20000, display: "Rp 20.000"},
		{delivery: DeliveryOffline, shipping: 0, display: "Rp 0"},
		{delivery: DeliveryExternal, shipping: 0, display: "Estimasi Rp 15rb-25rb"},
		{delivery: "", shipping: 0, display: "Rp 0"},
	}

	for _, tt := range tests {
		t.Run(tt.delivery, func(t *testing.T) {
			s := f.shop.Checkout.ComputeSummary(tt.delivery)
			assert.Equal(t, int64(170000), s.Subtotal)
			assert.Equal(t, tt.shipping, s.Shipping)
			assert.Equal(t, int64(170000)+tt.shipping, s.Total)
			assert.Equal(t, tt.display, s.ShippingDisplay)
			require.Len(t, s.Items, 1)
		})
	}
}

func TestCheckout_ExternalShippingCanBePriced(t *testing.T) {
	f := newFixture(t, func(o *Options) {
		o.Shipping = ShippingPolicy{InternalCost: 20000, ExternalCost: 25000, PriceExternal: true}
	})
	require.NoError(t, f.shop.Cart.Add(f.ctx, 5)) // 20000

	s := f.shop.Checkout.ComputeSummary(DeliveryExternal)
	assert.Equal(t, int64(25000), s.Shipping)
	assert.Equal(t, int64(45000), s.Total)
	assert.Equal(t, "Rp 25.000", s.ShippingDisplay)
}

func TestCheckout_PlaceOrderInternalDelivery(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 2)) // subtotal 170000

	order, err := f.shop.Checkout.PlaceOrder(f.ctx, OrderRequest{Delivery: "internal", Payment: "transfer", Address: "Jl. Merdeka 1"})
	require.NoError(t, err)

	assert.Equal(t, "ORD-10001", order.ID)
	assert.Equal(t, int64(190000), order.Total)
	assert.Equal(t, int64(170000), order.Subtotal)
	assert.Equal(t, int64(20000), order.Shipping)
	assert.Equal(t, models.OrderStatusProcessing, order.Status)
	assert.Equal(t, []models.CartLine{{ProductID: 2, Qty: 1}}, order.Items)
	assert.Equal(t, "transfer", order.Payment)

	assert.Empty(t, f.shop.Cart.Lines(), "cart is cleared after checkout")

	persisted, err := f.adapter().LoadOrders(f.ctx)
	require.NoError(t, err)
	require.Len(t, persisted, 1)
	assert.Equal(t, order, persisted[0])

	cart, err := f.adapter().LoadCart(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, cart)
}

func TestCheckout_OrderSnapshotDoesNotAliasCart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	order, err := f.shop.Checkout.PlaceOrder(f.ctx, OrderRequest{Delivery: "offline", Address: "Ambil di toko"})
	require.NoError(t, err)

	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	order.Items[0].Qty = 50

	stored, err := f.shop.Tracking.FindByID(order.ID)
	require.NoError(t, err)
	assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 2}}, stored.Items)
	assert.Equal(t, int64(240000), stored.Total)
}

func TestCheckout_IncompleteShippingData(t *testing.T) {
	tests := []struct {
		name string
		req  OrderRequest
	}{
		{name: "empty address", req: OrderRequest{Delivery: "internal", Address: ""}},
		{name: "blank address", req: OrderRequest{Delivery: "internal", Address: "   "}},
		{name: "empty delivery", req: OrderRequest{Delivery: "", Address: "Jl. Merdeka 1"}},
		{name: "unknown delivery", req: OrderRequest{Delivery: "drone", Address: "Jl. Merdeka 1"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

			_, err := f.shop.Checkout.PlaceOrder(f.ctx, tt.req)
			require.ErrorIs(t, err, ErrValidation)

			assert.Empty(t, f.shop.Tracking.List())
			assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 1}}, f.shop.Cart.Lines())
			orders, err := f.adapter().LoadOrders(f.ctx)
			require.NoError(t, err)
			assert.Empty(t, orders)
		})
	}
}

func TestCheckout_EmptyAddressMessage(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	_, err := f.shop.Checkout.PlaceOrder(f.ctx, OrderRequest{Delivery: "internal"})
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	assert.Equal(t, "incomplete shipping data", verr.Message)
	assert.Equal(t, []FieldError{{Field: "address", Description: "Address is required"}}, verr.Fields)
}

func TestCheckout_EmptyCart(t *testing.T) {
	f := newFixture(t)

	_, err := f.shop.Checkout.PlaceOrder(f.ctx, OrderRequest{Delivery: "offline", Address: "Jl. Merdeka 1"})
	assert.ErrorIs(t, err, ErrValidation)
	assert.EqualError(t, err, "cart is empty")
}

func TestCheckout_FailedOrderWriteKeepsCart(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	f.store.down = true

	_, err := f.shop.Checkout.PlaceOrder(f.ctx, OrderRequest{Delivery: "offline", Address: "Jl. Merdeka 1"})
	assert.ErrorIs(t, err, errStoreDown)
	assert.Empty(t, f.shop.Tracking.List())
	assert.Len(t, f.shop.Cart.Lines(), 1)
}

func TestRandomOrderID(t *testing.T) {
	for range 200 {
		id := RandomOrderID()
		require.Regexp(t, `^ORD-[1-9][0-9]{4}$`, id)
	}
}
