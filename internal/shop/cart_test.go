package shop

import (
	"testing"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_RepeatedAddIsAdditive(t *testing.T) {
	for _, n := range []int{1, 2, 5, 17} {
		f := newFixture(t)
		for range n {
			require.NoError(t, f.shop.Cart.Add(f.ctx, 2))
		}
		assert.Equal(t, []models.CartLine{{ProductID: 2, Qty: n}}, f.shop.Cart.Lines())
	}
}

func TestCart_AddTwiceScenario(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 2}}, f.shop.Cart.Lines())
	assert.Equal(t, int64(240000), f.shop.Cart.Total())

	persisted, err := f.adapter().LoadCart(f.ctx)
	require.NoError(t, err)
	assert.Equal(t, f.shop.Cart.Lines(), persisted)
}

func TestCart_AddKeepsInsertionOrder(t *testing.T) {
	f := newFixture(t)
	for _, id := range []int{3, 1, 3, 5} {
		require.NoError(t, f.shop.Cart.Add(f.ctx, id))
	}
	assert.Equal(t, []models.CartLine{
		{ProductID: 3, Qty: 2},
		{ProductID: 1, Qty: 1},
		{ProductID: 5, Qty: 1},
	}, f.shop.Cart.Lines())
}

func TestCart_ChangeQty(t *testing.T) {
	tests := []struct {
		name  string
		delta int
		want  []models.CartLine
	}{
		{name: "increment", delta: 1, want: []models.CartLine{{ProductID: 1, Qty: 3}}},
		{name: "decrement", delta: -1, want: []models.CartLine{{ProductID: 1, Qty: 1}}},
		{name: "down to zero removes", delta: -2, want: []models.CartLine{}},
		{name: "below zero removes", delta: -5, want: []models.CartLine{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
			require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

			require.NoError(t, f.shop.Cart.ChangeQty(f.ctx, 1, tt.delta))
			assert.Equal(t, tt.want, f.shop.Cart.Lines())

			for _, l := range f.shop.Cart.Lines() {
				assert.Positive(t, l.Qty)
			}
			persisted, err := f.adapter().LoadCart(f.ctx)
			require.NoError(t, err)
			assert.Equal(t, tt.want, persisted)
		})
	}
}

func TestCart_ChangeQtyMissingLineIsNoop(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	require.NoError(t, f.shop.Cart.ChangeQty(f.ctx, 4, 3))
	assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 1}}, f.shop.Cart.Lines())
}

func TestCart_Remove(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	require.NoError(t, f.shop.Cart.Add(f.ctx, 4))
	require.NoError(t, f.shop.Cart.Add(f.ctx, 4))

	require.NoError(t, f.shop.Cart.Remove(f.ctx, 4))
	assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 1}}, f.shop.Cart.Lines())

	require.NoError(t, f.shop.Cart.Remove(f.ctx, 99))
	assert.Len(t, f.shop.Cart.Lines(), 1)
}

func TestCart_TotalSkipsDeletedProducts(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1)) // 120000
	require.NoError(t, f.shop.Cart.Add(f.ctx, 4)) // 65000
	require.NoError(t, f.shop.Cart.Add(f.ctx, 4))
	assert.Equal(t, int64(250000), f.shop.Cart.Total())
	assert.Equal(t, 3, f.shop.Cart.Count())

	require.NoError(t, f.shop.Catalog.Delete(f.ctx, 4))

	assert.Equal(t, int64(120000), f.shop.Cart.Total())
	assert.Equal(t, 1, f.shop.Cart.Count())
	assert.Len(t, f.shop.Cart.Lines(), 2, "dangling lines stay in the cart")

	items := f.shop.Cart.Items()
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Product.ID)
	assert.Equal(t, int64(120000), items[0].LineTotal)
}

func TestCart_Clear(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	require.NoError(t, f.shop.Cart.Clear(f.ctx))
	assert.Empty(t, f.shop.Cart.Lines())
	assert.Zero(t, f.shop.Cart.Total())

	persisted, err := f.adapter().LoadCart(f.ctx)
	require.NoError(t, err)
	assert.Empty(t, persisted)
}

func TestCart_LinesIsACopy(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))

	lines := f.shop.Cart.Lines()
	lines[0].Qty = 99
	assert.Equal(t, 1, f.shop.Cart.Lines()[0].Qty)
}

func TestCart_FailedWriteKeepsState(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Cart.Add(f.ctx, 1))
	f.store.down = true

	assert.ErrorIs(t, f.shop.Cart.Add(f.ctx, 1), errStoreDown)
	assert.ErrorIs(t, f.shop.Cart.ChangeQty(f.ctx, 1, -1), errStoreDown)
	assert.Equal(t, []models.CartLine{{ProductID: 1, Qty: 1}}, f.shop.Cart.Lines())
}

func TestCart_AddListed(t *testing.T) {
	f := newFixture(t)

	require.NoError(t, f.shop.Cart.AddListed(f.ctx, 4))
	require.NoError(t, f.shop.Cart.AddListed(f.ctx, 4))
	assert.Equal(t, []models.CartLine{{ProductID: 4, Qty: 2}}, f.shop.Cart.Lines())

	require.NoError(t, f.shop.Catalog.Delete(f.ctx, 5))
	err := f.shop.Cart.AddListed(f.ctx, 5)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "product 5 not found")
	assert.Equal(t, []models.CartLine{{ProductID: 4, Qty: 2}}, f.shop.Cart.Lines(), "a miss writes nothing")
}
