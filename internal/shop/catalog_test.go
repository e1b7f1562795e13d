package shop

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_SeedsEmptyStorage(t *testing.T) {
	f := newFixture(t)

	products, err := f.shop.Catalog.List(FilterAll)
	require.NoError(t, err)
	require.Len(t, products, 5)
	assert.Equal(t, SeedProducts(), products)

	persisted, found, err := f.adapter().LoadProducts(f.ctx)
	require.NoError(t, err)
	assert.True(t, found)
	assert.Equal(t, products, persisted)
}

func TestNew_SeedLogTaggedWithComponent(t *testing.T) {
	var buf bytes.Buffer
	f := newFixture(t, func(o *Options) {
		o.Logger = logger.New(logger.Config{Level: "info", Format: "json", Output: &buf})
	})
	require.NotNil(t, f.shop)

	var seeded map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		var record map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &record))
		if record["msg"] == "catalog seeded" {
			seeded = record
		}
	}
	require.NotNil(t, seeded, "expected a catalog seeded record in %s", buf.String())
	assert.Equal(t, "catalog", seeded["component"])
}

func TestNew_KeepsPersistedCatalog(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Catalog.Delete(f.ctx, 1))

	reopened, err := New(f.ctx, f.adapter(), Options{})
	require.NoError(t, err)

	products, err := reopened.Catalog.List(FilterAll)
	require.NoError(t, err)
	assert.Len(t, products, 4)
}

func TestCatalog_ListFilter(t *testing.T) {
	f := newFixture(t)

	tests := []struct {
		filter string
		ids    []int
	}{
		{filter: "all", ids: []int{1, 2, 3, 4, 5}},
		{filter: "meat", ids: []int{1, 2, 3}},
		{filter: "tool", ids: []int{4}},
		{filter: "addon", ids: []int{5}},
	}

	for _, tt := range tests {
		t.Run(tt.filter, func(t *testing.T) {
			products, err := f.shop.Catalog.List(tt.filter)
			require.NoError(t, err)

			ids := make([]int, len(products))
			for i, p := range products {
				ids[i] = p.ID
			}
			assert.Equal(t, tt.ids, ids)
		})
	}

	_, err := f.shop.Catalog.List("drinks")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCatalog_FilterState(t *testing.T) {
	f := newFixture(t)
	assert.Equal(t, FilterAll, f.shop.Catalog.Filter())

	require.NoError(t, f.shop.Catalog.SetFilter("tool"))
	visible, err := f.shop.Catalog.Visible()
	require.NoError(t, err)
	require.Len(t, visible, 1)
	assert.Equal(t, "Paket Grill Gear", visible[0].Name)

	assert.ErrorIs(t, f.shop.Catalog.SetFilter("bogus"), ErrValidation)
	assert.Equal(t, "tool", f.shop.Catalog.Filter())
}

func TestCatalog_CreateAssignsNextID(t *testing.T) {
	f := newFixture(t)

	created, err := f.shop.Catalog.Create(f.ctx, ProductFields{Name: "Sosis Bakar", Category: models.CategoryAddon, Price: 15000, Desc: "Sosis jumbo"})
	require.NoError(t, err)
	assert.Equal(t, 6, created.ID)

	require.NoError(t, f.shop.Catalog.Delete(f.ctx, 2))
	created, err = f.shop.Catalog.Create(f.ctx, ProductFields{Name: "Arang", Category: models.CategoryTool, Price: 10000})
	require.NoError(t, err)
	assert.Equal(t, 7, created.ID, "ids continue from the max, not the count")

	products, found, err := f.adapter().LoadProducts(f.ctx)
	require.NoError(t, err)
	require.True(t, found)
	assert.Equal(t, 7, products[len(products)-1].ID)
}

func TestCatalog_CreateInEmptyCatalogStartsAtOne(t *testing.T) {
	f := newFixture(t)
	for _, p := range SeedProducts() {
		require.NoError(t, f.shop.Catalog.Delete(f.ctx, p.ID))
	}

	created, err := f.shop.Catalog.Create(f.ctx, ProductFields{Name: "Paket Baru", Category: models.CategoryMeat, Price: 100000})
	require.NoError(t, err)
	assert.Equal(t, 1, created.ID)
}

func TestCatalog_CreateRejectsInvalidFields(t *testing.T) {
	f := newFixture(t)

	_, err := f.shop.Catalog.Create(f.ctx, ProductFields{Name: "  ", Category: "drinks", Price: -1})
	require.ErrorIs(t, err, ErrValidation)

	var verr *ValidationError
	require.ErrorAs(t, err, &verr)
	fields := []string{}
	for _, fe := range verr.Fields {
		fields = append(fields, fe.Field)
	}
	assert.ElementsMatch(t, []string{"name", "category", "price"}, fields)

	products, _ := f.shop.Catalog.List(FilterAll)
	assert.Len(t, products, 5)
}

func TestCatalog_UpdateInPlace(t *testing.T) {
	f := newFixture(t)

	updated, err := f.shop.Catalog.Update(f.ctx, 3, ProductFields{Name: "Paket Sultan", Category: models.CategoryMeat, Price: 300000, Desc: "1kg wagyu"})
	require.NoError(t, err)
	assert.Equal(t, 3, updated.ID)

	products, _ := f.shop.Catalog.List(FilterAll)
	assert.Equal(t, "Paket Sultan", products[2].Name, "position in storage order is kept")
	assert.Equal(t, int64(300000), products[2].Price)
}

func TestCatalog_UnknownIDLeavesCatalogUntouched(t *testing.T) {
	f := newFixture(t)
	before, _ := f.shop.Catalog.List(FilterAll)

	_, err := f.shop.Catalog.Update(f.ctx, 99, ProductFields{Name: "Ghost", Category: models.CategoryMeat})
	assert.ErrorIs(t, err, ErrProductNotFound)

	err = f.shop.Catalog.Delete(f.ctx, 99)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrOrderNotFound)

	after, _ := f.shop.Catalog.List(FilterAll)
	assert.Equal(t, before, after)
}

func TestCatalog_FailedWriteKeepsState(t *testing.T) {
	f := newFixture(t)
	f.store.down = true

	_, err := f.shop.Catalog.Create(f.ctx, ProductFields{Name: "Arang", Category: models.CategoryTool, Price: 10000})
	assert.ErrorIs(t, err, errStoreDown)
	assert.ErrorIs(t, f.shop.Catalog.Delete(f.ctx, 1), errStoreDown)

	products, _ := f.shop.Catalog.List(FilterAll)
	assert.Equal(t, SeedProducts(), products)
}

func TestCatalog_GetAndFindByName(t *testing.T) {
	f := newFixture(t)

	p, err := f.shop.Catalog.Get(4)
	require.NoError(t, err)
	assert.Equal(t, "Paket Grill Gear", p.Name)

	_, err = f.shop.Catalog.Get(42)
	assert.ErrorIs(t, err, ErrProductNotFound)
	assert.EqualError(t, err, "product 42 not found")

	p, ok := f.shop.Catalog.FindByName("bakso 350 GR")
	assert.True(t, ok)
	assert.Equal(t, 5, p.ID)
}

func TestCatalog_SeedResetsProducts(t *testing.T) {
	f := newFixture(t)
	require.NoError(t, f.shop.Catalog.Delete(f.ctx, 1))

	require.NoError(t, f.shop.Catalog.Seed(f.ctx))
	products, _ := f.shop.Catalog.List(FilterAll)
	assert.Equal(t, SeedProducts(), products)
}
