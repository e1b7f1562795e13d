package metrics

import (
	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

type MostOrderedProduct struct {
	Name     string `json:"name"`
	Quantity int    `json:"quantity"`
}

type Dashboard struct {
	TotalProducts      int                `json:"total_products"`
	ProductsByCategory map[string]int     `json:"products_by_category"`
	CartLines          int                `json:"cart_lines"`
	CartItems          int                `json:"cart_items"`
	CartTotal          int64              `json:"cart_total"`
	TotalOrders        int                `json:"total_orders"`
	Revenue            int64              `json:"revenue"`
	MostOrderedProduct MostOrderedProduct `json:"most_ordered_product"`
}

type DashboardRepository interface {
	GetDashboardMetrics() (Dashboard, error)
}

// ShopDashboardRepository computes the dashboard from the live shop state.
type ShopDashboardRepository struct {
	shop *shop.Shop
}

func NewShopDashboardRepository(s *shop.Shop) *ShopDashboardRepository {
	return &ShopDashboardRepository{shop: s}
}

// GetDashboardMetrics implements DashboardRepository.
func (r *ShopDashboardRepository) GetDashboardMetrics() (Dashboard, error) {
	m := Dashboard{ProductsByCategory: map[string]int{}}

	products, err := r.shop.Catalog.List(shop.FilterAll)
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)
	for _, c := range models.Categories {
		m.ProductsByCategory[string(c)] = 0
	}
	for _, p := range products {
		m.ProductsByCategory[string(p.Category)]++
	}

	items := r.shop.Cart.Items()
	m.CartLines = len(items)
	for _, it := range items {
		m.CartItems += it.Qty
		m.CartTotal += it.LineTotal
	}

	orders := r.shop.Tracking.List()
	m.TotalOrders = len(orders)
	ordered := map[int]int{}
	for _, o := range orders {
		m.Revenue += o.Total
		for _, l := range o.Items {
			ordered[l.ProductID] += l.Qty
		}
	}

	// ties go to the product listed first in the catalog
	for _, p := range products {
		if q := ordered[p.ID]; q > m.MostOrderedProduct.Quantity {
			m.MostOrderedProduct = MostOrderedProduct{Name: p.Name, Quantity: q}
		}
	}

	return m, nil
}
