package handlers

import (
	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

type ProductRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
	Price    int64  `json:"price"`
	Desc     string `json:"desc"`
}

type ProductResponse struct {
	Id            int    `json:"id"`
	Name          string `json:"name"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label"`
	Price         int64  `json:"price"`
	PriceDisplay  string `json:"price_display"`
	Desc          string `json:"desc"`
}

type ProductsSearchResult struct {
	Data   []ProductResponse `json:"data"`
	Filter string            `json:"filter"`
	Meta   Meta              `json:"meta"`
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type FilterRequest struct {
	Category string `json:"category"`
}

type FilterResponse struct {
	Category string `json:"category"`
}

type CartItemRequest struct {
	Id int `json:"id"`
}

type QuantityAdjustmentRequest struct {
	Delta int `json:"delta"` // can be positive or negative
}

type CartLineResponse struct {
	Id        int    `json:"id"`
	Name      string `json:"name"`
	Price     int64  `json:"price"`
	Qty       int    `json:"qty"`
	LineTotal int64  `json:"line_total"`
}

type CartResponse struct {
	Items        []CartLineResponse `json:"items"`
	Count        int                `json:"count"`
	Total        int64              `json:"total"`
	TotalDisplay string             `json:"total_display"`
}

type CheckoutRequest struct {
	Delivery string `json:"delivery"`
	Payment  string `json:"payment"`
	Address  string `json:"address"`
}

type SummaryResponse struct {
	Items           []CartLineResponse `json:"items"`
	Delivery        string             `json:"delivery"`
	Subtotal        int64              `json:"subtotal"`
	SubtotalDisplay string             `json:"subtotal_display"`
	Shipping        int64              `json:"shipping"`
	ShippingDisplay string             `json:"shipping_display"`
	Total           int64              `json:"total"`
	TotalDisplay    string             `json:"total_display"`
}

type OrderResponse struct {
	Id           string            `json:"id"`
	Items        []models.CartLine `json:"items"`
	Subtotal     int64             `json:"subtotal"`
	Shipping     int64             `json:"shipping"`
	Total        int64             `json:"total"`
	TotalDisplay string            `json:"total_display"`
	Status       string            `json:"status"`
	Delivery     string            `json:"delivery"`
	Payment      string            `json:"payment,omitempty"`
	Address      string            `json:"address"`
	CreatedAt    string            `json:"created_at"`
}

type OrdersSearchResult struct {
	Data []OrderResponse `json:"data"`
	Meta Meta            `json:"meta"`
}

type ErrorResponse struct {
	Error  string            `json:"error"`
	Fields []shop.FieldError `json:"fields,omitempty"`
}

type ImportProductsResult struct {
	ImportedProductsCount int               `json:"imported"`
	Errors                []shop.FieldError `json:"errors"`
}

type HealthResponse struct {
	Status string `json:"status"`
}
