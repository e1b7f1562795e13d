package handlers

import (
	"net/http"
	"time"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

func toOrderResponse(o models.Order) OrderResponse {
	return OrderResponse{
		Id:           o.ID,
		Items:        o.Items,
		Subtotal:     o.Subtotal,
		Shipping:     o.Shipping,
		Total:        o.Total,
		TotalDisplay: shop.FormatRupiah(o.Total),
		Status:       o.Status,
		Delivery:     o.Delivery,
		Payment:      o.Payment,
		Address:      o.Address,
		CreatedAt:    o.CreatedAt.Format(time.RFC3339),
	}
}

// GetCheckoutSummaryHandler godoc
// @Summary Price the cart for a delivery method
// @Tags checkout
// @Produce json
// @Param delivery query string false "Delivery method (offline|internal|external)"
// @Success 200 {object} SummaryResponse
// @Router /checkout/summary [get]
func (s *Server) GetCheckoutSummaryHandler(w http.ResponseWriter, r *http.Request) {
	summary := s.shop.Checkout.ComputeSummary(r.URL.Query().Get("delivery"))
	_ = writeJSON(w, http.StatusOK, SummaryResponse{
		Items:           toCartLines(summary.Items),
		Delivery:        summary.Delivery,
		Subtotal:        summary.Subtotal,
		SubtotalDisplay: shop.FormatRupiah(summary.Subtotal),
		Shipping:        summary.Shipping,
		ShippingDisplay: summary.ShippingDisplay,
		Total:           summary.Total,
		TotalDisplay:    shop.FormatRupiah(summary.Total),
	})
}

// PlaceOrderHandler godoc
// @Summary Place an order
// @Description Turns the cart into an order with status "Processing" and empties the cart
// @Tags checkout
// @Accept json
// @Produce json
// @Param order body CheckoutRequest true "Shipping data"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /checkout [post]
func (s *Server) PlaceOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJSON(w, r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	order, err := s.shop.Checkout.PlaceOrder(r.Context(), shop.OrderRequest{
		Delivery: req.Delivery,
		Payment:  req.Payment,
		Address:  req.Address,
	})
	if err != nil && order.ID == "" {
		s.writeServiceError(w, r, err, "place order")
		return
	}
	if err != nil {
		// recorded already; the client still gets its order id
		s.log.Warn("order placed with errors", "order_id", order.ID, "error", err)
	}

	s.recorder.OrderPlaced(order)
	_ = writeJSON(w, http.StatusCreated, toOrderResponse(order))
}
