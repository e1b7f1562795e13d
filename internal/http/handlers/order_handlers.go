package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// GetOrdersHandler godoc
// @Summary List orders
// @Tags orders
// @Produce json
// @Success 200 {object} OrdersSearchResult
// @Router /orders [get]
func (s *Server) GetOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders := s.shop.Tracking.List()
	response := make([]OrderResponse, len(orders))
	for i, o := range orders {
		response[i] = toOrderResponse(o)
	}
	_ = writeJSON(w, http.StatusOK, OrdersSearchResult{Data: response, Meta: Meta{TotalCount: len(response)}})
}

// TrackOrderHandler godoc
// @Summary Track an order
// @Description Exact, case-sensitive match on the order id
// @Tags orders
// @Produce json
// @Param id path string true "Order ID, e.g. ORD-12345"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (s *Server) TrackOrderHandler(w http.ResponseWriter, r *http.Request) {
	order, err := s.shop.Tracking.FindByID(chi.URLParam(r, "id"))
	if err != nil {
		s.writeServiceError(w, r, err, "track order")
		return
	}
	_ = writeJSON(w, http.StatusOK, toOrderResponse(order))
}
