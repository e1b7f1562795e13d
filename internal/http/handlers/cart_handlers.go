package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/grillaway/internal/shop"
)

func toCartLines(items []shop.LineView) []CartLineResponse {
	lines := make([]CartLineResponse, len(items))
	for i, it := range items {
		lines[i] = CartLineResponse{
			Id:        it.Product.ID,
			Name:      it.Product.Name,
			Price:     it.Product.Price,
			Qty:       it.Qty,
			LineTotal: it.LineTotal,
		}
	}
	return lines
}

func (s *Server) cartResponse() CartResponse {
	items := s.shop.Cart.Items()
	resp := CartResponse{Items: toCartLines(items)}
	for _, it := range items {
		resp.Count += it.Qty
		resp.Total += it.LineTotal
	}
	resp.TotalDisplay = shop.FormatRupiah(resp.Total)
	return resp
}

// GetCartHandler godoc
// @Summary Show the cart
// @Description Lines whose product was deleted are left out of items, count and total
// @Tags cart
// @Produce json
// @Success 200 {object} CartResponse
// @Router /cart [get]
func (s *Server) GetCartHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, s.cartResponse())
}

// AddCartItemHandler godoc
// @Summary Add one unit of a product to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body CartItemRequest true "Product to add"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /cart/items [post]
func (s *Server) AddCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req CartItemRequest
	if err := readJSON(w, r, &req); err != nil || req.Id <= 0 {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	if err := s.shop.Cart.AddListed(r.Context(), req.Id); err != nil {
		s.writeServiceError(w, r, err, "add to cart")
		return
	}
	s.recorder.CartMutation("add")
	_ = writeJSON(w, http.StatusOK, s.cartResponse())
}

// ChangeCartItemQtyHandler godoc
// @Summary Change the quantity of a cart line
// @Description Adds delta to the line quantity. A resulting quantity of zero or less removes the line.
// @Tags cart
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param adjustment body QuantityAdjustmentRequest true "Quantity change"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [patch]
func (s *Server) ChangeCartItemQtyHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	var req QuantityAdjustmentRequest
	if err := readJSON(w, r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}
	if req.Delta == 0 {
		writeErrorJSON(w, http.StatusBadRequest, "delta cannot be zero")
		return
	}

	if err := s.shop.Cart.ChangeQty(r.Context(), id, req.Delta); err != nil {
		s.writeServiceError(w, r, err, "change quantity")
		return
	}
	s.recorder.CartMutation("change")
	_ = writeJSON(w, http.StatusOK, s.cartResponse())
}

// RemoveCartItemHandler godoc
// @Summary Remove a line from the cart
// @Tags cart
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} CartResponse
// @Failure 400 {object} ErrorResponse
// @Router /cart/items/{id} [delete]
func (s *Server) RemoveCartItemHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.shop.Cart.Remove(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "remove from cart")
		return
	}
	s.recorder.CartMutation("remove")
	_ = writeJSON(w, http.StatusOK, s.cartResponse())
}

// ClearCartHandler godoc
// @Summary Empty the cart
// @Tags cart
// @Success 204 "Cart cleared"
// @Failure 500 {object} ErrorResponse
// @Router /cart [delete]
func (s *Server) ClearCartHandler(w http.ResponseWriter, r *http.Request) {
	if err := s.shop.Cart.Clear(r.Context()); err != nil {
		s.writeServiceError(w, r, err, "clear cart")
		return
	}
	s.recorder.CartMutation("clear")
	w.WriteHeader(http.StatusNoContent)
}
