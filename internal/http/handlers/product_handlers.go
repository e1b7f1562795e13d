package handlers

import (
	"net/http"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

func toProductResponse(p models.Product) ProductResponse {
	return ProductResponse{
		Id:            p.ID,
		Name:          p.Name,
		Category:      string(p.Category),
		CategoryLabel: p.Category.Label(),
		Price:         p.Price,
		PriceDisplay:  shop.FormatRupiah(p.Price),
		Desc:          p.Desc,
	}
}

// GetProductsHandler godoc
// @Summary List products
// @Description Lists the catalog under the active category filter. Passing a category also makes it the active filter.
// @Tags products
// @Produce json
// @Param category query string false "Category filter (all|meat|tool|addon)"
// @Success 200 {object} ProductsSearchResult
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (s *Server) GetProductsHandler(w http.ResponseWriter, r *http.Request) {
	if category := r.URL.Query().Get("category"); category != "" {
		if err := s.shop.Catalog.SetFilter(category); err != nil {
			s.writeServiceError(w, r, err, "filter products")
			return
		}
	}

	products, err := s.shop.Catalog.Visible()
	if err != nil {
		s.writeServiceError(w, r, err, "fetch products")
		return
	}

	response := make([]ProductResponse, len(products))
	for i, p := range products {
		response[i] = toProductResponse(p)
	}
	_ = writeJSON(w, http.StatusOK, ProductsSearchResult{
		Data:   response,
		Filter: s.shop.Catalog.Filter(),
		Meta:   Meta{TotalCount: len(response)},
	})
}

// GetProductByIDHandler godoc
// @Summary Get product by ID
// @Tags products
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (s *Server) GetProductByIDHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := s.shop.Catalog.Get(id)
	if err != nil {
		s.writeServiceError(w, r, err, "fetch product")
		return
	}
	_ = writeJSON(w, http.StatusOK, toProductResponse(product))
}

// GetFilterHandler godoc
// @Summary Active category filter
// @Tags products
// @Produce json
// @Success 200 {object} FilterResponse
// @Router /filter [get]
func (s *Server) GetFilterHandler(w http.ResponseWriter, r *http.Request) {
	_ = writeJSON(w, http.StatusOK, FilterResponse{Category: s.shop.Catalog.Filter()})
}

// SetFilterHandler godoc
// @Summary Change the category filter
// @Tags products
// @Accept json
// @Produce json
// @Param filter body FilterRequest true "Category (all|meat|tool|addon)"
// @Success 200 {object} FilterResponse
// @Failure 400 {object} ErrorResponse
// @Router /filter [put]
func (s *Server) SetFilterHandler(w http.ResponseWriter, r *http.Request) {
	var req FilterRequest
	if err := readJSON(w, r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}
	if err := s.shop.Catalog.SetFilter(req.Category); err != nil {
		s.writeServiceError(w, r, err, "set filter")
		return
	}
	_ = writeJSON(w, http.StatusOK, FilterResponse{Category: req.Category})
}

// CreateProductHandler godoc
// @Summary Create a new product
// @Description Adds a product to the catalog with id max(existing)+1
// @Tags admin
// @Accept json
// @Produce json
// @Param product body ProductRequest true "Product to add"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/products [post]
func (s *Server) CreateProductHandler(w http.ResponseWriter, r *http.Request) {
	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	created, err := s.shop.Catalog.Create(r.Context(), req.fields())
	if err != nil {
		s.writeServiceError(w, r, err, "create product")
		return
	}
	_ = writeJSON(w, http.StatusCreated, toProductResponse(created))
}

// UpdateProductHandler godoc
// @Summary Update a product
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param product body ProductRequest true "Updated product"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/products/{id} [put]
func (s *Server) UpdateProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	var req ProductRequest
	if err := readJSON(w, r, &req); err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "invalid input")
		return
	}

	updated, err := s.shop.Catalog.Update(r.Context(), id, req.fields())
	if err != nil {
		s.writeServiceError(w, r, err, "update product")
		return
	}
	_ = writeJSON(w, http.StatusOK, toProductResponse(updated))
}

// DeleteProductHandler godoc
// @Summary Delete a product
// @Description Cart lines pointing at the product stay in the cart but no longer count
// @Tags admin
// @Param id path int true "Product ID"
// @Success 204 "Deleted successfully"
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /admin/products/{id} [delete]
func (s *Server) DeleteProductHandler(w http.ResponseWriter, r *http.Request) {
	id, err := productIDParam(r)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := s.shop.Catalog.Delete(r.Context(), id); err != nil {
		s.writeServiceError(w, r, err, "delete product")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
