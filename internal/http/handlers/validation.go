package handlers

import (
	"errors"
	"net/http"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

func (req ProductRequest) fields() shop.ProductFields {
	return shop.ProductFields{
		Name:     req.Name,
		Category: models.Category(req.Category),
		Price:    req.Price,
		Desc:     req.Desc,
	}
}

// writeServiceError maps storefront errors to HTTP: validation failures are
// 400 with the offending fields, lookup misses 404, anything else 500.
func (s *Server) writeServiceError(w http.ResponseWriter, r *http.Request, err error, action string) {
	var verr *shop.ValidationError
	switch {
	case errors.As(err, &verr):
		_ = writeJSON(w, http.StatusBadRequest, ErrorResponse{Error: verr.Message, Fields: verr.Fields})
	case errors.Is(err, shop.ErrNotFound):
		writeErrorJSON(w, http.StatusNotFound, err.Error())
	default:
		s.log.Error("request failed", "action", action, "path", r.URL.Path, "error", err)
		writeErrorJSON(w, http.StatusInternalServerError, "could not "+action)
	}
}
