package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/shop"
)

type csvRow struct {
	Line     int
	Name     string
	Category string
	Price    int64
	Desc     string
	readErr  error
	priceErr error
}

// parseCSV reads the header strictly and every other row leniently: a row that
// cannot be read is returned with readErr set so the caller can report it and
// move on. Missing trailing columns read as empty.
func parseCSV(file io.Reader) ([]csvRow, error) {
	reader := csv.NewReader(file)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1
	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	index := map[string]int{}
	for i, h := range headers {
		index[strings.ToLower(strings.TrimSpace(h))] = i
	}
	for _, required := range []string{"name", "category", "price"} {
		if _, ok := index[required]; !ok {
			return nil, fmt.Errorf("CSV header is missing %q", required)
		}
	}

	column := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	var rows []csvRow
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if !errors.As(err, &perr) {
				return nil, fmt.Errorf("CSV read error: %v", err)
			}
			rows = append(rows, csvRow{Line: perr.StartLine, readErr: perr.Err})
			continue
		}

		line, _ := reader.FieldPos(0)
		price, perr := strconv.ParseInt(column(record, "price"), 10, 64)
		rows = append(rows, csvRow{
			Line:     line,
			Name:     column(record, "name"),
			Category: strings.ToLower(column(record, "category")),
			Price:    price,
			Desc:     column(record, "desc"),
			priceErr: perr,
		})
	}
	return rows, nil
}

// validateRow returns the offending column and the reason a row is rejected.
func validateRow(r csvRow) (string, error) {
	if r.readErr != nil {
		return "", fmt.Errorf("unreadable row: %v", r.readErr)
	}
	errs := shop.ValidateProduct(r.fields())
	if len(errs) > 0 {
		return errs[0].Field, errors.New(strings.ToLower(errs[0].Description))
	}
	if r.priceErr != nil {
		return "price", errors.New("invalid price")
	}
	return "", nil
}

func (r csvRow) fields() shop.ProductFields {
	return shop.ProductFields{Name: r.Name, Category: models.Category(r.Category), Price: r.Price, Desc: r.Desc}
}

// ImportProductsHandler godoc
// @Summary Import products via CSV
// @Description CSV columns: name, category, price, desc. Existing names are skipped or updated depending on mode.
// @Tags admin
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportProductsResult
// @Failure 400 {object} ErrorResponse
// @Router /admin/products/import [post]
func (s *Server) ImportProductsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, "missing file")
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		writeErrorJSON(w, http.StatusBadRequest, err.Error())
		return
	}

	imported := 0
	errorsList := []shop.FieldError{}
	rowError := func(row csvRow, field, format string, args ...any) {
		errorsList = append(errorsList, shop.FieldError{
			Field:       field,
			Description: fmt.Sprintf("row %d: ", row.Line) + fmt.Sprintf(format, args...),
		})
	}

	for _, rec := range records {
		if field, err := validateRow(rec); err != nil {
			rowError(rec, field, "%v", err)
			continue
		}

		if existing, ok := s.shop.Catalog.FindByName(rec.Name); ok {
			if mode == "skip" {
				rowError(rec, "name", "product '%s' already exists", rec.Name)
				continue
			}
			if _, err := s.shop.Catalog.Update(r.Context(), existing.ID, rec.fields()); err != nil {
				s.log.Error("csv import update failed", "row", rec.Line, "error", err)
				rowError(rec, "", "failed to update '%s'", rec.Name)
				continue
			}
			imported++
			continue
		}

		if _, err := s.shop.Catalog.Create(r.Context(), rec.fields()); err != nil {
			s.log.Error("csv import create failed", "row", rec.Line, "error", err)
			rowError(rec, "", "failed to create '%s'", rec.Name)
			continue
		}
		imported++
	}

	s.log.Info("csv import finished", "mode", mode, "imported", imported, "rejected", len(errorsList))
	err = writeJSON(w, http.StatusOK, ImportProductsResult{
		ImportedProductsCount: imported,
		Errors:                errorsList,
	})
	if err != nil {
		s.log.Error("failed to write JSON response", "error", err)
	}
}
