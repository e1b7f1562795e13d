package shop

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/rogerio-castellano/grillaway/internal/models"
	"github.com/rogerio-castellano/grillaway/internal/storage"
	"github.com/rogerio-castellano/grillaway/pkg/logger"
)

// ProductFields is the editable part of a product, as submitted by the admin form.
type ProductFields struct {
	Name     string
	Category models.Category
	Price    int64
	Desc     string
}

// ValidateProduct returns one FieldError per rejected field.
func ValidateProduct(f ProductFields) []FieldError {
	errs := []FieldError{}
	if strings.TrimSpace(f.Name) == "" {
		errs = append(errs, FieldError{Field: "name", Description: "Name is required"})
	}
	if !f.Category.Valid() {
		errs = append(errs, FieldError{Field: "category", Description: "Category must be meat, tool or addon"})
	}
	if f.Price < 0 {
		errs = append(errs, FieldError{Field: "price", Description: "Price cannot be negative"})
	}
	return errs
}

// Catalog owns the product collection.
type Catalog struct {
	state *State
	store *storage.Adapter
	log   *slog.Logger
}

func NewCatalog(state *State, store *storage.Adapter, log *slog.Logger) *Catalog {
	return &Catalog{state: state, store: store, log: logger.WithComponent(log, "catalog")}
}

// Seed replaces the catalog with the seed products and persists it.
func (c *Catalog) Seed(ctx context.Context) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	products := SeedProducts()
	if err := c.save(ctx, products); err != nil {
		return err
	}
	c.log.Info("catalog seeded", "products", len(products))
	return nil
}

// List returns the products in storage order, restricted to one category
// unless filter is "all".
func (c *Catalog) List(filter string) ([]models.Product, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.list(filter)
}

func (c *Catalog) list(filter string) ([]models.Product, error) {
	if filter == FilterAll {
		return slices.Clone(c.state.Products), nil
	}
	if !models.Category(filter).Valid() {
		return nil, invalidFilter(filter)
	}
	out := []models.Product{}
	for _, p := range c.state.Products {
		if string(p.Category) == filter {
			out = append(out, p)
		}
	}
	return out, nil
}

// Visible lists the products matching the current filter.
func (c *Catalog) Visible() ([]models.Product, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.list(c.state.Filter)
}

func (c *Catalog) Filter() string {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	return c.state.Filter
}

// SetFilter changes the transient category filter. It is never persisted.
func (c *Catalog) SetFilter(filter string) error {
	if filter != FilterAll && !models.Category(filter).Valid() {
		return invalidFilter(filter)
	}
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	c.state.Filter = filter
	return nil
}

func (c *Catalog) Get(id int) (models.Product, error) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	p, ok := c.state.findProduct(id)
	if !ok {
		return models.Product{}, productNotFound(id)
	}
	return p, nil
}

// Create appends a product with id max(existing)+1, or 1 for an empty catalog.
func (c *Catalog) Create(ctx context.Context, f ProductFields) (models.Product, error) {
	if errs := ValidateProduct(f); len(errs) > 0 {
		return models.Product{}, &ValidationError{Message: "invalid product", Fields: errs}
	}

	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	nextID := 1
	for _, p := range c.state.Products {
		if p.ID >= nextID {
			nextID = p.ID + 1
		}
	}
	product := fieldsToProduct(nextID, f)

	next := append(slices.Clone(c.state.Products), product)
	if err := c.save(ctx, next); err != nil {
		return models.Product{}, err
	}
	c.log.Info("product created", "product_id", product.ID, "name", product.Name)
	return product, nil
}

// Update replaces the product with the given id in place. An unknown id
// leaves the catalog untouched and returns a NotFoundError.
func (c *Catalog) Update(ctx context.Context, id int, f ProductFields) (models.Product, error) {
	if errs := ValidateProduct(f); len(errs) > 0 {
		return models.Product{}, &ValidationError{Message: "invalid product", Fields: errs}
	}

	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	i := slices.IndexFunc(c.state.Products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return models.Product{}, productNotFound(id)
	}
	product := fieldsToProduct(id, f)

	next := slices.Clone(c.state.Products)
	next[i] = product
	if err := c.save(ctx, next); err != nil {
		return models.Product{}, err
	}
	c.log.Info("product updated", "product_id", id)
	return product, nil
}

// Delete removes a product. Cart lines pointing at it are left dangling.
func (c *Catalog) Delete(ctx context.Context, id int) error {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	i := slices.IndexFunc(c.state.Products, func(p models.Product) bool { return p.ID == id })
	if i < 0 {
		return productNotFound(id)
	}

	next := slices.Delete(slices.Clone(c.state.Products), i, i+1)
	if err := c.save(ctx, next); err != nil {
		return err
	}
	c.log.Info("product deleted", "product_id", id)
	return nil
}

// FindByName returns the first product whose name matches case-insensitively.
func (c *Catalog) FindByName(name string) (models.Product, bool) {
	c.state.mu.Lock()
	defer c.state.mu.Unlock()

	for _, p := range c.state.Products {
		if strings.EqualFold(strings.TrimSpace(p.Name), strings.TrimSpace(name)) {
			return p, true
		}
	}
	return models.Product{}, false
}

// save persists products and commits them to the state. Callers hold mu.
func (c *Catalog) save(ctx context.Context, products []models.Product) error {
	if err := c.store.SaveProducts(ctx, products); err != nil {
		return err
	}
	c.state.Products = products
	return nil
}

func fieldsToProduct(id int, f ProductFields) models.Product {
	return models.Product{
		ID:       id,
		Name:     strings.TrimSpace(f.Name),
		Category: f.Category,
		Price:    f.Price,
		Desc:     f.Desc,
	}
}

func invalidFilter(filter string) error {
	return &ValidationError{
		Message: "invalid category filter",
		Fields:  []FieldError{{Field: "category", Description: fmt.Sprintf("unknown category %q", filter)}},
	}
}
