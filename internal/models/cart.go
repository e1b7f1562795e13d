package models

// CartLine references a product by id. Qty is always at least one.
type CartLine struct {
	ProductID int `json:"id"`
	Qty       int `json:"qty"`
}
