package models

// Category groups products on the storefront shelves.
type Category string

const (
	CategoryMeat  Category = "meat"
	CategoryTool  Category = "tool"
	CategoryAddon Category = "addon"
)

// Categories lists every sellable category in display order.
var Categories = []Category{CategoryMeat, CategoryTool, CategoryAddon}

// Valid reports whether c is one of the known categories.
func (c Category) Valid() bool {
	for _, known := range Categories {
		if c == known {
			return true
		}
	}
	return false
}

// Label is the shelf caption shown above a product card.
func (c Category) Label() string {
	switch c {
	case CategoryMeat:
		return "Paket Lengkap"
	case CategoryTool:
		return "Sewa Alat"
	default:
		return "Tambahan"
	}
}

// Product represents a sellable item in the catalog. Price is in Rupiah.
type Product struct {
	ID       int      `json:"id"`
	Name     string   `json:"name"`
	Category Category `json:"category"`
	Price    int64    `json:"price"`
	Desc     string   `json:"desc"`
}
