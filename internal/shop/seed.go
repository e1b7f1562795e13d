package shop

import "github.com/rogerio-castellano/grillaway/internal/models"

// SeedProducts returns the initial catalog written when none is persisted.
func SeedProducts() []models.Product {
	return []models.Product{
		{ID: 1, Name: "Paket Grill Anak Kost", Category: models.CategoryMeat, Price: 120000, Desc: "500gr chicken slice, saus BBQ 100 ml, 1 paket alat BBQ."},
		{ID: 2, Name: "Paket Hemat Grill", Category: models.CategoryMeat, Price: 170000, Desc: "400gr beef shortplate, saus BBQ 100 ml, 1 paket alat BBQ."},
		{ID: 3, Name: "Paket All in One", Category: models.CategoryMeat, Price: 250000, Desc: "400gr beef short plate, 400gr chicken slice, saus BBQ 300 ml, bombai + selada, 1 paket alat."},
		{ID: 4, Name: "Paket Grill Gear", Category: models.CategoryTool, Price: 65000, Desc: "Kompor, gas, fan grill, capit, brush, sumpit 2, tikar."},
		{ID: 5, Name: "Bakso 350 gr", Category: models.CategoryAddon, Price: 20000, Desc: "Bakso siap grill."},
	}
}
