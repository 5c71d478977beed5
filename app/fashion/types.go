package fashion

import (
	"github.com/lysyi3m/catalog-merge/app/dataset"
	"github.com/lysyi3m/catalog-merge/app/price"
)

// Columns is the header of final_women_fashion.csv.
var Columns = []string{
	"product_id",
	"product_name",
	"price",
	"rating",
	"description",
	"image_url",
	"product_url",
	"platform",
}

type Product struct {
	ProductID   string
	ProductName *string
	Price       *float64
	Rating      *float64
	Description *string
	ImageURL    *string
	ProductURL  *string
	Platform    *string
}

// Row renders the product in Columns order.
func (p Product) Row() []string {
	return []string{
		p.ProductID,
		dataset.Cell(p.ProductName),
		price.FormatPtr(p.Price),
		price.FormatPtr(p.Rating),
		dataset.Cell(p.Description),
		dataset.Cell(p.ImageURL),
		dataset.Cell(p.ProductURL),
		dataset.Cell(p.Platform),
	}
}

// Values renders the product for SQL, with NULL for absent fields.
func (p Product) Values() []any {
	return []any{
		p.ProductID,
		nullString(p.ProductName),
		nullFloat(p.Price),
		nullFloat(p.Rating),
		nullString(p.Description),
		nullString(p.ImageURL),
		nullString(p.ProductURL),
		nullString(p.Platform),
	}
}

func productKey(p Product) (string, bool) {
	return p.ProductID, p.ProductID != ""
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}

func nullFloat(f *float64) any {
	if f == nil {
		return nil
	}
	return *f
}
