package furniture

import (
	"github.com/lysyi3m/catalog-merge/app/dataset"
	"github.com/lysyi3m/catalog-merge/app/price"
)

// Columns is the header of final_products.csv.
var Columns = []string{
	"product_name",
	"price",
	"rating",
	"description",
	"category",
	"source_link",
	"image_url",
	"platform",
	"amazon_link",
	"flipkart_link",
}

// Listing is a standardized source row whose price is still raw text.
type Listing struct {
	ProductName *string
	RawPrice    *string
	Rating      *float64
	Description *string
	Category    *string
	SourceLink  *string
	ImageURL    *string
	Platform    *string
}

// Product is a cleaned listing. Name, price and description are always set.
type Product struct {
	ProductName  string
	Price        float64
	Rating       *float64
	Description  string
	Category     *string
	SourceLink   *string
	ImageURL     *string
	Platform     *string
	AmazonLink   string
	FlipkartLink string
}

func (p Product) Row() []string {
	return []string{
		p.ProductName,
		price.Format(p.Price),
		price.FormatPtr(p.Rating),
		p.Description,
		dataset.Cell(p.Category),
		dataset.Cell(p.SourceLink),
		dataset.Cell(p.ImageURL),
		dataset.Cell(p.Platform),
		p.AmazonLink,
		p.FlipkartLink,
	}
}

func (p Product) Values() []any {
	var rating any
	if p.Rating != nil {
		rating = *p.Rating
	}

	return []any{
		p.ProductName,
		p.Price,
		rating,
		p.Description,
		nullString(p.Category),
		nullString(p.SourceLink),
		nullString(p.ImageURL),
		nullString(p.Platform),
		p.AmazonLink,
		p.FlipkartLink,
	}
}

func listingKey(l Listing) (string, bool) {
	if l.ProductName == nil {
		return "", false
	}
	return *l.ProductName, true
}

func nullString(s *string) any {
	if s == nil {
		return nil
	}
	return *s
}
