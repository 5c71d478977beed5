package furniture

import (
	"strconv"
	"strings"

	"github.com/lysyi3m/catalog-merge/app/dataset"
)

const (
	PlatformIkea      = "ikea"
	PlatformPepperfry = "pepperfry"
)

// StandardizeIkea maps ikea.csv. Headers match case-insensitively.
func StandardizeIkea(t *dataset.Table) ([]Listing, error) {
	t.FoldCase()
	if err := t.Require("name", "price"); err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, t.Len())
	for _, r := range t.Records {
		listings = append(listings, Listing{
			ProductName: r.GetPtr("name"),
			RawPrice:    r.GetPtr("price"),
			Description: r.GetPtr("short_description"),
			Category:    r.GetPtr("category"),
			SourceLink:  r.GetPtr("link"),
			Platform:    constant(PlatformIkea),
		})
	}

	return listings, nil
}

// StandardizePepperfry maps pepperfry.csv. Headers match case-insensitively.
func StandardizePepperfry(t *dataset.Table) ([]Listing, error) {
	t.FoldCase()
	if err := t.Require("name", "price"); err != nil {
		return nil, err
	}

	listings := make([]Listing, 0, t.Len())
	for _, r := range t.Records {
		listings = append(listings, Listing{
			ProductName: r.GetPtr("name"),
			RawPrice:    r.GetPtr("price"),
			Rating:      numberOf(r, "rating"),
			Description: r.GetPtr("description"),
			Category:    r.GetPtr("category"),
			SourceLink:  r.GetPtr("url"),
			ImageURL:    r.GetPtr("image"),
			Platform:    constant(PlatformPepperfry),
		})
	}

	return listings, nil
}

func numberOf(r dataset.Record, column string) *float64 {
	raw, ok := r.Get(column)
	if !ok {
		return nil
	}
	value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return nil
	}
	return &value
}

func constant(s string) *string {
	return &s
}
