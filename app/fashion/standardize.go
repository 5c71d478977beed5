package fashion

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/lysyi3m/catalog-merge/app/dataset"
	"github.com/lysyi3m/catalog-merge/app/price"
)

const (
	PlatformKhaadi = "khaadi"
	PlatformMyntra = "myntra"
	PlatformZara   = "Zara"

	kurtiProductName = "kurti"
)

// StandardizeFashionDataset maps "Fashion Dataset.csv". Every column is optional;
// without p_id the row position becomes the id.
func StandardizeFashionDataset(t *dataset.Table) []Product {
	t.FoldCase()
	hasID := t.HasColumn("p_id")

	products := make([]Product, 0, t.Len())
	for i, r := range t.Records {
		p := Product{
			ProductName: r.GetPtr("name"),
			Price:       priceOf(r, "price"),
			Rating:      numberOf(r, "avg_rating"),
			Description: r.GetPtr("description"),
			ImageURL:    r.GetPtr("image"),
			Platform:    r.GetPtr("brand"),
		}

		if hasID {
			p.ProductID, _ = r.Get("p_id")
		} else {
			p.ProductID = strconv.Itoa(i)
		}

		products = append(products, p)
	}

	return products
}

// StandardizeKhaadi maps khaadi_data.csv, whose columns are all mandatory.
func StandardizeKhaadi(t *dataset.Table) ([]Product, error) {
	if err := t.Require("ID", "Product Name", "Price", "Product Description", "Img Path", "Product Link"); err != nil {
		return nil, err
	}

	products := make([]Product, 0, t.Len())
	for _, r := range t.Records {
		id, _ := r.Get("ID")
		products = append(products, Product{
			ProductID:   id,
			ProductName: r.GetPtr("Product Name"),
			Price:       priceOf(r, "Price"),
			Description: r.GetPtr("Product Description"),
			ImageURL:    r.GetPtr("Img Path"),
			ProductURL:  r.GetPtr("Product Link"),
			Platform:    constant(PlatformKhaadi),
		})
	}

	return products, nil
}

// StandardizeKurti maps an already sampled kurtiData.csv.
func StandardizeKurti(t *dataset.Table) ([]Product, error) {
	if err := t.Require("product_id", "price", "rating", "image_url", "product_url"); err != nil {
		return nil, err
	}

	products := make([]Product, 0, t.Len())
	for _, r := range t.Records {
		id, _ := r.Get("product_id")
		products = append(products, Product{
			ProductID:   id,
			ProductName: constant(kurtiProductName),
			Price:       priceOf(r, "price"),
			Rating:      numberOf(r, "rating"),
			ImageURL:    r.GetPtr("image_url"),
			ProductURL:  r.GetPtr("product_url"),
			Platform:    constant(PlatformMyntra),
		})
	}

	return products, nil
}

// StandardizeWomen maps one category file of the women folder. Rows get
// "<stem>_<row>" ids. The file's product_url column holds image links.
func StandardizeWomen(t *dataset.Table) []Product {
	t.FoldCase()

	products := make([]Product, 0, t.Len())
	for i, r := range t.Records {
		products = append(products, Product{
			ProductID:   fmt.Sprintf("%s_%d", t.Source, i),
			ProductName: r.GetPtr("product_name"),
			Price:       priceOf(r, "price"),
			Description: r.GetPtr("details"),
			ImageURL:    r.GetPtr("product_url"),
			ProductURL:  r.GetPtr("link"),
			Platform:    constant(PlatformZara),
		})
	}

	return products
}

func priceOf(r dataset.Record, column string) *float64 {
	raw, ok := r.Get(column)
	if !ok {
		return nil
	}
	value, ok := price.Parse(raw)
	if !ok {
		return nil
	}
	return &value
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
