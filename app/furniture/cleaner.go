package furniture

import (
	"github.com/lysyi3m/catalog-merge/app/htmltext"
	"github.com/lysyi3m/catalog-merge/app/merge"
	"github.com/lysyi3m/catalog-merge/app/price"
)

type CleanStats struct {
	Duplicates   int
	MissingName  int
	MissingPrice int
}

// Cleaner turns merged listings into products: dedup by name, parse the
// price, drop rows without name or price, fill the description.
type Cleaner struct {
	Policy             merge.Policy
	DescriptionDefault string
	StripHTML          bool
}

func NewCleaner(policy merge.Policy, descriptionDefault string, stripHTML bool) *Cleaner {
	return &Cleaner{
		Policy:             policy,
		DescriptionDefault: descriptionDefault,
		StripHTML:          stripHTML,
	}
}

func (c *Cleaner) Run(listings []Listing) ([]Product, CleanStats) {
	var stats CleanStats

	deduped := merge.Dedup(listings, listingKey, c.Policy)
	stats.Duplicates = len(listings) - len(deduped)

	products := make([]Product, 0, len(deduped))
	for _, l := range deduped {
		value, ok := price.Normalize(l.RawPrice)

		if l.ProductName == nil {
			stats.MissingName++
			continue
		}
		if !ok {
			stats.MissingPrice++
			continue
		}

		products = append(products, Product{
			ProductName: *l.ProductName,
			Price:       value,
			Rating:      l.Rating,
			Description: c.description(l.Description),
			Category:    l.Category,
			SourceLink:  l.SourceLink,
			ImageURL:    l.ImageURL,
			Platform:    l.Platform,
		})
	}

	return products, stats
}

func (c *Cleaner) description(d *string) string {
	if d == nil {
		return c.DescriptionDefault
	}
	if !c.StripHTML {
		return *d
	}

	// Markup with no visible text counts as absent.
	if text := htmltext.Strip(*d); text != "" {
		return text
	}
	return c.DescriptionDefault
}
