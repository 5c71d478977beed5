package furniture

import "strings"

type LinkGenerator struct {
	AmazonSearchURL   string
	FlipkartSearchURL string
}

func NewLinkGenerator(amazonSearchURL, flipkartSearchURL string) *LinkGenerator {
	return &LinkGenerator{
		AmazonSearchURL:   amazonSearchURL,
		FlipkartSearchURL: flipkartSearchURL,
	}
}

// SearchTerm replaces spaces with '+'. Nothing else is escaped.
func SearchTerm(name string) string {
	return strings.ReplaceAll(name, " ", "+")
}

func (g *LinkGenerator) Run(products []Product) []Product {
	for i := range products {
		term := SearchTerm(products[i].ProductName)
		products[i].AmazonLink = g.AmazonSearchURL + term
		products[i].FlipkartLink = g.FlipkartSearchURL + term
	}
	return products
}
