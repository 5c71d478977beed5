package htmltext

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Strip reduces an HTML fragment to its visible text with whitespace collapsed.
// Text without markup is only trimmed.
func Strip(s string) string {
	if !strings.ContainsAny(s, "<&") {
		return strings.Join(strings.Fields(s), " ")
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(s))
	if err != nil {
		return strings.Join(strings.Fields(s), " ")
	}

	doc.Find("script, style").Remove()

	var parts []string
	collectText(doc.Find("body").Contents(), &parts)

	return strings.Join(strings.Fields(strings.Join(parts, " ")), " ")
}

func collectText(sel *goquery.Selection, parts *[]string) {
	sel.Each(func(_ int, node *goquery.Selection) {
		if goquery.NodeName(node) == "#text" {
			if text := strings.TrimSpace(node.Text()); text != "" {
				*parts = append(*parts, text)
			}
			return
		}
		collectText(node.Contents(), parts)
	})
}
