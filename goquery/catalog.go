package goquery

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardscrape"
)

// Ensure CatalogExtractor implements cardscrape.CatalogExtractor at compile time.
var _ cardscrape.CatalogExtractor = (*CatalogExtractor)(nil)

// CatalogExtractor collects set page URLs from the catalog index.
type CatalogExtractor struct {
	origin    cardscrape.Origin
	selectors Selectors
}

// NewCatalogExtractor creates a CatalogExtractor resolving set links against origin.
func NewCatalogExtractor(origin cardscrape.Origin, selectors Selectors) *CatalogExtractor {
	return &CatalogExtractor{origin: origin, selectors: selectors}
}

// ExtractSetLinks returns the absolute URL of every set page in document order.
func (e *CatalogExtractor) ExtractSetLinks(html string) ([]string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, cardscrape.Errorf(cardscrape.EPARSE, "failed to parse HTML: %v", err)
	}

	list := doc.Find(e.selectors.SetList)
	if list.Length() == 0 {
		return nil, cardscrape.Errorf(cardscrape.EPARSE, "set list %q not found on catalog page", e.selectors.SetList)
	}

	links := []string{}
	list.Find(e.selectors.SetLink).Each(func(_ int, sel *goquery.Selection) {
		href, exists := sel.Attr("href")
		if !exists || href == "" {
			return
		}
		links = append(links, e.origin.Resolve(href))
	})

	return links, nil
}
