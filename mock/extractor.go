package mock

import "github.com/fwojciec/cardscrape"

// Compile-time interface verification.
var (
	_ cardscrape.CatalogExtractor = (*CatalogExtractor)(nil)
	_ cardscrape.CardExtractor    = (*CardExtractor)(nil)
)

// CatalogExtractor is a mock implementation of cardscrape.CatalogExtractor.
type CatalogExtractor struct {
	ExtractSetLinksFn func(html string) ([]string, error)
}

func (e *CatalogExtractor) ExtractSetLinks(html string) ([]string, error) {
	return e.ExtractSetLinksFn(html)
}

// CardExtractor is a mock implementation of cardscrape.CardExtractor.
type CardExtractor struct {
	ExtractCardsFn func(html string, pageURL string) (string, []cardscrape.RawCardRow, error)
}

func (e *CardExtractor) ExtractCards(html string, pageURL string) (string, []cardscrape.RawCardRow, error) {
	return e.ExtractCardsFn(html, pageURL)
}
