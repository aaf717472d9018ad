package cardscrape

// CatalogExtractor finds set pages on the rendered catalog index.
type CatalogExtractor interface {
	// ExtractSetLinks returns the absolute URL of every set page,
	// in document order. Returns EPARSE if the set listing is absent.
	ExtractSetLinks(html string) ([]string, error)
}

// CardExtractor reads card rows from a rendered set page.
type CardExtractor interface {
	// ExtractCards returns the page's displayed set name and its card rows
	// in document order. Relative card links are resolved against pageURL.
	// Returns EPARSE if the heading, the card list, or a row's anchor or
	// icon is missing.
	ExtractCards(html string, pageURL string) (setName string, rows []RawCardRow, err error)
}
