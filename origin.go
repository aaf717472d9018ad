package cardscrape

// DefaultOrigin is the catalog site scraped when no other origin is configured.
const DefaultOrigin Origin = "https://www.cardsphere.com"

// CatalogPath is the site-relative path of the catalog index listing all sets.
const CatalogPath = "/sets"

// Origin is the scheme and host every site-relative path is resolved against.
type Origin string

// Resolve returns the absolute URL for a site-relative path.
// The path is appended verbatim; its shape is not validated.
func (o Origin) Resolve(path string) string {
	return string(o) + path
}
