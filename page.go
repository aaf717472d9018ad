package cardscrape

import "context"

// Page is a single browser tab driven through the catalog.
// A Page is not safe for concurrent use; exactly one caller drives it.
type Page interface {
	// Navigate loads the URL and returns once the load event has fired.
	// Returns ENAVIGATE if the page cannot be loaded.
	Navigate(ctx context.Context, url string) error

	// WaitVisible blocks until an element matching selector is present,
	// bounded by the implementation's ready timeout.
	// Returns EPARSE if the element never appears.
	WaitVisible(ctx context.Context, selector string) error

	// HTML returns the rendered HTML of the current document.
	HTML(ctx context.Context) (string, error)

	// Close releases browser resources. Close is safe to call multiple times.
	Close() error
}
