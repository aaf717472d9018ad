package mock

import (
	"context"

	"github.com/fwojciec/cardscrape"
)

var _ cardscrape.Page = (*Page)(nil)

// Page is a mock implementation of cardscrape.Page.
type Page struct {
	NavigateFn    func(ctx context.Context, url string) error
	WaitVisibleFn func(ctx context.Context, selector string) error
	HTMLFn        func(ctx context.Context) (string, error)
	CloseFn       func() error
}

func (p *Page) Navigate(ctx context.Context, url string) error {
	return p.NavigateFn(ctx, url)
}

func (p *Page) WaitVisible(ctx context.Context, selector string) error {
	return p.WaitVisibleFn(ctx, selector)
}

func (p *Page) HTML(ctx context.Context) (string, error) {
	return p.HTMLFn(ctx)
}

func (p *Page) Close() error {
	return p.CloseFn()
}
