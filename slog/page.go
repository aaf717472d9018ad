// Package slog provides structured logging decorators for cardscrape services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cardscrape"
)

// Ensure LoggingPage implements cardscrape.Page.
var _ cardscrape.Page = (*LoggingPage)(nil)

// LoggingPage wraps a Page with debug logging.
type LoggingPage struct {
	next   cardscrape.Page
	logger *slog.Logger
}

// NewLoggingPage creates a new LoggingPage.
func NewLoggingPage(next cardscrape.Page, logger *slog.Logger) *LoggingPage {
	return &LoggingPage{next: next, logger: logger}
}

// Navigate logs the URL being loaded and delegates to the wrapped page.
func (p *LoggingPage) Navigate(ctx context.Context, url string) (err error) {
	defer func(begin time.Time) {
		p.logger.Info("navigate",
			"url", url,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.Navigate(ctx, url)
}

// WaitVisible logs how long the selector took to appear.
func (p *LoggingPage) WaitVisible(ctx context.Context, selector string) (err error) {
	defer func(begin time.Time) {
		p.logger.Debug("wait visible",
			"selector", selector,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.WaitVisible(ctx, selector)
}

// HTML logs the size of the rendered document.
func (p *LoggingPage) HTML(ctx context.Context) (html string, err error) {
	defer func(begin time.Time) {
		p.logger.Debug("html",
			"bytes", len(html),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return p.next.HTML(ctx)
}

// Close delegates to the wrapped page.
func (p *LoggingPage) Close() error {
	return p.next.Close()
}
