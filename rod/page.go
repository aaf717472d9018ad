// Package rod drives the catalog site through a headless Chrome tab.
package rod

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/fwojciec/cardscrape"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Default timeouts applied when no option overrides them.
const (
	DefaultNavigationTimeout = 30 * time.Second
	DefaultReadyTimeout      = 10 * time.Second
)

// Ensure Page implements cardscrape.Page at compile time.
var _ cardscrape.Page = (*Page)(nil)

// Page is a single Chrome tab in a browser owned by the Page.
// Page is not safe for concurrent use.
type Page struct {
	browser  *rod.Browser
	launcher *launcher.Launcher
	page     *rod.Page
	closed   atomic.Bool

	headless          bool
	userDataDir       string
	ignoreCertErrors  bool
	navigationTimeout time.Duration
	readyTimeout      time.Duration
}

// Option configures a Page.
type Option func(*Page)

// WithHeadless controls whether Chrome runs without a window. Defaults to true.
func WithHeadless(headless bool) Option {
	return func(p *Page) {
		p.headless = headless
	}
}

// WithUserDataDir persists the browser session (cookies, storage) in dir
// across runs. By default a throwaway profile is used.
func WithUserDataDir(dir string) Option {
	return func(p *Page) {
		p.userDataDir = dir
	}
}

// WithIgnoreCertErrors makes the browser accept invalid TLS certificates.
func WithIgnoreCertErrors(ignore bool) Option {
	return func(p *Page) {
		p.ignoreCertErrors = ignore
	}
}

// WithNavigationTimeout bounds a single navigation including the load event.
func WithNavigationTimeout(d time.Duration) Option {
	return func(p *Page) {
		p.navigationTimeout = d
	}
}

// WithReadyTimeout bounds how long WaitVisible polls for an element.
func WithReadyTimeout(d time.Duration) Option {
	return func(p *Page) {
		p.readyTimeout = d
	}
}

// NewPage launches Chrome and opens a blank tab.
// Close must be called when the Page is no longer needed.
//
// Returns an error if Chrome/Chromium cannot be found or launched.
func NewPage(opts ...Option) (*Page, error) {
	p := &Page{
		headless:          true,
		navigationTimeout: DefaultNavigationTimeout,
		readyTimeout:      DefaultReadyTimeout,
	}
	for _, opt := range opts {
		opt(p)
	}

	l := launcher.New().
		Set("disable-background-timer-throttling").
		Set("disable-backgrounding-occluded-windows").
		Set("disable-renderer-backgrounding").
		Set("disable-dev-shm-usage").
		Leakless(true).
		Headless(p.headless)
	if p.userDataDir != "" {
		l = l.UserDataDir(p.userDataDir)
	}

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launching browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill()
		return nil, fmt.Errorf("connecting to browser: %w", err)
	}

	if p.ignoreCertErrors {
		if err := browser.IgnoreCertErrors(true); err != nil {
			_ = browser.Close()
			l.Kill()
			return nil, fmt.Errorf("configuring browser: %w", err)
		}
	}

	page, err := browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		_ = browser.Close()
		l.Kill()
		return nil, fmt.Errorf("opening page: %w", err)
	}

	p.browser = browser
	p.launcher = l
	p.page = page
	return p, nil
}

// Navigate loads the URL and waits for the load event.
func (p *Page) Navigate(ctx context.Context, url string) error {
	if err := p.check(ctx); err != nil {
		return err
	}

	page := p.page.Context(ctx).Timeout(p.navigationTimeout)
	defer page.CancelTimeout()

	if err := page.Navigate(url); err != nil {
		return p.navigateError(ctx, url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return p.navigateError(ctx, url, err)
	}
	return nil
}

// WaitVisible polls until an element matching selector exists in the document.
func (p *Page) WaitVisible(ctx context.Context, selector string) error {
	if err := p.check(ctx); err != nil {
		return err
	}

	page := p.page.Context(ctx).Timeout(p.readyTimeout)
	defer page.CancelTimeout()

	if _, err := page.Element(selector); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return cardscrape.Errorf(cardscrape.EPARSE, "%q did not appear within %s", selector, p.readyTimeout)
	}
	return nil
}

// HTML returns the rendered HTML of the current document.
func (p *Page) HTML(ctx context.Context) (string, error) {
	if err := p.check(ctx); err != nil {
		return "", err
	}
	return p.page.Context(ctx).HTML()
}

// Close shuts down the browser. Close is safe to call multiple times.
func (p *Page) Close() error {
	if !p.closed.CompareAndSwap(false, true) {
		return nil
	}

	var err error
	if p.browser != nil {
		err = p.browser.Close()
	}
	if p.launcher != nil {
		p.launcher.Kill()
	}
	return err
}

// LauncherPID returns the PID of the browser process, or 0 if none.
func (p *Page) LauncherPID() int {
	if p.launcher == nil {
		return 0
	}
	return p.launcher.PID()
}

func (p *Page) check(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if p.closed.Load() {
		return cardscrape.Errorf(cardscrape.EINVALID, "page is closed")
	}
	return nil
}

func (p *Page) navigateError(ctx context.Context, url string, err error) error {
	if ctxErr := ctx.Err(); ctxErr != nil {
		return ctxErr
	}
	return fmt.Errorf("%w: %v", cardscrape.Errorf(cardscrape.ENAVIGATE, "cannot load %s", url), err)
}
