// Package scrape drives a browser page through the catalog, one set page at
// a time, and aggregates the normalized card records of the whole run.
package scrape

import (
	"context"
	"fmt"
	"time"

	"github.com/fwojciec/cardscrape"
)

// DefaultSettleDelay is the pause after each navigation that lets
// pseudo-element driven content populate.
const DefaultSettleDelay = 750 * time.Millisecond

// State is the position of the scraper within a run.
type State int

const (
	StateIdle State = iota
	StateNavigating
	StateSettling
	StateExtracting
	StateDone
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateNavigating:
		return "navigating"
	case StateSettling:
		return "settling"
	case StateExtracting:
		return "extracting"
	case StateDone:
		return "done"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// ProgressEvent reports a state transition during a run.
// A run emits StateIdle once the catalog has been read, with Total set.
// SetName, SetCode and Cards are set once a set page has been extracted;
// on StateDone, Cards holds the total number of records written.
type ProgressEvent struct {
	State   State
	Index   int // Zero-based position of the set page
	Total   int // Number of set pages
	URL     string
	SetName string
	SetCode string
	Cards   int
}

// ProgressFunc is a callback for reporting scrape progress.
type ProgressFunc func(event ProgressEvent)

// Scraper visits every set page listed on the catalog index with a single
// Page, strictly one page at a time, and writes all records once at the end.
// Any error aborts the run and nothing is written.
type Scraper struct {
	Page     cardscrape.Page
	Catalog  cardscrape.CatalogExtractor
	Cards    cardscrape.CardExtractor
	SetCodes cardscrape.SetCodes
	Writer   cardscrape.ArtifactWriter
	Origin   cardscrape.Origin

	// ReadySelector is waited for after the settle delay. Empty disables the wait.
	ReadySelector string
	SettleDelay   time.Duration

	// Sleep and Now default to a context-aware sleep and time.Now.
	Sleep func(ctx context.Context, d time.Duration) error
	Now   func() time.Time
}

// Run scrapes the whole catalog and writes the artifact.
// The progress callback, if provided, receives events as scraping proceeds.
func (s *Scraper) Run(ctx context.Context, progress ProgressFunc) (*cardscrape.Artifact, error) {
	if progress == nil {
		progress = func(ProgressEvent) {}
	}
	startedAt := s.now()

	links, err := s.DiscoverSets(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog: %w", err)
	}

	progress(ProgressEvent{State: StateIdle, Total: len(links)})

	agg := NewAggregator()
	for i, link := range links {
		event := ProgressEvent{Index: i, Total: len(links), URL: link}

		event.State = StateNavigating
		progress(event)
		if err := s.Page.Navigate(ctx, link); err != nil {
			return nil, fmt.Errorf("set %s: %w", link, err)
		}

		event.State = StateSettling
		progress(event)
		if err := s.settle(ctx); err != nil {
			return nil, fmt.Errorf("set %s: %w", link, err)
		}

		records, setName, code, err := s.ExtractSet(ctx, link)
		if err != nil {
			return nil, fmt.Errorf("set %s: %w", link, err)
		}
		agg.Append(records...)

		event.State = StateExtracting
		event.SetName = setName
		event.SetCode = code
		event.Cards = len(records)
		progress(event)
	}

	artifact, err := s.Writer.Write(ctx, startedAt, agg.Records())
	if err != nil {
		return nil, fmt.Errorf("writing artifact: %w", err)
	}

	progress(ProgressEvent{State: StateDone, Index: len(links), Total: len(links), Cards: agg.Len()})
	return artifact, nil
}

// DiscoverSets loads the catalog index and returns the set page URLs in order.
func (s *Scraper) DiscoverSets(ctx context.Context) ([]string, error) {
	if err := s.Page.Navigate(ctx, s.Origin.Resolve(cardscrape.CatalogPath)); err != nil {
		return nil, err
	}

	html, err := s.Page.HTML(ctx)
	if err != nil {
		return nil, err
	}

	return s.Catalog.ExtractSetLinks(html)
}

// ExtractSet reads the card rows of the set page currently loaded at pageURL,
// resolves the page's set code and returns the normalized records.
// An unmapped set name fails the page before any of its records are kept.
func (s *Scraper) ExtractSet(ctx context.Context, pageURL string) (records []cardscrape.CardRecord, setName, code string, err error) {
	html, err := s.Page.HTML(ctx)
	if err != nil {
		return nil, "", "", err
	}

	setName, rows, err := s.Cards.ExtractCards(html, pageURL)
	if err != nil {
		return nil, "", "", err
	}

	code, err = s.SetCodes.Resolve(setName)
	if err != nil {
		return nil, setName, "", err
	}

	records = make([]cardscrape.CardRecord, 0, len(rows))
	for _, row := range rows {
		records = append(records, cardscrape.Normalize(row, code))
	}
	return records, setName, code, nil
}

// settle waits the fixed delay, then for the ready selector if one is set.
func (s *Scraper) settle(ctx context.Context) error {
	if s.SettleDelay > 0 {
		sleep := s.Sleep
		if sleep == nil {
			sleep = Sleep
		}
		if err := sleep(ctx, s.SettleDelay); err != nil {
			return err
		}
	}

	if s.ReadySelector == "" {
		return nil
	}
	return s.Page.WaitVisible(ctx, s.ReadySelector)
}

func (s *Scraper) now() time.Time {
	if s.Now != nil {
		return s.Now()
	}
	return time.Now()
}

// Sleep blocks for d or until ctx is done.
func Sleep(ctx context.Context, d time.Duration) error {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
