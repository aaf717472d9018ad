package scrape

import "github.com/fwojciec/cardscrape"

// Aggregator accumulates the records of one run in the order they are
// appended. It neither deduplicates nor reorders.
type Aggregator struct {
	records []cardscrape.CardRecord
}

// NewAggregator returns an empty Aggregator.
func NewAggregator() *Aggregator {
	return &Aggregator{records: []cardscrape.CardRecord{}}
}

// Append adds records after everything appended so far.
func (a *Aggregator) Append(records ...cardscrape.CardRecord) {
	a.records = append(a.records, records...)
}

// Records returns the accumulated records.
func (a *Aggregator) Records() []cardscrape.CardRecord {
	return a.records
}

// Len returns the number of accumulated records.
func (a *Aggregator) Len() int {
	return len(a.records)
}
