// Package cardscrape scrapes trading-card price listings from a catalog site.
// It visits every set page in a single browser page, extracts the card rows,
// resolves each set's display name to its set code, and writes the aggregated
// records as one timestamped JSON artifact.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., rod/, goquery/, fs/).
package cardscrape
