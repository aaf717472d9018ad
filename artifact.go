package cardscrape

import (
	"context"
	"time"
)

// Artifact describes the file produced by a run.
type Artifact struct {
	Path     string
	Records  int
	Checksum string // xxhash64 of the encoded content, hex
}

// ArtifactWriter persists the aggregated records of a run.
type ArtifactWriter interface {
	// Write serializes all records in order to a single artifact named after
	// startedAt. It is called once per run, after every set has been scraped.
	Write(ctx context.Context, startedAt time.Time, records []CardRecord) (*Artifact, error)
}
