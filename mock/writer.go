package mock

import (
	"context"
	"time"

	"github.com/fwojciec/cardscrape"
)

var _ cardscrape.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter is a mock implementation of cardscrape.ArtifactWriter.
type ArtifactWriter struct {
	WriteFn func(ctx context.Context, startedAt time.Time, records []cardscrape.CardRecord) (*cardscrape.Artifact, error)
}

func (w *ArtifactWriter) Write(ctx context.Context, startedAt time.Time, records []cardscrape.CardRecord) (*cardscrape.Artifact, error) {
	return w.WriteFn(ctx, startedAt, records)
}
