package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/cardscrape"
)

// Ensure LoggingArtifactWriter implements cardscrape.ArtifactWriter.
var _ cardscrape.ArtifactWriter = (*LoggingArtifactWriter)(nil)

// LoggingArtifactWriter wraps an ArtifactWriter with logging.
type LoggingArtifactWriter struct {
	next   cardscrape.ArtifactWriter
	logger *slog.Logger
}

// NewLoggingArtifactWriter creates a new LoggingArtifactWriter.
func NewLoggingArtifactWriter(next cardscrape.ArtifactWriter, logger *slog.Logger) *LoggingArtifactWriter {
	return &LoggingArtifactWriter{next: next, logger: logger}
}

// Write delegates to the wrapped writer and logs the artifact produced.
func (w *LoggingArtifactWriter) Write(ctx context.Context, startedAt time.Time, records []cardscrape.CardRecord) (artifact *cardscrape.Artifact, err error) {
	defer func(begin time.Time) {
		attrs := []any{
			"records", len(records),
			"duration", time.Since(begin),
			"err", err,
		}
		if artifact != nil {
			attrs = append(attrs, "path", artifact.Path, "checksum", artifact.Checksum)
		}
		w.logger.Info("write artifact", attrs...)
	}(time.Now())
	return w.next.Write(ctx, startedAt, records)
}
