// Package fs persists scrape artifacts and loads set-code tables from disk.
package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/cardscrape"
)

// ArtifactName returns the file name for a run started at t:
// MM-DD-YYYY--<unix millis>.json.
func ArtifactName(t time.Time) string {
	return t.Format("01-02-2006") + "--" + strconv.FormatInt(t.UnixMilli(), 10) + ".json"
}

// Ensure ArtifactWriter implements cardscrape.ArtifactWriter at compile time.
var _ cardscrape.ArtifactWriter = (*ArtifactWriter)(nil)

// ArtifactWriter writes the records of a run as a JSON array to a directory.
// The file is written under a temporary name and renamed into place, so a
// failed write never leaves a partial artifact behind.
type ArtifactWriter struct {
	dir string
}

// NewArtifactWriter creates an ArtifactWriter writing into dir.
// The directory is created on first write if missing.
func NewArtifactWriter(dir string) *ArtifactWriter {
	return &ArtifactWriter{dir: dir}
}

// Write encodes records in order and writes them to <dir>/<ArtifactName(startedAt)>.
func (w *ArtifactWriter) Write(ctx context.Context, startedAt time.Time, records []cardscrape.CardRecord) (*cardscrape.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	for i := range records {
		if err := records[i].Validate(); err != nil {
			return nil, err
		}
	}

	data, err := EncodeRecords(records)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(w.dir, 0755); err != nil {
		return nil, err
	}

	path := filepath.Join(w.dir, ArtifactName(startedAt))
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return nil, err
	}

	return &cardscrape.Artifact{
		Path:     path,
		Records:  len(records),
		Checksum: fmt.Sprintf("%x", xxhash.Sum64(data)),
	}, nil
}

// EncodeRecords returns the compact JSON array of records.
// HTML characters in names and links are written literally and a nil
// slice encodes as an empty array.
func EncodeRecords(records []cardscrape.CardRecord) ([]byte, error) {
	if records == nil {
		records = []cardscrape.CardRecord{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(records); err != nil {
		return nil, err
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}
