package fs

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/fwojciec/cardscrape"
	"gopkg.in/yaml.v3"
)

// LoadSetCodes reads a flat set name to set code table from a JSON or YAML file.
// The format is chosen by extension: .json, .yaml or .yml.
func LoadSetCodes(path string) (cardscrape.SetCodes, error) {
	if path == "" {
		return nil, cardscrape.Errorf(cardscrape.EINVALID, "set codes path required")
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, cardscrape.Errorf(cardscrape.EINVALID, "reading set codes: %v", err)
	}

	codes := cardscrape.SetCodes{}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &codes)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &codes)
	default:
		return nil, cardscrape.Errorf(cardscrape.EINVALID, "unsupported set codes format %q", ext)
	}
	if err != nil {
		return nil, cardscrape.Errorf(cardscrape.EINVALID, "parsing set codes %s: %v", path, err)
	}

	return codes, nil
}
