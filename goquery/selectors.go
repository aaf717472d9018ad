// Package goquery extracts set links and card rows from rendered catalog HTML.
package goquery

import (
	"bytes"
	"errors"
	"io"
	"os"

	"github.com/fwojciec/cardscrape"
	"gopkg.in/yaml.v3"
)

// Selectors holds the CSS selectors used to locate catalog structure.
type Selectors struct {
	SetList   string `yaml:"set_list"`   // Block listing every set on the catalog index
	SetLink   string `yaml:"set_link"`   // Set anchors, relative to SetList
	SetName   string `yaml:"set_name"`   // Heading carrying the displayed set name
	CardList  string `yaml:"card_list"`  // Container of the card rows on a set page
	CardRow   string `yaml:"card_row"`   // Card rows, relative to CardList
	CardLink  string `yaml:"card_link"`  // Anchor with card name and link, relative to a row
	Price     string `yaml:"price"`      // Non-foil price, relative to a row
	FoilPrice string `yaml:"foil_price"` // Foil price, relative to a row
	SetIcon   string `yaml:"set_icon"`   // Icon whose class names the set, relative to a row

	// Ready overrides the selector waited for before a set page is read,
	// e.g. ".cards ul > li i[class]" to wait for styled icons. Optional.
	Ready string `yaml:"ready"`
}

// DefaultSelectors returns the selectors matching the catalog site's markup.
func DefaultSelectors() Selectors {
	return Selectors{
		SetList:   ".sets.row",
		SetLink:   "ul > li > a",
		SetName:   "h3",
		CardList:  ".cards",
		CardRow:   "ul > li",
		CardLink:  "a",
		Price:     "span:nth-child(2)",
		FoilPrice: "span:nth-child(3)",
		SetIcon:   "i",
	}
}

// ReadySelector returns the selector that must be present on a set page
// before its rows can be read. Without a Ready override this is the card
// list container; sets with no listings still render it, so rows themselves
// are not waited for by default.
func (s Selectors) ReadySelector() string {
	if s.Ready != "" {
		return s.Ready
	}
	return s.CardList
}

// LoadSelectors reads selector overrides from a YAML file. Keys absent from
// the file keep their DefaultSelectors value.
func LoadSelectors(path string) (Selectors, error) {
	s := DefaultSelectors()

	data, err := os.ReadFile(path)
	if err != nil {
		return s, cardscrape.Errorf(cardscrape.EINVALID, "reading selectors: %v", err)
	}

	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&s); err != nil && !errors.Is(err, io.EOF) {
		return s, cardscrape.Errorf(cardscrape.EINVALID, "parsing selectors %s: %v", path, err)
	}

	if err := s.Validate(); err != nil {
		return s, err
	}
	return s, nil
}

// Validate reports an empty selector. Ready is optional.
func (s Selectors) Validate() error {
	fields := []struct{ name, value string }{
		{"set_list", s.SetList},
		{"set_link", s.SetLink},
		{"set_name", s.SetName},
		{"card_list", s.CardList},
		{"card_row", s.CardRow},
		{"card_link", s.CardLink},
		{"price", s.Price},
		{"foil_price", s.FoilPrice},
		{"set_icon", s.SetIcon},
	}
	for _, f := range fields {
		if f.value == "" {
			return cardscrape.Errorf(cardscrape.EINVALID, "selector %s must not be empty", f.name)
		}
	}
	return nil
}
