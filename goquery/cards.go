package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/cardscrape"
)

// Ensure CardExtractor implements cardscrape.CardExtractor at compile time.
var _ cardscrape.CardExtractor = (*CardExtractor)(nil)

// CardExtractor reads card rows from a rendered set page.
type CardExtractor struct {
	selectors Selectors
}

// NewCardExtractor creates a new CardExtractor.
func NewCardExtractor(selectors Selectors) *CardExtractor {
	return &CardExtractor{selectors: selectors}
}

// ExtractCards returns the displayed set name and the page's card rows in document order.
func (e *CardExtractor) ExtractCards(html string, pageURL string) (string, []cardscrape.RawCardRow, error) {
	base, err := url.Parse(pageURL)
	if err != nil {
		return "", nil, cardscrape.Errorf(cardscrape.EINVALID, "invalid page URL: %v", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", nil, cardscrape.Errorf(cardscrape.EPARSE, "failed to parse HTML: %v", err)
	}

	heading := doc.Find(e.selectors.SetName).First()
	if heading.Length() == 0 {
		return "", nil, cardscrape.Errorf(cardscrape.EPARSE, "set name %q not found on %s", e.selectors.SetName, pageURL)
	}
	setName := innerText(heading)

	if doc.Find(e.selectors.CardList).Length() == 0 {
		return "", nil, cardscrape.Errorf(cardscrape.EPARSE, "card list %q not found on %s", e.selectors.CardList, pageURL)
	}

	rows := []cardscrape.RawCardRow{}
	var rowErr error
	// Rows are matched from the document root so CardRow must lie inside
	// CardList, as in ".cards ul > li".
	doc.Find(e.selectors.CardList+" "+e.selectors.CardRow).EachWithBreak(func(i int, sel *goquery.Selection) bool {
		row, err := e.extractRow(sel, base)
		if err != nil {
			rowErr = cardscrape.Errorf(cardscrape.EPARSE, "row %d on %s: %s", i, pageURL, cardscrape.ErrorMessage(err))
			return false
		}
		row.SetName = setName
		rows = append(rows, row)
		return true
	})
	if rowErr != nil {
		return "", nil, rowErr
	}

	return setName, rows, nil
}

func (e *CardExtractor) extractRow(sel *goquery.Selection, base *url.URL) (cardscrape.RawCardRow, error) {
	anchor := sel.Find(e.selectors.CardLink).First()
	if anchor.Length() == 0 {
		return cardscrape.RawCardRow{}, cardscrape.Errorf(cardscrape.EPARSE, "card link %q not found", e.selectors.CardLink)
	}

	icon := sel.Find(e.selectors.SetIcon).First()
	if icon.Length() == 0 {
		return cardscrape.RawCardRow{}, cardscrape.Errorf(cardscrape.EPARSE, "set icon %q not found", e.selectors.SetIcon)
	}
	class, _ := icon.Attr("class")
	href, _ := anchor.Attr("href")

	return cardscrape.RawCardRow{
		Name:    innerText(anchor),
		Link:    resolveURL(base, href),
		Price1:  innerText(sel.Find(e.selectors.Price).First()),
		Price2:  innerText(sel.Find(e.selectors.FoilPrice).First()),
		SetIcon: strings.TrimSpace(class),
	}, nil
}

// innerText returns the selection's text with whitespace runs collapsed to a
// single space, matching the text a browser renders for inline content.
func innerText(sel *goquery.Selection) string {
	return strings.Join(strings.Fields(sel.Text()), " ")
}

// resolveURL resolves href against the page URL the way a browser reports an
// anchor's href property. Returns empty string for a missing or unparseable href.
func resolveURL(base *url.URL, href string) string {
	href = strings.TrimSpace(href)
	if href == "" {
		return ""
	}
	ref, err := url.Parse(href)
	if err != nil {
		return ""
	}
	return base.ResolveReference(ref).String()
}
