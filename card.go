package cardscrape

// RawCardRow is one card row as it appears on a rendered set page,
// before the set code has been resolved.
type RawCardRow struct {
	Name    string
	Link    string // Absolute URL
	Price1  string // Non-foil price, empty when not listed
	Price2  string // Foil price, empty when not listed
	SetIcon string // Class attribute of the set icon element
	SetName string
}

// CardRecord is a normalized card listing as persisted in the artifact.
type CardRecord struct {
	Name       string `json:"name"`
	Link       string `json:"link"`
	Price1     string `json:"price1"`
	Price2     string `json:"price2"`
	SetIcon    string `json:"setIcon"`
	SetCode    string `json:"setCode"`
	SetName    string `json:"setName"`
	IsOnlyFoil bool   `json:"isOnlyFoil"`
}

// Validate returns an error if the record cannot be persisted.
func (r *CardRecord) Validate() error {
	if r.SetCode == "" {
		return Errorf(EINVALID, "set code was not defined for %q", r.SetName)
	}
	return nil
}

// Normalize converts a raw row and its resolved set code into a CardRecord.
// A card is foil-only when it lists a foil price but no regular price.
func Normalize(row RawCardRow, code string) CardRecord {
	return CardRecord{
		Name:       row.Name,
		Link:       row.Link,
		Price1:     row.Price1,
		Price2:     row.Price2,
		SetIcon:    row.SetIcon,
		SetCode:    code,
		SetName:    row.SetName,
		IsOnlyFoil: row.Price1 == "" && row.Price2 != "",
	}
}
