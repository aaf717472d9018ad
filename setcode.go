package cardscrape

// SetCodes maps a set's display name to its canonical set code.
// It is loaded once before a run and treated as read-only afterwards.
type SetCodes map[string]string

// Resolve returns the set code for the display name.
// Returns EINVALID naming the set if there is no mapping.
func (m SetCodes) Resolve(setName string) (string, error) {
	code, ok := m[setName]
	if !ok || code == "" {
		return "", Errorf(EINVALID, "set code was not defined for %q", setName)
	}
	return code, nil
}
