package calculator

import (
	"slices"
	"strings"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/mmynk/carnival/internal/models"
)

// Roster indexes the participants of one event by ID.
type Roster map[string]models.Participant

// NewRoster builds a Roster. When an ID appears twice the first one wins.
func NewRoster(participants []models.Participant) Roster {
	r := make(Roster, len(participants))
	for _, p := range participants {
		if _, dup := r[p.ID]; !dup {
			r[p.ID] = p
		}
	}
	return r
}

// Has reports whether id belongs to the roster.
func (r Roster) Has(id string) bool {
	_, ok := r[id]
	return ok
}

// Name returns the display name for id, or "" if unknown.
func (r Roster) Name(id string) string {
	return r[id].Name
}

// newNameCollator compares names ignoring case and accents, so "Álvaro"
// sorts next to "alvaro". A Collator is not safe for concurrent use, so
// every sort gets its own.
func newNameCollator() *collate.Collator {
	return collate.New(language.Und, collate.IgnoreCase, collate.IgnoreDiacritics)
}

// compareNames orders by collated name, then by ID to keep ties stable
// across runs.
func compareNames(c *collate.Collator, nameA, idA, nameB, idB string) int {
	if n := c.CompareString(nameA, nameB); n != 0 {
		return n
	}
	return strings.Compare(idA, idB)
}

// SortByName sorts participants in place by display name.
func SortByName(participants []models.Participant) {
	c := newNameCollator()
	slices.SortStableFunc(participants, func(a, b models.Participant) int {
		return compareNames(c, a.Name, a.ID, b.Name, b.ID)
	})
}
