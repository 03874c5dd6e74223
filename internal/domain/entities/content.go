package entities

import (
	"github.com/google/uuid"
)

// Record is one row of a content table. Content entities are declared as
// data (internal/domain/schema), so rows travel as column-keyed maps and the
// JSON shape matches the table's column names verbatim. The admin dashboard
// and the public site read the same contract.
type Record map[string]any

// ID extracts the record's primary key. Rows read back from the store may
// carry the id as a uuid or as its string form depending on the driver.
func (r Record) ID() (uuid.UUID, bool) {
	switch v := r["id"].(type) {
	case uuid.UUID:
		return v, true
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil, false
		}
		return id, true
	}
	return uuid.Nil, false
}

// String returns the named column as a string when present and non-null.
func (r Record) String(column string) (string, bool) {
	s, ok := r[column].(string)
	return s, ok
}

// SlugCheck is the advisory uniqueness pre-check result. Checked is false
// when the point query failed and the check fell open; the store's unique
// constraint remains the authoritative guard either way.
type SlugCheck struct {
	Slug      string `json:"slug"`
	Available bool   `json:"available"`
	Checked   bool   `json:"checked"`
	Message   string `json:"message,omitempty"`
}
