package models

import "strings"

// SearchCriteria holds the values typed into the search form, already trimmed.
// Value is only set for partial-value searches.
type SearchCriteria struct {
	Name       string
	NationalID string
	TaxID      string
	Value      string
}

// NewFieldCriteria trims the three search fields
func NewFieldCriteria(name, nationalID, taxID string) SearchCriteria {
	return SearchCriteria{
		Name:       strings.TrimSpace(name),
		NationalID: strings.TrimSpace(nationalID),
		TaxID:      strings.TrimSpace(taxID),
	}
}

// NewValueCriteria trims a partial search value
func NewValueCriteria(value string) SearchCriteria {
	return SearchCriteria{Value: strings.TrimSpace(value)}
}

// Type reports whether the criteria describe a field or a value search
func (c SearchCriteria) Type() SearchType {
	if c.Value != "" {
		return SearchTypeValue
	}
	return SearchTypeFields
}

// HasAnyField is true when at least one of the three form fields is set
func (c SearchCriteria) HasAnyField() bool {
	return c.Name != "" || c.NationalID != "" || c.TaxID != ""
}

// UsedFields lists which criteria were supplied, never their values
func (c SearchCriteria) UsedFields() []string {
	used := make([]string, 0, 3)
	if c.Value != "" {
		return append(used, "value")
	}
	if c.Name != "" {
		used = append(used, "name")
	}
	if c.NationalID != "" {
		used = append(used, "dpi")
	}
	if c.TaxID != "" {
		used = append(used, "nit")
	}
	return used
}

// SearchResult is the combined answer of a search. It is replaced by the next search.
type SearchResult struct {
	Internal []InternalRecord
	External ExternalSummary
}

// InternalRecord is one match from the internal record store
type InternalRecord struct {
	Name       string
	NationalID string
	TaxID      string
	Email      string
	BirthDate  string
	Phones     []string
}

// DisplayPhones returns the non-blank phones as sent, in their original order
func (r InternalRecord) DisplayPhones() []string {
	phones := make([]string, 0, len(r.Phones))
	for _, p := range r.Phones {
		if strings.TrimSpace(p) != "" {
			phones = append(phones, p)
		}
	}
	return phones
}

// ExternalSummary is the enrichment data collected from external sources
type ExternalSummary struct {
	Links  []string
	Phones []string
	Emails []string
}

// HistoryEntry is one past query as stored by the backend
type HistoryEntry struct {
	Date       string
	Name       string
	NationalID string
	TaxID      string
}

// RawRecord is one row of the backend data store
type RawRecord struct {
	ID         string
	Name       string
	NationalID string
	TaxID      string
	BirthDate  string
	Email      string
	Phones     [5]string
}

// RecordsPageSize caps the raw-record browser
const RecordsPageSize = 100
