package models

// SearchType defines how the search criteria are sent to the backend
type SearchType string

const (
	// SearchTypeFields searches by name, national id and tax id together
	SearchTypeFields SearchType = "fields"
	// SearchTypeValue searches by a single partial value
	SearchTypeValue SearchType = "value"
)
