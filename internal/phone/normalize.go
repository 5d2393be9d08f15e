// Package phone turns phone numbers from the record store into dialable links.
package phone

import (
	"strings"

	"github.com/nyaruka/phonenumbers"
)

const DefaultRegion = "GT"

// Normalizer parses numbers relative to a default region
type Normalizer struct {
	region string
}

func NewNormalizer(region string) *Normalizer {
	region = strings.ToUpper(strings.TrimSpace(region))
	if region == "" {
		region = DefaultRegion
	}
	return &Normalizer{region: region}
}

// E164 formats input as E.164. The second result is false when the number
// does not parse or is not valid for the region.
func (n *Normalizer) E164(input string) (string, bool) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return "", false
	}

	number, err := phonenumbers.Parse(trimmed, n.region)
	if err != nil {
		return trimmed, false
	}

	if !phonenumbers.IsValidNumber(number) {
		return trimmed, false
	}

	return phonenumbers.Format(number, phonenumbers.E164), true
}

// TelURI returns a tel: URI for input, or false when input is not a valid number
func (n *Normalizer) TelURI(input string) (string, bool) {
	e164, ok := n.E164(input)
	if !ok {
		return "", false
	}
	return "tel:" + e164, true
}
