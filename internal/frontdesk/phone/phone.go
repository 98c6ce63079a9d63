// Package phone validates and canonicalizes caller-supplied phone numbers.
package phone

import (
	"github.com/nyaruka/phonenumbers"
)

// Normalize parses raw into canonical E.164 form (+ followed by digits only).
// defaultRegion is the ISO 3166-1 country code used when raw carries no
// explicit country prefix. Returns ok=false if the input does not parse or
// is not a valid number for its inferred region.
//
// Validity depends on the numbering-plan tables shipped with the
// phonenumbers library, not on logic in this package.
func Normalize(raw, defaultRegion string) (string, bool) {
	num, err := phonenumbers.Parse(raw, defaultRegion)
	if err != nil {
		return "", false
	}
	if !phonenumbers.IsValidNumber(num) {
		return "", false
	}
	return phonenumbers.Format(num, phonenumbers.E164), true
}
