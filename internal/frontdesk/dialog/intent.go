package dialog

import "strings"

// Intent is an abstract classification of a caller utterance, supplied by
// the upstream reasoning collaborator. This package never inspects raw
// speech; it only reacts to these labels.
type Intent string

const (
	IntentAffirmative  Intent = "affirmative"
	IntentNegative     Intent = "negative"
	IntentNameGiven    Intent = "name_given"
	IntentRefusal      Intent = "refusal"
	IntentInfoRequest  Intent = "info_request"
	IntentPriceInquiry Intent = "price_inquiry"
	IntentConsentYes   Intent = "consent_yes"
	IntentConsentNo    Intent = "consent_no"
	IntentUnclear      Intent = "unclear"
	IntentTimeout      Intent = "timeout"
)

// ParseIntent maps a classifier label to an Intent. Unknown labels come
// back as IntentUnclear so the policy's retry budget still applies.
func ParseIntent(label string) Intent {
	switch Intent(strings.ToLower(strings.TrimSpace(label))) {
	case IntentAffirmative:
		return IntentAffirmative
	case IntentNegative:
		return IntentNegative
	case IntentNameGiven:
		return IntentNameGiven
	case IntentRefusal:
		return IntentRefusal
	case IntentInfoRequest:
		return IntentInfoRequest
	case IntentPriceInquiry:
		return IntentPriceInquiry
	case IntentConsentYes:
		return IntentConsentYes
	case IntentConsentNo:
		return IntentConsentNo
	case IntentTimeout:
		return IntentTimeout
	default:
		return IntentUnclear
	}
}

// Event is one classified caller turn. Name is set when Intent is
// IntentNameGiven.
type Event struct {
	Intent Intent
	Name   string
}
