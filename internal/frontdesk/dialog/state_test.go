package dialog

import "testing"

func TestStateTransitions(t *testing.T) {
	tests := []struct {
		from State
		to   State
		want bool
	}{
		{StateAwaitingConfirmation, StateGreeting, true},
		{StateAwaitingConfirmation, StateTerminated, true},
		{StateAwaitingConfirmation, StateQualifying, false},
		{StateGreeting, StateCapturingName, true},
		{StateGreeting, StateQualifying, true},
		{StateCapturingName, StateQualifying, true},
		{StateCapturingName, StateGreeting, false},
		{StateQualifying, StateAwaitingConsent, true},
		{StateQualifying, StateTerminated, true},
		{StateAwaitingConsent, StateTerminated, true},
		{StateAwaitingConsent, StateQualifying, false},
		{StateTerminated, StateGreeting, false},
		{StateTerminated, StateTerminated, false},
	}

	for _, tt := range tests {
		if got := tt.from.CanTransitionTo(tt.to); got != tt.want {
			t.Errorf("%v.CanTransitionTo(%v) = %v, want %v", tt.from, tt.to, got, tt.want)
		}
	}
}

func TestStateString(t *testing.T) {
	states := map[State]string{
		StateAwaitingConfirmation: "AwaitingConfirmation",
		StateGreeting:             "Greeting",
		StateCapturingName:        "CapturingName",
		StateQualifying:           "Qualifying",
		StateAwaitingConsent:      "AwaitingConsent",
		StateTerminated:           "Terminated",
	}
	for s, want := range states {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}

func TestIsTerminal(t *testing.T) {
	if StateQualifying.IsTerminal() {
		t.Error("Qualifying should not be terminal")
	}
	if !StateTerminated.IsTerminal() {
		t.Error("Terminated should be terminal")
	}
}

func TestParseIntent(t *testing.T) {
	tests := []struct {
		label string
		want  Intent
	}{
		{"affirmative", IntentAffirmative},
		{" Consent_Yes ", IntentConsentYes},
		{"name_given", IntentNameGiven},
		{"timeout", IntentTimeout},
		{"gibberish", IntentUnclear},
		{"", IntentUnclear},
	}
	for _, tt := range tests {
		if got := ParseIntent(tt.label); got != tt.want {
			t.Errorf("ParseIntent(%q) = %v, want %v", tt.label, got, tt.want)
		}
	}
}
