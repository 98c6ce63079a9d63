package dialog

import "fmt"

// Script is the declarative sentence bundle for one call direction.
// Everything a caller can hear lives here; the policy decides when each
// line is spoken. Lines stay short, at most two sentences per turn,
// and never contain control tokens or action names.
type Script struct {
	// ConfirmationPrompt opens the session ("can you hear me ok?")
	ConfirmationPrompt string
	// ConfirmationReask is the single retry when the opening goes unanswered
	ConfirmationReask string
	// Greeting introduces the agent and asks for the caller's name
	Greeting string
	// NameReask is the single retry when the name is not understood
	NameReask string
	// ThanksFormat acknowledges the name (one fmt verb) and asks for
	// transfer consent
	ThanksFormat string
	// PackageAnswer describes the package in one sentence, then re-asks consent
	PackageAnswer string
	// PriceAnswer answers a price question, then re-asks consent
	PriceAnswer string
	// ConsentReask is the single retry on an ambiguous consent answer
	ConsentReask string
	// Farewell closes the call politely when the caller declines
	Farewell string
}

// Thanks renders the name acknowledgement for the given caller name.
func (s *Script) Thanks(name string) string {
	return fmt.Sprintf(s.ThanksFormat, name)
}

// Persona identifies who the agent claims to be.
type Persona struct {
	Name    string // e.g. "Jamie"
	Company string // e.g. "Digitix"
}

const consentQuestion = "Is it OK if I transfer you to a human staff member who can help with the details?"

// InboundScript returns the sentence bundle for calls the caller placed.
func InboundScript(p Persona) *Script {
	return &Script{
		ConfirmationPrompt: "Hello, can you hear me ok?",
		ConfirmationReask:  "Sorry, I didn't catch that. Can you hear me ok?",
		Greeting: fmt.Sprintf(
			"Hello, this is %s from %s. Good news, you've reached the free events package line. May I have your name?",
			p.Name, p.Company),
		NameReask:     "Sorry, I didn't catch that. Can you please repeat your name?",
		ThanksFormat:  "Thanks, %s. " + consentQuestion,
		PackageAnswer: "It's a free events promotion that gives you complimentary access to our partner events. " + consentQuestion,
		PriceAnswer:   "The package is free. Would you like me to transfer you to a human staff member?",
		ConsentReask:  "Sorry, I didn't catch that. " + consentQuestion,
		Farewell:      "Thanks for your time. Have a great day.",
	}
}

// OutboundScript returns the sentence bundle for calls this system placed.
// Same flow, but the greeting explains why we are calling.
func OutboundScript(p Persona) *Script {
	s := InboundScript(p)
	s.Greeting = fmt.Sprintf(
		"Hello, this is %s from %s. I'm calling about our free events package. May I have your name?",
		p.Name, p.Company)
	return s
}
