package dialog

import "fmt"

// State represents the lifecycle state of a call conversation
type State int

const (
	// StateAwaitingConfirmation is the initial state, waiting for the
	// caller to confirm they can hear the agent
	StateAwaitingConfirmation State = iota
	// StateGreeting is after the greeting was spoken, awaiting the caller's name
	StateGreeting
	// StateCapturingName is after the single name re-ask
	StateCapturingName
	// StateQualifying is awaiting transfer consent or caller questions
	StateQualifying
	// StateAwaitingConsent is after consent was given, transfer in flight
	StateAwaitingConsent
	// StateTerminated is the final state after the call ends
	StateTerminated
)

// String returns the string representation of the state
func (s State) String() string {
	switch s {
	case StateAwaitingConfirmation:
		return "AwaitingConfirmation"
	case StateGreeting:
		return "Greeting"
	case StateCapturingName:
		return "CapturingName"
	case StateQualifying:
		return "Qualifying"
	case StateAwaitingConsent:
		return "AwaitingConsent"
	case StateTerminated:
		return "Terminated"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// validTransitions defines which state transitions are allowed.
// Re-prompts keep the current state and are not transitions.
var validTransitions = map[State][]State{
	StateAwaitingConfirmation: {StateGreeting, StateTerminated},
	StateGreeting:             {StateCapturingName, StateQualifying, StateTerminated},
	StateCapturingName:        {StateQualifying, StateTerminated},
	StateQualifying:           {StateAwaitingConsent, StateTerminated},
	StateAwaitingConsent:      {StateTerminated},
	StateTerminated:           {}, // Terminal state, no transitions allowed
}

// CanTransitionTo checks if a transition from current state to next state is valid
func (s State) CanTransitionTo(next State) bool {
	allowed, ok := validTransitions[s]
	if !ok {
		return false
	}
	for _, state := range allowed {
		if state == next {
			return true
		}
	}
	return false
}

// IsTerminal returns true if this is a terminal state
func (s State) IsTerminal() bool {
	return s == StateTerminated
}
