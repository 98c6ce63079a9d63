package dialog

import (
	"context"
	"log/slog"

	"github.com/sebas/frontdesk/internal/frontdesk/gateway"
)

// maxRetries is the re-ask budget per decision point. Exceeding it always
// terminates the call; a caller is never left hanging in a loop.
const maxRetries = 1

// Profile is the transient caller profile for one call. Discarded when
// the call ends.
type Profile struct {
	Name         string
	ConsentGiven *bool
	RetryCount   int // 0..1, resets on every state change
}

// Speaker is the platform's text-to-speech path. The policy speaks only
// human-facing sentences through it, never action names or control tokens.
type Speaker interface {
	Say(ctx context.Context, text string) error
}

// Actions is the terminal side-effect surface. Satisfied by *gateway.Gateway.
type Actions interface {
	TransferToHuman(ctx context.Context) gateway.Result
	EndCallWithReason(ctx context.Context, reason string) gateway.Result
}

// Turn reports what one Advance call did.
type Turn struct {
	Say         string // What was spoken this turn, "" for a silent turn
	State       State  // State after the turn
	ActionTaken bool
	Result      gateway.Result // Valid only when ActionTaken
}

// Policy is the deterministic dialog state machine for one call. It is
// not safe for concurrent use; each call session processes one classified
// utterance at a time.
type Policy struct {
	script  *Script
	speaker Speaker
	actions Actions
	logger  *slog.Logger

	state   State
	profile Profile
}

// NewPolicy creates a Policy in StateAwaitingConfirmation.
func NewPolicy(script *Script, speaker Speaker, actions Actions, logger *slog.Logger) *Policy {
	if logger == nil {
		logger = slog.Default()
	}
	return &Policy{
		script:  script,
		speaker: speaker,
		actions: actions,
		logger:  logger,
		state:   StateAwaitingConfirmation,
	}
}

// State returns the current dialog state.
func (p *Policy) State() State { return p.state }

// Profile returns a copy of the caller profile.
func (p *Policy) Profile() Profile { return p.profile }

// Terminated reports whether the conversation reached its final state.
func (p *Policy) Terminated() bool { return p.state.IsTerminal() }

// Open speaks the session-start confirmation prompt. Call once, before
// the first Advance.
func (p *Policy) Open(ctx context.Context) Turn {
	return p.turn(ctx, p.script.ConfirmationPrompt)
}

// Advance processes one classified caller turn: speaks at most one short
// utterance, transitions the state machine, and invokes a terminal action
// when the flow calls for one. It never returns an error; remote failures
// are absorbed by the gateway and reported through Turn.Result.
func (p *Policy) Advance(ctx context.Context, ev Event) Turn {
	p.logger.Debug("[Dialog] Advancing",
		"state", p.state.String(),
		"intent", string(ev.Intent),
	)

	switch p.state {
	case StateAwaitingConfirmation:
		return p.advanceAwaitingConfirmation(ctx, ev)
	case StateGreeting:
		return p.advanceGreeting(ctx, ev)
	case StateCapturingName:
		return p.advanceCapturingName(ctx, ev)
	case StateQualifying:
		return p.advanceQualifying(ctx, ev)
	case StateAwaitingConsent:
		return p.advanceAwaitingConsent(ctx, ev)
	default:
		// Terminated absorbs everything
		return Turn{State: p.state}
	}
}

func (p *Policy) advanceAwaitingConfirmation(ctx context.Context, ev Event) Turn {
	if ev.Intent == IntentAffirmative {
		p.transitionTo(StateGreeting)
		return p.turn(ctx, p.script.Greeting)
	}

	// Negative, timeout or unclear: one bounded re-prompt, then give up
	if p.profile.RetryCount < maxRetries {
		p.profile.RetryCount++
		return p.turn(ctx, p.script.ConfirmationReask)
	}
	return p.endCall(ctx, "no confirmation", "")
}

func (p *Policy) advanceGreeting(ctx context.Context, ev Event) Turn {
	switch ev.Intent {
	case IntentNameGiven:
		p.profile.Name = ev.Name
		p.transitionTo(StateQualifying)
		return p.turn(ctx, p.script.Thanks(ev.Name))
	case IntentRefusal, IntentNegative, IntentConsentNo:
		return p.endCall(ctx, "caller declined", p.script.Farewell)
	default:
		// One re-ask, tracked by the CapturingName state
		p.transitionTo(StateCapturingName)
		p.profile.RetryCount = maxRetries
		return p.turn(ctx, p.script.NameReask)
	}
}

func (p *Policy) advanceCapturingName(ctx context.Context, ev Event) Turn {
	switch ev.Intent {
	case IntentNameGiven:
		p.profile.Name = ev.Name
		p.transitionTo(StateQualifying)
		return p.turn(ctx, p.script.Thanks(ev.Name))
	case IntentRefusal, IntentNegative, IntentConsentNo:
		return p.endCall(ctx, "caller declined", p.script.Farewell)
	default:
		// Still no clear name after the single retry
		return p.endCall(ctx, "no clear name", "")
	}
}

func (p *Policy) advanceQualifying(ctx context.Context, ev Event) Turn {
	switch ev.Intent {
	case IntentInfoRequest:
		// Answering a question does not consume the retry budget
		return p.turn(ctx, p.script.PackageAnswer)
	case IntentPriceInquiry:
		return p.turn(ctx, p.script.PriceAnswer)
	case IntentConsentYes, IntentAffirmative:
		consent := true
		p.profile.ConsentGiven = &consent
		p.transitionTo(StateAwaitingConsent)
		return p.transfer(ctx)
	case IntentConsentNo, IntentRefusal, IntentNegative:
		consent := false
		p.profile.ConsentGiven = &consent
		return p.endCall(ctx, "caller declined", p.script.Farewell)
	default:
		// Ambiguous answer: one re-ask, then terminate
		if p.profile.RetryCount < maxRetries {
			p.profile.RetryCount++
			return p.turn(ctx, p.script.ConsentReask)
		}
		return p.endCall(ctx, "ambiguous consent", "")
	}
}

// advanceAwaitingConsent only runs when a transfer attempt failed and the
// call was left in place. Renewed consent retries the transfer; anything
// terminal ends the call; the rest is ignored.
func (p *Policy) advanceAwaitingConsent(ctx context.Context, ev Event) Turn {
	switch ev.Intent {
	case IntentConsentYes, IntentAffirmative:
		return p.transfer(ctx)
	case IntentConsentNo, IntentRefusal, IntentNegative:
		return p.endCall(ctx, "caller declined", p.script.Farewell)
	default:
		return Turn{State: p.state}
	}
}

// transfer invokes the transfer action silently. The state moves to
// Terminated only when the handoff took effect; on failure the call
// continues where it is.
func (p *Policy) transfer(ctx context.Context) Turn {
	result := p.actions.TransferToHuman(ctx)
	if result == gateway.ResultTransferred {
		p.transitionTo(StateTerminated)
	} else {
		p.logger.Warn("[Dialog] Transfer did not take effect",
			"state", p.state.String(),
			"result", result.String(),
		)
	}
	return Turn{State: p.state, ActionTaken: true, Result: result}
}

// endCall speaks the farewell (if any) and terminates the call. The state
// always reaches Terminated, even when the remote teardown fails; the
// conversation is over either way.
func (p *Policy) endCall(ctx context.Context, reason, farewell string) Turn {
	said := ""
	if farewell != "" {
		said = p.turn(ctx, farewell).Say
	}
	result := p.actions.EndCallWithReason(ctx, reason)
	p.transitionTo(StateTerminated)
	return Turn{Say: said, State: p.state, ActionTaken: true, Result: result}
}

// turn speaks one utterance and reports the current state. Speech
// failures are logged and swallowed; the dialog must not crash because
// the audio path hiccuped.
func (p *Policy) turn(ctx context.Context, say string) Turn {
	if say != "" && p.speaker != nil {
		if err := p.speaker.Say(ctx, say); err != nil {
			p.logger.Warn("[Dialog] Speak failed",
				"state", p.state.String(),
				"error", err,
			)
		}
	}
	return Turn{Say: say, State: p.state}
}

// transitionTo moves the state machine, resetting the per-state retry
// budget. Invalid transitions indicate a programming error and are logged
// loudly rather than applied.
func (p *Policy) transitionTo(next State) {
	if !p.state.CanTransitionTo(next) {
		p.logger.Error("[Dialog] Invalid transition",
			"from", p.state.String(),
			"to", next.String(),
		)
		return
	}
	p.logger.Debug("[Dialog] State transition",
		"from", p.state.String(),
		"to", next.String(),
	)
	p.state = next
	p.profile.RetryCount = 0
}
