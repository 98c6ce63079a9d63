// Package app wires the decision core into a per-call session loop. The
// platform worker hands each accepted or dispatched call to Agent.HandleCall
// together with the collaborator surfaces it owns (speech out, intents in).
package app

import (
	"context"
	"errors"
	"io"
	"log/slog"

	"github.com/sebas/frontdesk/internal/frontdesk/call"
	"github.com/sebas/frontdesk/internal/frontdesk/config"
	"github.com/sebas/frontdesk/internal/frontdesk/dialog"
	"github.com/sebas/frontdesk/internal/frontdesk/events"
	"github.com/sebas/frontdesk/internal/frontdesk/gateway"
	"github.com/sebas/frontdesk/internal/frontdesk/platform"
)

// IntentSource yields classified caller turns, one at a time. The upstream
// reasoning collaborator implements it; tests and the console harness fake
// it. Next blocks until the caller's next utterance is classified, returns
// io.EOF when the transport is gone.
type IntentSource interface {
	Next(ctx context.Context) (dialog.Event, error)
}

// Agent runs the front-desk flow for calls. One Agent serves many
// concurrent calls; each HandleCall invocation is an independent session
// with no shared mutable state.
type Agent struct {
	cfg       *config.Config
	factory   platform.Factory
	publisher events.Publisher
	logger    *slog.Logger
}

// New creates an Agent.
func New(cfg *config.Config, factory platform.Factory, publisher events.Publisher, logger *slog.Logger) *Agent {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &Agent{
		cfg:       cfg,
		factory:   factory,
		publisher: publisher,
		logger:    logger,
	}
}

// HandleCall runs one call to completion: classifies the direction from
// the dispatch metadata, selects the matching script bundle, and drives
// the dialog policy until it terminates or the caller disconnects.
func (a *Agent) HandleCall(ctx context.Context, room, metadata string, speaker dialog.Speaker, source IntentSource) error {
	sess := call.NewSession(room, metadata)
	logger := a.logger.With("room", room, "direction", sess.Direction.String())

	logger.Info("[Agent] Call started",
		"target", sess.TargetNumber,
	)

	client, err := a.factory()
	if err != nil {
		return err
	}
	defer client.Close()

	g := gateway.New(gateway.Config{
		Room:       client.Room(),
		SIP:        client.SIP(),
		Session:    sess,
		TransferTo: a.cfg.TransferNumber(sess.Direction),
		Publisher:  a.publisher,
		Logger:     logger,
	})

	policy := dialog.NewPolicy(a.script(sess.Direction), speaker, g, logger)
	return a.runSession(ctx, policy, source, logger)
}

// script selects the instruction bundle for the call direction.
func (a *Agent) script(direction call.Direction) *dialog.Script {
	persona := dialog.Persona{Name: a.cfg.PersonaName, Company: a.cfg.CompanyName}
	if direction == call.DirectionOutbound {
		return dialog.OutboundScript(persona)
	}
	return dialog.InboundScript(persona)
}

// runSession is the strictly sequential conversation loop: one classified
// utterance in, one policy turn out, until a terminal state.
func (a *Agent) runSession(ctx context.Context, policy *dialog.Policy, source IntentSource, logger *slog.Logger) error {
	policy.Open(ctx)

	for !policy.Terminated() {
		ev, err := source.Next(ctx)
		if err != nil {
			if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) {
				logger.Info("[Agent] Caller gone", "state", policy.State().String())
				return nil
			}
			logger.Error("[Agent] Intent source failed", "error", err)
			return err
		}

		turn := policy.Advance(ctx, ev)
		if turn.ActionTaken {
			logger.Info("[Agent] Terminal action",
				"result", turn.Result.String(),
				"state", turn.State.String(),
			)
		}
	}

	logger.Info("[Agent] Call finished")
	return nil
}
