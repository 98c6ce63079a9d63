// Package gateway executes the two irreversible call actions: handing the
// caller to a human and terminating the call. Remote failures never escape
// this package; every operation maps to the Result vocabulary.
package gateway

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/sebas/frontdesk/internal/frontdesk/call"
	"github.com/sebas/frontdesk/internal/frontdesk/events"
	"github.com/sebas/frontdesk/internal/frontdesk/platform"
)

// SIPIdentityPrefix marks the telephony-originated participant in a room.
const SIPIdentityPrefix = "sip:"

// ErrNoSIPParticipant is returned when no SIP leg is present in the room.
var ErrNoSIPParticipant = errors.New("no SIP participant in room")

// Result is the outcome vocabulary of gateway operations
type Result int

const (
	// ResultTransferred means the caller was handed to a human
	ResultTransferred Result = iota
	// ResultEnded means the call was terminated
	ResultEnded
	// ResultError means the action did not take effect; details are logged
	ResultError
)

// String returns the string representation of the result
func (r Result) String() string {
	switch r {
	case ResultTransferred:
		return "transferred"
	case ResultEnded:
		return "ended"
	case ResultError:
		return "error"
	default:
		return fmt.Sprintf("Unknown(%d)", int(r))
	}
}

// Config contains dependencies for creating a Gateway.
type Config struct {
	Room       platform.RoomAPI
	SIP        platform.SIPAPI
	Session    *call.Session
	TransferTo string // Deployment transfer target, tel: URI
	Publisher  events.Publisher
	Logger     *slog.Logger
}

// Gateway performs the terminal call actions for one session. Each action
// takes effect at most once; a repeat invocation after success returns
// ResultError without touching the platform again.
type Gateway struct {
	room       platform.RoomAPI
	sip        platform.SIPAPI
	session    *call.Session
	transferTo string
	publisher  events.Publisher
	logger     *slog.Logger

	mu   sync.Mutex
	done bool
}

// New creates a Gateway for a single call session.
func New(cfg Config) *Gateway {
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	if cfg.Publisher == nil {
		cfg.Publisher = events.NewNoopPublisher()
	}
	return &Gateway{
		room:       cfg.Room,
		sip:        cfg.SIP,
		session:    cfg.Session,
		transferTo: cfg.TransferTo,
		publisher:  cfg.Publisher,
		logger:     cfg.Logger,
	}
}

// claim marks the session terminal. Returns false if a terminal action
// already took effect.
func (g *Gateway) claim(action string) bool {
	g.mu.Lock()
	defer g.mu.Unlock()
	if g.done {
		g.logger.Warn("[Gateway] Terminal action repeated",
			"action", action,
			"room", g.session.Room,
		)
		return false
	}
	g.done = true
	return true
}

// release undoes a claim after a failed action so the call can continue
// in its current state.
func (g *Gateway) release() {
	g.mu.Lock()
	g.done = false
	g.mu.Unlock()
}

// TransferToHuman locates the SIP leg in the session's room and hands it
// to the configured transfer target with dial tone playing. Returns
// ResultError, never an error, when the leg is missing or the platform
// call fails.
func (g *Gateway) TransferToHuman(ctx context.Context) Result {
	if !g.claim("transfer") {
		return ResultError
	}

	identity, err := g.findSIPParticipant(ctx)
	if err != nil {
		g.logger.Error("[Gateway] Transfer aborted",
			"room", g.session.Room,
			"error", err,
		)
		g.release()
		return ResultError
	}
	g.session.SIPParticipantIdentity = identity

	g.logger.Info("[Gateway] Transferring call",
		"room", g.session.Room,
		"participant", identity,
		"transfer_to", g.transferTo,
	)

	if err := g.sip.TransferParticipant(ctx, g.session.Room, identity, g.transferTo, true); err != nil {
		g.logger.Error("[Gateway] Transfer failed",
			"room", g.session.Room,
			"participant", identity,
			"error", err,
		)
		g.release()
		return ResultError
	}

	g.logger.Info("[Gateway] Transfer complete",
		"room", g.session.Room,
		"participant", identity,
	)
	if err := g.publisher.Publish(ctx, events.NewCallTransferred(g.session.Room, identity, g.transferTo)); err != nil {
		g.logger.Warn("[Gateway] Event publish failed", "error", err)
	}
	return ResultTransferred
}

// EndCall deletes the session's room, dropping all legs. Returns
// ResultError, never an error, when the platform call fails.
func (g *Gateway) EndCall(ctx context.Context) Result {
	return g.endCall(ctx, "")
}

// EndCallWithReason is EndCall with a reason recorded on the ended event.
func (g *Gateway) EndCallWithReason(ctx context.Context, reason string) Result {
	return g.endCall(ctx, reason)
}

func (g *Gateway) endCall(ctx context.Context, reason string) Result {
	if !g.claim("end") {
		return ResultError
	}

	g.logger.Info("[Gateway] Ending call",
		"room", g.session.Room,
		"reason", reason,
	)

	if err := g.room.DeleteRoom(ctx, g.session.Room); err != nil {
		g.logger.Error("[Gateway] End call failed",
			"room", g.session.Room,
			"error", err,
		)
		g.release()
		return ResultError
	}

	if err := g.publisher.Publish(ctx, events.NewCallEnded(g.session.Room, reason)); err != nil {
		g.logger.Warn("[Gateway] Event publish failed", "error", err)
	}
	return ResultEnded
}

// findSIPParticipant returns the identity of the first remote participant
// whose identity carries the SIP marker.
func (g *Gateway) findSIPParticipant(ctx context.Context) (string, error) {
	participants, err := g.room.ListParticipants(ctx, g.session.Room)
	if err != nil {
		return "", fmt.Errorf("list participants: %w", err)
	}
	for _, p := range participants {
		if strings.HasPrefix(p.Identity, SIPIdentityPrefix) {
			return p.Identity, nil
		}
	}
	return "", ErrNoSIPParticipant
}
