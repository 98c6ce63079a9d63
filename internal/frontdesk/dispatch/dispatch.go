// Package dispatch places outbound calls: it binds an agent worker to a
// fresh room and originates a SIP leg to the target number over the
// provisioned trunk.
package dispatch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/sebas/frontdesk/internal/frontdesk/config"
	"github.com/sebas/frontdesk/internal/frontdesk/events"
	"github.com/sebas/frontdesk/internal/frontdesk/phone"
	"github.com/sebas/frontdesk/internal/frontdesk/platform"
)

// DefaultDispatchTimeout bounds the remote calls of one dispatch attempt.
const DefaultDispatchTimeout = 30 * time.Second

// Dispatcher places outbound calls through the platform.
type Dispatcher struct {
	cfg       *config.Config
	factory   platform.Factory
	publisher events.Publisher
	logger    *slog.Logger
}

// New creates a Dispatcher. The factory opens a fresh platform client per
// call attempt; the handle is closed on every exit path.
func New(cfg *config.Config, factory platform.Factory, publisher events.Publisher, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.Default()
	}
	if publisher == nil {
		publisher = events.NewNoopPublisher()
	}
	return &Dispatcher{
		cfg:       cfg,
		factory:   factory,
		publisher: publisher,
		logger:    logger,
	}
}

// PlaceCall dials rawNumber and binds the agent to the resulting room.
// roomName is generated when empty. Returns false, with the cause logged,
// on invalid numbers, missing trunk configuration, or any platform
// failure; it never panics or propagates an error upward.
func (d *Dispatcher) PlaceCall(ctx context.Context, rawNumber, roomName string) bool {
	number, ok := phone.Normalize(rawNumber, d.cfg.DefaultRegion)
	if !ok {
		d.logger.Error("[Dispatch] Invalid phone number",
			"raw", rawNumber,
			"region", d.cfg.DefaultRegion,
		)
		return false
	}

	if err := d.cfg.ValidateTrunk(); err != nil {
		d.logger.Error("[Dispatch] Trunk configuration invalid", "error", err)
		return false
	}

	if roomName == "" {
		roomName = generateRoomName()
	}

	timeout := d.cfg.DispatchTimeout
	if timeout <= 0 {
		timeout = DefaultDispatchTimeout
	}
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	client, err := d.factory()
	if err != nil {
		d.logger.Error("[Dispatch] Platform client unavailable", "error", err)
		return false
	}
	defer client.Close()

	// The dispatch binding carries the target number as metadata; that is
	// how the session later learns it is outbound and to whom.
	if err := client.Dispatch().CreateDispatch(ctx, d.cfg.AgentName, roomName, number); err != nil {
		d.logger.Error("[Dispatch] Agent dispatch failed",
			"room", roomName,
			"agent", d.cfg.AgentName,
			"error", err,
		)
		return false
	}

	identity, err := client.SIP().CreateParticipant(ctx, platform.ParticipantRequest{
		TrunkID:  d.cfg.SIPOutboundTrunkID,
		Number:   number,
		Room:     roomName,
		Identity: "sip:" + number,
		Name:     "Caller " + number,
		// Block until the callee answers; a ringing leg is not a placed call
		WaitUntilAnswered: true,
	})
	if err != nil {
		d.logger.Error("[Dispatch] SIP participant creation failed",
			"room", roomName,
			"number", number,
			"error", err,
		)
		return false
	}

	d.logger.Info("[Dispatch] Call placed",
		"room", roomName,
		"number", number,
		"participant", identity,
	)
	if err := d.publisher.Publish(ctx, events.NewCallDispatched(roomName, number, d.cfg.SIPOutboundTrunkID, identity)); err != nil {
		d.logger.Warn("[Dispatch] Event publish failed", "error", err)
	}
	return true
}

// generateRoomName returns a collision-resistant room name with a random
// hex suffix, e.g. "outb-1a2b3c4d".
func generateRoomName() string {
	suffix := strings.ReplaceAll(uuid.New().String(), "-", "")[:8]
	return fmt.Sprintf("outb-%s", suffix)
}
