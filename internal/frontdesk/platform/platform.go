// Package platform abstracts the real-time communication platform that
// owns rooms, SIP legs and agent dispatch. The decision core talks only to
// these interfaces; the LiveKit-backed implementation lives in livekit.go.
package platform

import (
	"context"
)

// ParticipantInfo describes a remote participant in a call room
type ParticipantInfo struct {
	Identity string
	Name     string
}

// ParticipantRequest contains parameters for creating a SIP-originated
// participant in a room.
type ParticipantRequest struct {
	TrunkID  string // Provisioned outbound trunk id
	Number   string // E.164 target number
	Room     string
	Identity string // Identity the SIP leg joins with
	Name     string

	// WaitUntilAnswered makes the create call block until the callee picks
	// up, so success means a live leg rather than a ringing one.
	WaitUntilAnswered bool
}

// RoomAPI exposes room-level operations
type RoomAPI interface {
	// ListParticipants returns the remote participants currently in the room
	ListParticipants(ctx context.Context, room string) ([]ParticipantInfo, error)

	// DeleteRoom tears the room down, disconnecting all legs
	DeleteRoom(ctx context.Context, room string) error
}

// SIPAPI exposes SIP leg operations
type SIPAPI interface {
	// TransferParticipant hands the SIP leg off to transferTo (a tel: URI).
	// playDialtone keeps comfort tone running while the transfer completes.
	TransferParticipant(ctx context.Context, room, identity, transferTo string, playDialtone bool) error

	// CreateParticipant dials req.Number over req.TrunkID and joins the
	// resulting leg to req.Room. Returns the identity the leg joined with.
	CreateParticipant(ctx context.Context, req ParticipantRequest) (string, error)
}

// DispatchAPI exposes agent dispatch operations
type DispatchAPI interface {
	// CreateDispatch binds an agent worker (registered under agentName) to
	// the room. metadata is handed to the worker verbatim; this is how the
	// call direction and target number travel to the session.
	CreateDispatch(ctx context.Context, agentName, room, metadata string) error
}

// Client bundles the platform APIs behind one handle. Handles are scoped
// to a single call attempt: open via a Factory, Close on every exit path.
type Client interface {
	Room() RoomAPI
	SIP() SIPAPI
	Dispatch() DispatchAPI
	Close()
}

// Factory opens a fresh platform client handle
type Factory func() (Client, error)
