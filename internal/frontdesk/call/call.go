// Package call holds the per-call session model and direction routing.
package call

import "fmt"

// Direction classifies a call session
type Direction int

const (
	// DirectionInbound is a call the platform accepted from a caller
	DirectionInbound Direction = iota
	// DirectionOutbound is a call this system placed via the outbound trunk
	DirectionOutbound
)

// String returns the string representation of the direction
func (d Direction) String() string {
	switch d {
	case DirectionInbound:
		return "inbound"
	case DirectionOutbound:
		return "outbound"
	default:
		return fmt.Sprintf("Unknown(%d)", int(d))
	}
}

// Decide classifies a session from its dispatch metadata and returns the
// effective target number for outbound calls ("" for inbound).
//
// The dispatch metadata contract is a single string: a "+"-prefixed value
// is the outbound target, anything else means the session was not placed
// by the dispatcher and is treated as inbound. A "+"-prefixed target that
// is not a valid number still routes outbound; number correctness was
// enforced before dispatch, and a dead target surfaces later as a gateway
// error rather than here.
func Decide(metadata string) (Direction, string) {
	if metadata == "" || metadata[0] != '+' {
		return DirectionInbound, ""
	}
	return DirectionOutbound, metadata
}

// Session represents one active call. It lives only for the duration of
// the call and is never persisted.
type Session struct {
	Direction    Direction
	TargetNumber string // E.164, outbound only
	Room         string // Opaque room identifier, unique per call

	// SIPParticipantIdentity is set once a SIP leg attaches to the room.
	SIPParticipantIdentity string
}

// NewSession creates a session for the given room, classifying it from
// the dispatch metadata.
func NewSession(room, metadata string) *Session {
	direction, target := Decide(metadata)
	return &Session{
		Direction:    direction,
		TargetNumber: target,
		Room:         room,
	}
}
