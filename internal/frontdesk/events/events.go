// Package events publishes call lifecycle events for operators and tests.
//
// Subject hierarchy:
//
//	frontdesk.calls.<room>.dispatched   - outbound call placed
//	frontdesk.calls.<room>.transferred  - caller handed to a human
//	frontdesk.calls.<room>.ended        - call terminated by the agent
package events

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// SubjectPrefix is the root of all frontdesk subjects
const SubjectPrefix = "frontdesk.calls"

// EventType identifies the kind of call event
type EventType string

const (
	CallDispatched  EventType = "call.dispatched"
	CallTransferred EventType = "call.transferred"
	CallEnded       EventType = "call.ended"
)

// suffix returns the subject suffix for the event type
func (t EventType) suffix() string {
	switch t {
	case CallDispatched:
		return "dispatched"
	case CallTransferred:
		return "transferred"
	case CallEnded:
		return "ended"
	default:
		return "unknown"
	}
}

// Event is the interface all call events implement
type Event interface {
	Type() EventType
	Room() string
	Subject() string
	Timestamp() time.Time
}

// BaseEvent carries the fields common to all call events
type BaseEvent struct {
	EventID   string    `json:"event_id"`
	EventType EventType `json:"event_type"`
	EventTime time.Time `json:"event_time"`
	RoomName  string    `json:"room"`
	Direction string    `json:"direction,omitempty"`
}

func (e *BaseEvent) Type() EventType      { return e.EventType }
func (e *BaseEvent) Room() string         { return e.RoomName }
func (e *BaseEvent) Timestamp() time.Time { return e.EventTime }

// Subject builds the subject for this event.
// Example: frontdesk.calls.outb-1a2b3c4d.ended
func (e *BaseEvent) Subject() string {
	return fmt.Sprintf("%s.%s.%s", SubjectPrefix, e.RoomName, e.EventType.suffix())
}

func newBase(eventType EventType, room string) BaseEvent {
	return BaseEvent{
		EventID:   uuid.New().String(),
		EventType: eventType,
		EventTime: time.Now().UTC(),
		RoomName:  room,
	}
}

// CallDispatchedEvent records a successfully placed outbound call
type CallDispatchedEvent struct {
	BaseEvent
	TargetNumber        string `json:"target_number"`
	TrunkID             string `json:"trunk_id"`
	ParticipantIdentity string `json:"participant_identity"`
}

// NewCallDispatched creates a CallDispatchedEvent
func NewCallDispatched(room, number, trunkID, identity string) *CallDispatchedEvent {
	e := &CallDispatchedEvent{
		BaseEvent:           newBase(CallDispatched, room),
		TargetNumber:        number,
		TrunkID:             trunkID,
		ParticipantIdentity: identity,
	}
	e.Direction = "outbound"
	return e
}

// CallTransferredEvent records a caller handed off to a human
type CallTransferredEvent struct {
	BaseEvent
	ParticipantIdentity string `json:"participant_identity"`
	TransferTo          string `json:"transfer_to"`
}

// NewCallTransferred creates a CallTransferredEvent
func NewCallTransferred(room, identity, transferTo string) *CallTransferredEvent {
	return &CallTransferredEvent{
		BaseEvent:           newBase(CallTransferred, room),
		ParticipantIdentity: identity,
		TransferTo:          transferTo,
	}
}

// CallEndedEvent records a call the agent terminated
type CallEndedEvent struct {
	BaseEvent
	Reason string `json:"reason,omitempty"`
}

// NewCallEnded creates a CallEndedEvent
func NewCallEnded(room, reason string) *CallEndedEvent {
	return &CallEndedEvent{
		BaseEvent: newBase(CallEnded, room),
		Reason:    reason,
	}
}
