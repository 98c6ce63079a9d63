package events

import (
	"context"
	"encoding/json"
	"testing"
)

func TestEventSubjectNaming(t *testing.T) {
	tests := []struct {
		event Event
		want  string
	}{
		{NewCallDispatched("outb-1a2b3c4d", "+14155550123", "ST_abc", "sip:+14155550123"), "frontdesk.calls.outb-1a2b3c4d.dispatched"},
		{NewCallTransferred("room-1", "sip:+1415", "tel:+61480012345"), "frontdesk.calls.room-1.transferred"},
		{NewCallEnded("room-2", "caller declined"), "frontdesk.calls.room-2.ended"},
	}

	for _, tt := range tests {
		if got := tt.event.Subject(); got != tt.want {
			t.Errorf("Subject() = %q, want %q", got, tt.want)
		}
	}
}

func TestCallDispatchedEventJSON(t *testing.T) {
	event := NewCallDispatched("outb-1a2b3c4d", "+14155550123", "ST_abc", "sip:+14155550123")

	data, err := json.Marshal(event)
	if err != nil {
		t.Fatalf("Failed to marshal: %v", err)
	}

	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("Failed to unmarshal: %v", err)
	}

	checks := map[string]string{
		"event_type":    "call.dispatched",
		"room":          "outb-1a2b3c4d",
		"direction":     "outbound",
		"target_number": "+14155550123",
		"trunk_id":      "ST_abc",
	}

	for k, want := range checks {
		if got, ok := m[k].(string); !ok || got != want {
			t.Errorf("m[%q] = %v, want %q", k, m[k], want)
		}
	}

	if m["event_id"] == "" {
		t.Error("event_id not set")
	}
}

func TestNoopPublisher(t *testing.T) {
	pub := NewNoopPublisher()

	event := NewCallEnded("room-1", "")

	// Should not error
	if err := pub.Publish(context.Background(), event); err != nil {
		t.Errorf("NoopPublisher.Publish() error = %v", err)
	}

	if err := pub.Close(); err != nil {
		t.Errorf("NoopPublisher.Close() error = %v", err)
	}
}

func TestChannelPublisher(t *testing.T) {
	pub := NewChannelPublisher(10)
	ctx := context.Background()

	for i := 0; i < 5; i++ {
		event := NewCallEnded("room-"+string(rune('0'+i)), "")
		if err := pub.Publish(ctx, event); err != nil {
			t.Errorf("Publish() error = %v", err)
		}
	}

	ch := pub.Events()
	for i := 0; i < 5; i++ {
		select {
		case event := <-ch:
			want := "room-" + string(rune('0'+i))
			if event.Room() != want {
				t.Errorf("event %d room = %q, want %q", i, event.Room(), want)
			}
		default:
			t.Fatalf("event %d not buffered", i)
		}
	}

	if err := pub.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}

	// Publishing after close is a no-op, not a panic
	if err := pub.Publish(ctx, NewCallEnded("late", "")); err != nil {
		t.Errorf("Publish() after Close error = %v", err)
	}
}
