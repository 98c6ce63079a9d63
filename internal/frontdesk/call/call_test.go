package call

import "testing"

func TestDecide(t *testing.T) {
	tests := []struct {
		name       string
		metadata   string
		wantDir    Direction
		wantTarget string
	}{
		{"empty metadata is inbound", "", DirectionInbound, ""},
		{"E.164 metadata is outbound", "+14155550123", DirectionOutbound, "+14155550123"},
		{"digits without plus are inbound", "14155550123", DirectionInbound, ""},
		{"arbitrary text is inbound", "abc", DirectionInbound, ""},
		{"plus-prefixed garbage still routes outbound", "+", DirectionOutbound, "+"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, target := Decide(tt.metadata)
			if dir != tt.wantDir {
				t.Errorf("Decide(%q) direction = %v, want %v", tt.metadata, dir, tt.wantDir)
			}
			if target != tt.wantTarget {
				t.Errorf("Decide(%q) target = %q, want %q", tt.metadata, target, tt.wantTarget)
			}
		})
	}
}

func TestNewSession(t *testing.T) {
	sess := NewSession("room-1", "+14155550123")
	if sess.Direction != DirectionOutbound {
		t.Errorf("Direction = %v, want outbound", sess.Direction)
	}
	if sess.TargetNumber != "+14155550123" {
		t.Errorf("TargetNumber = %q", sess.TargetNumber)
	}
	if sess.Room != "room-1" {
		t.Errorf("Room = %q", sess.Room)
	}

	sess = NewSession("room-2", "")
	if sess.Direction != DirectionInbound {
		t.Errorf("Direction = %v, want inbound", sess.Direction)
	}
	if sess.TargetNumber != "" {
		t.Errorf("TargetNumber = %q, want empty", sess.TargetNumber)
	}
}

func TestDirectionString(t *testing.T) {
	if got := DirectionInbound.String(); got != "inbound" {
		t.Errorf("DirectionInbound.String() = %q", got)
	}
	if got := DirectionOutbound.String(); got != "outbound" {
		t.Errorf("DirectionOutbound.String() = %q", got)
	}
}
