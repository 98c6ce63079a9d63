package dispatch

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/sebas/frontdesk/internal/frontdesk/config"
	"github.com/sebas/frontdesk/internal/frontdesk/platform"
)

type fakeClient struct {
	dispatchCalls    int
	participantCalls int
	dispatchErr      error
	participantErr   error

	lastAgent    string
	lastRoom     string
	lastMetadata string
	lastReq      platform.ParticipantRequest

	order  []string
	closed bool
}

func (f *fakeClient) Room() platform.RoomAPI         { return nil }
func (f *fakeClient) SIP() platform.SIPAPI           { return (*fakeSIP)(f) }
func (f *fakeClient) Dispatch() platform.DispatchAPI { return (*fakeDispatch)(f) }
func (f *fakeClient) Close()                         { f.closed = true }

type fakeDispatch fakeClient

func (f *fakeDispatch) CreateDispatch(ctx context.Context, agentName, room, metadata string) error {
	f.dispatchCalls++
	f.order = append(f.order, "dispatch")
	f.lastAgent = agentName
	f.lastRoom = room
	f.lastMetadata = metadata
	return f.dispatchErr
}

type fakeSIP fakeClient

func (f *fakeSIP) TransferParticipant(ctx context.Context, room, identity, transferTo string, playDialtone bool) error {
	return errors.New("not implemented")
}

func (f *fakeSIP) CreateParticipant(ctx context.Context, req platform.ParticipantRequest) (string, error) {
	f.participantCalls++
	f.order = append(f.order, "participant")
	f.lastReq = req
	return req.Identity, f.participantErr
}

func testConfig() *config.Config {
	return &config.Config{
		SIPOutboundTrunkID: "ST_abc123",
		AgentName:          "frontdesk-agent",
		DefaultRegion:      "US",
	}
}

func newTestDispatcher(cfg *config.Config, client *fakeClient) *Dispatcher {
	return New(cfg, func() (platform.Client, error) {
		return client, nil
	}, nil, nil)
}

func TestPlaceCall(t *testing.T) {
	client := &fakeClient{}
	d := newTestDispatcher(testConfig(), client)

	if !d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = false, want true")
	}

	if client.dispatchCalls != 1 || client.participantCalls != 1 {
		t.Errorf("calls = dispatch %d participant %d, want 1 each", client.dispatchCalls, client.participantCalls)
	}
	// Dispatch binding must exist before the SIP leg joins
	if len(client.order) != 2 || client.order[0] != "dispatch" || client.order[1] != "participant" {
		t.Errorf("call order = %v, want [dispatch participant]", client.order)
	}
	if client.lastAgent != "frontdesk-agent" {
		t.Errorf("agent name = %q", client.lastAgent)
	}
	if client.lastMetadata != "+14155550123" {
		t.Errorf("dispatch metadata = %q, want the normalized number", client.lastMetadata)
	}
	if client.lastReq.TrunkID != "ST_abc123" {
		t.Errorf("trunk id = %q", client.lastReq.TrunkID)
	}
	if client.lastReq.Room != client.lastRoom {
		t.Errorf("participant room %q != dispatch room %q", client.lastReq.Room, client.lastRoom)
	}
	// Success must mean an answered leg, not a ringing one
	if !client.lastReq.WaitUntilAnswered {
		t.Error("WaitUntilAnswered not set on the SIP leg")
	}
	if !strings.HasPrefix(client.lastRoom, "outb-") {
		t.Errorf("generated room name = %q", client.lastRoom)
	}
	if !client.closed {
		t.Error("client handle not closed")
	}
}

func TestPlaceCallNormalizesNumber(t *testing.T) {
	client := &fakeClient{}
	d := newTestDispatcher(testConfig(), client)

	if !d.PlaceCall(context.Background(), "(415) 555-0123", "room-7") {
		t.Fatal("PlaceCall() = false, want true")
	}
	if client.lastMetadata != "+14155550123" {
		t.Errorf("metadata = %q, want +14155550123", client.lastMetadata)
	}
	if client.lastRoom != "room-7" {
		t.Errorf("room = %q, want the supplied name", client.lastRoom)
	}
}

func TestPlaceCallInvalidNumber(t *testing.T) {
	client := &fakeClient{}
	d := newTestDispatcher(testConfig(), client)

	if d.PlaceCall(context.Background(), "not-a-number", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
	if client.dispatchCalls != 0 || client.participantCalls != 0 {
		t.Errorf("remote calls made for invalid number: dispatch %d participant %d", client.dispatchCalls, client.participantCalls)
	}
}

func TestPlaceCallMissingTrunk(t *testing.T) {
	cfg := testConfig()
	cfg.SIPOutboundTrunkID = ""
	client := &fakeClient{}
	d := newTestDispatcher(cfg, client)

	if d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
	if client.dispatchCalls != 0 {
		t.Errorf("dispatch calls = %d, want 0", client.dispatchCalls)
	}
}

func TestPlaceCallMalformedTrunk(t *testing.T) {
	cfg := testConfig()
	cfg.SIPOutboundTrunkID = "TR_wrong"
	d := newTestDispatcher(cfg, &fakeClient{})

	if d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
}

func TestPlaceCallDispatchFailure(t *testing.T) {
	client := &fakeClient{dispatchErr: errors.New("platform down")}
	d := newTestDispatcher(testConfig(), client)

	if d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
	if client.participantCalls != 0 {
		t.Errorf("participant created after failed dispatch: %d calls", client.participantCalls)
	}
	if !client.closed {
		t.Error("client handle not closed on failure path")
	}
}

func TestPlaceCallParticipantFailure(t *testing.T) {
	client := &fakeClient{participantErr: errors.New("trunk rejected")}
	d := newTestDispatcher(testConfig(), client)

	if d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
	if !client.closed {
		t.Error("client handle not closed on failure path")
	}
}

func TestPlaceCallFactoryFailure(t *testing.T) {
	d := New(testConfig(), func() (platform.Client, error) {
		return nil, errors.New("no credentials")
	}, nil, nil)

	if d.PlaceCall(context.Background(), "+14155550123", "") {
		t.Fatal("PlaceCall() = true, want false")
	}
}

func TestGenerateRoomName(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 100; i++ {
		name := generateRoomName()
		if !strings.HasPrefix(name, "outb-") || len(name) != len("outb-")+8 {
			t.Fatalf("room name = %q", name)
		}
		if seen[name] {
			t.Fatalf("room name collision: %q", name)
		}
		seen[name] = true
	}
}
