package platform

import (
	"context"
	"fmt"

	"github.com/livekit/protocol/livekit"
	lksdk "github.com/livekit/server-sdk-go/v2"
)

// LiveKitClient implements Client over the LiveKit server SDK.
type LiveKitClient struct {
	roomClient     *lksdk.RoomServiceClient
	sipClient      *lksdk.SIPClient
	dispatchClient *lksdk.AgentDispatchClient
}

// NewLiveKitClient creates a client handle for the given deployment.
func NewLiveKitClient(url, apiKey, apiSecret string) (*LiveKitClient, error) {
	if url == "" || apiKey == "" || apiSecret == "" {
		return nil, fmt.Errorf("livekit: url, api key and api secret are required")
	}
	return &LiveKitClient{
		roomClient:     lksdk.NewRoomServiceClient(url, apiKey, apiSecret),
		sipClient:      lksdk.NewSIPClient(url, apiKey, apiSecret),
		dispatchClient: lksdk.NewAgentDispatchServiceClient(url, apiKey, apiSecret),
	}, nil
}

// LiveKitFactory returns a Factory producing client handles for the
// given deployment credentials.
func LiveKitFactory(url, apiKey, apiSecret string) Factory {
	return func() (Client, error) {
		return NewLiveKitClient(url, apiKey, apiSecret)
	}
}

func (c *LiveKitClient) Room() RoomAPI         { return (*lkRoomAPI)(c) }
func (c *LiveKitClient) SIP() SIPAPI           { return (*lkSIPAPI)(c) }
func (c *LiveKitClient) Dispatch() DispatchAPI { return (*lkDispatchAPI)(c) }

// Close releases the handle. The underlying twirp clients hold no
// persistent connections, so there is nothing remote to tear down.
func (c *LiveKitClient) Close() {}

type lkRoomAPI LiveKitClient

func (a *lkRoomAPI) ListParticipants(ctx context.Context, room string) ([]ParticipantInfo, error) {
	resp, err := a.roomClient.ListParticipants(ctx, &livekit.ListParticipantsRequest{
		Room: room,
	})
	if err != nil {
		return nil, fmt.Errorf("list participants: %w", err)
	}
	participants := make([]ParticipantInfo, 0, len(resp.Participants))
	for _, p := range resp.Participants {
		participants = append(participants, ParticipantInfo{
			Identity: p.Identity,
			Name:     p.Name,
		})
	}
	return participants, nil
}

func (a *lkRoomAPI) DeleteRoom(ctx context.Context, room string) error {
	_, err := a.roomClient.DeleteRoom(ctx, &livekit.DeleteRoomRequest{
		Room: room,
	})
	if err != nil {
		return fmt.Errorf("delete room: %w", err)
	}
	return nil
}

type lkSIPAPI LiveKitClient

func (a *lkSIPAPI) TransferParticipant(ctx context.Context, room, identity, transferTo string, playDialtone bool) error {
	_, err := a.sipClient.TransferSIPParticipant(ctx, &livekit.TransferSIPParticipantRequest{
		RoomName:            room,
		ParticipantIdentity: identity,
		TransferTo:          transferTo,
		PlayDialtone:        playDialtone,
	})
	if err != nil {
		return fmt.Errorf("transfer participant: %w", err)
	}
	return nil
}

func (a *lkSIPAPI) CreateParticipant(ctx context.Context, req ParticipantRequest) (string, error) {
	info, err := a.sipClient.CreateSIPParticipant(ctx, &livekit.CreateSIPParticipantRequest{
		SipTrunkId:          req.TrunkID,
		SipCallTo:           req.Number,
		RoomName:            req.Room,
		ParticipantIdentity: req.Identity,
		ParticipantName:     req.Name,
		WaitUntilAnswered:   req.WaitUntilAnswered,
	})
	if err != nil {
		return "", fmt.Errorf("create sip participant: %w", err)
	}
	return info.ParticipantIdentity, nil
}

type lkDispatchAPI LiveKitClient

func (a *lkDispatchAPI) CreateDispatch(ctx context.Context, agentName, room, metadata string) error {
	_, err := a.dispatchClient.CreateDispatch(ctx, &livekit.CreateAgentDispatchRequest{
		AgentName: agentName,
		Room:      room,
		Metadata:  metadata,
	})
	if err != nil {
		return fmt.Errorf("create dispatch: %w", err)
	}
	return nil
}
