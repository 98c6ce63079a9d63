package config

import (
	"testing"

	"github.com/sebas/frontdesk/internal/frontdesk/call"
)

func TestValidateTrunk(t *testing.T) {
	tests := []struct {
		name    string
		trunkID string
		wantErr bool
	}{
		{"valid", "ST_abc123", false},
		{"empty", "", true},
		{"wrong prefix", "TR_abc123", true},
		{"prefix only", "ST_", false},
		{"lowercase prefix", "st_abc123", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &Config{SIPOutboundTrunkID: tt.trunkID}
			err := cfg.ValidateTrunk()
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateTrunk() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestTransferNumber(t *testing.T) {
	cfg := &Config{
		TransferNumberInbound:  "tel:+61480012345",
		TransferNumberOutbound: "tel:+61480098765",
	}

	if got := cfg.TransferNumber(call.DirectionInbound); got != "tel:+61480012345" {
		t.Errorf("TransferNumber(inbound) = %q", got)
	}
	if got := cfg.TransferNumber(call.DirectionOutbound); got != "tel:+61480098765" {
		t.Errorf("TransferNumber(outbound) = %q", got)
	}
}
