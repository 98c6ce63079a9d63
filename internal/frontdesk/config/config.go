package config

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/sebas/frontdesk/internal/frontdesk/call"
)

// TrunkIDPrefix is the expected prefix of a provisioned outbound trunk id.
const TrunkIDPrefix = "ST_"

// Config holds the front-desk agent configuration
type Config struct {
	// Platform settings
	ServerURL string // Platform API endpoint
	APIKey    string
	APISecret string

	// Telephony settings
	SIPOutboundTrunkID     string // Must start with TrunkIDPrefix
	TransferNumberInbound  string // Where inbound callers are transferred (tel: URI)
	TransferNumberOutbound string // Where outbound callers are transferred (tel: URI)
	DefaultRegion          string // Fallback region for phone number parsing

	// Agent settings
	AgentName   string // Dispatch binding name, must match worker registration
	PersonaName string // Name the agent introduces itself with
	CompanyName string // Company the agent represents

	// Dispatch settings
	DispatchTimeout time.Duration // Bound on remote calls while placing a call

	LogLevel string
}

// Load loads configuration from command line flags and environment variables.
// A .env file in the working directory is read first if present.
func Load() *Config {
	_ = godotenv.Load()

	cfg := &Config{
		DispatchTimeout: 30 * time.Second,
	}

	// Define flags
	flag.StringVar(&cfg.ServerURL, "url", "", "Platform server URL")
	flag.StringVar(&cfg.SIPOutboundTrunkID, "trunk", "", "SIP outbound trunk id")
	flag.StringVar(&cfg.AgentName, "agent", "frontdesk-agent", "Agent name used for dispatch binding")
	flag.StringVar(&cfg.DefaultRegion, "region", "AU", "Default region for phone number parsing")
	flag.StringVar(&cfg.LogLevel, "loglevel", "info", "Log level (debug, info, warn, error)")
	flag.Parse()

	// Override with environment variables if set
	if url := os.Getenv("LIVEKIT_URL"); url != "" {
		cfg.ServerURL = url
	}
	cfg.APIKey = os.Getenv("LIVEKIT_API_KEY")
	cfg.APISecret = os.Getenv("LIVEKIT_API_SECRET")
	if trunk := os.Getenv("SIP_OUTBOUND_TRUNK_ID"); trunk != "" {
		cfg.SIPOutboundTrunkID = trunk
	}
	if transfer := os.Getenv("TRANSFER_NUMBER_INBOUND"); transfer != "" {
		cfg.TransferNumberInbound = transfer
	}
	if transfer := os.Getenv("TRANSFER_NUMBER_OUTBOUND"); transfer != "" {
		cfg.TransferNumberOutbound = transfer
	}
	if agent := os.Getenv("AGENT_NAME"); agent != "" {
		cfg.AgentName = agent
	}
	if region := os.Getenv("DEFAULT_REGION"); region != "" {
		cfg.DefaultRegion = region
	}
	if loglevel := os.Getenv("LOGLEVEL"); loglevel != "" {
		cfg.LogLevel = loglevel
	}

	if cfg.PersonaName == "" {
		cfg.PersonaName = "Jamie"
	}
	if persona := os.Getenv("PERSONA_NAME"); persona != "" {
		cfg.PersonaName = persona
	}
	if cfg.CompanyName == "" {
		cfg.CompanyName = "Digitix"
	}
	if company := os.Getenv("COMPANY_NAME"); company != "" {
		cfg.CompanyName = company
	}

	return cfg
}

// ValidateTrunk checks that the outbound trunk id is present and well-formed.
func (c *Config) ValidateTrunk() error {
	if c.SIPOutboundTrunkID == "" {
		return fmt.Errorf("SIP_OUTBOUND_TRUNK_ID is not set")
	}
	if !strings.HasPrefix(c.SIPOutboundTrunkID, TrunkIDPrefix) {
		return fmt.Errorf("trunk id %q does not start with %q", c.SIPOutboundTrunkID, TrunkIDPrefix)
	}
	return nil
}

// TransferNumber returns the deployment transfer target for the given
// call direction.
func (c *Config) TransferNumber(direction call.Direction) string {
	if direction == call.DirectionOutbound {
		return c.TransferNumberOutbound
	}
	return c.TransferNumberInbound
}
