// Command console drives the dialog policy from a terminal, without any
// telephony attached. Type intent labels (affirmative, name_given <name>,
// info_request, consent_yes, ...) and watch what the agent would say and
// do. Useful for reviewing script changes before they reach a caller.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/sebas/frontdesk/internal/frontdesk/call"
	"github.com/sebas/frontdesk/internal/frontdesk/config"
	"github.com/sebas/frontdesk/internal/frontdesk/dialog"
	"github.com/sebas/frontdesk/internal/frontdesk/gateway"
	"github.com/sebas/frontdesk/internal/logger"
)

// printSpeaker prints utterances the way the caller would hear them.
type printSpeaker struct{}

func (printSpeaker) Say(ctx context.Context, text string) error {
	fmt.Printf("agent: %q\n", text)
	return nil
}

// dryActions stands in for the gateway; no platform is attached.
type dryActions struct{}

func (dryActions) TransferToHuman(ctx context.Context) gateway.Result {
	fmt.Println("-- would transfer to human --")
	return gateway.ResultTransferred
}

func (dryActions) EndCallWithReason(ctx context.Context, reason string) gateway.Result {
	fmt.Printf("-- would end call (%s) --\n", reason)
	return gateway.ResultEnded
}

func main() {
	cfg := config.Load()

	logger.InitLogger(os.Stderr)
	logger.SetLevel(cfg.LogLevel)

	persona := dialog.Persona{Name: cfg.PersonaName, Company: cfg.CompanyName}
	direction := call.DirectionInbound
	script := dialog.InboundScript(persona)
	if args := flag.Args(); len(args) > 0 && args[0] == "outbound" {
		direction = call.DirectionOutbound
		script = dialog.OutboundScript(persona)
	}

	fmt.Printf("Dialog console (%s). Intent labels per line; 'quit' exits.\n", direction)

	ctx := context.Background()
	policy := dialog.NewPolicy(script, printSpeaker{}, dryActions{}, slog.Default())
	policy.Open(ctx)

	scanner := bufio.NewScanner(os.Stdin)
	for !policy.Terminated() {
		fmt.Printf("[%s] intent> ", policy.State())
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" {
			break
		}

		label, name, _ := strings.Cut(line, " ")
		policy.Advance(ctx, dialog.Event{
			Intent: dialog.ParseIntent(label),
			Name:   strings.TrimSpace(name),
		})
	}

	fmt.Printf("Final state: %s\n", policy.State())
}
