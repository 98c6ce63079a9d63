package main

import (
	"bufio"
	"context"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sebas/frontdesk/internal/banner"
	"github.com/sebas/frontdesk/internal/frontdesk/config"
	"github.com/sebas/frontdesk/internal/frontdesk/dispatch"
	"github.com/sebas/frontdesk/internal/frontdesk/events"
	"github.com/sebas/frontdesk/internal/frontdesk/platform"
	"github.com/sebas/frontdesk/internal/logger"
)

func main() {
	cfg := config.Load()

	logger.InitLogger(os.Stdout)
	logger.SetLevel(cfg.LogLevel)

	banner.Print("Frontdesk Dialout", []banner.ConfigLine{
		{Label: "Server", Value: cfg.ServerURL},
		{Label: "Trunk", Value: cfg.SIPOutboundTrunkID},
		{Label: "Agent", Value: cfg.AgentName},
		{Label: "Region", Value: cfg.DefaultRegion},
	})

	fmt.Print("Enter phone number to call (include country code, e.g. +1234567890): ")
	reader := bufio.NewReader(os.Stdin)
	number, err := reader.ReadString('\n')
	if err != nil {
		slog.Error("Failed to read phone number", "error", err)
		os.Exit(1)
	}
	number = strings.TrimSpace(number)

	factory := platform.LiveKitFactory(cfg.ServerURL, cfg.APIKey, cfg.APISecret)
	dispatcher := dispatch.New(cfg, factory, events.NewLoggingPublisher(slog.Default()), slog.Default())

	fmt.Printf("Initiating call to %s...\n", number)
	if !dispatcher.PlaceCall(context.Background(), number, "") {
		fmt.Println("Failed to initiate call. Check the logs for more information.")
		os.Exit(1)
	}

	fmt.Println("Call initiated successfully! The agent will handle the call.")
	fmt.Println("Press Ctrl+C to exit (this won't end the call).")

	// Idle until interrupted; the call continues server-side
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	<-sigChan
	fmt.Println("\nExiting. The call will continue.")
}
