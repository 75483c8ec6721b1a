package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/Netflix/go-env"
	"github.com/joho/godotenv"
	"github.com/mama165/sdk-go/logs"

	"dispatch-lab/moderation"
	"dispatch-lab/runtime"
	"dispatch-lab/scenario"
	"dispatch-lab/services"
	"dispatch-lab/sink"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Fatal error: %v\n", err)
		os.Exit(1)
	}
}

// run initializes all components, drives one scenario from stdin to stdout,
// and centralizes error reporting. This pattern is preferred over calling
// os.Exit or panic directly because it keeps defers running, keeps the
// entry point testable, and gives graceful shutdown a single place to live.
func run() error {
	// 1. Configuration & Logger
	_ = godotenv.Load()
	var config Config
	if _, err := env.UnmarshalFromEnviron(&config); err != nil {
		return fmt.Errorf("config error: %w", err)
	}
	log := logs.GetLoggerFromString(config.LogLevel)

	if len(os.Args) < 2 {
		return fmt.Errorf("usage: %s <observer|strategy|mediator|chain>", os.Args[0])
	}
	scenarioName := os.Args[1]

	// 2. Optional moderation for the mediator scenario
	moderator, err := buildModerator(config)
	if err != nil {
		return err
	}

	// 3. Supervision & Orchestration
	orchestrator := runtime.NewOrchestrator(
		log,
		runtime.NewSupervisor(log, config.RestartInterval, nil),
		config.BufferSize,
	)
	service := services.NewLabService(log, orchestrator, moderator)

	// 4. Context & Signals
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 5. Run the scenario: stdin in, stdout out, nothing ambient inside
	source := scenario.NewScannerSource(os.Stdin)
	output := sink.NewConsoleSink(os.Stdout, config.Colours)

	if err := service.RunScenario(ctx, scenarioName, source, output); err != nil {
		return err
	}

	// 6. Final report
	if config.Report {
		printReport(os.Stdout, scenarioName, orchestrator.Counter().Snapshot(), config.Colours)
	}
	log.Info("Scenario finished", "name", scenarioName)
	return nil
}

// buildModerator returns nil when no word list is configured.
func buildModerator(config Config) (*moderation.Moderator, error) {
	if strings.TrimSpace(config.ModerationWords) == "" {
		return nil, nil
	}
	replacement, err := CharacterRune(config.ModerationCharReplacement)
	if err != nil {
		return nil, err
	}
	words := strings.Split(config.ModerationWords, ",")
	moderator, err := moderation.NewModerator(words, replacement)
	if err != nil {
		return nil, err
	}
	return &moderator, nil
}
