package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/zeusync/circlesweep/internal/config"
	"github.com/zeusync/circlesweep/internal/injector"
)

func main() {
	var (
		configPath = flag.String("config", "", "scenario file (.yaml, .yml or .json); built-in room when empty")
		steps      = flag.Int("steps", 0, "steps per scenario; 0 uses the scenario's own count")
		logLevel   = flag.String("log-level", "", "override log level (debug, info, warn, error)")
	)
	flag.Parse()

	if err := run(*configPath, *steps, *logLevel); err != nil {
		fmt.Fprintln(os.Stderr, "sweepsim:", err)
		os.Exit(1)
	}
}

func run(configPath string, steps int, logLevel string) error {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.LoadFile(configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	runner, cleanup, err := injector.InitializeRunner(cfg)
	if err != nil {
		return fmt.Errorf("initialize: %w", err)
	}
	defer cleanup()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	summaries, err := runner.Run(ctx, steps)
	for _, s := range summaries {
		if s.Name == "" {
			continue
		}
		fmt.Printf("%-16s steps=%-6d collisions=%-4d pos=(%.6f, %.6f) dir=(%.6f, %.6f) digest=%016x\n",
			s.Name, s.Steps, s.Collisions,
			s.Final.Position.X, s.Final.Position.Y,
			s.Final.Direction.X, s.Final.Direction.Y,
			s.Digest)
	}
	return err
}
