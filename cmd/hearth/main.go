package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/hearthlab/hearth/pkg/engine"
)

const version = "0.1.0"

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "chat":
			chatCmd := flag.NewFlagSet("chat", flag.ExitOnError)
			chatCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: hearth chat [flags]\n\nStart an interactive session with an assistant agent.\n\nFlags:\n")
				chatCmd.PrintDefaults()
			}
			cfgPath := chatCmd.String("config", "", "path to configuration file (default: built-in config)")
			envFile := chatCmd.String("env", ".env", "path to .env file (ignored if missing)")
			agentName := chatCmd.String("agent", "", "assistant agent to talk to (default: first assistant in config)")
			_ = chatCmd.Parse(os.Args[2:])

			if err := loadDotEnv(*envFile); err != nil {
				fatal(err)
			}
			if err := runChat(*cfgPath, *agentName); err != nil {
				fatal(err)
			}

			return
		case "mcp":
			mcpCmd := flag.NewFlagSet("mcp", flag.ExitOnError)
			mcpCmd.Usage = func() {
				fmt.Fprintf(os.Stderr, "Usage: hearth mcp\n\nServe the built-in assistant tools over MCP on stdin/stdout.\n")
			}
			_ = mcpCmd.Parse(os.Args[2:])

			if err := runMCP(); err != nil {
				fatal(err)
			}

			return
		}
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: hearth [flags]\n       hearth <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  chat  Start an interactive session with an assistant agent\n  mcp   Serve the built-in assistant tools over MCP on stdin/stdout\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: built-in config)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	scenario := flag.String("scenario", "", "run a single scenario by name (default: all)")
	verbose := flag.Bool("verbose", false, "show per-phase agent logs")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fatal(err)
	}

	if err := run(*configPath, *scenario, *verbose); err != nil {
		fatal(err)
	}
}

func fatal(err error) {
	fmt.Fprintf(os.Stderr, "error: %v\n", err)
	os.Exit(1)
}

// loadDotEnv loads the given .env file. A missing file is not an error.
func loadDotEnv(path string) error {
	err := godotenv.Load(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	return err
}

// loadConfig resolves the effective configuration: an explicit path wins,
// otherwise the built-in default config.
func loadConfig(configPath string) (engine.Config, error) {
	if configPath == "" {
		return engine.Default(), nil
	}
	return engine.LoadConfig(configPath)
}

// newLogger returns the agent-phase logger: text on stderr when verbose,
// discarded otherwise so the rendered event stream stays readable.
func newLogger(verbose bool) *slog.Logger {
	if verbose {
		return slog.New(slog.NewTextHandler(os.Stderr, nil))
	}
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// run executes the configured scenarios, rendering engine events to stdout.
func run(configPath, scenario string, verbose bool) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(configPath)
	if err != nil {
		return err
	}

	eng, err := engine.New(cfg, newLogger(verbose))
	if err != nil {
		return err
	}

	sub := eng.Events().Subscribe(64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		renderEvents(os.Stdout, sub)
	}()

	if scenario != "" {
		_, err = eng.RunScenario(ctx, scenario)
	} else {
		err = eng.RunAll(ctx)
	}

	eng.Events().Unsubscribe(sub)
	<-done

	return err
}
