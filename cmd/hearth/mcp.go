package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/hearthlab/hearth/pkg/assistanttoolbox/defaults"
	"github.com/hearthlab/hearth/pkg/tools/mcpserver"
)

// runMCP serves the built-in assistant tools over MCP on stdin/stdout.
func runMCP() error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	s := mcpserver.New("hearth-tools", version)
	s.RegisterBox(defaults.New())

	return s.Serve(ctx, os.Stdin, os.Stdout)
}
