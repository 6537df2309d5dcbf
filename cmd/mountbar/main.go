// Package main is the entry point for the mountbar CLI.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/mountbar/cmd/mountbar/commands"
	"go.trai.ch/mountbar/internal/adapters/detector"
	"go.trai.ch/mountbar/internal/adapters/logger"
	"go.trai.ch/mountbar/internal/app"
	"go.trai.ch/mountbar/internal/core/domain"
	_ "go.trai.ch/mountbar/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, func(), error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, func(), error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, func() {}, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	// 0. Context with signal handling
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	// 1. Initialize application components
	components, cleanup, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}
	defer cleanup()

	// 2. Interface - CLI
	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)
	if d := components.Detector; d != nil {
		cli.SetOutputDetector(func(w io.Writer, mode string) bool {
			return detector.ResolveMode(d.Detect(w), mode) == detector.ModeJSON
		})
	}
	cli.SetLogHook(func(jsonMode, debug bool) {
		if l, ok := components.Logger.(*logger.Logger); ok {
			l.SetJSON(jsonMode || components.Settings.JSONLogs)
			l.SetDebug(debug)
		}
	})

	// 3. Execution
	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrStillMounted) {
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
