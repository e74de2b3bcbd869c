// Package main is the entry point for the isoforge image build tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/forgebsd/isoforge/cmd/isoforge/commands"
	"github.com/forgebsd/isoforge/internal/app"
	"github.com/forgebsd/isoforge/internal/core/domain"
	_ "github.com/forgebsd/isoforge/internal/wiring"
	"github.com/grindlemire/graft"
)

func main() {
	os.Exit(run())
}

func run() int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed.
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return 1
	}
	defer func() {
		_ = components.App.Close()
	}()

	cli := commands.New(components.App)
	cli.SetRecipeHook(components.App.SetRecipePath)

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, domain.ErrRunFailed) {
			// The failing action already logged its own report.
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
			return 1
		}
		components.Logger.Error(err)
		return 1
	}
	return 0
}
