package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/drawy/drawy/pkg/banner"
	"github.com/drawy/drawy/pkg/logging"
	"github.com/drawy/drawy/pkg/watch"
)

// watchFile re-renders --file on every change until interrupted.
func watchFile(cmd *cobra.Command, r *banner.Renderer, tabWidth int, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := cmd.OutOrStdout()
	w := watch.New(renderFile, func(data []byte) error {
		return r.Render(out, banner.SplitLines(string(data), tabWidth))
	})
	w.SetLogger(logging.WithComponent(logger, "watch"))

	if err := w.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
