package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/iiroan/scour/internal/options"
	"github.com/iiroan/scour/internal/ui"
)

func newWatchCmd(app *application) *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Print preferences whenever another process changes them",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.runWatch(cmd)
		},
	}
}

func (a *application) runWatch(cmd *cobra.Command) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	return a.watch(ctx, cmd)
}

func (a *application) watch(ctx context.Context, cmd *cobra.Command) error {
	w, err := a.store.Watch()
	if err != nil {
		return err
	}
	defer w.Close()

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, ui.HintStyle.Render("Watching "+a.store.Path()+" (ctrl+c to stop)"))
	if err := renderSnapshot(out, a.store.Snapshot(), outputText); err != nil {
		return err
	}

	return w.Run(ctx, func(s *options.Store) {
		a.logger.Info("options changed", "path", s.Path())
		fmt.Fprintln(out, ui.MutedStyle.Render("changed at "+time.Now().Format(time.Kitchen)))
		if err := renderSnapshot(out, s.Snapshot(), outputText); err != nil {
			a.logger.Warn("could not print options", "error", err)
		}
	})
}
