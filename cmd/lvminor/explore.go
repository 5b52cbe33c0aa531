package main

import (
	"context"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvminor/internal/session"
	"github.com/katalvlaran/lvminor/internal/tui"
)

func exploreCmd(opts *options) *cobra.Command {
	var rows, cols int

	cmd := &cobra.Command{
		Use:   "explore",
		Short: "Open the interactive terminal explorer",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The screen owns the terminal, so logs only go to --log-file.
			if err := opts.load(cmd, io.Discard); err != nil {
				return err
			}
			s, err := session.New(opts.cfg, nil)
			if err != nil {
				return err
			}
			g, err := seedGraph(rows, cols)
			if err != nil {
				return err
			}
			if err = s.Seed(g); err != nil {
				return err
			}

			screen, err := tcell.NewScreen()
			if err != nil {
				return err
			}
			if err = screen.Init(); err != nil {
				return err
			}
			defer screen.Fini()

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			ctx, cancel := context.WithCancel(ctx)
			defer cancel()

			done := make(chan error, 1)
			go func() { done <- s.Run(ctx) }()

			err = tui.NewApp(screen, s.Tree, 50*time.Millisecond).Run(ctx)
			cancel()
			if rerr := <-done; err == nil {
				err = rerr
			}

			return err
		},
	}

	cmd.Flags().IntVar(&rows, "rows", 0, "seed with a grid of this many rows (with --cols)")
	cmd.Flags().IntVar(&cols, "cols", 0, "seed with a grid of this many columns (with --rows)")

	return cmd
}
