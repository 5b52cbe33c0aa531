package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/lvminor/internal/server"
	"github.com/katalvlaran/lvminor/internal/session"
)

const shutdownTimeout = 5 * time.Second

func serveCmd(opts *options) *cobra.Command {
	var (
		addr       string
		rows, cols int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Relax the seed graph in the background and serve /tree, /metrics and /healthz",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := opts.load(cmd, cmd.ErrOrStderr()); err != nil {
				return err
			}
			if cmd.Flags().Changed("addr") {
				opts.cfg.Metrics.Addr = addr
			}

			reg := prometheus.NewRegistry()
			s, err := session.New(opts.cfg, reg)
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

			srv := &http.Server{
				Addr:              opts.cfg.Metrics.Addr,
				Handler:           server.NewHandler(s.Tree, reg),
				ReadHeaderTimeout: 5 * time.Second,
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			eg, ctx := errgroup.WithContext(ctx)

			eg.Go(func() error {
				log.Info("serving on {{addr}}", "addr", srv.Addr)
				Info.Fprintf(cmd.OutOrStdout(), "lvminor serving on %s\n", srv.Addr)
				if err := srv.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			eg.Go(func() error {
				return s.Run(ctx)
			})
			eg.Go(func() error {
				<-ctx.Done()
				sctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(sctx); err != nil {
					log.Error("graceful shutdown failed: {{error}}", "error", err)
					return srv.Close()
				}
				return nil
			})

			return eg.Wait()
		},
	}

	cmd.Flags().StringVarP(&addr, "addr", "a", ":2112", "listen address (overrides metrics.addr)")
	cmd.Flags().IntVar(&rows, "rows", 0, "seed with a grid of this many rows (with --cols)")
	cmd.Flags().IntVar(&cols, "cols", 0, "seed with a grid of this many columns (with --rows)")

	return cmd
}
