package main

import (
	"context"
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/Cyclone1070/fileview/internal/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var errInterrupted = errors.New("interrupted")

func newServeCommand(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the root over HTTP",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.serve(cmd.Context())
		},
	}

	flags := cmd.Flags()
	flags.String("listen", ":8000", "listen address")
	flags.String("username", "", "login username (requires --password)")
	flags.String("password", "", "login password (requires --username)")
	flags.Bool("write", false, "enable append and upload")
	flags.Bool("metrics", true, "expose /metrics")

	a.mustBind(flags, map[string]string{
		"server.listen":   "listen",
		"auth.username":   "username",
		"auth.password":   "password",
		"write.enabled":   "write",
		"metrics.enabled": "metrics",
	})
	return cmd
}

// serve runs the HTTP server and the signal watcher in one group; the first
// to return stops the other.
func (a *app) serve(ctx context.Context) error {
	srv, err := server.New(a.cfg, a.service, a.logger.Named("http"))
	if err != nil {
		return err
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		return srv.Start(gctx)
	})

	g.Go(func() error {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigCh)

		select {
		case sig := <-sigCh:
			a.logger.Info("received signal", zap.String("signal", sig.String()))
			return errInterrupted
		case <-gctx.Done():
			return nil
		}
	})

	if err := g.Wait(); err != nil && !errors.Is(err, errInterrupted) {
		return err
	}
	return nil
}
