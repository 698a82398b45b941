package cli

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"golang.org/x/sync/errgroup"

	"github.com/JonMunkholm/explore/internal/logging"
	"github.com/JonMunkholm/explore/internal/web"
)

func newServeCommand(g *globals) *cobra.Command {
	var (
		port        int
		maintenance bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the web UI",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := g.load(cmd)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("port") {
				cfg.Server.Port = port
			}
			if maintenance {
				cfg.Site.Maintenance = true
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			closeLogs := logging.Setup(cfg.Logging.Level, cfg.Logging.Format, cfg.Logging.SeqURL)
			defer closeLogs()
			slog.Info("configuration loaded", "config", cfg.String())

			svc := newService(cfg)
			server := web.NewServer(svc, cfg)

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			grp, ctx := errgroup.WithContext(ctx)
			grp.Go(func() error {
				if err := server.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
				return nil
			})
			grp.Go(func() error {
				<-ctx.Done()
				slog.Info("shutting down...")

				shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
				defer cancel()

				if status := svc.Limiter().Status(); status.Active > 0 {
					slog.Info("waiting for uploads to complete", "active", status.Active)
					if err := svc.Limiter().WaitForDrain(shutdownCtx); err != nil {
						slog.Warn("uploads did not complete in time", "error", err)
					}
				}
				return server.Shutdown(shutdownCtx)
			})

			err = grp.Wait()
			slog.Info("server stopped", "error", err)
			return err
		},
	}

	cmd.Flags().IntVarP(&port, "port", "p", 8080, "port to listen on (overrides SERVER_PORT)")
	cmd.Flags().BoolVar(&maintenance, "maintenance", false, "serve only the maintenance notice")
	return cmd
}
