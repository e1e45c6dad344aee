package cmd

import (
	"fmt"
	"log/slog"

	"github.com/nfrund/folio/internal/app"
	"github.com/nfrund/folio/internal/config"
	"github.com/nfrund/folio/internal/logging"
	"github.com/nfrund/folio/internal/registry"
	"github.com/nfrund/folio/internal/server"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
)

func newServeCmd() *cobra.Command {
	var addr string
	serveCmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.New()
			if addr != "" {
				cfg.ServerAddr = addr
			}
			logging.New(cfg.GetLogFormat(), cfg.GetLogLevel())
			return serve(cfg)
		},
	}
	serveCmd.Flags().StringVar(&addr, "addr", "", "listen address, overrides SERVER_ADDR")
	return serveCmd
}

func serve(cfg *config.Config) error {
	deps, err := server.Resolve(server.NewContainer(cfg, afero.NewOsFs()))
	if err != nil {
		return fmt.Errorf("resolve services: %w", err)
	}

	s, err := server.New(deps)
	if err != nil {
		return err
	}

	modules := app.NewModules(app.Dependencies{
		Publisher:  deps.Publisher,
		Subscriber: deps.Subscriber,
		Renderer:   deps.Renderer,
	})
	if err := s.InitModules(s.Context(), modules, registry.New(cfg)); err != nil {
		return err
	}
	s.RegisterRoutes()

	if err := s.StartBackground(); err != nil {
		return err
	}

	slog.Info("Serving portfolio", "content", deps.Content.Path(), "base_url", cfg.GetAppBaseURL())
	return s.Start()
}
