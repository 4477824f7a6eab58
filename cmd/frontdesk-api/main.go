package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"frontdesk/internal/platform/config"
	"frontdesk/internal/platform/logger"
	phttp "frontdesk/internal/platform/net/http"

	"frontdesk/internal/services/api"
)

func main() {
	// service-scoped config for HTTP etc (FRONTDESK_API_*)
	root := config.New()
	apiCfg := root.Prefix("FRONTDESK_API_")

	// bring up logging early
	logger.Init(logger.FromEnv())
	l := logger.Get()

	// http server (reads FRONTDESK_API_PORT)
	srv := phttp.NewServer(apiCfg)

	// mount our API
	api.Mount(
		srv.Router(),
		api.Options{
			Config: apiCfg,
			Logger: *l,
		},
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() { errc <- srv.Run(ctx) }()

	select {
	case <-ctx.Done():
		// drain in-flight requests before exiting
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			l.Error().Err(err).Msg("graceful shutdown failed")
		}
		<-errc
	case err := <-errc:
		if err != nil {
			l.Panic().Err(err).Msg("http server stopped")
		}
	}
}
