package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"masterboxer.com/project-micro-social/config"
	"masterboxer.com/project-micro-social/logging"
	"masterboxer.com/project-micro-social/routes"
	"masterboxer.com/project-micro-social/services"
)

func main() {
	cfg := config.Load()
	logging.Init("micro-social", cfg.LogLevel)

	social, closeFn, err := services.Open(cfg)
	if err != nil {
		logging.Log.WithError(err).Fatal("failed to open store")
	}
	defer closeFn()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	srv := newServer(cfg, social)
	if err := Run(context.Background(), srv, signals); err != nil {
		logging.Log.WithError(err).Error("server exited with error")
	}
}

func newServer(cfg config.Config, social *services.Social) *http.Server {
	sessions := services.NewSessions(cfg.JWTSecret, cfg.SessionTTL)
	return &http.Server{
		Addr:              cfg.ServerAddr,
		Handler:           routes.NewRouter(social, sessions),
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run serves srv until a signal arrives, ctx is done or the listener fails.
func Run(ctx context.Context, srv *http.Server, signals <-chan os.Signal) error {
	errCh := make(chan error, 1)
	go func() {
		logging.Log.Infof("listening on %s", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case sig := <-signals:
		logging.Log.Infof("received %s, shutting down", sig)
	case <-ctx.Done():
	case err := <-errCh:
		if err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
