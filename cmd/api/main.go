package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"eventbooking/internal/config"
	"eventbooking/internal/pkg/logger"
	"eventbooking/internal/pkg/mailer"
	"eventbooking/internal/server"
)

const shutdownTimeout = 10 * time.Second

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", logger.Err(err))
		os.Exit(1)
	}

	log := logger.New(cfg.AppEnv, cfg.LogLevel)
	slog.SetDefault(log)

	if err := run(ctx, cfg, log); err != nil {
		log.Error("application failed", logger.Err(err))
		os.Exit(1)
	}

	log.Info("application stopped")
}

func run(ctx context.Context, cfg *config.Config, log *slog.Logger) error {
	st, err := openStore(ctx, cfg)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer func() {
		if err := st.close(); err != nil {
			log.Warn("store close", logger.Err(err))
		}
	}()
	log.Info("store ready", slog.String("driver", cfg.Store.Driver))

	verifier, err := newVerifier(ctx, cfg)
	if err != nil {
		return fmt.Errorf("auth verifier: %w", err)
	}
	log.Info("auth ready", slog.String("provider", cfg.Auth.Provider))

	router := server.NewRouter(cfg, log, server.Deps{
		Bookings: st.bookings,
		Ratings:  st.ratings,
		Users:    st.users,
		Health:   st.users,
		Verifier: verifier,
		Mailer:   mailer.NewSendGrid(mailer.DefaultHost),
		Secrets:  config.LoadMailSecrets,
	})

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("http server started", slog.String("address", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("srv.ListenAndServe: %w", err)
		}
		log.Info("http server stopped", slog.String("address", srv.Addr))
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(gctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("srv.Shutdown: %w", err)
		}
		return nil
	})

	return g.Wait()
}
