package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/louisbranch/tabletop/internal/namegen"
	"github.com/louisbranch/tabletop/internal/platform/config"
	"github.com/louisbranch/tabletop/internal/platform/logging"
	"github.com/louisbranch/tabletop/internal/server"
	"github.com/louisbranch/tabletop/internal/session"
	bboltstore "github.com/louisbranch/tabletop/internal/storage/bbolt"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("server: %v", err)
	}
}

func run() error {
	var cfg server.Config
	if err := config.ParseEnv(&cfg); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	sugar, err := logging.New(cfg.Debug)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	defer sugar.Sync()

	store, err := bboltstore.Open(cfg.SheetDBPath)
	if err != nil {
		return fmt.Errorf("open sheet store: %w", err)
	}
	defer store.Close()

	names, err := namegen.Open(cfg.NamesDBPath)
	if err != nil {
		return fmt.Errorf("open name store: %w", err)
	}
	defer names.Close()

	sess := session.New(
		session.NewAutosaver(store, session.DefaultAutosaveDelay, sugar),
		session.NewTransfers(store),
	)

	srv := server.New(sugar, store, names, sess)
	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.Port),
		Handler:      srv.Routes(),
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		sugar.Infow("server listening", "port", cfg.Port)
		errCh <- httpServer.ListenAndServe()
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case sig := <-stop:
		sugar.Infow("shutting down", "signal", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(ctx); err != nil {
		sugar.Errorw("shutdown failed", "error", err)
	}
	// Flush before the stores close so the last queued edit is not lost.
	if err := srv.Close(ctx); err != nil {
		sugar.Errorw("autosave flush failed", "error", err)
	}
	return nil
}
