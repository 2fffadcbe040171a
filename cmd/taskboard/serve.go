// Serve command runs the taskboard HTTP server.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/taskboard/internal/repo"
	"github.com/mesh-intelligence/taskboard/internal/server"
	"github.com/mesh-intelligence/taskboard/pkg/types"
)

// shutdownTimeout bounds graceful shutdown after SIGINT/SIGTERM.
const shutdownTimeout = 10 * time.Second

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the taskboard HTTP server",
	Long: `Serve loads the entity collections from the data directory and exposes
them as a JSON API until interrupted.

Example:
  taskboard serve
  taskboard serve --data-dir /var/lib/taskboard`,
	RunE: runServe,
}

func runServe(cmd *cobra.Command, args []string) error {
	conf := types.Config{
		ListenAddr: cfg.GetString(cfgKeyListenAddr),
		LogLevel:   cfg.GetString(cfgKeyLogLevel),
	}
	if err := conf.Validate(); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}

	dataDir, err := resolveDataDir()
	if err != nil {
		return fmt.Errorf("resolve data dir: %w", err)
	}
	conf.DataDir = dataDir

	log := logrus.New()
	if conf.LogLevel != "" {
		level, err := logrus.ParseLevel(conf.LogLevel)
		if err != nil {
			return fmt.Errorf("parse log level: %w", err)
		}
		log.SetLevel(level)
	}

	store, err := repo.Open(conf.DataDir)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}

	srv := server.New(store, log)

	ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(conf.ListenAddr)
	}()
	log.WithField("addr", conf.ListenAddr).Info("listening")

	select {
	case err := <-errCh:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}
