package cmd

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shunichi-ikebuchi/description-editor/pkg/api"
	"github.com/spf13/cobra"
)

var listenAddr string

// serveCmd represents the serve command.
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the description editor HTTP service",
	Long: `Run the JSON HTTP service used by journal entry forms.

Endpoints:
  POST /api/1/descriptions/decode
  POST /api/1/descriptions/encode
  GET  /api/1/recurring?date=YYYY-MM-DD
  GET  /api/1/tags?tab=travel
  GET  /api/1/suggestions?tab=travel&tag=Taxi
  GET  /health

Example:
  desc-editor serve --addr :8080`,
	Args: cobra.NoArgs,
	Run:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&listenAddr, "addr", "", "Listen address (default DESC_LISTEN_ADDR or :8080)")
}

func runServe(cmd *cobra.Command, args []string) {
	env := loadEnvironment()
	defer env.Close()

	addr := listenAddr
	if addr == "" {
		addr = env.cfg.Server.ListenAddr
	}

	handler := api.NewHandler(env.catalog, env.history, env.cfg.Location)
	server := &http.Server{
		Addr:         addr,
		Handler:      api.NewRouter(handler, 60*time.Second),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Graceful shutdown.
	go func() {
		sigint := make(chan os.Signal, 1)
		signal.Notify(sigint, os.Interrupt, syscall.SIGTERM)
		<-sigint

		slog.Info("Shutting down server")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown error", "error", err)
		}
	}()

	slog.Info("Starting description editor service",
		"addr", addr,
		"catalog", env.paths.GetCatalogPath(),
		"database", env.conn.GetPath(),
		"recurring_items", env.catalog.Recurring().Len(),
	)

	if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		exitOnError(err, "server error")
	}

	slog.Info("Server stopped")
}
