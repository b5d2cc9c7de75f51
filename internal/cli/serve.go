package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jtoivan/statnews/internal/server"
	"github.com/jtoivan/statnews/internal/worker"
)

// serveCmd represents the serve command
var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve article generation over HTTP",
	Long: `Serve starts the HTTP API:

  POST /api/generate            generate one article
  GET  /api/languages           supported languages
  GET  /api/datasets            loaded datasets
  GET  /api/locations/{dataset} locations in a dataset
  GET  /healthz                 liveness probe

Generation requests are rate-limited per client address.

Example:
  statnews serve
  statnews serve --addr :9090`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().String("addr", "", "listen address (default: from config)")
	_ = viper.BindPFlag("server.addr", serveCmd.Flags().Lookup("addr"))
}

func runServe(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	service, closeStore, err := openService(ctx, cfg)
	if err != nil {
		return err
	}
	defer func() { _ = closeStore() }()

	limiter := worker.NewLimiter(cfg.Server.RequestsPerSecond, cfg.Server.Burst)
	api := server.NewAPI(service, limiter)
	srv := server.New(cfg.Server.Addr, api.Handler())

	errs := make(chan error, 1)
	go func() { errs <- srv.Start() }()

	fmt.Fprintf(os.Stderr, "Listening on %s\n", cfg.Server.Addr)

	select {
	case err := <-errs:
		return err
	case <-ctx.Done():
	}

	fmt.Fprintln(os.Stderr, "Shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
