package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gzhole/labelshield/internal/server"
)

var serveDev bool

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API and MCP endpoint",
	Long: `Start the LabelShield HTTP server. It exposes the JSON API under /api and
an MCP tool endpoint at /mcp. The server shuts down gracefully on SIGINT or
SIGTERM.

  labelshield serve
  labelshield serve --addr :9090`,
	RunE: serveCommand,
}

func init() {
	serveCmd.Flags().BoolVar(&serveDev, "dev", false, "Human-readable development logging")
	rootCmd.AddCommand(serveCmd)
}

func serveCommand(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	log, err := newZapLogger(serveDev)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := openApp(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer a.Close()

	log.Info("catalog loaded",
		zap.String("version", a.svc.Catalog().Version()),
		zap.Int("ingredients", len(a.svc.Ingredients())),
		zap.String("cache", cfg.Cache.Backend),
	)

	srv := server.New(a.svc, server.Config{
		Addr:   cfg.Server.Addr,
		Purger: a.store,
	}, log)
	return srv.Start(ctx)
}

func newZapLogger(dev bool) (*zap.Logger, error) {
	if dev {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
