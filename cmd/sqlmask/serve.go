package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/tuannm99/sqlmask/internal/logging"
	"github.com/tuannm99/sqlmask/server/sqlmaskwire"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the pseudonymization TCP server",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		logger, closeFn, err := logging.SetupLogger(cfg.Log, os.Stderr)
		if err != nil {
			return err
		}
		defer closeFn()

		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		sc := sqlmaskwire.ServerConfig{
			Addr:         resolveString(serveAddr, cfg.Server.Addr),
			MaxFrameSize: cfg.Server.MaxFrameSize,
			IdleTimeout:  cfg.Server.IdleTimeout,
			CacheSize:    cfg.Cache.Size,
		}
		logger.Info("starting", "app", cfg.AppName, "addr", sc.Addr, "cache_size", sc.CacheSize)
		return sqlmaskwire.Run(ctx, sc, logger)
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (default from config)")
}
