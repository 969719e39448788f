package cmd

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/KaramelBytes/carbonmap/internal/server"
	"github.com/spf13/cobra"
)

var serveAddr string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the interactive dashboard",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		d, log, err := loadDashboard(ctx)
		if err != nil {
			return err
		}
		defer func() { _ = log.Sync() }()

		addr := cfg.ListenAddr
		if serveAddr != "" {
			addr = serveAddr
		}
		return server.New(d, log).Run(ctx, addr)
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "listen address (overrides listen_addr)")
}
