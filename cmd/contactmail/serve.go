package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/vcare/contactmail/constants"
	contacthttp "github.com/vcare/contactmail/http"
	"github.com/vcare/contactmail/telemetry"
	"github.com/vcare/contactmail/utils"
)

const shutdownTimeout = 10 * time.Second

// newServeCmd creates the 'serve' subcommand.
func newServeCmd() *cobra.Command {
	var addr string
	cmd := &cobra.Command{
		Use:   constants.CmdServe,
		Short: constants.DescServe,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			cfg, err := loadConfig()
			if err != nil {
				utils.Error("Failed to load config: %v", err)
				exit(1)
				return
			}
			if !debug {
				utils.SetMode(cfg.Log.Level)
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			shutdownTracing, err := telemetry.Init(ctx, cfg)
			if err != nil {
				utils.Error("Failed to initialize tracing: %v", err)
				exit(2)
				return
			}
			defer func() {
				if err := shutdownTracing(context.Background()); err != nil {
					utils.Warn("Failed to flush traces: %v", err)
				}
			}()

			creds, closeCreds, err := newCredentials(ctx, cfg)
			if err != nil {
				utils.Error("Failed to create secrets provider: %v", err)
				exit(3)
				return
			}
			defer closeCreds()

			srv := contacthttp.NewServer(cfg, contacthttp.SendMailOptions{Config: cfg, Credentials: creds})
			if addr != "" {
				srv.Addr = addr
			}
			go func() {
				<-ctx.Done()
				shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
				defer cancel()
				if err := srv.Shutdown(shutdownCtx); err != nil {
					utils.Warn("Server shutdown: %v", err)
				}
			}()

			utils.User(constants.OutputServeAddress, srv.Addr)
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				utils.Error("Server failed: %v", err)
				exit(4)
			}
		},
	}
	cmd.Flags().StringVar(&addr, constants.FlagAddr, "", "Listen address (overrides config http.host/http.port)")
	return cmd
}
