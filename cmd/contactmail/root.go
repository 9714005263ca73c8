package main

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/mailer"
	"github.com/vcare/contactmail/secrets"
	"github.com/vcare/contactmail/utils"
)

var (
	exit       = os.Exit
	configPath string
	debug      bool
)

// NewRootCmd creates the root 'contactmail' command with persistent flags and subcommands.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   constants.CmdRoot,
		Short: constants.DescRoot,
	}
	rootCmd.PersistentFlags().StringVarP(&configPath, constants.FlagConfig, "c", config.DefaultConfigPath, "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVar(&debug, constants.FlagDebug, false, "enable debug logs")
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
		if debug {
			utils.SetMode("debug")
		}
	}

	rootCmd.AddCommand(
		newServeCmd(),
		newSendCmd(),
		newPreviewCmd(),
	)
	return rootCmd
}

// loadConfig reads the config file when present and overlays the environment.
func loadConfig() (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			utils.Debug("config file %s not found, using defaults", configPath)
			return config.FromEnv(), nil
		}
		return nil, err
	}
	config.ApplyEnv(cfg)
	return cfg, nil
}

// newCredentials opens the configured secrets provider. The returned func closes it.
func newCredentials(ctx context.Context, cfg *config.Config) (*mailer.SecretsCredentials, func(), error) {
	provider, err := secrets.NewSecretsProvider(ctx, &cfg.Secrets)
	if err != nil {
		return nil, nil, err
	}
	closeFn := func() {
		if err := provider.Close(); err != nil {
			utils.Warn("Failed to close secrets provider: %v", err)
		}
	}
	return mailer.NewSecretsCredentials(provider, cfg.Mail.UserKey, cfg.Mail.PasswordKey), closeFn, nil
}
