package main

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/vcare/contactmail/config"
	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/contact"
	"github.com/vcare/contactmail/mailer"
	"github.com/vcare/contactmail/secrets"
	"github.com/vcare/contactmail/utils"
)

// newPreviewCmd creates the 'preview' subcommand. Nothing is delivered.
func newPreviewCmd() *cobra.Command {
	var sub contact.Submission
	var file string
	cmd := &cobra.Command{
		Use:   constants.CmdPreview,
		Short: constants.DescPreview,
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			if file != "" {
				decoded, err := readSubmission(cmd, file)
				if err != nil {
					utils.Error("Invalid submission: %v", err)
					exit(1)
					return
				}
				sub = decoded
			}
			if err := sub.Validate(); err != nil {
				utils.Error("Invalid submission: %v", err)
				exit(1)
				return
			}

			cfg, err := loadConfig()
			if err != nil {
				utils.Error("Failed to load config: %v", err)
				exit(2)
				return
			}

			account := cfg.Mail.SenderAddress
			if account == "" {
				account = lookupAccount(cmd.Context(), cfg)
			}

			msgs, err := contact.NewComposer(cfg.Mail).Compose(sub, account)
			if err != nil {
				utils.Error("Failed to render emails: %v", err)
				exit(3)
				return
			}
			utils.User("%s", formatMessages(msgs))
		},
	}
	addSubmissionFlags(cmd, &sub)
	cmd.Flags().StringVarP(&file, constants.FlagFile, "f", "", "Read the submission from a JSON file (\"-\" for stdin)")
	return cmd
}

// lookupAccount reads only the account identity, so previews work without a password.
func lookupAccount(ctx context.Context, cfg *config.Config) string {
	provider, err := secrets.NewSecretsProvider(ctx, &cfg.Secrets)
	if err != nil {
		utils.Warn("Failed to create secrets provider: %v", err)
		return ""
	}
	defer provider.Close()
	user, err := provider.GetSecret(ctx, cfg.Mail.UserKey)
	if err != nil && !errors.Is(err, secrets.ErrSecretNotFound) {
		utils.Warn("Failed to resolve account: %v", err)
	}
	return user
}

func formatMessages(msgs []mailer.Message) string {
	var b strings.Builder
	for _, msg := range msgs {
		fmt.Fprintf(&b, constants.OutputMessageHead, msg.Kind, msg.From.String(), msg.To)
		if !msg.ReplyTo.IsZero() {
			fmt.Fprintf(&b, constants.OutputReplyTo, msg.ReplyTo)
		}
		fmt.Fprintf(&b, constants.OutputSubject, msg.Subject)
		b.WriteString(msg.HTML)
		b.WriteString("\n")
	}
	return b.String()
}
