package main

import (
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/vcare/contactmail/constants"
	"github.com/vcare/contactmail/contact"
	"github.com/vcare/contactmail/utils"
)

// newSendCmd creates the 'send' subcommand.
func newSendCmd() *cobra.Command {
	var sub contact.Submission
	var file string
	cmd := &cobra.Command{
		Use:   constants.CmdSend,
		Short: constants.DescSend,
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
			creds, closeCreds, err := newCredentials(cmd.Context(), cfg)
			if err != nil {
				utils.Error("Failed to create secrets provider: %v", err)
				exit(3)
				return
			}
			defer closeCreds()

			if err := contact.NewSender(cfg.Mail, creds, nil).Send(cmd.Context(), sub); err != nil {
				utils.Error(constants.LogSendFailed+": %v", err)
				exit(4)
				return
			}
			utils.User(constants.OutputEmailsSent)
		},
	}
	addSubmissionFlags(cmd, &sub)
	cmd.Flags().StringVarP(&file, constants.FlagFile, "f", "", "Read the submission from a JSON file (\"-\" for stdin)")
	return cmd
}

func addSubmissionFlags(cmd *cobra.Command, sub *contact.Submission) {
	cmd.Flags().StringVar(&sub.Name, constants.FlagName, "", "Submitter name")
	cmd.Flags().StringVar(&sub.Email, constants.FlagEmail, "", "Submitter email")
	cmd.Flags().StringVar(&sub.Phone, constants.FlagPhone, "", "Submitter phone (optional)")
	cmd.Flags().StringVar(&sub.Message, constants.FlagMessage, "", "Message body")
}

// readSubmission decodes a submission the same way the HTTP endpoint does.
func readSubmission(cmd *cobra.Command, path string) (contact.Submission, error) {
	var r io.Reader
	if path == "-" {
		r = cmd.InOrStdin()
	} else {
		f, err := os.Open(path)
		if err != nil {
			return contact.Submission{}, err
		}
		defer f.Close()
		r = f
	}
	return contact.Decode(r)
}
