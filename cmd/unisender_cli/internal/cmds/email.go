package cmds

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

type CmdEmail struct {
	Global *CmdGlobal

	flagBody       string
	flagHTMLBody   string
	flagSender     string
	flagSenderName string
	flagListID     string
}

func (c *CmdEmail) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "email <email> <subject>"
	cmd.Short = "Send email via the Unisender API"
	cmd.Long = `Description:
  Send email via the Unisender API

  One of --body or --html-body is required. The sender falls back to
  UNISENDER_DEFAULT_EMAIL_SENDER.
`

	cmd.Flags().StringVar(&c.flagBody, "body", "", "Email body content")
	cmd.Flags().StringVar(&c.flagHTMLBody, "html-body", "", "HTML email body content")
	cmd.Flags().StringVar(&c.flagSender, "sender", "", "Sender email")
	cmd.Flags().StringVar(&c.flagSenderName, "sender-name", "", "Sender name")
	cmd.Flags().StringVar(&c.flagListID, "list-id", "", "List ID to send to multiple contacts")
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = c.Run

	return cmd
}

func (c *CmdEmail) Run(cmd *cobra.Command, args []string) error {
	email, subject := args[0], args[1]

	sender := c.flagSender
	if sender == "" {
		sender = c.Global.Config.DefaultEmailSender
	}
	if sender == "" {
		return errors.New("sender email is required. Please provide --sender option or set UNISENDER_DEFAULT_EMAIL_SENDER")
	}
	if c.flagBody == "" && c.flagHTMLBody == "" {
		return errors.New("email body is required. Please provide --body or --html-body option")
	}

	params := domain.OperationParams{
		"email":   email,
		"subject": subject,
		"sender":  sender,
	}
	if c.flagBody != "" {
		params["body"] = c.flagBody
	}
	if c.flagHTMLBody != "" {
		params["body_html"] = c.flagHTMLBody
	}
	if c.flagSenderName != "" {
		params["sender_name"] = c.flagSenderName
	}
	if c.flagListID != "" {
		params["list_ids"] = c.flagListID
	}

	cmd.Println("Sending email...")
	cmd.Printf("Email: %s\n", email)
	cmd.Printf("Subject: %s\n", subject)
	cmd.Printf("Sender: %s\n", sender)

	return reportSend(cmd, "Email", func() (domain.RemoteResult, error) {
		return c.Global.Gateway.SendEmail(cmd.Context(), params)
	})
}
