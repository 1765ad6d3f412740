package cmds

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

type CmdSms struct {
	Global *CmdGlobal

	flagSender string
	flagListID string
}

func (c *CmdSms) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "sms <phone> <text>"
	cmd.Short = "Send SMS via the Unisender API"
	cmd.Long = `Description:
  Send SMS via the Unisender API

  The sender falls back to UNISENDER_DEFAULT_SMS_SENDER.
`

	cmd.Flags().StringVar(&c.flagSender, "sender", "", "Sender name")
	cmd.Flags().StringVar(&c.flagListID, "list-id", "", "List ID to send to multiple contacts")
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = c.Run

	return cmd
}

func (c *CmdSms) Run(cmd *cobra.Command, args []string) error {
	phone, text := args[0], args[1]

	sender := c.flagSender
	if sender == "" {
		sender = c.Global.Config.DefaultSMSSender
	}
	if sender == "" {
		return errors.New("sender name is required. Please provide --sender option or set UNISENDER_DEFAULT_SMS_SENDER")
	}

	params := domain.OperationParams{
		"phone":  phone,
		"text":   text,
		"sender": sender,
	}
	if c.flagListID != "" {
		params["list_ids"] = c.flagListID
	}

	cmd.Println("Sending SMS...")
	cmd.Printf("Phone: %s\n", phone)
	cmd.Printf("Sender: %s\n", sender)
	cmd.Printf("Text: %s\n", text)

	return reportSend(cmd, "SMS", func() (domain.RemoteResult, error) {
		return c.Global.Gateway.SendSms(cmd.Context(), params)
	})
}

// reportSend runs one send call and prints the outcome table shared by the
// sms and email commands.
func reportSend(cmd *cobra.Command, what string, send func() (domain.RemoteResult, error)) error {
	result, err := send()
	if err != nil {
		return fmt.Errorf("exception occurred: %w", err)
	}

	if result.Succeeded() {
		cmd.Printf("%s sent successfully!\n", what)
		return renderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, [][]string{
			{"Status", "Success"},
			{"Response", prettyJSON(result.Mapping())},
		})
	}

	msg, _ := result.Error()
	err = renderTable(cmd.OutOrStdout(), []string{"Field", "Value"}, [][]string{
		{"Status", "Failed"},
		{"Error", msg},
		{"Response", prettyJSON(result.Mapping())},
	})
	if err != nil {
		return err
	}
	return fmt.Errorf("failed to send %s: %s", what, msg)
}
