package cmds

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/tidwall/gjson"
)

type CmdLists struct {
	Global *CmdGlobal

	flagFormat string
}

func (c *CmdLists) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "lists"
	cmd.Short = "List contact lists"
	cmd.Long = `Description:
  Get all available contact lists from Unisender
`

	cmd.Flags().StringVarP(&c.flagFormat, "format", "f", "table", "Format (table|json)")
	cmd.Args = cobra.NoArgs
	cmd.RunE = c.Run

	return cmd
}

func (c *CmdLists) Run(cmd *cobra.Command, args []string) error {
	if c.flagFormat != "table" && c.flagFormat != "json" {
		return fmt.Errorf("invalid format %q, expected table or json", c.flagFormat)
	}

	cmd.PrintErrln("Fetching contact lists...")

	result, err := c.Global.Gateway.GetLists(cmd.Context())
	if err != nil {
		return fmt.Errorf("exception occurred: %w", err)
	}
	if !result.Succeeded() {
		msg, _ := result.Error()
		return fmt.Errorf("failed to get lists: %s", msg)
	}

	lists := gjson.Get(result.Raw, "result")
	if !lists.IsArray() || len(lists.Array()) == 0 {
		cmd.Println("No contact lists found.")
		return nil
	}

	if c.flagFormat == "json" {
		cmd.Println(prettyJSON(result.Mapping()))
		return nil
	}

	var rows [][]string
	for _, list := range lists.Array() {
		rows = append(rows, []string{
			fieldOrNA(list, "id"),
			fieldOrNA(list, "title"),
			fieldOrNA(list, "description"),
			fieldOrNA(list, "created"),
		})
	}

	cmd.Println("Contact Lists:")
	return renderTable(cmd.OutOrStdout(), []string{"ID", "Title", "Description", "Created"}, rows)
}

func fieldOrNA(item gjson.Result, key string) string {
	v := item.Get(key)
	if !v.Exists() || v.Type == gjson.Null {
		return "N/A"
	}
	return v.String()
}
