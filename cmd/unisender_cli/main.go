package main

import (
	"fmt"
	"os"

	"github.com/aradsms/unisender_services/cmd/unisender_cli/internal/cmds"
)

func main() {
	app := cmds.NewRootCommand(&cmds.CmdGlobal{})
	app.SetOut(os.Stdout)

	// Run the main command and handle errors
	err := app.Execute()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}
