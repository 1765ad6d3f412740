package cmds

import (
	"context"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/aradsms/unisender_services/internal/platform/config"
	"github.com/aradsms/unisender_services/internal/platform/logger"
	"github.com/aradsms/unisender_services/internal/unisender_service/app"
	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

// Gateway is the part of the gateway client the commands use.
type Gateway interface {
	SendSms(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	SendEmail(ctx context.Context, params domain.OperationParams) (domain.RemoteResult, error)
	GetLists(ctx context.Context) (domain.RemoteResult, error)
	GetFields(ctx context.Context) (domain.RemoteResult, error)
	GetCurrencyRates(ctx context.Context) (domain.RemoteResult, error)
	TransportName() string
}

type CmdGlobal struct {
	Cmd *cobra.Command

	// Config and Gateway are built by PreRun unless already set.
	Config  *config.Config
	Gateway Gateway
	Logger  *slog.Logger

	FlagConfig  string
	FlagVerbose bool
}

func (c *CmdGlobal) PreRun(cmd *cobra.Command, args []string) error {
	var err error

	// If calling the help, skip pre-run
	if cmd.Name() == "help" {
		return nil
	}

	if c.Config == nil {
		if c.FlagConfig != "" {
			c.Config, err = config.LoadFile("unisender_cli", c.FlagConfig)
		} else {
			c.Config, err = config.Load("unisender_cli")
		}
		if err != nil {
			return err
		}
	}

	if c.Logger == nil {
		switch {
		case c.FlagVerbose:
			c.Logger = logger.NewWithWriter(cmd.ErrOrStderr(), "debug")
		case c.Config.EnableLogging:
			c.Logger = logger.NewWithWriter(cmd.ErrOrStderr(), c.Config.LogLevel)
		default:
			c.Logger = logger.Discard()
		}
	}

	if c.Gateway == nil {
		c.Gateway, err = app.NewGatewayClientFromConfig(c.Config, c.Logger)
		if err != nil {
			return err
		}
	}

	return nil
}

// NewRootCommand assembles the unisender command tree around global.
func NewRootCommand(global *CmdGlobal) *cobra.Command {
	root := &cobra.Command{}
	root.Use = "unisender"
	root.Short = "Command line client for the Unisender API"
	root.Long = `Description:
  Command line client for the Unisender API

  Sends SMS and email, lists contact lists and checks the API connection.
  Configuration is read from configs/config.defaults.yaml and UNISENDER_*
  environment variables.
`

	root.SilenceUsage = true
	root.SilenceErrors = true
	root.CompletionOptions = cobra.CompletionOptions{HiddenDefaultCmd: true}

	global.Cmd = root

	// Global flags
	root.PersistentFlags().StringVarP(&global.FlagConfig, "config", "c", "", "Path to a configuration file")
	root.PersistentFlags().BoolVarP(&global.FlagVerbose, "verbose", "v", false, "Log gateway calls to stderr")

	// Wrappers
	root.PersistentPreRunE = global.PreRun

	smsCmd := CmdSms{Global: global}
	root.AddCommand(smsCmd.Command())

	emailCmd := CmdEmail{Global: global}
	root.AddCommand(emailCmd.Command())

	listsCmd := CmdLists{Global: global}
	root.AddCommand(listsCmd.Command())

	statusCmd := CmdStatus{Global: global}
	root.AddCommand(statusCmd.Command())

	return root
}
