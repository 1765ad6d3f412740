package cmds

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/aradsms/unisender_services/internal/unisender_service/domain"
)

type CmdStatus struct {
	Global *CmdGlobal

	flagDetailed bool
}

func (c *CmdStatus) Command() *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "status"
	cmd.Short = "Check API connection status and configuration"
	cmd.Long = `Description:
  Check Unisender API connection status and configuration

  The connection test calls getCurrencyRates. With --detailed the lists and
  fields endpoints are probed as well.
`

	cmd.Flags().BoolVar(&c.flagDetailed, "detailed", false, "Probe several endpoints and show feature flags")
	cmd.Args = cobra.NoArgs
	cmd.RunE = c.Run

	return cmd
}

func (c *CmdStatus) Run(cmd *cobra.Command, args []string) error {
	cmd.Println("Checking Unisender API status...")
	cmd.Println()

	if err := c.showConfiguration(cmd); err != nil {
		return err
	}

	connErr := c.testConnection(cmd)

	if c.flagDetailed {
		if err := c.showDetails(cmd); err != nil {
			return err
		}
	}

	return connErr
}

func (c *CmdStatus) showConfiguration(cmd *cobra.Command) error {
	cfg := c.Global.Config

	apiKey := "Set"
	if cfg.APIKey == "" {
		apiKey = "Not set"
	}

	cmd.Println("Configuration Check:")
	err := renderTable(cmd.OutOrStdout(), []string{"Setting", "Value"}, [][]string{
		{"API Key", apiKey},
		{"Encoding", cfg.Encoding},
		{"Retry Count", strconv.Itoa(cfg.RetryCount)},
		{"Platform", cfg.Platform},
		{"Language", cfg.Lang},
		{"Transport", c.Global.Gateway.TransportName()},
		{"Default SMS Sender", orNotSet(cfg.DefaultSMSSender)},
		{"Default Email Sender", orNotSet(cfg.DefaultEmailSender)},
	})
	cmd.Println()
	return err
}

func (c *CmdStatus) testConnection(cmd *cobra.Command) error {
	cmd.Println("API Connection Test:")
	defer cmd.Println()

	result, elapsed, err := timed(func() (domain.RemoteResult, error) {
		return c.Global.Gateway.GetCurrencyRates(cmd.Context())
	})
	if err != nil {
		cmd.Println("API Connection: Exception occurred")
		cmd.Printf("Error: %s\n", err)
		return fmt.Errorf("API connection test failed: %w", err)
	}

	if result.Succeeded() {
		cmd.Println("API Connection: Successful")
		cmd.Printf("Response Time: %s\n", formatMillis(elapsed))
		if result.Result() != nil {
			cmd.Println("API Response: Valid JSON received")
		}
		return nil
	}

	msg, _ := result.Error()
	cmd.Println("API Connection: Failed")
	cmd.Printf("Error: %s\n", msg)
	if strings.Contains(msg, "Invalid API key") {
		cmd.Println("Tip: Check UNISENDER_API_KEY in your environment or config file")
	}
	if result.TransportFailure {
		cmd.Println("Tip: Check your internet connection and UNISENDER_API_HOST")
	}
	return fmt.Errorf("API connection test failed: %s", msg)
}

func (c *CmdStatus) showDetails(cmd *cobra.Command) error {
	gw := c.Global.Gateway
	endpoints := []struct {
		name string
		call func() (domain.RemoteResult, error)
	}{
		{"Currency Rates", func() (domain.RemoteResult, error) { return gw.GetCurrencyRates(cmd.Context()) }},
		{"Contact Lists", func() (domain.RemoteResult, error) { return gw.GetLists(cmd.Context()) }},
		{"User Fields", func() (domain.RemoteResult, error) { return gw.GetFields(cmd.Context()) }},
	}

	var rows [][]string
	for _, ep := range endpoints {
		result, elapsed, err := timed(ep.call)
		switch {
		case err != nil:
			rows = append(rows, []string{ep.name, "Exception", err.Error()})
		case result.Succeeded():
			rows = append(rows, []string{ep.name, "Success", formatMillis(elapsed)})
		default:
			rows = append(rows, []string{ep.name, "Failed", formatMillis(elapsed)})
		}
	}

	cmd.Println("Detailed Information:")
	if err := renderTable(cmd.OutOrStdout(), []string{"Endpoint", "Status", "Response Time/Error"}, rows); err != nil {
		return err
	}

	cfg := c.Global.Config
	cmd.Println()
	cmd.Println("API Limits Information:")
	cmd.Printf("• Rate limiting: %s\n", enabled(cfg.EnableRateLimiting))
	cmd.Printf("• Cache: %s\n", enabled(cfg.EnableCache))
	cmd.Printf("• Logging: %s\n", enabled(cfg.EnableLogging))
	cmd.Println()
	return nil
}

func timed(call func() (domain.RemoteResult, error)) (domain.RemoteResult, time.Duration, error) {
	start := time.Now()
	result, err := call()
	return result, time.Since(start), err
}

func formatMillis(d time.Duration) string {
	return fmt.Sprintf("%.2fms", float64(d.Microseconds())/1000)
}
