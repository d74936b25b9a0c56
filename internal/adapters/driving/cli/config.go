package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/adsclient/internal/core/services"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage API credentials and settings",
	RunE:  runConfigShow,
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runConfigShow,
}

var configSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Set a setting",
	Long: `Set a single setting in the config file.

Available keys:
  ` + strings.Join(services.ConfigKeys(), "\n  "),
	Args: cobra.ExactArgs(2),
	RunE: runConfigSet,
}

func init() {
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configSetCmd)
	rootCmd.AddCommand(configCmd)
}

func runConfigShow(cmd *cobra.Command, _ []string) error {
	svc, err := getConfigService()
	if err != nil {
		return err
	}
	cfg, err := svc.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Printf("Current Settings (%s)\n", svc.Path())
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[DFA]")
	cmd.Printf("  User name: %s\n", orNotSet(cfg.UserName))
	cmd.Printf("  Password: %s\n", maskSecret(cfg.Password))
	cmd.Printf("  Auth token: %s\n", maskSecret(cfg.AuthToken))
	cmd.Printf("  Server: %s\n", cfg.DfaServer)
	cmd.Println()

	cmd.Println("[DFP]")
	cmd.Printf("  Network code: %s\n", orNotSet(cfg.NetworkCode))
	cmd.Printf("  Server: %s\n", cfg.DfpServer)
	cmd.Printf("  OAuth2 client ID: %s\n", orNotSet(cfg.OAuth2.ClientID))
	cmd.Printf("  OAuth2 client secret: %s\n", maskSecret(cfg.OAuth2.ClientSecret))
	cmd.Printf("  OAuth2 refresh token: %s\n", maskSecret(cfg.OAuth2.RefreshToken))
	cmd.Printf("  OAuth2 access token: %s\n", maskSecret(cfg.OAuth2.AccessToken))
	cmd.Println()

	cmd.Println("[General]")
	cmd.Printf("  Application name: %s\n", orNotSet(cfg.ApplicationName))
	cmd.Printf("  Proxy: %s\n", orNotSet(cfg.ProxyURL))
	cmd.Printf("  Timeout: %s\n", cfg.Timeout)
	if cfg.RequestsPerSecond > 0 {
		cmd.Printf("  Requests per second: %g\n", cfg.RequestsPerSecond)
	} else {
		cmd.Println("  Requests per second: unlimited")
	}

	return nil
}

func runConfigSet(cmd *cobra.Command, args []string) error {
	svc, err := getConfigService()
	if err != nil {
		return err
	}
	key, value := args[0], args[1]
	if err := svc.Set(key, value); err != nil {
		return err
	}

	shown := value
	if services.SecretKeys[key] {
		shown = maskSecret(value)
	}
	cmd.Printf("Set %s = %s\n", key, shown)
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
