package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/adsclient/internal/adapters/driven/config/file"
	"github.com/custodia-labs/adsclient/internal/core/services"
	"github.com/custodia-labs/adsclient/internal/logger"
)

var version = "dev"

var (
	configDir string
	verbose   bool
)

// Services used by the commands. They are created on first use unless set beforehand.
var (
	configService *services.ConfigService
	dfaFactory    *services.DfaServiceFactory
	dfpFactory    *services.DfpServiceFactory
)

var rootCmd = &cobra.Command{
	Use:   "adsclient",
	Short: "Call the DFA and DFP advertising APIs",
	Long: `adsclient builds authenticated SOAP clients for the DFA and DFP
advertising APIs and runs example calls against them.

Credentials and servers are read from ~/.adsclient/config.toml.`,
	SilenceUsage: true,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		logger.SetOutput(cmd.ErrOrStderr())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configDir, "config", "", "config directory (default ~/.adsclient)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log SOAP calls and token handling")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// SetVersion sets the version reported by the version command.
func SetVersion(v string) {
	version = v
}

func getConfigService() (*services.ConfigService, error) {
	if configService != nil {
		return configService, nil
	}
	store, err := file.NewConfigStore(configDir)
	if err != nil {
		return nil, fmt.Errorf("open config: %w", err)
	}
	configService = services.NewConfigService(store)
	return configService, nil
}

func getDfaFactory() (*services.DfaServiceFactory, error) {
	if dfaFactory != nil {
		return dfaFactory, nil
	}
	cfgService, err := getConfigService()
	if err != nil {
		return nil, err
	}
	cfg, err := cfgService.Get()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.UserName == "" {
		return nil, errors.New("dfa.user_name is not set; run 'adsclient config set dfa.user_name <name>'")
	}
	dfaFactory, err = services.NewDfaServiceFactory(cfg)
	return dfaFactory, err
}

func getDfpFactory() (*services.DfpServiceFactory, error) {
	if dfpFactory != nil {
		return dfpFactory, nil
	}
	cfgService, err := getConfigService()
	if err != nil {
		return nil, err
	}
	cfg, err := cfgService.Get()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if cfg.NetworkCode == "" {
		return nil, errors.New("dfp.network_code is not set; run 'adsclient config set dfp.network_code <code>'")
	}
	dfpFactory, err = services.NewDfpServiceFactory(cfg)
	return dfpFactory, err
}
