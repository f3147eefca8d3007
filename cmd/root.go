/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/HSJose/CHD-11720/config"
	"github.com/HSJose/CHD-11720/logging"
)

// Global flags shared by all commands
var (
	envFile       string
	inventoryFile string
	verbose       bool
	jsonLogs      bool
)

// Resolved once in PersistentPreRunE and used by every command
var (
	cfg    *config.Config
	logger logging.Logger
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "labsession",
	Short: "Orchestrate capture sessions against the HeadSpin device lab",
	Long: `labsession drives a fixed procedure against the remote device lab:
lock a device, start a capture session against it, wait for the manual
interaction to finish, then release the lock.

Credentials and device targets come from the environment (HS_API_TOKEN plus
{target}_Id / {target}_Host / {target}_Address) or from a YAML inventory
file passed with --inventory.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		level := logging.InfoLevel
		if verbose {
			level = logging.DebugLevel
		}
		logger = logging.New(&logging.Config{Level: level, JSON: jsonLogs})

		opts := []config.Option{}
		if envFile != "" {
			opts = append(opts, config.WithEnvFile(envFile))
		}
		if inventoryFile != "" {
			opts = append(opts, config.WithInventoryFile(inventoryFile))
		}

		var err error
		cfg, err = config.New(opts...)
		return err
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&envFile, "env-file", "", "dotenv file to load before resolving configuration")
	rootCmd.PersistentFlags().StringVar(&inventoryFile, "inventory", "", "YAML device inventory file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().BoolVar(&jsonLogs, "json-logs", false, "emit logs as JSON lines")
}

// requireToken guards commands that talk to the lab API.
func requireToken() error {
	if cfg.APIToken == "" {
		return fmt.Errorf("no API token configured: set %s", config.EnvAPIToken)
	}
	return nil
}
