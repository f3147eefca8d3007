/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HSJose/CHD-11720/headspin"
)

// sessionCmd represents the session command
var sessionCmd = &cobra.Command{
	Use:   "session",
	Short: "Manage capture sessions directly",
}

// sessionEndCmd represents the session end command
var sessionEndCmd = &cobra.Command{
	Use:   "end <session-id>",
	Short: "Mark a capture session inactive",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		sessionID := args[0]
		client := headspin.NewClient(cfg, logger)
		result := client.EndSession(cmd.Context(), sessionID)
		if !result.OK() {
			return fmt.Errorf("failed to end session %s after %d attempts: %w", sessionID, result.Attempts, result.Err)
		}
		logger.Info("Session %s marked inactive", sessionID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(sessionCmd)
	sessionCmd.AddCommand(sessionEndCmd)
}
