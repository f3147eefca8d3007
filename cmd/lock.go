/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HSJose/CHD-11720/headspin"
)

var lockTarget string

// lockCmd represents the lock command
var lockCmd = &cobra.Command{
	Use:   "lock",
	Short: "Lock a lab device without starting a session",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}
		target, err := cfg.ResolveTarget(lockTarget)
		if err != nil {
			return err
		}

		client := headspin.NewClient(cfg, logger)
		result := client.LockDevice(cmd.Context(), target)
		if !result.OK() {
			return fmt.Errorf("failed to lock %s after %d attempts: %w", target.ID, result.Attempts, result.Err)
		}
		logger.Info("Locked %s (%s)", target.ID, target.Hostname)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lockCmd)

	lockCmd.Flags().StringVar(&lockTarget, "target", "DUT", "name of the device target to lock")
}
