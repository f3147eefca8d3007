/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/HSJose/CHD-11720/headspin"
)

var unlockTarget string

// unlockCmd represents the unlock command
var unlockCmd = &cobra.Command{
	Use:   "unlock",
	Short: "Release a lab device left locked by an earlier run",
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}
		target, err := cfg.ResolveTarget(unlockTarget)
		if err != nil {
			return err
		}

		client := headspin.NewClient(cfg, logger)
		result := client.UnlockDevice(cmd.Context(), target)
		if !result.OK() {
			return fmt.Errorf("failed to unlock %s after %d attempts: %w", target.ID, result.Attempts, result.Err)
		}
		logger.Info("Unlocked %s (%s)", target.ID, target.Hostname)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(unlockCmd)

	unlockCmd.Flags().StringVar(&unlockTarget, "target", "DUT", "name of the device target to unlock")
}
