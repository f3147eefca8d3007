/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"
)

// devicesCmd represents the devices command
var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List the device targets this tool can resolve",
	Long: `Lists every target from the inventory file plus the conventional
environment targets (DUT and CD), showing how each one resolves. Useful
for checking a machine's configuration before recording.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		names := cfg.TargetNames()
		for _, conventional := range []string{"DUT", "CD"} {
			if !containsName(names, conventional) {
				names = append(names, conventional)
			}
		}
		sort.Strings(names)

		resolved := 0
		for _, name := range names {
			target, err := cfg.ResolveTarget(name)
			if err != nil {
				logger.Debug("Target %s did not resolve: %v", name, err)
				continue
			}
			resolved++
			fmt.Fprintf(cmd.OutOrStdout(), "%s\tid=%s\thost=%s\taddress=%s\n",
				name, target.ID, target.Hostname, target.Address)
		}
		if resolved == 0 {
			return fmt.Errorf("no device targets resolved: set DUT_Id/DUT_Host/DUT_Address or pass --inventory")
		}
		return nil
	},
}

func containsName(names []string, name string) bool {
	for _, n := range names {
		if n == name {
			return true
		}
	}
	return false
}

func init() {
	rootCmd.AddCommand(devicesCmd)
}
