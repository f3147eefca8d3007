/*
Copyright © 2025 NAME HERE <EMAIL ADDRESS>
*/
package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/gofrs/flock"
	"github.com/spf13/cobra"

	"github.com/HSJose/CHD-11720/api"
	"github.com/HSJose/CHD-11720/headspin"
	"github.com/HSJose/CHD-11720/signalwait"
	workflow "github.com/HSJose/CHD-11720/workflows"
	"github.com/HSJose/CHD-11720/workflows/actions/session"
)

var (
	recordTarget   string
	recordAVTarget string
	recordUseAV    bool
	recordSettle   time.Duration
	recordSignal   string
	recordAttempts int
	recordDelay    time.Duration
	recordEnd      bool
)

// recordCmd represents the record command
var recordCmd = &cobra.Command{
	Use:   "record",
	Short: "Run the full capture procedure against a device",
	Long: `Runs the capture procedure end to end: lock the device, wait for it
to settle, start a capture session, hold until the completion signal
arrives, then unlock. Every step runs even when an earlier one fails,
so a device never stays locked because a session could not start.

The completion signal defaults to an interactive prompt; use
--signal file:<path> or --signal http:<addr> for unattended runs.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := requireToken(); err != nil {
			return err
		}

		target, err := cfg.ResolveTarget(recordTarget)
		if err != nil {
			return err
		}

		paired, pairedErr := cfg.ResolveTarget(recordAVTarget)
		if recordUseAV && pairedErr != nil {
			return fmt.Errorf("--use-av requires the %s target: %w", recordAVTarget, pairedErr)
		}
		captureAddr := session.CaptureAddress(target, paired, recordUseAV)

		// One run per device on this machine at a time.
		lockPath := filepath.Join(os.TempDir(), fmt.Sprintf("labsession-%s.lock", target.ID))
		runLock := flock.New(lockPath)
		locked, err := runLock.TryLock()
		if err != nil {
			return fmt.Errorf("failed to acquire run lock %s: %w", lockPath, err)
		}
		if !locked {
			return fmt.Errorf("device %s is already in use by another labsession run (%s)", target.ID, lockPath)
		}
		defer runLock.Unlock()

		waiter, err := signalwait.New(recordSignal, os.Stdin, os.Stdout)
		if err != nil {
			return err
		}

		client := headspin.NewClient(cfg, logger, headspin.WithRetryPolicy(api.RetryPolicy{
			MaxAttempts: recordAttempts,
			Delay:       recordDelay,
		}))

		wf := session.NewRecordWorkflow(client, session.RecordOptions{
			Target:         target,
			CaptureAddress: captureAddr,
			Settle:         recordSettle,
			Waiter:         waiter,
			EndSession:     recordEnd,
		})

		result := workflow.Run(wf, workflow.RunOptions{
			Logger:          logger,
			Context:         cmd.Context(),
			ContinueOnError: true,
		})
		fmt.Print(workflow.FormatResult(result))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(recordCmd)

	recordCmd.Flags().StringVar(&recordTarget, "target", "DUT", "name of the device target to capture")
	recordCmd.Flags().StringVar(&recordAVTarget, "av-target", "CD", "name of the paired audio/video capture target")
	recordCmd.Flags().BoolVar(&recordUseAV, "use-av", false, "capture through the paired AV device instead of the target itself")
	recordCmd.Flags().DurationVar(&recordSettle, "settle", 5*time.Second, "pause between locking the device and starting the session")
	recordCmd.Flags().StringVar(&recordSignal, "signal", "prompt", "completion signal backend: prompt, file:<path> or http:<addr>")
	recordCmd.Flags().IntVar(&recordAttempts, "attempts", api.DefaultRetryPolicy().MaxAttempts, "attempts per API call before giving up")
	recordCmd.Flags().DurationVar(&recordDelay, "retry-delay", api.DefaultRetryPolicy().Delay, "pause between API call attempts")
	recordCmd.Flags().BoolVar(&recordEnd, "end-session", false, "mark the capture session inactive before unlocking")
}
