package session

import (
	"time"

	"github.com/HSJose/CHD-11720/config"
	"github.com/HSJose/CHD-11720/headspin"
	"github.com/HSJose/CHD-11720/signalwait"
	workflow "github.com/HSJose/CHD-11720/workflows"
)

// RecordOptions configures the capture sequence.
type RecordOptions struct {
	// Target is the device under test; its hostname and id feed the
	// lock and unlock payloads
	Target config.DeviceTarget

	// CaptureAddress is the device address the session records against.
	// It may belong to the paired AV device rather than the Target.
	CaptureAddress string

	// Settle is the delay between locking and starting the session
	Settle time.Duration

	// Waiter blocks the sequence until the manual interaction is done
	Waiter signalwait.Waiter

	// EndSession adds an explicit session-end step before the unlock.
	// Off by default: unlocking implicitly ends the capture.
	EndSession bool
}

// NewRecordWorkflow assembles the fixed capture sequence:
// lock -> settle -> start session -> await signal [-> end session] -> unlock.
//
// The workflow is meant to be run with ContinueOnError so that no step
// failure stops the sequence: a failed lock still leads to a session
// attempt, and the unlock always runs as best-effort cleanup.
func NewRecordWorkflow(client *headspin.Client, opts RecordOptions) *workflow.Workflow {
	wf := workflow.NewWorkflow(
		"",
		"Device Capture",
		"Locks a lab device, records a capture session during manual interaction, then releases the device",
	)

	wf.AddAction(NewLockDeviceAction(client, opts.Target))
	wf.AddAction(NewSettleAction(opts.Settle))
	wf.AddAction(NewStartSessionAction(client, opts.CaptureAddress))
	wf.AddAction(NewAwaitSignalAction(opts.Waiter))
	if opts.EndSession {
		wf.AddAction(NewEndSessionAction(client))
	}
	wf.AddAction(NewUnlockDeviceAction(client, opts.Target))

	return wf
}

// CaptureAddress applies the paired-device selection policy: the AV
// device's address wins when useAV is set, the primary target's otherwise.
// The choice only affects capture routing; lock and unlock always target
// the primary device.
func CaptureAddress(primary, paired config.DeviceTarget, useAV bool) string {
	if useAV {
		return paired.Address
	}
	return primary.Address
}
