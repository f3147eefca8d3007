package session

import (
	"fmt"

	"github.com/HSJose/CHD-11720/config"
	"github.com/HSJose/CHD-11720/headspin"
	workflow "github.com/HSJose/CHD-11720/workflows"
)

// LockDeviceAction reserves the target device exclusively
type LockDeviceAction struct {
	workflow.BaseAction
	client *headspin.Client
	target config.DeviceTarget
}

// NewLockDeviceAction creates a new action to lock the target device
func NewLockDeviceAction(client *headspin.Client, target config.DeviceTarget) *LockDeviceAction {
	return &LockDeviceAction{
		BaseAction: workflow.NewBaseAction(
			"lock-device",
			"Acquires an exclusive lock on the target device",
		),
		client: client,
		target: target,
	}
}

// Execute implements the Action interface
func (a *LockDeviceAction) Execute(ctx *workflow.ActionContext) error {
	ctx.Logger.Info("Locking device %s (%s)", a.target.Name, a.target.ID)

	result := a.client.LockDevice(ctx.GoContext, a.target)
	if !result.OK() {
		return fmt.Errorf("failed to lock device %s: %w", a.target.ID, result.Err)
	}

	if err := ctx.Store.Put(KeyDeviceLocked, true); err != nil {
		return err
	}

	ctx.Logger.Info("Device %s locked", a.target.ID)
	return nil
}

// UnlockDeviceAction releases the device lock. It is the cleanup step of the
// capture sequence and runs regardless of earlier failures.
type UnlockDeviceAction struct {
	workflow.BaseAction
	client *headspin.Client
	target config.DeviceTarget
}

// NewUnlockDeviceAction creates a new action to unlock the target device
func NewUnlockDeviceAction(client *headspin.Client, target config.DeviceTarget) *UnlockDeviceAction {
	return &UnlockDeviceAction{
		BaseAction: workflow.NewBaseAction(
			"unlock-device",
			"Releases the lock on the target device",
		),
		client: client,
		target: target,
	}
}

// AlwaysRun marks the unlock as a cleanup-always action
func (a *UnlockDeviceAction) AlwaysRun() bool {
	return true
}

// Execute implements the Action interface
func (a *UnlockDeviceAction) Execute(ctx *workflow.ActionContext) error {
	ctx.Logger.Info("Unlocking device %s (%s)", a.target.Name, a.target.ID)

	result := a.client.UnlockDevice(ctx.GoContext, a.target)
	if !result.OK() {
		return fmt.Errorf("failed to unlock device %s: %w", a.target.ID, result.Err)
	}

	_ = ctx.Store.Put(KeyDeviceLocked, false)

	ctx.Logger.Info("Device %s unlocked", a.target.ID)
	return nil
}
