package session

import (
	"time"

	workflow "github.com/HSJose/CHD-11720/workflows"
)

// SettleAction waits a fixed time between locking the device and starting
// the capture, giving the lab a moment to finish the reservation.
type SettleAction struct {
	workflow.BaseAction
	delay time.Duration
}

// NewSettleAction creates a new settle-delay action
func NewSettleAction(delay time.Duration) *SettleAction {
	return &SettleAction{
		BaseAction: workflow.NewBaseAction(
			"settle-delay",
			"Waits for the device reservation to settle",
		),
		delay: delay,
	}
}

// Execute implements the Action interface
func (a *SettleAction) Execute(ctx *workflow.ActionContext) error {
	if a.delay <= 0 {
		return nil
	}

	ctx.Logger.Info("Waiting %s before starting the session", a.delay)
	select {
	case <-ctx.GoContext.Done():
		return ctx.GoContext.Err()
	case <-time.After(a.delay):
		return nil
	}
}
