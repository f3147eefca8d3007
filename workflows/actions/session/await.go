package session

import (
	"fmt"

	"github.com/HSJose/CHD-11720/signalwait"
	workflow "github.com/HSJose/CHD-11720/workflows"
)

// AwaitSignalAction blocks the sequence until the external acknowledgement
// arrives. It has no timeout of its own; the capture runs for as long as the
// operator needs.
type AwaitSignalAction struct {
	workflow.BaseAction
	waiter signalwait.Waiter
}

// NewAwaitSignalAction creates a new action blocking on the given waiter
func NewAwaitSignalAction(waiter signalwait.Waiter) *AwaitSignalAction {
	return &AwaitSignalAction{
		BaseAction: workflow.NewBaseAction(
			"await-signal",
			"Waits for the manual interaction to finish",
		),
		waiter: waiter,
	}
}

// Execute implements the Action interface
func (a *AwaitSignalAction) Execute(ctx *workflow.ActionContext) error {
	ctx.Logger.Info("Interact with the device now; the capture is recording")

	if err := a.waiter.Wait(ctx.GoContext); err != nil {
		return fmt.Errorf("wait for acknowledgement: %w", err)
	}

	ctx.Logger.Info("Acknowledgement received, wrapping up")
	return nil
}
