package session

import (
	"errors"
	"fmt"

	"github.com/HSJose/CHD-11720/headspin"
	workflow "github.com/HSJose/CHD-11720/workflows"
)

// StartSessionAction begins a capture session against the selected device
// address and records the session id in the workflow store when the
// response carries one. A response without an id is logged and tolerated;
// the capture still runs, it just cannot be linked to a waterfall URL.
type StartSessionAction struct {
	workflow.BaseAction
	client  *headspin.Client
	address string
}

// NewStartSessionAction creates a new action to start a capture session
func NewStartSessionAction(client *headspin.Client, address string) *StartSessionAction {
	return &StartSessionAction{
		BaseAction: workflow.NewBaseAction(
			"start-session",
			"Starts a capture session against the device address",
		),
		client:  client,
		address: address,
	}
}

// Execute implements the Action interface
func (a *StartSessionAction) Execute(ctx *workflow.ActionContext) error {
	ctx.Logger.Info("Starting capture session for %s", a.address)

	result := a.client.StartSession(ctx.GoContext, a.address)
	if !result.OK() {
		return fmt.Errorf("failed to start session for %s: %w", a.address, result.Err)
	}

	id, err := headspin.SessionID(result)
	if err != nil {
		if errors.Is(err, headspin.ErrNoSessionID) {
			ctx.Logger.Warn("Session started but the response had no session id: %v", err)
			return nil
		}
		return err
	}

	if err := ctx.Store.Put(KeySessionID, id); err != nil {
		return err
	}

	url := headspin.SessionURL(id)
	if err := ctx.Store.Put(KeySessionURL, url); err != nil {
		return err
	}

	ctx.Logger.Info("Session %s started", id)
	ctx.Logger.Info("Watch the capture at %s", url)
	return nil
}
