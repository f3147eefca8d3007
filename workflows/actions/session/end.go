package session

import (
	"fmt"

	"github.com/HSJose/CHD-11720/headspin"
	workflow "github.com/HSJose/CHD-11720/workflows"
	"github.com/HSJose/CHD-11720/workflows/store"
)

// EndSessionAction explicitly marks the capture session inactive. The
// default record sequence does not include it; unlocking the device already
// ends the capture on the lab side. It is offered for runs that need the
// session closed before the unlock.
type EndSessionAction struct {
	workflow.BaseAction
	client *headspin.Client
}

// NewEndSessionAction creates a new action to end the capture session
func NewEndSessionAction(client *headspin.Client) *EndSessionAction {
	return &EndSessionAction{
		BaseAction: workflow.NewBaseAction(
			"end-session",
			"Marks the capture session inactive",
		),
		client: client,
	}
}

// Execute implements the Action interface. The action is a no-op when no
// session id was ever recorded.
func (a *EndSessionAction) Execute(ctx *workflow.ActionContext) error {
	id, err := store.GetOrDefault(ctx.Store, KeySessionID, "")
	if err != nil {
		return err
	}
	if id == "" {
		ctx.Logger.Warn("No session id recorded, nothing to end")
		return nil
	}

	ctx.Logger.Info("Ending session %s", id)

	result := a.client.EndSession(ctx.GoContext, id)
	if !result.OK() {
		return fmt.Errorf("failed to end session %s: %w", id, result.Err)
	}

	ctx.Logger.Info("Session %s ended", id)
	return nil
}
