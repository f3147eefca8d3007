// Package workflow provides a small sequential action engine: a workflow is
// an ordered list of actions sharing a typed KV store, executed one by one
// with an injected logger.
package workflow

import (
	"context"

	"github.com/HSJose/CHD-11720/logging"
	"github.com/HSJose/CHD-11720/workflows/store"
)

// Action is a single unit of work within a workflow
type Action interface {
	// Name returns the action's name
	Name() string

	// Description returns a human-readable description of the action
	Description() string

	// Execute performs the action's work
	Execute(ctx *ActionContext) error
}

// CleanupAction marks an action that must run even when an earlier action
// failed and the run is not configured to continue past errors.
type CleanupAction interface {
	Action

	// AlwaysRun reports whether the action runs regardless of prior failures
	AlwaysRun() bool
}

// ActionContext provides access to the workflow environment
type ActionContext struct {
	// Embedded Go context
	GoContext context.Context

	// References to the current execution path
	Workflow *Workflow
	Action   Action

	// Access to data shared between actions
	Store *store.KVStore

	// Logger for output
	Logger logging.Logger
}

// BaseAction provides a common implementation for simple actions
type BaseAction struct {
	name        string
	description string
}

// NewBaseAction creates a new base action with the given name and description
func NewBaseAction(name, description string) BaseAction {
	return BaseAction{
		name:        name,
		description: description,
	}
}

// Name returns the action name
func (a BaseAction) Name() string {
	return a.name
}

// Description returns the action description
func (a BaseAction) Description() string {
	return a.description
}
