package workflow

import (
	"github.com/google/uuid"

	"github.com/HSJose/CHD-11720/workflows/store"
)

// Workflow is an ordered sequence of actions forming a complete procedure
type Workflow struct {
	ID          string
	Name        string
	Description string

	// Core KV store for data shared between actions
	Store *store.KVStore

	// Actions in execution order
	Actions []Action
}

// NewWorkflow creates a new workflow with the given properties. An empty id
// gets a generated one.
func NewWorkflow(id, name, description string) *Workflow {
	if id == "" {
		id = "run-" + uuid.NewString()
	}
	return &Workflow{
		ID:          id,
		Name:        name,
		Description: description,
		Store:       store.NewKVStore(),
		Actions:     []Action{},
	}
}

// AddAction appends an action to the workflow.
func (w *Workflow) AddAction(action Action) {
	w.Actions = append(w.Actions, action)
}

// actionKey is the store key under which an action's status is recorded.
func (w *Workflow) actionKey(action Action) string {
	return PrefixAction + w.ID + ":" + action.Name()
}

// setActionStatus records an action's status in the store. Bookkeeping
// failures are not worth failing a run over.
func (w *Workflow) setActionStatus(action Action, status string) {
	_ = w.Store.Put(w.actionKey(action), status)
}

// ActionStatus returns the recorded status of the named action.
func (w *Workflow) ActionStatus(action Action) string {
	status, err := store.GetOrDefault(w.Store, w.actionKey(action), StatusPending)
	if err != nil {
		return StatusPending
	}
	return status
}
