package workflow

// Key prefixes used for bookkeeping entries in the workflow store
const (
	PrefixWorkflow = "workflow:"
	PrefixAction   = "action:"
)

// Status values recorded per action in the workflow store
const (
	StatusPending   = "pending"
	StatusRunning   = "running"
	StatusCompleted = "completed"
	StatusFailed    = "failed"
	StatusSkipped   = "skipped"
)
