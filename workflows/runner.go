package workflow

import (
	"context"
	"fmt"
	"time"

	"github.com/HSJose/CHD-11720/logging"
)

// StepResult records the outcome of one action
type StepResult struct {
	Action   string
	Err      error
	Duration time.Duration
}

// RunResult contains the result of a workflow execution
type RunResult struct {
	WorkflowID    string
	Success       bool
	Steps         []StepResult
	ExecutionTime time.Duration
}

// RunOptions contains options for workflow execution
type RunOptions struct {
	// Logger to use for the workflow execution
	Logger logging.Logger

	// Context to use for the workflow execution
	Context context.Context

	// ContinueOnError keeps executing later actions after a step fails.
	// Step errors are recorded in the result either way. This is the
	// best-effort policy the capture sequence relies on: a failed lock must
	// not prevent the session start, and nothing prevents the unlock.
	ContinueOnError bool
}

// DefaultRunOptions returns the default options for running a workflow
func DefaultRunOptions() RunOptions {
	return RunOptions{
		Logger:          logging.NewNopLogger(),
		Context:         context.Background(),
		ContinueOnError: false,
	}
}

// Run executes the workflow's actions in order with the provided options
func Run(w *Workflow, options RunOptions) RunResult {
	startTime := time.Now()

	logger := options.Logger
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	ctx := options.Context
	if ctx == nil {
		ctx = context.Background()
	}

	logger.Info("Starting workflow: %s (%s)", w.Name, w.ID)

	result := RunResult{
		WorkflowID: w.ID,
		Success:    true,
	}

	failed := false
	for i, action := range w.Actions {
		if failed && !options.ContinueOnError && !alwaysRuns(action) {
			logger.Warn("Skipping action %d/%d: %s", i+1, len(w.Actions), action.Name())
			w.setActionStatus(action, StatusSkipped)
			continue
		}

		logger.Debug("Executing action %d/%d: %s", i+1, len(w.Actions), action.Name())
		w.setActionStatus(action, StatusRunning)

		actionCtx := &ActionContext{
			GoContext: ctx,
			Workflow:  w,
			Action:    action,
			Store:     w.Store,
			Logger:    logger,
		}

		stepStart := time.Now()
		err := action.Execute(actionCtx)
		step := StepResult{
			Action:   action.Name(),
			Err:      err,
			Duration: time.Since(stepStart),
		}
		result.Steps = append(result.Steps, step)

		if err != nil {
			failed = true
			result.Success = false
			w.setActionStatus(action, StatusFailed)
			logger.Error("Action '%s' failed: %v", action.Name(), err)
			continue
		}

		w.setActionStatus(action, StatusCompleted)
		logger.Debug("Completed action %d/%d: %s", i+1, len(w.Actions), action.Name())
	}

	result.ExecutionTime = time.Since(startTime)

	if result.Success {
		logger.Info("Workflow completed successfully: %s", w.Name)
	} else {
		logger.Warn("Workflow completed with failed steps: %s", w.Name)
	}

	return result
}

// alwaysRuns reports whether an action opted into the cleanup-always rule.
func alwaysRuns(action Action) bool {
	cleanup, ok := action.(CleanupAction)
	return ok && cleanup.AlwaysRun()
}

// FormatResult returns a human-readable summary of a workflow execution
func FormatResult(result RunResult) string {
	if len(result.Steps) == 0 {
		return "No actions executed"
	}

	var summary string
	successCount := 0

	for i, step := range result.Steps {
		status := "FAILED"
		if step.Err == nil {
			status = "SUCCESS"
			successCount++
		}

		summary += fmt.Sprintf("Step %d: %s - %s (%s)\n",
			i+1,
			step.Action,
			status,
			step.Duration.Round(time.Millisecond),
		)

		if step.Err != nil {
			summary += fmt.Sprintf("  Error: %v\n", step.Err)
		}
	}

	summary += fmt.Sprintf("\nSummary: %d/%d steps succeeded\n",
		successCount,
		len(result.Steps),
	)

	return summary
}
