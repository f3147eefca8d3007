package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/HSJose/CHD-11720/logging"
)

// Caller executes API calls with bounded retries. It is safe for reuse
// across calls; each call carries its own spec and policy.
type Caller struct {
	client *resty.Client
	logger logging.Logger
}

// NewCaller creates a caller that logs every attempt through the given
// logger. A nil logger disables logging.
func NewCaller(logger logging.Logger) *Caller {
	if logger == nil {
		logger = logging.NewNopLogger()
	}

	client := resty.New().
		SetHeader("Content-Type", "application/json").
		SetHeader("Accept", "application/json")

	return &Caller{
		client: client,
		logger: logger,
	}
}

// Call dispatches spec up to policy.MaxAttempts times, waiting policy.Delay
// between attempts. A 200 response ends the series immediately with the
// decoded body; transport faults and non-200 statuses are retried. An
// unsupported method fails the whole series at once, without touching the
// network and without waiting.
func (c *Caller) Call(ctx context.Context, spec RequestSpec, policy RetryPolicy) CallResult {
	if policy.MaxAttempts < 1 {
		policy.MaxAttempts = 1
	}

	switch spec.Method {
	case MethodGet, MethodPost, MethodPatch:
	default:
		err := fmt.Errorf("%w: %q", ErrUnsupportedMethod, spec.Method)
		c.logger.Error("Not retrying %s: %v", spec.URL, err)
		return CallResult{Err: err}
	}

	var lastErr error
	for attempt := 1; attempt <= policy.MaxAttempts; attempt++ {
		body, err := c.dispatch(ctx, spec)
		if err == nil {
			c.logger.Info("%s %s succeeded on attempt %d/%d", spec.Method, spec.URL, attempt, policy.MaxAttempts)
			return CallResult{Body: body, Attempts: attempt}
		}

		lastErr = err
		c.logger.Error("%s %s attempt %d/%d failed: %v", spec.Method, spec.URL, attempt, policy.MaxAttempts, err)

		if attempt < policy.MaxAttempts {
			select {
			case <-ctx.Done():
				c.logger.Warn("Giving up on %s %s: %v", spec.Method, spec.URL, ctx.Err())
				return CallResult{Err: ctx.Err(), Attempts: attempt}
			case <-time.After(policy.Delay):
			}
		}
	}

	c.logger.Info("All %d attempts for %s %s exhausted", policy.MaxAttempts, spec.Method, spec.URL)
	return CallResult{Err: lastErr, Attempts: policy.MaxAttempts}
}

// dispatch performs a single attempt and normalizes its outcome.
func (c *Caller) dispatch(ctx context.Context, spec RequestSpec) (map[string]interface{}, error) {
	attemptCtx := ctx
	if spec.Timeout > 0 {
		var cancel context.CancelFunc
		attemptCtx, cancel = context.WithTimeout(ctx, spec.Timeout)
		defer cancel()
	}

	req := c.client.R().SetContext(attemptCtx)
	for k, v := range spec.Headers {
		req.SetHeader(k, v)
	}
	if spec.Body != nil {
		req.SetBody(spec.Body)
	}

	var resp *resty.Response
	var err error
	switch spec.Method {
	case MethodGet:
		resp, err = req.Get(spec.URL)
	case MethodPost:
		resp, err = req.Post(spec.URL)
	case MethodPatch:
		resp, err = req.Patch(spec.URL)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnsupportedMethod, spec.Method)
	}

	if err != nil {
		return nil, &TransportError{Err: err}
	}
	if resp.StatusCode() != http.StatusOK {
		return nil, &ServerError{
			Status: resp.StatusCode(),
			Body:   strings.TrimSpace(resp.String()),
		}
	}

	body := map[string]interface{}{}
	if len(resp.Body()) > 0 {
		if err := json.Unmarshal(resp.Body(), &body); err != nil {
			return nil, fmt.Errorf("failed to decode response body: %w", err)
		}
	}

	return body, nil
}
