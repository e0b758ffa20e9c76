// Package httpclient wraps upstream API calls with pacing, retries and metrics.
package httpclient

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/goodnatureofminers/staking-rewards-exporter/internal/clock"
	"go.uber.org/ratelimit"
	"go.uber.org/zap"
)

const (
	defaultBaseBackoff = 500 * time.Millisecond
	defaultMaxBackoff  = 30 * time.Second
	maxErrorBody       = 512
)

// StatusError reports a response outside the 2xx range.
type StatusError struct {
	Operation  string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: unexpected status %d: %s", e.Operation, e.StatusCode, e.Body)
}

// Temporary reports whether the request may succeed when repeated.
func (e *StatusError) Temporary() bool {
	return e.StatusCode == http.StatusTooManyRequests || e.StatusCode >= http.StatusInternalServerError
}

// ObservedClient sends requests through a rate limiter, retries throttled and
// failed requests with exponential backoff and records every attempt.
type ObservedClient struct {
	doer        Doer
	limiter     ratelimit.Limiter
	metrics     Metrics
	logger      *zap.Logger
	maxRetries  int
	baseBackoff time.Duration
	maxBackoff  time.Duration
	sleep       func(context.Context, time.Duration) error
}

// NewObservedClient constructs an ObservedClient. maxRetries counts repeats
// after the first attempt.
func NewObservedClient(doer Doer, limiter ratelimit.Limiter, metrics Metrics, logger *zap.Logger, maxRetries int) *ObservedClient {
	if limiter == nil {
		limiter = ratelimit.NewUnlimited()
	}
	if maxRetries < 0 {
		maxRetries = 0
	}
	return &ObservedClient{
		doer:        doer,
		limiter:     limiter,
		metrics:     metrics,
		logger:      logger,
		maxRetries:  maxRetries,
		baseBackoff: defaultBaseBackoff,
		maxBackoff:  defaultMaxBackoff,
		sleep:       clock.SleepWithContext,
	}
}

// Do builds a request with newRequest and returns the body of the first
// successful response. newRequest is called once per attempt.
func (c *ObservedClient) Do(ctx context.Context, operation string, newRequest func(context.Context) (*http.Request, error)) ([]byte, error) {
	for attempt := 1; ; attempt++ {
		body, retryAfter, retry, err := c.do(ctx, operation, newRequest)
		if err == nil {
			return body, nil
		}
		if !retry || attempt > c.maxRetries || ctx.Err() != nil {
			return nil, err
		}

		delay := clock.Backoff(attempt, c.baseBackoff, c.maxBackoff)
		if retryAfter > delay {
			delay = retryAfter
		}
		c.logger.Warn("request failed, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Duration("sleep", delay),
			zap.Error(err),
		)
		if sleepErr := c.sleep(ctx, delay); sleepErr != nil {
			return nil, sleepErr
		}
	}
}

func (c *ObservedClient) do(
	ctx context.Context,
	operation string,
	newRequest func(context.Context) (*http.Request, error),
) (body []byte, retryAfter time.Duration, retry bool, err error) {
	req, err := newRequest(ctx)
	if err != nil {
		return nil, 0, false, fmt.Errorf("build %s request: %w", operation, err)
	}

	c.limiter.Take()
	started := time.Now()
	defer func() {
		c.metrics.Observe(operation, err, started)
	}()

	resp, err := c.doer.Do(req)
	if err != nil {
		return nil, 0, !errors.Is(err, context.Canceled), fmt.Errorf("%s: %w", operation, err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	body, err = io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, true, fmt.Errorf("%s: read body: %w", operation, err)
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		if len(body) > maxErrorBody {
			body = body[:maxErrorBody]
		}
		statusErr := &StatusError{Operation: operation, StatusCode: resp.StatusCode, Body: string(body)}
		return nil, parseRetryAfter(resp.Header.Get("Retry-After")), statusErr.Temporary(), statusErr
	}
	return body, 0, false, nil
}

func parseRetryAfter(value string) time.Duration {
	if value == "" {
		return 0
	}
	seconds, err := strconv.Atoi(value)
	if err != nil || seconds < 0 {
		return 0
	}
	return time.Duration(seconds) * time.Second
}
