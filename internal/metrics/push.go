package metrics

import (
	"context"
	"fmt"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/push"
)

// Push sends everything registered in the default registry to a Pushgateway.
// Export runs are short-lived, so they are pushed once at the end instead of scraped.
func Push(ctx context.Context, url, job string) error {
	return PushFrom(ctx, prometheus.DefaultGatherer, url, job)
}

// PushFrom sends the metrics of gatherer to a Pushgateway.
func PushFrom(ctx context.Context, gatherer prometheus.Gatherer, url, job string) error {
	if err := push.New(url, job).Gatherer(gatherer).PushContext(ctx); err != nil {
		return fmt.Errorf("push metrics to %s: %w", url, err)
	}
	return nil
}
