package provider

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

var (
	apiCallsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "cloudlaunch",
			Subsystem: "provider",
			Name:      "api_calls_total",
			Help:      "Total number of provider API calls by backend, operation and result",
		},
		[]string{"backend", "operation", "result"},
	)

	apiLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "cloudlaunch",
			Subsystem: "provider",
			Name:      "api_latency_seconds",
			Help:      "Latency of provider API calls in seconds",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 9), // 50ms to ~12s
		},
		[]string{"backend", "operation"},
	)
)

func init() {
	prometheus.MustRegister(apiCallsTotal, apiLatency)
}

// recordAPICallMetric records a provider API call.
func recordAPICallMetric(backend, operation string, err error, latency float64) {
	result := "success"
	switch {
	case err == nil:
	case IsNotFound(err):
		result = "not_found"
	case IsClaimed(err):
		result = "claimed"
	default:
		result = "error"
	}
	apiCallsTotal.WithLabelValues(backend, operation, result).Inc()
	apiLatency.WithLabelValues(backend, operation).Observe(latency)
}

// instrumented decorates a Provider with call metrics.
type instrumented struct {
	backend string
	next    Provider
}

// Instrumented returns a Provider that records metrics for every call to next.
func Instrumented(backend string, next Provider) Provider {
	return &instrumented{backend: backend, next: next}
}

func (p *instrumented) observe(operation string, start time.Time, err error) {
	recordAPICallMetric(p.backend, operation, err, time.Since(start).Seconds())
}

func (p *instrumented) CreateInstance(ctx context.Context, opts CreateInstanceOpts) (id string, err error) {
	defer func(start time.Time) { p.observe("create_instance", start, err) }(time.Now())
	return p.next.CreateInstance(ctx, opts)
}

func (p *instrumented) GetInstance(ctx context.Context, id string) (inst *Instance, err error) {
	defer func(start time.Time) { p.observe("get_instance", start, err) }(time.Now())
	return p.next.GetInstance(ctx, id)
}

func (p *instrumented) ListInstances(ctx context.Context) (list []*Instance, err error) {
	defer func(start time.Time) { p.observe("list_instances", start, err) }(time.Now())
	return p.next.ListInstances(ctx)
}

func (p *instrumented) ListFloatingIPs(ctx context.Context) (list []FloatingIP, err error) {
	defer func(start time.Time) { p.observe("list_floating_ips", start, err) }(time.Now())
	return p.next.ListFloatingIPs(ctx)
}

func (p *instrumented) AttachFloatingIP(ctx context.Context, id, address string) (err error) {
	defer func(start time.Time) { p.observe("attach_floating_ip", start, err) }(time.Now())
	return p.next.AttachFloatingIP(ctx, id, address)
}
