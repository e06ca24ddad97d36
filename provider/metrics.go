package provider

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const meterName = "github.com/skillsenselab/whisperkit/provider"

// WithMetrics returns a Middleware that records execution metrics via
// OpenTelemetry instruments: operation count, duration histogram, and errors.
// Instruments are no-ops unless the host application installs a meter provider.
func WithMetrics[I, O any]() Middleware[I, O] {
	meter := otel.Meter(meterName)
	count, _ := meter.Int64Counter("provider.execute.count",
		metric.WithDescription("Number of provider Execute calls"))
	errs, _ := meter.Int64Counter("provider.execute.errors",
		metric.WithDescription("Number of failed provider Execute calls"))
	duration, _ := meter.Float64Histogram("provider.execute.duration",
		metric.WithDescription("Provider Execute duration in milliseconds"),
		metric.WithUnit("ms"))

	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &metricsRR[I, O]{
			inner:    inner,
			count:    count,
			errs:     errs,
			duration: duration,
		}
	}
}

type metricsRR[I, O any] struct {
	inner    RequestResponse[I, O]
	count    metric.Int64Counter
	errs     metric.Int64Counter
	duration metric.Float64Histogram
}

func (m *metricsRR[I, O]) Name() string                         { return m.inner.Name() }
func (m *metricsRR[I, O]) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }

func (m *metricsRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := m.inner.Execute(ctx, input)
	elapsed := time.Since(start)

	attrs := metric.WithAttributes(attribute.String("provider", m.inner.Name()))
	m.count.Add(ctx, 1, attrs)
	if err != nil {
		m.errs.Add(ctx, 1, attrs)
	}
	m.duration.Record(ctx, float64(elapsed.Milliseconds()), attrs)

	return output, err
}
