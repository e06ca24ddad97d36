package provider

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/skillsenselab/whisperkit/provider"

// WithTracing returns a Middleware that creates an OpenTelemetry span
// around each Execute call. The span name is "{serviceName}.{providerName}".
// Spans are no-ops unless the host application installs a tracer provider.
func WithTracing[I, O any](serviceName string) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &tracingRR[I, O]{
			inner:       inner,
			serviceName: serviceName,
			tracer:      otel.Tracer(tracerName),
		}
	}
}

type tracingRR[I, O any] struct {
	inner       RequestResponse[I, O]
	serviceName string
	tracer      trace.Tracer
}

func (t *tracingRR[I, O]) Name() string                         { return t.inner.Name() }
func (t *tracingRR[I, O]) IsAvailable(ctx context.Context) bool { return t.inner.IsAvailable(ctx) }

func (t *tracingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	ctx, span := t.tracer.Start(ctx, t.serviceName+"."+t.inner.Name(),
		trace.WithAttributes(
			attribute.String("service.name", t.serviceName),
			attribute.String("provider.name", t.inner.Name()),
		))
	defer span.End()

	output, err := t.inner.Execute(ctx, input)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}

	return output, err
}
