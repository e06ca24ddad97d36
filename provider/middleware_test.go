package provider

import (
	"context"
	"errors"
	"testing"

	"github.com/skillsenselab/whisperkit/logger"
)

type echoRR struct {
	name string
	err  error
}

func (e *echoRR) Name() string                       { return e.name }
func (e *echoRR) IsAvailable(_ context.Context) bool { return true }
func (e *echoRR) Execute(_ context.Context, in string) (string, error) {
	if e.err != nil {
		return "", e.err
	}
	return in, nil
}

func TestChainOrder(t *testing.T) {
	var order []string
	mark := func(label string) Middleware[string, string] {
		return func(inner RequestResponse[string, string]) RequestResponse[string, string] {
			return &markRR{inner: inner, label: label, order: &order}
		}
	}

	wrapped := Chain(mark("outer"), mark("inner"))(&echoRR{name: "echo"})
	if _, err := wrapped.Execute(context.Background(), "hi"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(order) != 2 || order[0] != "outer" || order[1] != "inner" {
		t.Errorf("expected [outer inner], got %v", order)
	}
}

type markRR struct {
	inner RequestResponse[string, string]
	label string
	order *[]string
}

func (m *markRR) Name() string                       { return m.inner.Name() }
func (m *markRR) IsAvailable(ctx context.Context) bool { return m.inner.IsAvailable(ctx) }
func (m *markRR) Execute(ctx context.Context, in string) (string, error) {
	*m.order = append(*m.order, m.label)
	return m.inner.Execute(ctx, in)
}

func TestWithLoggingPassesThrough(t *testing.T) {
	log := logger.NewDefault("test")
	wrapped := WithLogging[string, string](log)(&echoRR{name: "echo"})

	out, err := wrapped.Execute(context.Background(), "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "hello" {
		t.Errorf("expected 'hello', got %q", out)
	}
	if wrapped.Name() != "echo" {
		t.Errorf("middleware must preserve name, got %q", wrapped.Name())
	}
}

func TestWithLoggingPropagatesError(t *testing.T) {
	log := logger.NewDefault("test")
	boom := errors.New("decode failed")
	wrapped := WithLogging[string, string](log)(&echoRR{name: "echo", err: boom})

	if _, err := wrapped.Execute(context.Background(), "x"); !errors.Is(err, boom) {
		t.Errorf("expected wrapped error, got %v", err)
	}
}

func TestWithTracingNoopProvider(t *testing.T) {
	// Without an installed tracer provider spans are no-ops; the call
	// must still pass through untouched.
	wrapped := WithTracing[string, string]("whisperkit")(&echoRR{name: "echo"})

	out, err := wrapped.Execute(context.Background(), "traced")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "traced" {
		t.Errorf("expected 'traced', got %q", out)
	}
}

func TestWithMetricsNoopProvider(t *testing.T) {
	wrapped := WithMetrics[string, string]()(&echoRR{name: "echo"})

	out, err := wrapped.Execute(context.Background(), "measured")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out != "measured" {
		t.Errorf("expected 'measured', got %q", out)
	}
}
