package provider

import (
	"context"
	"testing"
)

func TestPrioritySelector(t *testing.T) {
	providers := map[string]*fakeProvider{
		"first":  {name: "first", available: false},
		"second": {name: "second", available: true},
		"third":  {name: "third", available: true},
	}
	sel := &PrioritySelector[*fakeProvider]{Priority: []string{"first", "second", "third"}}

	p, err := sel.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "second" {
		t.Errorf("expected 'second' (first available), got %q", p.Name())
	}
}

func TestPrioritySelectorNoneAvailable(t *testing.T) {
	providers := map[string]*fakeProvider{
		"only": {name: "only", available: false},
	}
	sel := &PrioritySelector[*fakeProvider]{Priority: []string{"only"}}

	if _, err := sel.Select(context.Background(), providers); err == nil {
		t.Error("expected error when no provider is available")
	}
}

func TestHealthCheckSelector(t *testing.T) {
	providers := map[string]*fakeProvider{
		"b": {name: "b", available: true},
		"a": {name: "a", available: false},
	}
	sel := &HealthCheckSelector[*fakeProvider]{}

	p, err := sel.Select(context.Background(), providers)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.Name() != "b" {
		t.Errorf("expected 'b', got %q", p.Name())
	}
}

func TestHealthCheckSelectorEmpty(t *testing.T) {
	sel := &HealthCheckSelector[*fakeProvider]{}
	if _, err := sel.Select(context.Background(), map[string]*fakeProvider{}); err == nil {
		t.Error("expected error for empty provider map")
	}
}
