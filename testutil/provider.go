package testutil

import (
	"context"
	"sync"

	"github.com/skillsenselab/whisperkit/transcription"
)

// FakeProvider is a scripted transcription.Provider for tests.
// It returns a fixed transcript (or a scripted error) and records every
// request it receives. Safe for concurrent use.
type FakeProvider struct {
	mu        sync.Mutex
	name      string
	text      string
	err       error
	available bool
	requests  []transcription.Request
}

// NewFakeProvider returns a provider that transcribes everything to text.
func NewFakeProvider(text string) *FakeProvider {
	return &FakeProvider{
		name:      "fake",
		text:      text,
		available: true,
	}
}

// WithName overrides the provider name.
func (p *FakeProvider) WithName(name string) *FakeProvider {
	p.name = name
	return p
}

// WithError makes every Transcribe call fail with err.
func (p *FakeProvider) WithError(err error) *FakeProvider {
	p.err = err
	return p
}

// SetAvailable toggles the availability reported by IsAvailable.
func (p *FakeProvider) SetAvailable(available bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.available = available
}

func (p *FakeProvider) Name() string {
	return p.name
}

func (p *FakeProvider) IsAvailable(_ context.Context) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.available
}

func (p *FakeProvider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	p.mu.Lock()
	p.requests = append(p.requests, req)
	p.mu.Unlock()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if p.err != nil {
		return nil, p.err
	}

	duration := float64(len(req.Samples)) / float64(transcription.SampleRate)
	res := &transcription.Result{
		Text:     p.text,
		Duration: duration,
		Language: req.Language,
	}
	if p.text != "" {
		res.Segments = []transcription.Segment{{Start: 0, End: duration, Text: p.text}}
	}
	return res, nil
}

// Requests returns a copy of every request seen so far.
func (p *FakeProvider) Requests() []transcription.Request {
	p.mu.Lock()
	defer p.mu.Unlock()
	out := make([]transcription.Request, len(p.requests))
	copy(out, p.requests)
	return out
}

var _ transcription.Provider = (*FakeProvider)(nil)
