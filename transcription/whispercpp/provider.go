package whispercpp

import (
	"context"

	"github.com/skillsenselab/whisperkit/provider"
	"github.com/skillsenselab/whisperkit/transcription"
)

// Provider implements transcription.Provider backed by an on-device
// whisper.cpp engine context.
type Provider struct {
	ctx *Context
}

// Compile-time interface checks.
var (
	_ transcription.Provider = (*Provider)(nil)
	_ provider.Closeable     = (*Provider)(nil)
	_ provider.HealthChecker = (*Provider)(nil)
)

// NewProvider loads the model described by cfg and returns a ready provider.
func NewProvider(cfg Config) (*Provider, error) {
	ctx, err := New(cfg)
	if err != nil {
		return nil, err
	}
	return &Provider{ctx: ctx}, nil
}

// Factory returns a provider.Factory that creates whisper.cpp providers
// from a generic config map.
func Factory() provider.Factory[transcription.Provider] {
	return func(cfg map[string]any) (transcription.Provider, error) {
		wc := Config{}
		if v, ok := cfg["model_path"].(string); ok {
			wc.ModelPath = v
		}
		if v, ok := cfg["language"].(string); ok {
			wc.Language = v
		}
		if v, ok := cfg["threads"].(int); ok {
			wc.Threads = v
		}
		if v, ok := cfg["max_tokens"].(int); ok {
			wc.MaxTokens = v
		}
		if v, ok := cfg["translate"].(bool); ok {
			wc.Translate = v
		}
		return NewProvider(wc)
	}
}

// Name returns the provider name.
func (p *Provider) Name() string { return ProviderName }

// IsAvailable reports whether the engine context is still live.
func (p *Provider) IsAvailable(_ context.Context) bool {
	return p.ctx != nil && !p.ctx.Closed()
}

// Transcribe runs speech recognition over the request's sample buffer.
func (p *Provider) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	return p.ctx.Transcribe(ctx, req)
}

// Health reports detailed provider health including the loaded model path.
func (p *Provider) Health(_ context.Context) provider.HealthStatus {
	if p.ctx == nil || p.ctx.Closed() {
		return provider.HealthStatus{
			Status:  provider.StatusUnavailable,
			Message: "engine context released",
		}
	}
	cfg := p.ctx.Config()
	return provider.HealthStatus{
		Status: provider.StatusHealthy,
		Details: map[string]any{
			"model_path": cfg.ModelPath,
			"language":   cfg.Language,
			"threads":    cfg.Threads,
		},
	}
}

// Close releases the engine context. Idempotent.
func (p *Provider) Close(_ context.Context) error {
	if p.ctx == nil {
		return nil
	}
	return p.ctx.Close()
}
