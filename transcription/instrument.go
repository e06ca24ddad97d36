package transcription

import (
	"context"

	"github.com/skillsenselab/whisperkit/provider"
)

// Instrument routes p's Transcribe path through the given middlewares and
// returns a Provider again, so the server and CLI stay unaware of the
// wrapping. The middlewares see the provider as a RequestResponse, which
// lets the generic logging, tracing, and metrics wrappers apply to
// transcription without a dedicated variant of each.
//
// Name and IsAvailable delegate to p unchanged. Health checks and
// shutdown are not forwarded through the wrapper; keep a reference to the
// original provider for those.
func Instrument(p Provider, mws ...provider.Middleware[Request, *Result]) Provider {
	if len(mws) == 0 {
		return p
	}
	rr := provider.Chain(mws...)(executeBridge{p})
	return &instrumented{p: p, rr: rr}
}

// executeBridge exposes Transcribe as Execute so provider middlewares can
// wrap it.
type executeBridge struct {
	p Provider
}

func (b executeBridge) Name() string                         { return b.p.Name() }
func (b executeBridge) IsAvailable(ctx context.Context) bool { return b.p.IsAvailable(ctx) }

func (b executeBridge) Execute(ctx context.Context, req Request) (*Result, error) {
	return b.p.Transcribe(ctx, req)
}

type instrumented struct {
	p  Provider
	rr provider.RequestResponse[Request, *Result]
}

func (i *instrumented) Name() string                         { return i.p.Name() }
func (i *instrumented) IsAvailable(ctx context.Context) bool { return i.p.IsAvailable(ctx) }

func (i *instrumented) Transcribe(ctx context.Context, req Request) (*Result, error) {
	return i.rr.Execute(ctx, req)
}
