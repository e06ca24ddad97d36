package transcription

import (
	"context"

	"github.com/skillsenselab/whisperkit/provider"
)

// Provider is the interface that transcription backends must implement.
type Provider interface {
	provider.Provider // embeds Name() and IsAvailable()

	// Transcribe runs speech recognition over the request's sample buffer
	// and returns the result. A nil or empty buffer fails before the engine
	// is invoked. Zero decoded segments yield a Result with empty Text and
	// a nil error.
	Transcribe(ctx context.Context, req Request) (*Result, error)
}
