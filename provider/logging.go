package provider

import (
	"context"
	"time"

	"github.com/skillsenselab/whisperkit/logger"
)

// WithLogging logs every Execute call with the backend name and
// wall-clock duration. Failures log at error level with the message,
// successes at debug so a busy transcription loop stays quiet by
// default.
func WithLogging[I, O any](log *logger.Logger) Middleware[I, O] {
	return func(inner RequestResponse[I, O]) RequestResponse[I, O] {
		return &loggingRR[I, O]{inner: inner, log: log}
	}
}

type loggingRR[I, O any] struct {
	inner RequestResponse[I, O]
	log   *logger.Logger
}

func (l *loggingRR[I, O]) Name() string                         { return l.inner.Name() }
func (l *loggingRR[I, O]) IsAvailable(ctx context.Context) bool { return l.inner.IsAvailable(ctx) }

func (l *loggingRR[I, O]) Execute(ctx context.Context, input I) (O, error) {
	start := time.Now()
	output, err := l.inner.Execute(ctx, input)

	fields := map[string]interface{}{
		"provider": l.inner.Name(),
		"duration": time.Since(start).String(),
	}
	if err != nil {
		fields["error"] = err.Error()
		l.log.Error("execute failed", fields)
		return output, err
	}
	l.log.Debug("execute ok", fields)
	return output, nil
}
