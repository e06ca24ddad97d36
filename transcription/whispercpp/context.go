package whispercpp

import (
	"context"
	"io"
	"strings"
	"sync"

	whisper "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"

	apperrors "github.com/skillsenselab/whisperkit/errors"
	"github.com/skillsenselab/whisperkit/logger"
	"github.com/skillsenselab/whisperkit/transcription"
)

// Context owns a loaded whisper.cpp model together with its fixed decode
// configuration. It is created by New and released by Close; Close is
// idempotent and any call after Close fails with ENGINE_CLOSED rather than
// touching freed engine state.
//
// A Context serializes engine access internally, so a single Context is safe
// to share across goroutines, though calls block each other.
type Context struct {
	mu    sync.Mutex
	cfg   Config
	model whisper.Model
	log   *logger.Logger
}

// New loads the model at cfg.ModelPath and returns a ready Context.
// On failure nothing is left allocated: either a usable Context is returned
// or an error, never both.
func New(cfg Config) (*Context, error) {
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, apperrors.ModelLoadFailed(cfg.ModelPath, err)
	}

	log := logger.Get("whispercpp")

	model, err := whisper.New(cfg.ModelPath)
	if err != nil {
		log.Error("failed to load model", logger.Fields(
			logger.FieldModelPath, cfg.ModelPath,
			logger.FieldError, err.Error(),
		))
		return nil, apperrors.ModelLoadFailed(cfg.ModelPath, err)
	}

	log.Info("model loaded", logger.Fields(
		logger.FieldModelPath, cfg.ModelPath,
		logger.FieldLanguage, cfg.Language,
		"threads", cfg.Threads,
	))

	return &Context{cfg: cfg, model: model, log: log}, nil
}

// Config returns the decode configuration the context was created with.
func (c *Context) Config() Config {
	return c.cfg
}

// Transcribe runs synchronous greedy decoding over the full sample buffer in
// one shot and returns the concatenated transcript. Samples must be float32
// mono 16kHz; the engine is never invoked for a nil or empty buffer. Zero
// decoded segments produce a Result with empty Text and a nil error, which
// distinguishes "nothing was said" from a decode failure.
func (c *Context) Transcribe(ctx context.Context, req transcription.Request) (*transcription.Result, error) {
	if len(req.Samples) == 0 {
		return nil, apperrors.InvalidAudio("sample buffer is nil or empty")
	}
	if err := ctx.Err(); err != nil {
		return nil, apperrors.Timeout("transcribe").WithCause(err)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return nil, apperrors.EngineClosed()
	}

	lang := req.Language
	if lang == "" {
		lang = c.cfg.Language
	}

	wctx, err := c.model.NewContext()
	if err != nil {
		return nil, apperrors.DecodeFailed(err)
	}

	// Greedy sampling is the engine default for a fresh decode context.
	wctx.SetTranslate(c.cfg.Translate || req.Translate)
	wctx.SetThreads(uint(c.cfg.Threads))
	if c.cfg.MaxTokens > 0 {
		wctx.SetMaxTokensPerSegment(uint(c.cfg.MaxTokens))
	}
	if err := wctx.SetLanguage(lang); err != nil {
		return nil, apperrors.InvalidInput("language", err.Error()).WithCause(err)
	}

	if err := wctx.Process(req.Samples, nil, nil, nil); err != nil {
		c.log.Error("decode failed", logger.Fields(
			logger.FieldSamples, len(req.Samples),
			logger.FieldError, err.Error(),
		))
		return nil, apperrors.DecodeFailed(err)
	}

	// Collect segments in engine order, concatenating with no separators.
	var text strings.Builder
	var segments []transcription.Segment
	for {
		seg, err := wctx.NextSegment()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.DecodeFailed(err)
		}
		text.WriteString(seg.Text)
		segments = append(segments, transcription.Segment{
			Start: seg.Start.Seconds(),
			End:   seg.End.Seconds(),
			Text:  seg.Text,
		})
	}

	c.log.Debug("transcription complete", logger.Fields(
		logger.FieldSamples, len(req.Samples),
		logger.FieldSegments, len(segments),
	))

	return &transcription.Result{
		Text:     text.String(),
		Segments: segments,
		Duration: float64(len(req.Samples)) / transcription.SampleRate,
		Language: lang,
	}, nil
}

// Closed reports whether the context has been released.
func (c *Context) Closed() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.model == nil
}

// Close releases the engine resources. It is safe to call more than once
// and on a context that never loaded.
func (c *Context) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.model == nil {
		return nil
	}
	err := c.model.Close()
	c.model = nil
	if err != nil {
		return apperrors.Internal(err)
	}
	c.log.Debug("model released", logger.Fields(
		logger.FieldModelPath, c.cfg.ModelPath,
	))
	return nil
}
