// Package transcription defines the provider interface and common types
// for interacting with speech-to-text backends.
//
// It follows the provider pattern with a pluggable registry for
// runtime-selectable backends.
//
// # Backends
//
//   - transcription/whispercpp: on-device whisper.cpp inference
//
// # Usage
//
//	mgr := transcription.NewManager()
//	mgr.Register("whispercpp", whispercpp.Factory())
//	mgr.Initialize("whispercpp", map[string]any{"model_path": path})
//	p, _ := mgr.Get(ctx)
//	result, err := p.Transcribe(ctx, transcription.Request{Samples: samples})
package transcription
