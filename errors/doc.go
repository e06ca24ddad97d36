// Package errors defines the error taxonomy for the whisperkit binding.
//
// Every failure surfaced by the binding is an *AppError carrying a
// machine-readable code:
//
//   - MODEL_LOAD_FAILED: the model file was unreadable or malformed
//   - INVALID_AUDIO: nil or empty sample buffer passed to transcribe
//   - DECODE_FAILED: the engine's decode routine reported an error
//   - ENGINE_CLOSED: operation attempted on a released context
//
// An empty transcript is never an error: transcribing silence returns
// ("", nil), which callers must distinguish from a non-nil error.
package errors
