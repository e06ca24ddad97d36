package errors

// ErrorCode represents a machine-readable error code.
type ErrorCode string

// Engine errors
const (
	// ErrCodeModelLoad indicates the model file could not be read or parsed.
	ErrCodeModelLoad ErrorCode = "MODEL_LOAD_FAILED"
	// ErrCodeDecodeFailed indicates the engine's decode routine failed.
	ErrCodeDecodeFailed ErrorCode = "DECODE_FAILED"
	// ErrCodeEngineClosed indicates an operation on a released engine context.
	ErrCodeEngineClosed ErrorCode = "ENGINE_CLOSED"
)

// Input errors
const (
	// ErrCodeInvalidAudio indicates a nil or empty sample buffer.
	ErrCodeInvalidAudio ErrorCode = "INVALID_AUDIO"
	// ErrCodeAudioFormat indicates audio that is not mono 16kHz PCM.
	ErrCodeAudioFormat ErrorCode = "AUDIO_FORMAT"
	// ErrCodeInvalidInput indicates other invalid input.
	ErrCodeInvalidInput ErrorCode = "INVALID_INPUT"
	// ErrCodeMissingField indicates a required field is missing.
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"
)

// Resource errors
const (
	// ErrCodeNotFound indicates the requested resource was not found.
	ErrCodeNotFound ErrorCode = "NOT_FOUND"
)

// Availability errors (retryable)
const (
	// ErrCodeServiceUnavailable indicates the service is temporarily unavailable.
	ErrCodeServiceUnavailable ErrorCode = "SERVICE_UNAVAILABLE"
	// ErrCodeTimeout indicates the request timed out.
	ErrCodeTimeout ErrorCode = "TIMEOUT"
)

// Internal errors
const (
	// ErrCodeInternal indicates an internal error.
	ErrCodeInternal ErrorCode = "INTERNAL_ERROR"
)

var retryableCodes = map[ErrorCode]bool{
	ErrCodeServiceUnavailable: true,
	ErrCodeTimeout:            true,
}

// IsRetryableCode returns true if the error code indicates a retryable error.
func IsRetryableCode(code ErrorCode) bool {
	return retryableCodes[code]
}
