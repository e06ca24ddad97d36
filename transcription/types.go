package transcription

// SampleRate is the sample rate the engine expects, in Hz.
// Callers own resampling; the binding never converts audio.
const SampleRate = 16000

// Request holds parameters for a transcription call.
type Request struct {
	// Samples is the caller-owned audio buffer: float32, mono, 16kHz.
	// The binding reads it without copying, resampling, or validating
	// the sample rate.
	Samples []float32 `json:"-"`
	// Language is the expected language of the audio (e.g. "en").
	// Empty means the provider's configured default.
	Language string `json:"language,omitempty"`
	// Translate requests translation of the transcript into English.
	Translate bool `json:"translate,omitempty"`
}

// Result holds the result of a transcription call.
type Result struct {
	// Text is the full transcript: every segment's text concatenated in
	// engine order with nothing inserted between segments. Empty when the
	// engine produced zero segments, which is a valid result and not a
	// failure.
	Text string `json:"text"`
	// Segments contains the time-aligned transcript segments in the order
	// the engine produced them.
	Segments []Segment `json:"segments,omitempty"`
	// Duration is the audio duration in seconds.
	Duration float64 `json:"duration,omitempty"`
	// Language is the language used for decoding.
	Language string `json:"language,omitempty"`
}

// Segment represents one contiguous span of decoded text.
type Segment struct {
	// Start is the segment start time in seconds.
	Start float64 `json:"start"`
	// End is the segment end time in seconds.
	End float64 `json:"end"`
	// Text is the transcribed text for this segment.
	Text string `json:"text"`
}
