package testutil

import (
	"math"

	"github.com/skillsenselab/whisperkit/transcription"
)

// SampleRate is the rate every generator in this package produces at.
const SampleRate = transcription.SampleRate

// Silence returns n zero-valued samples.
func Silence(n int) []float32 {
	return make([]float32, n)
}

// Sine returns n samples of a sine tone at the given frequency and amplitude.
// Amplitude should stay within [0, 1] to avoid clipping on PCM encode.
func Sine(n int, freq, amplitude float64) []float32 {
	samples := make([]float32, n)
	step := 2 * math.Pi * freq / float64(SampleRate)
	for i := range samples {
		samples[i] = float32(amplitude * math.Sin(step*float64(i)))
	}
	return samples
}

// Seconds converts a duration in seconds to a sample count at SampleRate.
func Seconds(s float64) int {
	return int(s * float64(SampleRate))
}
