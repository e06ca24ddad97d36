package audio

import (
	"io"

	"github.com/go-audio/wav"

	apperrors "github.com/skillsenselab/whisperkit/errors"
	"github.com/skillsenselab/whisperkit/transcription"
)

const pcm16Scale = 32768.0

// DecodeWAV reads a WAV stream and returns float32 samples ready for the
// engine. The input must already be mono 16kHz PCM; the binding never
// resamples, so anything else is rejected rather than silently converted.
func DecodeWAV(r io.ReadSeeker) ([]float32, error) {
	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return nil, apperrors.AudioFormat("not a valid WAV file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return nil, apperrors.AudioFormat("failed to decode PCM data").WithCause(err)
	}
	if buf.Format == nil {
		return nil, apperrors.AudioFormat("missing format chunk")
	}
	if buf.Format.NumChannels != 1 {
		return nil, apperrors.AudioFormat("audio must be mono").
			WithDetail("channels", buf.Format.NumChannels)
	}
	if buf.Format.SampleRate != transcription.SampleRate {
		return nil, apperrors.AudioFormat("audio must be sampled at 16kHz").
			WithDetail("sample_rate", buf.Format.SampleRate)
	}

	if dec.BitDepth != 16 {
		return nil, apperrors.AudioFormat("audio must be 16-bit PCM").
			WithDetail("bit_depth", int(dec.BitDepth))
	}

	samples := make([]float32, len(buf.Data))
	for i, v := range buf.Data {
		samples[i] = float32(v) / pcm16Scale
	}
	return samples, nil
}
