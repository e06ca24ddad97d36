package testutil

import (
	"os"
	"path/filepath"
	"testing"

	gaudio "github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// WriteWAV writes samples as a 16-bit PCM WAV file under the test's temp
// directory and returns its path. Samples outside [-1, 1] are clamped.
func WriteWAV(t *testing.T, samples []float32, sampleRate, channels int) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "fixture.wav")
	f, err := os.Create(path)
	if err != nil {
		t.Fatalf("failed to create fixture: %v", err)
	}
	defer f.Close()

	enc := wav.NewEncoder(f, sampleRate, 16, channels, 1)
	buf := &gaudio.IntBuffer{
		Format:         &gaudio.Format{NumChannels: channels, SampleRate: sampleRate},
		Data:           toPCM16(samples),
		SourceBitDepth: 16,
	}
	if err := enc.Write(buf); err != nil {
		t.Fatalf("failed to write fixture: %v", err)
	}
	if err := enc.Close(); err != nil {
		t.Fatalf("failed to finalize fixture: %v", err)
	}
	return path
}

func toPCM16(samples []float32) []int {
	data := make([]int, len(samples))
	for i, s := range samples {
		if s > 1 {
			s = 1
		} else if s < -1 {
			s = -1
		}
		data[i] = int(s * 32767)
	}
	return data
}
