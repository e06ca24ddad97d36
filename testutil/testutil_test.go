package testutil_test

import (
	"context"
	"errors"
	"math"
	"os"
	"testing"

	"github.com/skillsenselab/whisperkit/audio"
	"github.com/skillsenselab/whisperkit/testutil"
	"github.com/skillsenselab/whisperkit/transcription"
)

func TestSilence(t *testing.T) {
	samples := testutil.Silence(100)
	if len(samples) != 100 {
		t.Fatalf("expected 100 samples, got %d", len(samples))
	}
	for i, s := range samples {
		if s != 0 {
			t.Fatalf("sample %d is %f, expected 0", i, s)
		}
	}
}

func TestSineStaysInRange(t *testing.T) {
	samples := testutil.Sine(testutil.Seconds(0.5), 440, 0.8)
	if len(samples) != testutil.SampleRate/2 {
		t.Fatalf("expected %d samples, got %d", testutil.SampleRate/2, len(samples))
	}
	for i, s := range samples {
		if math.Abs(float64(s)) > 0.8+1e-6 {
			t.Fatalf("sample %d exceeds amplitude: %f", i, s)
		}
	}
}

func TestWriteWAVRoundTrip(t *testing.T) {
	in := testutil.Sine(testutil.Seconds(0.1), 440, 0.5)
	path := testutil.WriteWAV(t, in, testutil.SampleRate, 1)

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	out, err := audio.DecodeWAV(f)
	if err != nil {
		t.Fatalf("decode failed: %v", err)
	}
	if len(out) != len(in) {
		t.Fatalf("expected %d samples, got %d", len(in), len(out))
	}
	// PCM16 quantization keeps values within two steps of the input.
	for i := range in {
		if math.Abs(float64(out[i]-in[i])) > 2.0/32768 {
			t.Fatalf("sample %d drifted: in=%f out=%f", i, in[i], out[i])
		}
	}
}

func TestFakeProviderRecordsRequests(t *testing.T) {
	fake := testutil.NewFakeProvider("hello world")

	res, err := fake.Transcribe(context.Background(), transcription.Request{
		Samples:  testutil.Silence(testutil.SampleRate),
		Language: "en",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "hello world" {
		t.Errorf("expected scripted text, got %q", res.Text)
	}
	if res.Duration != 1.0 {
		t.Errorf("expected 1s duration, got %f", res.Duration)
	}
	if len(fake.Requests()) != 1 {
		t.Errorf("expected 1 recorded request, got %d", len(fake.Requests()))
	}
}

func TestFakeProviderScriptedError(t *testing.T) {
	wantErr := errors.New("engine exploded")
	fake := testutil.NewFakeProvider("").WithError(wantErr)

	_, err := fake.Transcribe(context.Background(), transcription.Request{Samples: testutil.Silence(10)})
	if !errors.Is(err, wantErr) {
		t.Errorf("expected scripted error, got %v", err)
	}
}
