// Package testutil provides testing infrastructure for transcription code.
//
// It offers deterministic sample generators for building audio inputs
// without fixture files, a WAV fixture writer for tests that exercise the
// decode path, and a scripted fake transcription provider for testing
// callers of the transcription API without loading a real model.
//
// # Quick Start
//
// Generate a second of silence and run it through a fake provider:
//
//	samples := testutil.Silence(testutil.SampleRate)
//	fake := testutil.NewFakeProvider("hello world")
//	res, err := fake.Transcribe(ctx, transcription.Request{Samples: samples})
package testutil
