// Package whispercpp binds the whisper.cpp inference engine behind the
// transcription.Provider interface.
//
// A Context owns one loaded model plus a fixed decode configuration: greedy
// sampling, language "en", 4 worker threads, no token limit, hardware offload
// requested when compiled in. The configuration is set at New and never
// changes for the life of the context.
//
//	ctx, err := whispercpp.New(whispercpp.Config{ModelPath: "ggml-base.en.bin"})
//	if err != nil { ... }
//	defer ctx.Close()
//	result, err := ctx.Transcribe(context.Background(), transcription.Request{Samples: samples})
//
// Transcribing silence returns an empty transcript and a nil error; callers
// must not treat an empty string as a failure.
//
// Building requires the whisper.cpp static library; see the bindings module
// github.com/ggerganov/whisper.cpp/bindings/go for library setup.
package whispercpp
