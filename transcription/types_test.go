package transcription

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestResultJSONOmitsSamples(t *testing.T) {
	req := Request{Samples: make([]float32, 16000), Language: "en"}
	data, err := json.Marshal(req)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if strings.Contains(string(data), "Samples") || strings.Contains(string(data), "samples") {
		t.Errorf("sample buffer must not be serialized, got %s", data)
	}
}

func TestResultEmptyTextIsValid(t *testing.T) {
	// Zero segments produce an empty transcript, which is a valid result.
	res := Result{Text: "", Segments: nil}
	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(string(data), `"text":""`) {
		t.Errorf("empty text must serialize as empty string, got %s", data)
	}
}

func TestSegmentOrderRoundTrip(t *testing.T) {
	res := Result{
		Text: " one two",
		Segments: []Segment{
			{Start: 0, End: 1.5, Text: " one"},
			{Start: 1.5, End: 2.0, Text: " two"},
		},
	}

	data, err := json.Marshal(res)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var got Result
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got.Segments) != 2 {
		t.Fatalf("expected 2 segments, got %d", len(got.Segments))
	}
	if got.Segments[0].Text != " one" || got.Segments[1].Text != " two" {
		t.Errorf("segment order not preserved: %+v", got.Segments)
	}
}
