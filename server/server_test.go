package server_test

import (
	"bytes"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	apperrors "github.com/skillsenselab/whisperkit/errors"
	"github.com/skillsenselab/whisperkit/logger"
	"github.com/skillsenselab/whisperkit/server"
	"github.com/skillsenselab/whisperkit/testutil"
	"github.com/skillsenselab/whisperkit/transcription"
)

func newTestServer(t *testing.T, p transcription.Provider) *server.Server {
	t.Helper()
	cfg := server.Config{}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatal(err)
	}

	s := server.New(cfg, logger.NewDefault("test"))
	s.ApplyDefaults("whisperkit", nil)
	if p != nil {
		s.RegisterTranscription(p)
	}
	return s
}

func doRequest(s *server.Server, req *http.Request) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	s.GinEngine().ServeHTTP(w, req)
	return w
}

// multipartWAV builds a multipart body with the given WAV bytes under the
// "audio" field plus any extra form fields.
func multipartWAV(t *testing.T, wavData []byte, fields map[string]string) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	mw := multipart.NewWriter(body)
	part, err := mw.CreateFormFile("audio", "input.wav")
	if err != nil {
		t.Fatal(err)
	}
	if _, err := part.Write(wavData); err != nil {
		t.Fatal(err)
	}
	for k, v := range fields {
		if err := mw.WriteField(k, v); err != nil {
			t.Fatal(err)
		}
	}
	if err := mw.Close(); err != nil {
		t.Fatal(err)
	}
	return body, mw.FormDataContentType()
}

func readWAVFixture(t *testing.T, samples []float32) []byte {
	t.Helper()
	path := testutil.WriteWAV(t, samples, testutil.SampleRate, 1)
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	data, err := io.ReadAll(f)
	if err != nil {
		t.Fatal(err)
	}
	return data
}

func TestHealthEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["status"] != "healthy" {
		t.Errorf("expected healthy status, got %v", body["status"])
	}
	if body["service"] != "whisperkit" {
		t.Errorf("expected service name, got %v", body["service"])
	}
}

func TestVersionEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/version", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if body["version"] == "" {
		t.Error("expected non-empty version")
	}
}

func TestCapabilitiesEndpoint(t *testing.T) {
	s := newTestServer(t, nil)

	w := doRequest(s, httptest.NewRequest(http.MethodGet, "/capabilities", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}

	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatal(err)
	}
	if _, ok := body["metal_available"]; !ok {
		t.Error("expected metal_available field")
	}
	if body["version"] == "" {
		t.Error("expected non-empty version")
	}
}

func TestTranscribeWAVUpload(t *testing.T) {
	fake := testutil.NewFakeProvider("hello from the engine")
	s := newTestServer(t, fake)

	wavData := readWAVFixture(t, testutil.Sine(testutil.Seconds(0.2), 440, 0.5))
	body, contentType := multipartWAV(t, wavData, map[string]string{"language": "en"})

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp struct {
		Data transcription.Result `json:"data"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Data.Text != "hello from the engine" {
		t.Errorf("unexpected transcript: %q", resp.Data.Text)
	}

	reqs := fake.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 provider call, got %d", len(reqs))
	}
	if reqs[0].Language != "en" {
		t.Errorf("expected language forwarded, got %q", reqs[0].Language)
	}
	if len(reqs[0].Samples) == 0 {
		t.Error("expected decoded samples forwarded to provider")
	}
}

func TestTranscribeMissingAudioField(t *testing.T) {
	s := newTestServer(t, testutil.NewFakeProvider(""))

	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", nil)
	w := doRequest(s, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}

func TestTranscribeRejectsNonWAV(t *testing.T) {
	s := newTestServer(t, testutil.NewFakeProvider(""))

	body, contentType := multipartWAV(t, []byte("not a wav"), nil)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	if w.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", w.Code, w.Body.String())
	}
}

func TestTranscribeProviderErrorMapped(t *testing.T) {
	fake := testutil.NewFakeProvider("").WithError(apperrors.DecodeFailed(io.ErrUnexpectedEOF))
	s := newTestServer(t, fake)

	wavData := readWAVFixture(t, testutil.Silence(100))
	body, contentType := multipartWAV(t, wavData, nil)
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d", w.Code)
	}

	var resp apperrors.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatal(err)
	}
	if resp.Error.Code != apperrors.ErrCodeDecodeFailed {
		t.Errorf("expected decode failure code, got %q", resp.Error.Code)
	}
}

func TestTranscribeInvalidTranslateFlag(t *testing.T) {
	s := newTestServer(t, testutil.NewFakeProvider(""))

	wavData := readWAVFixture(t, testutil.Silence(100))
	body, contentType := multipartWAV(t, wavData, map[string]string{"translate": "maybe"})
	req := httptest.NewRequest(http.MethodPost, "/api/transcribe", body)
	req.Header.Set("Content-Type", contentType)
	w := doRequest(s, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", w.Code)
	}
}
