package whispercpp

import (
	"os"
	"path/filepath"
	"testing"
)

func TestConfigApplyDefaults(t *testing.T) {
	cfg := Config{ModelPath: "x.bin"}
	cfg.ApplyDefaults()

	if cfg.Language != "en" {
		t.Errorf("expected default language 'en', got %q", cfg.Language)
	}
	if cfg.Threads != 4 {
		t.Errorf("expected default threads 4, got %d", cfg.Threads)
	}
	if cfg.MaxTokens != 0 {
		t.Errorf("expected default max_tokens 0 (no limit), got %d", cfg.MaxTokens)
	}
	if cfg.Translate {
		t.Error("translate must default to off")
	}
}

func TestConfigApplyDefaultsKeepsExplicitValues(t *testing.T) {
	cfg := Config{ModelPath: "x.bin", Language: "de", Threads: 8}
	cfg.ApplyDefaults()

	if cfg.Language != "de" {
		t.Errorf("explicit language overridden: %q", cfg.Language)
	}
	if cfg.Threads != 8 {
		t.Errorf("explicit threads overridden: %d", cfg.Threads)
	}
}

func TestConfigValidate(t *testing.T) {
	dir := t.TempDir()
	modelFile := filepath.Join(dir, "ggml-tiny.bin")
	if err := os.WriteFile(modelFile, []byte("not a real model"), 0o644); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		name    string
		cfg     Config
		wantErr bool
	}{
		{"valid", Config{ModelPath: modelFile, Language: "en", Threads: 4}, false},
		{"empty path", Config{}, true},
		{"missing file", Config{ModelPath: filepath.Join(dir, "absent.bin")}, true},
		{"directory", Config{ModelPath: dir}, true},
		{"negative threads", Config{ModelPath: modelFile, Threads: -1}, true},
		{"negative max tokens", Config{ModelPath: modelFile, MaxTokens: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
