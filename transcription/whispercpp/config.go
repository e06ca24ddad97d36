package whispercpp

import (
	"fmt"
	"os"
)

const (
	// ProviderName is the registered name for the whisper.cpp provider.
	ProviderName = "whispercpp"

	defaultLanguage = "en"
	defaultThreads  = 4
)

// Config holds the decode configuration for an engine context. It is fixed
// at New and immutable afterwards: every Transcribe call on the context runs
// with the same parameters.
type Config struct {
	// ModelPath is the filesystem path to the GGML model file.
	ModelPath string `json:"model_path" yaml:"model_path" mapstructure:"model_path"`
	// Language is the decode language tag. Defaults to "en"; auto-detection
	// is deliberately not enabled by default.
	Language string `json:"language" yaml:"language" mapstructure:"language"`
	// Threads is the engine worker thread count. Defaults to 4.
	Threads int `json:"threads" yaml:"threads" mapstructure:"threads"`
	// MaxTokens caps tokens per segment. 0 means no limit.
	MaxTokens int `json:"max_tokens" yaml:"max_tokens" mapstructure:"max_tokens"`
	// Translate requests translation of the transcript into English.
	Translate bool `json:"translate" yaml:"translate" mapstructure:"translate"`
}

// ApplyDefaults sets the fixed decode defaults for unset fields. The engine
// always runs greedy sampling; hardware offload is requested unconditionally
// when compiled in.
func (c *Config) ApplyDefaults() {
	if c.Language == "" {
		c.Language = defaultLanguage
	}
	if c.Threads == 0 {
		c.Threads = defaultThreads
	}
}

// Validate checks the configuration for invalid values. The model file must
// exist and be a regular file; its format is validated by the engine on load.
func (c *Config) Validate() error {
	if c.ModelPath == "" {
		return fmt.Errorf("whispercpp.model_path is required")
	}
	info, err := os.Stat(c.ModelPath)
	if err != nil {
		return fmt.Errorf("whispercpp.model_path: stat model file: %w", err)
	}
	if info.IsDir() {
		return fmt.Errorf("whispercpp.model_path must be a file (got directory: %s)", c.ModelPath)
	}
	if c.Threads < 0 {
		return fmt.Errorf("whispercpp.threads must be non-negative (got: %d)", c.Threads)
	}
	if c.MaxTokens < 0 {
		return fmt.Errorf("whispercpp.max_tokens must be non-negative (got: %d)", c.MaxTokens)
	}
	return nil
}
