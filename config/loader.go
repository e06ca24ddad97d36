package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// envPrefix is stripped from environment variables before binding, so
// WHISPERKIT_ENGINE_MODEL_PATH maps to engine.model_path.
const envPrefix = "WHISPERKIT_"

// LoaderOption customizes LoadConfig.
type LoaderOption func(*loaderConfig)

type loaderConfig struct {
	configFile string
	envFile    string
}

// WithConfigFile sets an explicit config file path.
func WithConfigFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.configFile = path }
}

// WithEnvFile sets an explicit .env file path.
func WithEnvFile(path string) LoaderOption {
	return func(lc *loaderConfig) { lc.envFile = path }
}

// LoadConfig loads configuration into cfg. Sources in increasing precedence:
// the YAML config file, the .env file, and WHISPERKIT_* environment
// variables. When no explicit paths are given, standard locations are
// searched.
func LoadConfig(cfg *Config, opts ...LoaderOption) error {
	var lc loaderConfig
	for _, opt := range opts {
		opt(&lc)
	}
	if lc.configFile == "" {
		lc.configFile = findFirst(
			"./config.yml",
			"./config/config.yml",
			"./cmd/whisperkit/config.yml",
		)
	}
	if lc.envFile == "" {
		lc.envFile = findFirst("./.env", "./config/.env")
	}

	v := viper.New()

	// 1. YAML config file as the base layer.
	if lc.configFile != "" && exists(lc.configFile) {
		v.SetConfigFile(lc.configFile)
		if err := v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", lc.configFile, err)
		}
	}

	// 2. The .env file feeds the process environment, not viper directly.
	if lc.envFile != "" && exists(lc.envFile) {
		if err := godotenv.Load(lc.envFile); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", lc.envFile, err)
		}
	}

	// 3. Prefixed environment variables override everything.
	bindPrefixedEnv(v)

	if err := v.Unmarshal(cfg); err != nil {
		return fmt.Errorf("failed to unmarshal config: %w", err)
	}
	return nil
}

func findFirst(paths ...string) string {
	for _, p := range paths {
		if exists(p) {
			return p
		}
	}
	return ""
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// bindPrefixedEnv sets every WHISPERKIT_* variable on viper under each
// nesting variant of its key, so both ENGINE_MODEL_PATH and SERVER_PORT
// land on the right struct fields regardless of where the underscores
// separate sections from field names.
func bindPrefixedEnv(v *viper.Viper) {
	for _, env := range os.Environ() {
		pair := strings.SplitN(env, "=", 2)
		if len(pair) != 2 || !strings.HasPrefix(pair[0], envPrefix) {
			continue
		}
		key := strings.ToLower(strings.TrimPrefix(pair[0], envPrefix))
		for _, variant := range keyVariants(key) {
			v.Set(variant, pair[1])
		}
	}
}

// keyVariants expands a lowercased underscore key into candidate viper keys.
// engine_model_path becomes [engine_model_path, engine.model.path,
// engine.model_path, engine_model.path].
func keyVariants(key string) []string {
	parts := strings.Split(key, "_")
	if len(parts) <= 1 {
		return []string{key}
	}

	variants := []string{key, strings.Join(parts, ".")}
	for i := 1; i < len(parts); i++ {
		variants = append(variants, strings.Join(parts[:i], "_")+"."+strings.Join(parts[i:], "_"))
		variants = append(variants, strings.Join(parts[:i], ".")+"."+strings.Join(parts[i:], "_"))
	}

	seen := make(map[string]bool, len(variants))
	out := variants[:0]
	for _, v := range variants {
		if !seen[v] {
			seen[v] = true
			out = append(out, v)
		}
	}
	return out
}
