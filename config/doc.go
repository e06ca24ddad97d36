// Package config loads application configuration from YAML files, .env
// files, and WHISPERKIT_* environment variables, in that order of
// precedence.
package config
