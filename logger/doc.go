// Package logger provides structured logging built on zerolog.
//
// It exposes a configured global logger plus named component loggers:
//
//	logger.Init(cfg.Logging)
//	log := logger.Get("whispercpp")
//	log.Info("model loaded", logger.Fields(logger.FieldModelPath, path))
//
// Diagnostics default to stderr so transcription output on stdout stays
// clean for piping.
package logger
