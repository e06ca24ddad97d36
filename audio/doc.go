// Package audio converts host-supplied WAV data into the float32 mono 16kHz
// sample buffers the engine expects. It validates format strictly instead of
// resampling: capture and conversion are the host application's job.
package audio
