// Package observe counts wrapper activity with OpenTelemetry metrics.
//
// Instruments implements fnwrap.Recorder, so it can be handed to any Sync
// wrapper through fnwrap.WithRecorder to count poisoning, and it decorates
// plain wrappers so every call and every panic is counted.
package observe
