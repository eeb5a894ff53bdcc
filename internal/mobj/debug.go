package mobj

import "sync/atomic"

// debugLogging gates per-mobj debug logs, which are too hot to build
// attributes for on every call.
var debugLogging atomic.Bool

// EnableDebugLogging enables or disables per-mobj debug logs.
// Called once from main after the config is parsed.
func EnableDebugLogging(enabled bool) {
	debugLogging.Store(enabled)
}

// IsDebugEnabled reports whether per-mobj debug logs are on:
//
//	if mobj.IsDebugEnabled() {
//	    slog.Debug("state change", "mobj", m.Type, "state", st)
//	}
func IsDebugEnabled() bool {
	return debugLogging.Load()
}
