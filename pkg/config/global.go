package config

import "sync"

// The process-wide configuration is protected by a copy-on-construction
// discipline: builders take a deep copy through CloneGlobal, so concurrent
// builders never observe each other's later edits. The mutex only ensures a
// clone is not observed mid-mutation.
var (
	globalMu sync.RWMutex
	global   = New()
)

// Configure mutates the process-wide configuration under lock. It is the
// only supported write path; use it in application setup before builders
// are constructed. Later edits have no retroactive effect on existing
// builders.
func Configure(fn func(*Configuration)) {
	if fn == nil {
		return
	}
	globalMu.Lock()
	defer globalMu.Unlock()
	fn(global)
}

// Reset replaces the process-wide configuration wholesale with pristine
// defaults.
func Reset() {
	globalMu.Lock()
	defer globalMu.Unlock()
	global = New()
}

// CloneGlobal returns a deep copy of the process-wide configuration.
// Builder construction goes through here.
func CloneGlobal() *Configuration {
	globalMu.RLock()
	defer globalMu.RUnlock()
	return global.Clone()
}
