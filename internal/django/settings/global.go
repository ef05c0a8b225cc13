package settings

import "sync"

var (
	globalMu sync.Mutex
	global   = New()
)

// Default returns the process-wide settings object used by the package
// bootstrap.
func Default() *Settings {
	globalMu.Lock()
	defer globalMu.Unlock()
	return global
}

// ResetForTesting replaces the process-wide settings object with a
// fresh unconfigured one, closing any open database handles.
func ResetForTesting() {
	globalMu.Lock()
	defer globalMu.Unlock()
	_ = global.Close()
	global = New()
}
