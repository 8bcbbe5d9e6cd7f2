package config

import "sync"

// runtimeSettings are values the running engine may change between frames.
type runtimeSettings struct {
	mu       sync.RWMutex
	fpsLimit int
}

var globalRuntime = &runtimeSettings{}

// GetFPSLimit returns the current frame rate cap; 0 means uncapped.
func GetFPSLimit() int {
	globalRuntime.mu.RLock()
	defer globalRuntime.mu.RUnlock()
	return globalRuntime.fpsLimit
}

// SetFPSLimit sets the frame rate cap. Negative values uncap.
func SetFPSLimit(limit int) {
	globalRuntime.mu.Lock()
	defer globalRuntime.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	globalRuntime.fpsLimit = limit
}
