package flag

import "sync"

// Flag is a boolean that may be shared between goroutines.
type Flag struct {
	mu   sync.RWMutex
	flag bool
}

// Reset the internal flag to false.
func (f *Flag) Clear() {
	f.mu.Lock()
	f.flag = false
	f.mu.Unlock()
}

// Set the internal flag to true.
// Reports whether the flag was previously false.
func (f *Flag) Set() bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	changed := !f.flag
	f.flag = true
	return changed
}

// Return true if and only if the internal flag is true.
func (f *Flag) IsSet() bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.flag
}
