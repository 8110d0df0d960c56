// Package registry holds process-wide singletons keyed by stable names.
//
// Slots are never removed: whatever is stored lives for the rest of the
// process. Callers that cache a slot value locally can drop their cache and
// come back here to find the very same value.
package registry

import "sync"

var (
	mu    sync.Mutex
	slots = map[string]any{}
)

// LoadOrCreate returns the value stored under key. When the slot is empty it
// calls create, stores the result and reports created=true. create runs at
// most once per key, under the registry lock, so it must not call back into
// the registry.
func LoadOrCreate(key string, create func() any) (v any, created bool) {
	mu.Lock()
	defer mu.Unlock()
	if v, ok := slots[key]; ok {
		return v, false
	}
	v = create()
	slots[key] = v
	return v, true
}

// Load returns the value stored under key, if any.
func Load(key string) (any, bool) {
	mu.Lock()
	defer mu.Unlock()
	v, ok := slots[key]
	return v, ok
}
