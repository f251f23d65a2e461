package click

import (
	"strings"
	"sync"

	"github.com/kvark128/FolioCore/internal/flag"
)

// Registry is the ordered list of content click listeners of one reader.
//
// Listeners are dispatched in registration order and only the first listener
// with a matching scheme is ever invoked. Registering two listeners with the
// same scheme leaves the second one unreachable.
type Registry struct {
	mu        sync.RWMutex
	listeners []Listener
	frozen    flag.Flag
}

func NewRegistry() *Registry {
	return new(Registry)
}

// Register appends l. It is safe to call after Freeze; the listener is then
// only picked up by content loaded afterwards.
func (r *Registry) Register(l Listener) {
	r.mu.Lock()
	r.listeners = append(r.listeners, l)
	r.mu.Unlock()
}

// Listeners returns a copy of the registered listeners in registration order.
func (r *Registry) Listeners() []Listener {
	r.mu.RLock()
	defer r.mu.RUnlock()
	lst := make([]Listener, len(r.listeners))
	copy(lst, r.listeners)
	return lst
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.listeners)
}

// Freeze marks the point where the rendering surface starts evaluating
// listeners. It reports whether this call froze the registry.
func (r *Registry) Freeze() bool {
	return r.frozen.Set()
}

func (r *Registry) Frozen() bool {
	return r.frozen.IsSet()
}

// Dispatch invokes the first listener whose scheme equals scheme, ignoring
// case. It reports whether such a listener exists. The handler runs on the
// calling goroutine.
func (r *Registry) Dispatch(scheme string, value *string, p Point) bool {
	scheme = strings.ToLower(scheme)
	r.mu.RLock()
	var (
		match Listener
		found bool
	)
	for _, l := range r.listeners {
		if l.scheme == scheme {
			match, found = l, true
			break
		}
	}
	r.mu.RUnlock()

	if !found {
		return false
	}
	match.invoke(value, p)
	return true
}

// Intercept decodes a navigation raised by the rendering surface and
// dispatches it. Navigations that are not click interceptions are not
// handled and the caller should let them proceed.
func (r *Registry) Intercept(rawURL string) bool {
	nav, err := ParseNavigation(rawURL)
	if err != nil {
		return false
	}
	return r.Dispatch(nav.Scheme, nav.Value, nav.Point)
}
