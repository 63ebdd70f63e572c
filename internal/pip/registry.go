package pip

import "reflect"

// Registry maps a player id to its observer.
type Registry struct {
	observers map[int]Observer
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{observers: make(map[int]Observer)}
}

// Add registers obs for playerID, replacing a previous observer of that id.
// An observer already registered under any id is left where it is. Observers
// of a non-comparable type are never treated as duplicates.
func (r *Registry) Add(playerID int, obs Observer) {
	if obs == nil {
		return
	}
	for _, o := range r.observers {
		if sameObserver(o, obs) {
			return
		}
	}
	r.observers[playerID] = obs
}

// sameObserver is a == b that reports false instead of panicking when
// either value is not comparable.
func sameObserver(a, b Observer) bool {
	if reflect.TypeOf(a) != reflect.TypeOf(b) {
		return false
	}
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// Remove drops the observer of playerID.
func (r *Registry) Remove(playerID int) {
	delete(r.observers, playerID)
}

// Get returns the observer of playerID.
func (r *Registry) Get(playerID int) (Observer, bool) {
	o, ok := r.observers[playerID]
	return o, ok
}

// Len returns the number of registered observers.
func (r *Registry) Len() int { return len(r.observers) }
