package cmenu

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/atomicstack/cmenu/internal/logging/events"
)

// ErrDuplicateID is returned when registering an id that is already live.
var ErrDuplicateID = errors.New("cmenu: id is already taken")

// Registry maps menu ids to their controllers. It never drops an entry on its
// own; owners call Unregister when the menu is torn down.
type Registry struct {
	mu    sync.RWMutex
	menus map[string]*Controller
}

// Default is the process-wide registry for callers that address menus globally.
var Default = NewRegistry()

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{menus: make(map[string]*Controller)}
}

// New constructs a controller and registers it under id.
func (r *Registry) New(id string, opts ...Option) (*Controller, error) {
	c := NewController(id, opts...)
	if err := r.Register(id, c); err != nil {
		return nil, err
	}
	return c, nil
}

// Register inserts c under id. The existing entry is kept when id is taken.
func (r *Registry) Register(id string, c *Controller) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.menus[id]; ok {
		events.Registry.Duplicate(id)
		return fmt.Errorf("%w: %q", ErrDuplicateID, id)
	}
	r.menus[id] = c
	events.Registry.Register(id)
	return nil
}

// Unregister removes id. Unknown ids are ignored.
func (r *Registry) Unregister(id string) {
	r.mu.Lock()
	_, ok := r.menus[id]
	delete(r.menus, id)
	r.mu.Unlock()
	events.Registry.Unregister(id, ok)
}

// Lookup returns the controller for id. A miss logs a warning and returns
// false; callers skip the operation.
func (r *Registry) Lookup(id string) (*Controller, bool) {
	r.mu.RLock()
	c, ok := r.menus[id]
	r.mu.RUnlock()
	if !ok {
		events.Registry.Miss(id)
		return nil, false
	}
	return c, true
}

// IDs lists registered ids in sorted order.
func (r *Registry) IDs() []string {
	r.mu.RLock()
	ids := make([]string, 0, len(r.menus))
	for id := range r.menus {
		ids = append(ids, id)
	}
	r.mu.RUnlock()
	sort.Strings(ids)
	return ids
}

// Len reports the number of registered menus.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.menus)
}
