// Package registry holds the ordered participant collection shared by every
// dispatch discipline. Iteration order always equals registration order;
// broadcast output depends on it.
package registry

import (
	"sync"

	"github.com/samber/lo"

	"dispatch-lab/domain"
	"dispatch-lab/errors"
)

type Registry[P domain.Named] struct {
	mu      sync.RWMutex
	ordered []P
	index   map[string]P
}

func New[P domain.Named]() *Registry[P] {
	return &Registry[P]{index: make(map[string]P)}
}

// Add appends a participant. Names are unique; re-adding an existing name
// fails with ErrDuplicateParticipant instead of silently shadowing.
func (r *Registry[P]) Add(p P) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[p.Name()]; ok {
		return errors.ErrDuplicateParticipant
	}
	r.index[p.Name()] = p
	r.ordered = append(r.ordered, p)
	return nil
}

// Remove deletes the participant with that name. Removing an absent name is
// a no-op, not an error.
func (r *Registry[P]) Remove(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.index[name]; !ok {
		return
	}
	delete(r.index, name)
	for i, p := range r.ordered {
		if p.Name() == name {
			r.ordered = append(r.ordered[:i], r.ordered[i+1:]...)
			break
		}
	}
}

// ForEach applies fn to every participant in registration order.
// The snapshot is taken under the read lock so fn may re-enter the registry.
func (r *Registry[P]) ForEach(fn func(p P)) {
	r.mu.RLock()
	snapshot := make([]P, len(r.ordered))
	copy(snapshot, r.ordered)
	r.mu.RUnlock()

	for _, p := range snapshot {
		fn(p)
	}
}

func (r *Registry[P]) Lookup(name string) (P, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	p, ok := r.index[name]
	return p, ok
}

func (r *Registry[P]) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.ordered)
}

// Names returns the registered names in registration order.
func (r *Registry[P]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return lo.Map(r.ordered, func(p P, _ int) string {
		return p.Name()
	})
}
