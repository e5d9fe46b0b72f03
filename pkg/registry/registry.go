package registry

import (
	"sync"

	"github.com/safe-scan-ai/announcer/competition"
	"github.com/safe-scan-ai/announcer/pkg/errors"
)

// Registry holds the current set of configured competitions. The contents
// are replaced wholesale on every successful refresh; readers always get a
// snapshot copy so an in-flight sweep is unaffected by a concurrent refresh.
type Registry struct {
	mu           sync.RWMutex
	competitions []competition.Definition
}

func New() *Registry {
	return &Registry{}
}

func (r *Registry) Replace(defs []competition.Definition) {
	snapshot := make([]competition.Definition, len(defs))
	copy(snapshot, defs)

	r.mu.Lock()
	defer r.mu.Unlock()

	r.competitions = snapshot
}

func (r *Registry) List() []competition.Definition {
	r.mu.RLock()
	defer r.mu.RUnlock()

	snapshot := make([]competition.Definition, len(r.competitions))
	copy(snapshot, r.competitions)

	return snapshot
}

func (r *Registry) Get(competitionID string) (competition.Definition, error) {
	if competitionID == "" {
		return competition.Definition{}, errors.ErrEmptyID
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, def := range r.competitions {
		if def.ID == competitionID {
			return def, nil
		}
	}

	return competition.Definition{}, errors.ErrNotFound
}

func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.competitions)
}
