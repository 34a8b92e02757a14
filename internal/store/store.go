package store

import "sync"

// Entity is the capability a record needs to live in a KeyedStore:
// an accessible integer identifier, unique within one store.
type Entity interface {
	EntityID() int
}

// KeyedStore holds at most one entity per identifier.
//
// Access is guarded by a RWMutex so a store can be shared safely, although
// the demo programs only ever use one from a single goroutine. The zero
// value is not usable; construct with New.
type KeyedStore[E Entity] struct {
	mu       sync.RWMutex
	entity   string
	entities map[int]E
}

// New creates an empty store. The entity name is used only to add context
// to returned errors (e.g., "insert operation on patient 7 failed").
func New[E Entity](entity string) *KeyedStore[E] {
	return &KeyedStore[E]{
		entity:   entity,
		entities: make(map[int]E),
	}
}

// Insert adds an entity under its own identifier.
// Returns ErrDuplicate if the identifier is already taken; the store is
// unchanged on failure.
func (s *KeyedStore[E]) Insert(e E) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id := e.EntityID()
	if _, ok := s.entities[id]; ok {
		return newStoreError(s.entity, "insert", id, ErrDuplicate)
	}
	s.entities[id] = e
	return nil
}

// GetByID returns the entity stored under id.
// Returns ErrNotFound if no entity has that identifier.
func (s *KeyedStore[E]) GetByID(id int) (E, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	e, ok := s.entities[id]
	if !ok {
		var zero E
		return zero, newStoreError(s.entity, "get", id, ErrNotFound)
	}
	return e, nil
}

// Remove deletes the entity stored under id.
// Returns ErrNotFound if no entity has that identifier; a second Remove of
// the same id fails rather than silently succeeding.
func (s *KeyedStore[E]) Remove(id int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.entities[id]; !ok {
		return newStoreError(s.entity, "remove", id, ErrNotFound)
	}
	delete(s.entities, id)
	return nil
}

// Update replaces the entity stored under id with the result of apply.
//
// Existence is checked first: if id is absent, Update returns ErrNotFound
// without calling apply. If apply returns an error (typically a domain
// validation failure), the stored entity is left untouched — there is no
// partial update. The replacement keeps its identifier: apply must not
// change it.
func (s *KeyedStore[E]) Update(id int, apply func(E) (E, error)) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	current, ok := s.entities[id]
	if !ok {
		return newStoreError(s.entity, "update", id, ErrNotFound)
	}
	next, err := apply(current)
	if err != nil {
		return newStoreError(s.entity, "update", id, err)
	}
	s.entities[id] = next
	return nil
}

// GetAll returns an independent snapshot of all entities.
// Mutating the returned slice never affects the store. Order is unspecified.
func (s *KeyedStore[E]) GetAll() []E {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snapshot := make([]E, 0, len(s.entities))
	for _, e := range s.entities {
		snapshot = append(snapshot, e)
	}
	return snapshot
}

// FindBy returns the first entity satisfying pred, or ok=false if none does.
// "First" is arbitrary when several entities match.
func (s *KeyedStore[E]) FindBy(pred func(E) bool) (E, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, e := range s.entities {
		if pred(e) {
			return e, true
		}
	}
	var zero E
	return zero, false
}

// Len returns the number of currently stored entities.
func (s *KeyedStore[E]) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entities)
}
