package dishes

import "sync"

// Store holds the dish collection in process memory. The HTTP server
// handles requests in parallel, so every access goes through the lock.
type Store struct {
	mu     sync.RWMutex
	dishes []Dish
}

func NewStore(seed []Dish) *Store {
	return &Store{dishes: append([]Dish(nil), seed...)}
}

// List returns a copy of the collection in insertion order. The copy
// is never nil so it serializes as [] rather than null.
func (s *Store) List() []Dish {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Dish, len(s.dishes))
	copy(out, s.dishes)
	return out
}

// Find scans for an exact id match.
func (s *Store) Find(id string) (Dish, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, d := range s.dishes {
		if d.ID == id {
			return d, true
		}
	}
	return Dish{}, false
}

// Insert appends a new dish.
func (s *Store) Insert(d Dish) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dishes = append(s.dishes, d)
}

// Replace overwrites the stored dish with the same id in place and
// reports whether one existed.
func (s *Store) Replace(d Dish) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.dishes {
		if s.dishes[i].ID == d.ID {
			s.dishes[i] = d
			return true
		}
	}
	return false
}
