package orders

import "sync"

// Store holds the order collection in process memory behind a lock, so
// parallel request handling never interleaves partial mutations.
type Store struct {
	mu     sync.RWMutex
	orders []Order
}

func NewStore(seed []Order) *Store {
	return &Store{orders: append([]Order(nil), seed...)}
}

// List returns a copy of the collection in insertion order. The copy
// is never nil so it serializes as [] rather than null.
func (s *Store) List() []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Order, len(s.orders))
	copy(out, s.orders)
	return out
}

// ListByDish returns the orders whose dishes reference the given dish.
func (s *Store) ListByDish(dishID string) []Order {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []Order{}
	for _, o := range s.orders {
		for _, d := range o.Dishes {
			if d.DishID == dishID {
				out = append(out, o)
				break
			}
		}
	}
	return out
}

// Find scans for an exact id match.
func (s *Store) Find(id string) (Order, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, o := range s.orders {
		if o.ID == id {
			return o, true
		}
	}
	return Order{}, false
}

// Insert appends a new order.
func (s *Store) Insert(o Order) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders = append(s.orders, o)
}

// Replace overwrites the stored order with the same id in place and
// reports whether one existed.
func (s *Store) Replace(o Order) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == o.ID {
			s.orders[i] = o
			return true
		}
	}
	return false
}

// Remove deletes the order by position and reports whether it existed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.orders {
		if s.orders[i].ID == id {
			s.orders = append(s.orders[:i], s.orders[i+1:]...)
			return true
		}
	}
	return false
}
