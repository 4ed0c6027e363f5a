package processor

import "sync"

// inflightSet tracks orders currently being worked on inside this process.
// It is a fast-path guard only; the cross-process guarantee comes from the
// database advisory lock.
type inflightSet struct {
	mu     sync.Mutex
	orders map[string]struct{}
}

func newInflightSet() *inflightSet {
	return &inflightSet{orders: make(map[string]struct{})}
}

// TryBegin claims the order. Returns false if a run is already active here.
func (s *inflightSet) TryBegin(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, active := s.orders[orderID]; active {
		return false
	}
	s.orders[orderID] = struct{}{}
	return true
}

func (s *inflightSet) End(orderID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.orders, orderID)
}

func (s *inflightSet) Contains(orderID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, active := s.orders[orderID]
	return active
}
