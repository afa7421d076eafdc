package sequence

import "sync"

// Sequence hands out monotonically increasing int64 identifiers. A store that
// persists its entities feeds every id it sees back through Observe on load,
// so the next allocation is always max(existing)+1 and ids are never reused
// across process restarts.
type Sequence struct {
	mu   sync.Mutex
	next int64
}

// New returns a sequence whose first allocation is base.
func New(base int64) *Sequence {
	return &Sequence{next: base}
}

// Observe records an id seen in persisted data. Ids below the current
// watermark are ignored.
func (s *Sequence) Observe(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if id >= s.next {
		s.next = id + 1
	}
}

// Next allocates the next identifier.
func (s *Sequence) Next() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.next
	s.next++
	return id
}

// Peek returns the id the next call to Next would allocate.
func (s *Sequence) Peek() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.next
}
