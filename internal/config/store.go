package config

import "sync"

// Store holds the live Options. Writers may run on any goroutine; the render
// loop reads a single Snapshot per tick so a frame never sees a partial update.
type Store struct {
	mu    sync.RWMutex
	opts  Options
	regen uint64
}

func NewStore(opts Options) *Store {
	return &Store{opts: opts}
}

// Snapshot returns a copy of the current options and the regeneration
// sequence number. The sequence increases every time a particle count is
// received, even if the count did not change.
func (s *Store) Snapshot() (Options, uint64) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.opts, s.regen
}

// Update applies fn to the options under the write lock.
func (s *Store) Update(fn func(*Options)) {
	s.mu.Lock()
	fn(&s.opts)
	s.mu.Unlock()
}

// SetParticleCount stores n and requests regeneration of the collection.
func (s *Store) SetParticleCount(n int) {
	s.mu.Lock()
	s.opts.ParticleCount = n
	s.regen++
	s.mu.Unlock()
}
