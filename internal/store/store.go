// Package store keeps recent evaluations in memory so identical parameter
// sets are served from cache and past results can be re-fetched by ID.
package store

import (
	"sync"

	"github.com/labsnomad/pv-storage-optimizer/internal/model"
)

// DefaultCapacity bounds the number of retained evaluations.
const DefaultCapacity = 256

// Store is a bounded in-memory evaluation cache indexed by ID and by the
// deterministic parameter digest. Eviction is oldest-first.
type Store struct {
	mu       sync.RWMutex
	capacity int
	byID     map[string]*model.Evaluation
	byDigest map[string]string // digest -> evaluation ID
	order    []string          // insertion order of IDs
	digests  map[string]string // ID -> digest, for eviction cleanup
}

func New(capacity int) *Store {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}
	return &Store{
		capacity: capacity,
		byID:     make(map[string]*model.Evaluation),
		byDigest: make(map[string]string),
		digests:  make(map[string]string),
	}
}

// Put stores an evaluation under its ID and parameter digest, evicting the
// oldest entry when the capacity is exceeded.
func (s *Store) Put(digest string, eval *model.Evaluation) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.byID[eval.ID]; !exists {
		s.order = append(s.order, eval.ID)
	}
	s.byID[eval.ID] = eval
	s.byDigest[digest] = eval.ID
	s.digests[eval.ID] = digest

	for len(s.order) > s.capacity {
		oldest := s.order[0]
		s.order = s.order[1:]
		if d, ok := s.digests[oldest]; ok && s.byDigest[d] == oldest {
			delete(s.byDigest, d)
		}
		delete(s.digests, oldest)
		delete(s.byID, oldest)
	}
}

// ByID returns the evaluation stored under the given ID.
func (s *Store) ByID(id string) (*model.Evaluation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	eval, ok := s.byID[id]
	return eval, ok
}

// ByDigest returns the cached evaluation for a parameter digest.
func (s *Store) ByDigest(digest string) (*model.Evaluation, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	id, ok := s.byDigest[digest]
	if !ok {
		return nil, false
	}
	eval, ok := s.byID[id]
	return eval, ok
}

// Len returns the number of retained evaluations.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.byID)
}
