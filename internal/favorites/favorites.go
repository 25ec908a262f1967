// Package favorites owns the user's library: the bookmarked subset of
// catalog titles. The in-memory ordered collection is authoritative
// and is persisted as one JSON snapshot after every mutation.
package favorites

import (
	"log/slog"
	"sync"

	"ludo/internal/domain"
	"ludo/internal/store"
)

const (
	bucketFavorites = "favorites"
	keySnapshot     = "list"
)

// Store holds the library collection. Entries are ordered by insertion
// and unique by title ID. Persistence failures are logged, never
// surfaced: losing a snapshot write must not break the session.
type Store struct {
	db     *store.DB
	logger *slog.Logger

	mu      sync.RWMutex
	entries []domain.FavoriteEntry
}

// NewStore loads the persisted snapshot from db. An absent or
// malformed snapshot yields an empty library; loading never fails.
func NewStore(db *store.DB, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	s := &Store{db: db, logger: logger}

	var entries []domain.FavoriteEntry
	if db.Get(bucketFavorites, keySnapshot, &entries) {
		s.entries = entries
	} else {
		s.logger.Debug("no usable favorites snapshot, starting empty")
	}
	return s
}

// All returns a copy of the collection in insertion order.
func (s *Store) All() []domain.FavoriteEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if len(s.entries) == 0 {
		return nil
	}
	dup := make([]domain.FavoriteEntry, len(s.entries))
	copy(dup, s.entries)
	return dup
}

// Len returns the number of bookmarked titles.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}

// Contains reports whether a title is bookmarked.
func (s *Store) Contains(id int) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, e := range s.entries {
		if e.ID == id {
			return true
		}
	}
	return false
}

// Add appends entry unless the title is already bookmarked. Adding an
// existing title is a no-op.
func (s *Store) Add(entry domain.FavoriteEntry) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, e := range s.entries {
		if e.ID == entry.ID {
			return
		}
	}
	s.entries = append(s.entries, entry)
	s.persist()
}

// Remove drops the entry with the given title ID if present.
func (s *Store) Remove(id int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, e := range s.entries {
		if e.ID == id {
			s.entries = append(s.entries[:i], s.entries[i+1:]...)
			s.persist()
			return
		}
	}
}

// Clear empties the library.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = nil
	s.persist()
}

// persist writes the full snapshot. Callers hold s.mu.
func (s *Store) persist() {
	snapshot := s.entries
	if snapshot == nil {
		snapshot = []domain.FavoriteEntry{}
	}
	if err := s.db.Put(bucketFavorites, keySnapshot, snapshot); err != nil {
		s.logger.Warn("failed to persist favorites", "error", err)
	}
}
