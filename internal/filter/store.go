package filter

import "sync"

// Store is the process-wide filter state container. Mutations happen
// only through the named intents below; each commits atomically and
// notifies subscribers with the new state and its revision.
//
// The revision is a monotonic staleness token: a list response tagged
// with an older revision than the store's current one belongs to a
// superseded selection and must be discarded by the subscriber.
type Store struct {
	mu       sync.Mutex
	state    State
	revision uint64
	subs     []func(State, uint64)
}

// NewStore returns a store initialized to defaults.
func NewStore() *Store {
	return &Store{state: Defaults()}
}

// Subscribe registers fn to run after every committed transition. The
// callback receives a snapshot and the new revision and must not call
// back into the store.
func (s *Store) Subscribe(fn func(State, uint64)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.subs = append(s.subs, fn)
}

// Snapshot returns a deep copy of the current state and its revision.
func (s *Store) Snapshot() (State, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneState(s.state), s.revision
}

// Revision returns the current staleness token.
func (s *Store) Revision() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.revision
}

// SetSearch overwrites the free-text query and resets the page.
func (s *Store) SetSearch(text string) {
	s.commit(func(st *State) { st.Search = text }, true)
}

// SetGenres overwrites the genre selection and resets the page.
func (s *Store) SetGenres(ids []int) {
	s.commit(func(st *State) { st.Genres = dedupe(ids) }, true)
}

// SetPlatforms overwrites the platform selection and resets the page.
func (s *Store) SetPlatforms(ids []int) {
	s.commit(func(st *State) { st.Platforms = dedupe(ids) }, true)
}

// SetTags overwrites the tag selection and resets the page.
func (s *Store) SetTags(ids []int) {
	s.commit(func(st *State) { st.Tags = dedupe(ids) }, true)
}

// SetDates overwrites the year range ("" clears it) and resets the page.
func (s *Store) SetDates(dates string) {
	s.commit(func(st *State) { st.Dates = dates }, true)
}

// SetRating overwrites the minimum-rating threshold and resets the page.
func (s *Store) SetRating(n int) {
	s.commit(func(st *State) { st.Rating = n }, true)
}

// SetOrdering overwrites the sort key and resets the page.
func (s *Store) SetOrdering(key string) {
	s.commit(func(st *State) { st.Ordering = key }, true)
}

// SetPage moves to page n without touching the rest of the selection.
func (s *Store) SetPage(n int) {
	s.commit(func(st *State) { st.Page = n }, false)
}

// SetPageSize overwrites the page size and resets the page.
func (s *Store) SetPageSize(n int) {
	s.commit(func(st *State) { st.PageSize = n }, true)
}

// ResetFilters restores the entire selection to defaults atomically.
func (s *Store) ResetFilters() {
	s.commit(func(st *State) { *st = Defaults() }, false)
}

func (s *Store) commit(mutate func(*State), resetPage bool) {
	s.mu.Lock()
	mutate(&s.state)
	if resetPage {
		s.state.Page = 1
	}
	s.revision++
	snap := cloneState(s.state)
	rev := s.revision
	subs := s.subs
	s.mu.Unlock()

	for _, fn := range subs {
		fn(snap, rev)
	}
}

func cloneState(st State) State {
	dup := st
	dup.Genres = cloneIDs(st.Genres)
	dup.Platforms = cloneIDs(st.Platforms)
	dup.Tags = cloneIDs(st.Tags)
	return dup
}

func cloneIDs(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	dup := make([]int, len(ids))
	copy(dup, ids)
	return dup
}

// dedupe drops duplicate IDs while preserving first-seen order.
func dedupe(ids []int) []int {
	if len(ids) == 0 {
		return nil
	}
	seen := make(map[int]struct{}, len(ids))
	out := make([]int, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
