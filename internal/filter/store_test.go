package filter

import (
	"fmt"
	"reflect"
	"testing"
)

func TestDefaults(t *testing.T) {
	st := Defaults()
	if st.Page != 1 {
		t.Errorf("expected page 1, got %d", st.Page)
	}
	if st.PageSize != DefaultPageSize {
		t.Errorf("expected page size %d, got %d", DefaultPageSize, st.PageSize)
	}
	if st.Ordering != DefaultOrdering {
		t.Errorf("expected ordering %q, got %q", DefaultOrdering, st.Ordering)
	}
	if st.Search != "" || st.Dates != "" || st.Rating != 0 {
		t.Errorf("expected empty filters, got %+v", st)
	}
}

func TestFilterTransitionsResetPage(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Store)
	}{
		{"search", func(s *Store) { s.SetSearch("zelda") }},
		{"genres", func(s *Store) { s.SetGenres([]int{4}) }},
		{"platforms", func(s *Store) { s.SetPlatforms([]int{1, 2}) }},
		{"tags", func(s *Store) { s.SetTags([]int{31}) }},
		{"dates", func(s *Store) { s.SetDates("2020,2022") }},
		{"rating", func(s *Store) { s.SetRating(4) }},
		{"ordering", func(s *Store) { s.SetOrdering("-rating") }},
		{"page size", func(s *Store) { s.SetPageSize(20) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewStore()
			s.SetPage(5)
			tt.mutate(s)
			st, _ := s.Snapshot()
			if st.Page != 1 {
				t.Errorf("page = %d after %s change, want 1", st.Page, tt.name)
			}
		})
	}
}

func TestSetPagePreservesSelection(t *testing.T) {
	s := NewStore()
	s.SetSearch("portal")
	s.SetGenres([]int{4, 51})
	s.SetPage(3)

	st, _ := s.Snapshot()
	if st.Page != 3 {
		t.Errorf("page = %d, want 3", st.Page)
	}
	if st.Search != "portal" {
		t.Errorf("search = %q, want portal", st.Search)
	}
	if !reflect.DeepEqual(st.Genres, []int{4, 51}) {
		t.Errorf("genres = %v, want [4 51]", st.Genres)
	}
}

func TestResetFilters(t *testing.T) {
	s := NewStore()
	s.SetSearch("doom")
	s.SetGenres([]int{4})
	s.SetDates("1990,1999")
	s.SetRating(3)
	s.SetOrdering("name")
	s.SetPage(7)

	s.ResetFilters()

	st, _ := s.Snapshot()
	if !reflect.DeepEqual(st, Defaults()) {
		t.Errorf("state after reset = %+v, want defaults", st)
	}
}

func TestSnapshotIsIndependentCopy(t *testing.T) {
	s := NewStore()
	s.SetGenres([]int{1, 2, 3})

	st, _ := s.Snapshot()
	st.Genres[0] = 99
	st.Search = "mutated"

	fresh, _ := s.Snapshot()
	if fresh.Genres[0] != 1 {
		t.Errorf("store genres mutated through snapshot: %v", fresh.Genres)
	}
	if fresh.Search != "" {
		t.Errorf("store search mutated through snapshot: %q", fresh.Search)
	}
}

func TestSetGenresDeduplicates(t *testing.T) {
	s := NewStore()
	s.SetGenres([]int{4, 4, 51, 4, 51})

	st, _ := s.Snapshot()
	if !reflect.DeepEqual(st.Genres, []int{4, 51}) {
		t.Errorf("genres = %v, want [4 51]", st.Genres)
	}
}

func TestRevisionIncrementsPerTransition(t *testing.T) {
	s := NewStore()
	if rev := s.Revision(); rev != 0 {
		t.Fatalf("initial revision = %d, want 0", rev)
	}

	s.SetSearch("a")
	s.SetPage(2)
	s.SetRating(5)

	if rev := s.Revision(); rev != 3 {
		t.Errorf("revision = %d after 3 transitions, want 3", rev)
	}
}

func TestSubscribeReceivesEveryTransition(t *testing.T) {
	s := NewStore()

	var gotStates []State
	var gotRevs []uint64
	s.Subscribe(func(st State, rev uint64) {
		gotStates = append(gotStates, st)
		gotRevs = append(gotRevs, rev)
	})

	s.SetSearch("mario")
	s.SetPage(2)

	if len(gotStates) != 2 {
		t.Fatalf("got %d notifications, want 2", len(gotStates))
	}
	if gotStates[0].Search != "mario" || gotStates[0].Page != 1 {
		t.Errorf("first notification = %+v", gotStates[0])
	}
	if gotStates[1].Page != 2 {
		t.Errorf("second notification page = %d, want 2", gotStates[1].Page)
	}
	if gotRevs[0] != 1 || gotRevs[1] != 2 {
		t.Errorf("revisions = %v, want [1 2]", gotRevs)
	}
}

func TestOrderingsIncludeDescendingDefault(t *testing.T) {
	opts := Orderings()
	if len(opts) != 6 {
		t.Fatalf("got %d orderings, want 6", len(opts))
	}
	if opts[0].Value != DefaultOrdering {
		t.Errorf("first ordering = %q, want %q", opts[0].Value, DefaultOrdering)
	}
}

func TestYearRangesAreStartCommaEnd(t *testing.T) {
	for _, opt := range YearRanges() {
		var start, end int
		if _, err := fmt.Sscanf(opt.Value, "%d,%d", &start, &end); err != nil {
			t.Errorf("range %q does not parse as start,end: %v", opt.Value, err)
			continue
		}
		if start > end {
			t.Errorf("range %q has start after end", opt.Value)
		}
	}
}
