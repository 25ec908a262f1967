package tui

import (
	"context"
	"errors"
	"testing"

	"ludo/internal/domain"
	"ludo/internal/favorites"
	"ludo/internal/filter"
	"ludo/internal/log"
	"ludo/internal/service"
	"ludo/internal/session"
	"ludo/internal/store"
)

type stubCatalog struct{}

func (stubCatalog) List(ctx context.Context, st filter.State) ([]domain.Game, int, error) {
	return nil, 0, nil
}

func (stubCatalog) Detail(ctx context.Context, id int) (*domain.Game, error) {
	return nil, domain.ErrNotFound
}

func (stubCatalog) Screenshots(ctx context.Context, id int) ([]domain.Screenshot, error) {
	return nil, nil
}

func (stubCatalog) Genres(ctx context.Context) ([]domain.Genre, error) {
	return nil, nil
}

func (stubCatalog) ParentPlatforms(ctx context.Context) ([]domain.Platform, error) {
	return nil, nil
}

func (stubCatalog) Tags(ctx context.Context) ([]domain.Tag, error) {
	return nil, nil
}

func newTestModel(t *testing.T) (Model, *filter.Store) {
	t.Helper()
	db, err := store.Open("")
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { db.Close() })

	filters := filter.NewStore()
	favs := favorites.NewStore(db, log.NullLogger())
	sess := session.NewManager(session.NewLocalProvider(db), db, log.NullLogger())
	svc := service.NewCatalogService(stubCatalog{}, log.NullLogger())
	return NewModel(svc, filters, favs, sess, log.NullLogger()), filters
}

func TestStaleListResponseIsDropped(t *testing.T) {
	m, filters := newTestModel(t)

	// Two selection changes in flight; only the second response counts.
	filters.SetSearch("zel")
	filters.SetSearch("zelda")

	stale := &service.GamePage{
		Games: []domain.Game{{ID: 1, Name: "Zell"}},
		Count: 1, Page: 1, TotalPages: 1,
	}
	updated, _ := m.Update(GamesLoadedMsg{Page: stale, Revision: 1})
	m = updated.(Model)

	if m.page != nil {
		t.Fatalf("stale response was applied: got page %+v", m.page)
	}
	if !m.loadingList {
		t.Fatal("dropping a stale response ended the loading state")
	}

	current := &service.GamePage{
		Games: []domain.Game{{ID: 2, Name: "The Legend of Zelda"}},
		Count: 1, Page: 1, TotalPages: 1,
	}
	updated, _ = m.Update(GamesLoadedMsg{Page: current, Revision: 2})
	m = updated.(Model)

	if m.page != current {
		t.Fatalf("current response was not applied: got %+v", m.page)
	}
	if m.loadingList {
		t.Fatal("loading state not cleared after the current response")
	}
}

func TestStaleListErrorIsDropped(t *testing.T) {
	m, filters := newTestModel(t)

	filters.SetSearch("h")
	filters.SetSearch("ha")

	updated, _ := m.Update(GamesErrMsg{Err: errors.New("timeout"), Revision: 1})
	m = updated.(Model)

	if m.listErr != nil {
		t.Fatalf("stale error was applied: %v", m.listErr)
	}

	wantErr := errors.New("bad gateway")
	updated, _ = m.Update(GamesErrMsg{Err: wantErr, Revision: 2})
	m = updated.(Model)

	if m.listErr == nil {
		t.Fatal("current error was not applied")
	}
	if m.loadingList {
		t.Fatal("loading state not cleared after the current error")
	}
}

func TestFilterOptionsFailureSetsStatus(t *testing.T) {
	m, _ := newTestModel(t)

	updated, cmd := m.Update(FilterOptionsErrMsg{Err: errors.New("boom")})
	got := updated.(Model)

	if got.StatusMsg == "" {
		t.Fatal("returned model carries no status message")
	}
	if !got.StatusIsErr {
		t.Fatal("taxonomy failure should surface as an error status")
	}
	if cmd == nil {
		t.Fatal("status expiry command missing")
	}
}
