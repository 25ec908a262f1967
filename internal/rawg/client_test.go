package rawg

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"ludo/internal/domain"
	"ludo/internal/filter"
	"ludo/internal/log"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) (*Client, *httptest.Server) {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return NewClient(server.URL, "test-key", log.NullLogger()), server
}

func TestListParsesEnvelope(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games" {
			t.Errorf("path = %q, want /games", r.URL.Path)
		}
		if got := r.URL.Query().Get("key"); got != "test-key" {
			t.Errorf("key = %q, want test-key", got)
		}
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{
			"count": 871,
			"results": [
				{"id": 3498, "slug": "grand-theft-auto-v", "name": "Grand Theft Auto V",
				 "released": "2013-09-17", "rating": 4.47, "ratings_count": 6040,
				 "metacritic": 92, "genres": [{"id": 4, "name": "Action", "slug": "action"}]},
				{"id": 4200, "slug": "portal-2", "name": "Portal 2", "rating": 4.6}
			]
		}`))
	})

	games, count, err := client.List(context.Background(), filter.Defaults())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if count != 871 {
		t.Errorf("count = %d, want 871", count)
	}
	if len(games) != 2 {
		t.Fatalf("got %d games, want 2", len(games))
	}
	if games[0].Name != "Grand Theft Auto V" || games[0].Metacritic != 92 {
		t.Errorf("first game = %+v", games[0])
	}
	if games[0].Rating != 4.47 {
		t.Errorf("rating = %v, want 4.47", games[0].Rating)
	}
	if len(games[0].Genres) != 1 || games[0].Genres[0].Name != "Action" {
		t.Errorf("genres = %+v", games[0].Genres)
	}
}

func TestListSendsSelectionParameters(t *testing.T) {
	var got map[string]string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		got = map[string]string{}
		for k := range r.URL.Query() {
			got[k] = r.URL.Query().Get(k)
		}
		w.Write([]byte(`{"count": 0, "results": []}`))
	})

	st := filter.Defaults()
	st.Search = "portal"
	st.Genres = []int{4, 51}
	st.Rating = 4
	st.Page = 2

	if _, _, err := client.List(context.Background(), st); err != nil {
		t.Fatalf("List: %v", err)
	}

	want := map[string]string{
		"search": "portal", "genres": "4,51", "rating": "4",
		"page": "2", "page_size": "12", "ordering": "-added", "key": "test-key",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("param %s = %q, want %q", k, got[k], v)
		}
	}
}

func TestDetailNotFound(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"detail": "Not found."}`, http.StatusNotFound)
	})

	_, err := client.Detail(context.Background(), 999999)
	if !errors.Is(err, domain.ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestDetailUpstreamError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "upstream broke", http.StatusBadGateway)
	})

	_, err := client.Detail(context.Background(), 3498)
	var upstream *domain.UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("err = %v, want UpstreamError", err)
	}
	if upstream.Status != http.StatusBadGateway {
		t.Errorf("status = %d, want 502", upstream.Status)
	}
}

func TestUnreachableCatalog(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	server.Close() // connection refused from here on
	client := NewClient(server.URL, "test-key", log.NullLogger())

	_, _, err := client.List(context.Background(), filter.Defaults())
	if !errors.Is(err, domain.ErrCatalogUnreachable) {
		t.Errorf("err = %v, want ErrCatalogUnreachable", err)
	}
}

func TestDetailMapsFullRecord(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/games/4200" {
			t.Errorf("path = %q, want /games/4200", r.URL.Path)
		}
		w.Write([]byte(`{
			"id": 4200, "slug": "portal-2", "name": "Portal 2",
			"released": "2011-04-18", "rating": 4.6, "metacritic": 95,
			"playtime": 11,
			"description_raw": "Portal 2 is a first-person puzzle game.",
			"esrb_rating": {"id": 2, "name": "Everyone 10+", "slug": "everyone-10-plus"},
			"parent_platforms": [{"platform": {"id": 1, "name": "PC", "slug": "pc"}}],
			"stores": [{"store": {"id": 1, "name": "Steam", "slug": "steam"}}]
		}`))
	})

	game, err := client.Detail(context.Background(), 4200)
	if err != nil {
		t.Fatalf("Detail: %v", err)
	}
	if game.Description != "Portal 2 is a first-person puzzle game." {
		t.Errorf("description = %q", game.Description)
	}
	if game.ESRB != "Everyone 10+" {
		t.Errorf("esrb = %q, want Everyone 10+", game.ESRB)
	}
	if len(game.Platforms) != 1 || game.Platforms[0].Name != "PC" {
		t.Errorf("platforms = %+v", game.Platforms)
	}
	if len(game.Stores) != 1 || game.Stores[0].Name != "Steam" {
		t.Errorf("stores = %+v", game.Stores)
	}
	if game.Playtime != 11 {
		t.Errorf("playtime = %d, want 11", game.Playtime)
	}
}

func TestScreenshotsEmptyIsNotAnError(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"count": 0, "results": []}`))
	})

	shots, err := client.Screenshots(context.Background(), 4200)
	if err != nil {
		t.Fatalf("Screenshots: %v", err)
	}
	if len(shots) != 0 {
		t.Errorf("got %d screenshots, want 0", len(shots))
	}
}

func TestParentPlatformsUnwrapsNestedObjects(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/platforms/lists/parents" {
			t.Errorf("path = %q", r.URL.Path)
		}
		w.Write([]byte(`{
			"count": 2,
			"results": [
				{"platform": {"id": 1, "name": "PC", "slug": "pc"}},
				{"platform": {"id": 2, "name": "PlayStation", "slug": "playstation"}}
			]
		}`))
	})

	platforms, err := client.ParentPlatforms(context.Background())
	if err != nil {
		t.Fatalf("ParentPlatforms: %v", err)
	}
	if len(platforms) != 2 {
		t.Fatalf("got %d platforms, want 2", len(platforms))
	}
	if platforms[1].Name != "PlayStation" {
		t.Errorf("second platform = %+v", platforms[1])
	}
}

func TestTagsKeepsEnglishOnly(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page_size"); got != "40" {
			t.Errorf("page_size = %q, want 40", got)
		}
		w.Write([]byte(`{
			"count": 3,
			"results": [
				{"id": 31, "name": "Singleplayer", "slug": "singleplayer", "language": "eng"},
				{"id": 42, "name": "Отличный саундтрек", "slug": "soundtrack-ru", "language": "rus"},
				{"id": 7, "name": "Multiplayer", "slug": "multiplayer", "language": "eng"}
			]
		}`))
	})

	tags, err := client.Tags(context.Background())
	if err != nil {
		t.Fatalf("Tags: %v", err)
	}
	if len(tags) != 2 {
		t.Fatalf("got %d tags, want 2", len(tags))
	}
	if tags[0].Name != "Singleplayer" || tags[1].Name != "Multiplayer" {
		t.Errorf("tags = %+v", tags)
	}
}

func TestGenresRequestsFullTaxonomyPage(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("page_size"); got != "40" {
			t.Errorf("page_size = %q, want 40", got)
		}
		w.Write([]byte(`{"count": 1, "results": [{"id": 4, "name": "Action", "slug": "action"}]}`))
	})

	genres, err := client.Genres(context.Background())
	if err != nil {
		t.Fatalf("Genres: %v", err)
	}
	if len(genres) != 1 || genres[0].Slug != "action" {
		t.Errorf("genres = %+v", genres)
	}
}
