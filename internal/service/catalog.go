// Package service orchestrates catalog fetches for the views.
package service

import (
	"context"
	"log/slog"
	"sync"

	"ludo/internal/domain"
	"ludo/internal/filter"
)

// Catalog is the remote catalog surface the service consumes.
// *rawg.Client implements it.
type Catalog interface {
	List(ctx context.Context, st filter.State) ([]domain.Game, int, error)
	Detail(ctx context.Context, id int) (*domain.Game, error)
	Screenshots(ctx context.Context, id int) ([]domain.Screenshot, error)
	Genres(ctx context.Context) ([]domain.Genre, error)
	ParentPlatforms(ctx context.Context) ([]domain.Platform, error)
	Tags(ctx context.Context) ([]domain.Tag, error)
}

// GamePage is one page of catalog results with derived paging info.
type GamePage struct {
	Games      []domain.Game
	Count      int // Total results across all pages, per the catalog
	Page       int
	TotalPages int
}

// GameFull is a title's detail record together with its screenshots.
type GameFull struct {
	Game        *domain.Game
	Screenshots []domain.Screenshot
}

// FilterOptions holds the taxonomy lists that populate the filter panel.
type FilterOptions struct {
	Genres    []domain.Genre
	Platforms []domain.Platform
	Tags      []domain.Tag
}

// CatalogService wraps the catalog client with view-shaped operations.
type CatalogService struct {
	catalog Catalog
	logger  *slog.Logger
}

// NewCatalogService creates a catalog service.
func NewCatalogService(catalog Catalog, logger *slog.Logger) *CatalogService {
	if logger == nil {
		logger = slog.Default()
	}
	return &CatalogService{catalog: catalog, logger: logger}
}

// ListPage fetches one page of results for the given selection. The
// page count is derived from the catalog's total: ceil(count/pageSize),
// never less than 1.
func (s *CatalogService) ListPage(ctx context.Context, st filter.State) (*GamePage, error) {
	games, count, err := s.catalog.List(ctx, st)
	if err != nil {
		return nil, err
	}

	pageSize := st.PageSize
	if pageSize < 1 {
		pageSize = filter.DefaultPageSize
	}
	totalPages := (count + pageSize - 1) / pageSize
	if totalPages < 1 {
		totalPages = 1
	}

	s.logger.Debug("listed games", "page", st.Page, "results", len(games), "count", count)
	return &GamePage{
		Games:      games,
		Count:      count,
		Page:       st.Page,
		TotalPages: totalPages,
	}, nil
}

// GameFull fetches a title's detail record and screenshots
// concurrently. Both must succeed; if either fails the other's result
// is discarded and the first error (detail taking precedence) is
// returned.
func (s *CatalogService) GameFull(ctx context.Context, id int) (*GameFull, error) {
	var (
		wg       sync.WaitGroup
		game     *domain.Game
		shots    []domain.Screenshot
		gameErr  error
		shotsErr error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		game, gameErr = s.catalog.Detail(ctx, id)
	}()
	go func() {
		defer wg.Done()
		shots, shotsErr = s.catalog.Screenshots(ctx, id)
	}()
	wg.Wait()

	if gameErr != nil {
		return nil, gameErr
	}
	if shotsErr != nil {
		return nil, shotsErr
	}
	return &GameFull{Game: game, Screenshots: shots}, nil
}

// FilterOptions fetches the three taxonomies concurrently. All must
// succeed for the panel to be usable.
func (s *CatalogService) FilterOptions(ctx context.Context) (*FilterOptions, error) {
	var (
		wg           sync.WaitGroup
		genres       []domain.Genre
		platforms    []domain.Platform
		tags         []domain.Tag
		genreErr     error
		platformErr  error
		tagErr       error
	)

	wg.Add(3)
	go func() {
		defer wg.Done()
		genres, genreErr = s.catalog.Genres(ctx)
	}()
	go func() {
		defer wg.Done()
		platforms, platformErr = s.catalog.ParentPlatforms(ctx)
	}()
	go func() {
		defer wg.Done()
		tags, tagErr = s.catalog.Tags(ctx)
	}()
	wg.Wait()

	if genreErr != nil {
		return nil, genreErr
	}
	if platformErr != nil {
		return nil, platformErr
	}
	if tagErr != nil {
		return nil, tagErr
	}
	return &FilterOptions{Genres: genres, Platforms: platforms, Tags: tags}, nil
}
