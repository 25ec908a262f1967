package domain

import (
	"fmt"
	"time"
)

// Game represents a catalog title. List responses populate the summary
// fields only; Description, ESRB and Stores are present after a detail
// fetch. Games are read-only values sourced from the remote catalog and
// are never mutated locally.
type Game struct {
	ID              int     // Catalog identifier (unique key)
	Slug            string  // URL-safe name
	Name            string  // Display title
	Released        string  // Release date, "2006-01-02"; empty when unannounced
	TBA             bool    // Release date yet to be announced
	BackgroundImage string  // Cover image URL
	Rating          float64 // Community rating, 0-5 scale
	RatingsCount    int     // Number of community ratings
	Metacritic      int     // Critic score 0-100; 0 when unscored
	Playtime        int     // Estimated playtime in hours

	Genres    []Genre
	Platforms []Platform // Parent platforms, unwrapped
	Tags      []Tag
	Stores    []Store

	// Detail-only fields
	Description      string // Plot/marketing copy, plain text
	ESRB             string // ESRB rating name, e.g. "Mature"
	ShortScreenshots []Screenshot
}

// ReleaseYear returns the four-digit release year, or 0 when unknown.
func (g Game) ReleaseYear() int {
	t, err := time.Parse("2006-01-02", g.Released)
	if err != nil {
		return 0
	}
	return t.Year()
}

// FormattedReleased returns the release date in a human-readable format.
func (g Game) FormattedReleased() string {
	if g.TBA || g.Released == "" {
		return "TBA"
	}
	t, err := time.Parse("2006-01-02", g.Released)
	if err != nil {
		return g.Released
	}
	return t.Format("January 2, 2006")
}

// FormattedPlaytime returns the playtime estimate, or "" when unknown.
func (g Game) FormattedPlaytime() string {
	if g.Playtime <= 0 {
		return ""
	}
	return fmt.Sprintf("%dh", g.Playtime)
}

// HasMetacritic reports whether the title carries a critic score.
func (g Game) HasMetacritic() bool {
	return g.Metacritic > 0
}

// Genre is a taxonomy entry used to populate the filter panel.
type Genre struct {
	ID   int
	Name string
	Slug string
}

// Platform is a parent platform taxonomy entry.
type Platform struct {
	ID   int
	Name string
	Slug string
}

// Tag is a taxonomy entry. Language is an ISO 639 code; the catalog
// mixes languages and consumers keep English entries only.
type Tag struct {
	ID       int
	Name     string
	Slug     string
	Language string
}

// Store is a storefront a title is sold on.
type Store struct {
	ID   int
	Name string
	Slug string
}

// Screenshot is an image reference for a title.
type Screenshot struct {
	ID    int
	Image string
}

// FavoriteEntry is a bookmarked title in the user's library. It is a
// denormalized snapshot of the title at bookmark time, so the library
// renders without touching the catalog.
type FavoriteEntry struct {
	ID       int     `json:"id"`
	Name     string  `json:"name"`
	ImageURL string  `json:"image_url"`
	AddedAt  string  `json:"added_at"` // RFC 3339
	Rating   float64 `json:"rating,omitempty"`
	Released string  `json:"released,omitempty"`
}

// NewFavorite builds a library entry from a catalog title.
func NewFavorite(g Game) FavoriteEntry {
	return FavoriteEntry{
		ID:       g.ID,
		Name:     g.Name,
		ImageURL: g.BackgroundImage,
		AddedAt:  time.Now().Format(time.RFC3339),
		Rating:   g.Rating,
		Released: g.Released,
	}
}

// User is a signed-in identity.
type User struct {
	Username  string    `json:"username"`
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
